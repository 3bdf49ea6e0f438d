package database

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	testutil "github.com/mwalimu/gradebook/tests"
)

// EnsureSchema must absorb every failure: a drifted or unreachable store
// degrades to a warning, never an error or panic.
func TestEnsureSchemaSwallowsFailures(t *testing.T) {
	// sqlx.Open does not connect; the first query against this DSN fails.
	db, err := sqlx.Open("postgres", "host=127.0.0.1 port=1 user=nobody dbname=nowhere sslmode=disable connect_timeout=1")
	if err != nil {
		t.Fatalf("sqlx.Open() failed: %v", err)
	}
	defer db.Close()

	log := &testutil.TestLogger{}
	EnsureSchema(db, log)

	if len(log.Messages) == 0 {
		t.Fatal("EnsureSchema() logged nothing for an unreachable store")
	}
	for _, msg := range log.Messages {
		if !strings.HasPrefix(msg, "schema migration skipped") {
			t.Errorf("unexpected log message %q", msg)
		}
	}
}
