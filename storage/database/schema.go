package database

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mwalimu/gradebook/core"
)

// Deployed databases predate parts of the canonical schema: some lack the
// sections.enrollment_open column, older ones key sections on the legacy
// sec_id column. EnsureSchema repairs that drift in order, one idempotent
// step at a time.
//
// Failures are logged and swallowed, never surfaced: a partially migrated
// legacy database must keep serving reads. Availability over strictness here.
func EnsureSchema(db *sqlx.DB, log core.Logger) {
	steps := []struct {
		name  string
		apply func(db *sqlx.DB) error
	}{
		{"sections: add enrollment_open", addEnrollmentOpenColumn},
		{"sections: backfill section_id from legacy sec_id", backfillLegacySectionID},
	}
	for _, step := range steps {
		if err := step.apply(db); err != nil {
			log.Warn("schema migration skipped: "+step.name, err)
		}
	}
}

func columnExists(db *sqlx.DB, table, column string) (bool, error) {
	var exists bool
	err := db.Get(&exists, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)`, table, column)
	return exists, errors.Wrapf(err, "checking %s.%s", table, column)
}

// addEnrollmentOpenColumn adds enrollment_open defaulting to 1 (open) when
// missing. The default matches the fail-open read path.
func addEnrollmentOpenColumn(db *sqlx.DB) error {
	exists, err := columnExists(db, "sections", "enrollment_open")
	if err != nil || exists {
		return err
	}
	_, err = db.Exec(`ALTER TABLE sections ADD COLUMN enrollment_open integer NOT NULL DEFAULT 1`)
	return errors.Wrap(err, "adding sections.enrollment_open")
}

// backfillLegacySectionID adds the canonical section_id column alongside a
// legacy sec_id primary key and copies the ids over. The legacy column is
// left in place for whatever still reads it.
func backfillLegacySectionID(db *sqlx.DB) error {
	legacy, err := columnExists(db, "sections", "sec_id")
	if err != nil || !legacy {
		return err
	}
	canonical, err := columnExists(db, "sections", "section_id")
	if err != nil || canonical {
		return err
	}

	if _, err = db.Exec(`ALTER TABLE sections ADD COLUMN section_id integer`); err != nil {
		return errors.Wrap(err, "adding sections.section_id")
	}
	_, err = db.Exec(`UPDATE sections SET section_id = sec_id WHERE section_id IS NULL`)
	return errors.Wrap(err, "backfilling sections.section_id")
}
