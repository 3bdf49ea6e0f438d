package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/maintenance"
	"github.com/mwalimu/gradebook/core/section"
	logsvc "github.com/mwalimu/gradebook/services/logger"
	inmemdb "github.com/mwalimu/gradebook/storage/database/inmem"
	testutil "github.com/mwalimu/gradebook/tests"
)

func setup(t *testing.T) *commandLine {
	t.Helper()
	db := inmemdb.Open()
	log := &testutil.TestLogger{}
	gate := maintenance.NewService(inmemdb.NewSettingsRepository(db), log)
	return &commandLine{
		db:       &sqlx.DB{},
		log:      log,
		gate:     gate,
		sections: section.NewService(inmemdb.NewSectionRepository(db), core.OpenGuard{}, log),
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func runTests(t *testing.T, cli *commandLine, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(append([]string{"admin"}, tt.args...))
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("run() error = %v, wantErrStr %q", err, tt.wantErrStr)
				}
			default:
				if err != nil {
					t.Errorf("run() failed: %v", err)
				}
			}
		})
	}
}

func Test_commandLine_run(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "no subcommand", args: nil, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
	})
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	var upCalled bool
	migrateUpFunc = func(*sqlx.DB) error {
		upCalled = true
		return nil
	}
	gooseRunFunc = func(command string, db *sql.DB, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "redo", "reset", "status", "version": // pass
		case "up-to", "down-to":
			if len(args) == 0 {
				return fmt.Errorf("%s requires a VERSION argument", command)
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	runTests(t, cli, []cliTest{
		{name: "no migrate subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown migrate subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "up-to no version", args: []string{"migrate", "up-to"}, wantErrStr: "up-to requires a VERSION argument"},
		{name: "up-to", args: []string{"migrate", "up-to", "3"}},
	})

	if !upCalled {
		t.Error("migrate up did not go through database.Migrate")
	}
}

func Test_newAppLogger(t *testing.T) {
	std := log.New(io.Discard, "", 0)

	if _, ok := newAppLogger(std, &core.Config{}).(*logsvc.StdLogger); !ok {
		t.Error("newAppLogger() without a rollbar token != StdLogger")
	}
	if _, ok := newAppLogger(std, &core.Config{RollbarToken: "token"}).(*logsvc.RollbarLogger); !ok {
		t.Error("newAppLogger() with a rollbar token != RollbarLogger")
	}
}

func Test_commandLine_maintenance(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "status default off", args: []string{"maintenance", "-status"}},
		{name: "set on", args: []string{"maintenance", "-set", "on"}},
		{name: "set bad value", args: []string{"maintenance", "-set", "maybe"}, wantErr: errHelp},
		{name: "toggle", args: []string{"maintenance", "-toggle"}},
	})

	// set on, toggle: flag must end up off
	if err := cli.run([]string{"admin", "maintenance", "-set", "on"}); err != nil {
		t.Fatalf("run(maintenance -set on) failed: %v", err)
	}
	if err := cli.run([]string{"admin", "maintenance", "-toggle"}); err != nil {
		t.Fatalf("run(maintenance -toggle) failed: %v", err)
	}
	if cli.gate.IsOn(context.Background()) {
		t.Error("maintenance flag = on after set on + toggle, want off")
	}
}

func Test_commandLine_createSection(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "ok", args: []string{
			"createsection",
			"-course", "CS101", "-title", "Intro to Computing",
			"-instructor", "7", "-term", "fall", "-year", "2026", "-capacity", "60",
		}},
	})

	secs, err := cli.sections.QueryAll(context.Background())
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(secs) != 1 {
		t.Fatalf("QueryAll() returned %d sections, want 1", len(secs))
	}
	if secs[0].CourseCode != "CS101" {
		t.Errorf("course code = %q, want CS101", secs[0].CourseCode)
	}
}
