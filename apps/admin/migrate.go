package main

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	appfs "github.com/mwalimu/gradebook/fs"
	"github.com/mwalimu/gradebook/storage/database"
)

// mockable
var (
	gooseRunFunc  = goose.Run
	migrateUpFunc = database.Migrate
)

func (cli *commandLine) migrate(args []string) error {
	// plain "up" is the canonical path; it shares the entry point used by
	// embedding callers
	if args[0] == "up" && len(args) == 1 {
		return migrateUpFunc(cli.db)
	}

	goose.SetBaseFS(appfs.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	var sqlDB *sql.DB
	if cli.db != nil {
		sqlDB = cli.db.DB
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], sqlDB, "migrations", arguments...)
}

func (cli *commandLine) ensureSchema() error {
	database.EnsureSchema(cli.db, cli.log)
	return nil
}
