package main

import (
	"log"
	"os"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/maintenance"
	"github.com/mwalimu/gradebook/core/section"
	logsvc "github.com/mwalimu/gradebook/services/logger"
	"github.com/mwalimu/gradebook/storage/database"
	sqlxrepos "github.com/mwalimu/gradebook/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)
	appLog := newAppLogger(logger, conf)

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()

	gate := maintenance.NewService(sqlxrepos.NewSettingsRepository(db), appLog)

	// start CLI
	cli := commandLine{
		db:       db,
		log:      appLog,
		gate:     gate,
		// admin tooling must keep working while under maintenance
		sections: section.NewService(sqlxrepos.NewSectionRepository(db), core.OpenGuard{}, appLog),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

// newAppLogger reports to Rollbar when a token is configured, and to the
// standard logger otherwise.
func newAppLogger(std *log.Logger, conf *core.Config) core.Logger {
	if conf.RollbarToken != "" {
		return logsvc.NewRollbarLogger(std, conf)
	}
	return logsvc.NewStdLogger(std)
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
