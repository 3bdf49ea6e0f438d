package main

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/maintenance"
	"github.com/mwalimu/gradebook/core/section"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db       *sqlx.DB
	log      core.Logger
	gate     *maintenance.Service
	sections *section.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS] - run versioned database migrations (up, down, status, ...)")
	fmt.Println("  ensureschema - repair legacy schema drift in place")
	fmt.Println("  maintenance [-status|-toggle|-set on|off] - inspect or change the maintenance flag")
	fmt.Println("  createsection [FLAGS] - register a new course section")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "ensureschema":
		return cli.ensureSchema()
	case "maintenance":
		return cli.maintenance(args[2:])
	case "createsection":
		return cli.createSection(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}
