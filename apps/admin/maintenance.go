package main

import (
	"context"
	"flag"
	"fmt"
)

func (cli *commandLine) maintenance(args []string) error {
	maintenanceCmd := flag.NewFlagSet("maintenance", flag.ExitOnError)
	status := maintenanceCmd.Bool("status", false, "Print the current maintenance flag.")
	toggle := maintenanceCmd.Bool("toggle", false, "Flip the maintenance flag and print the new value.")
	set := maintenanceCmd.String("set", "", "Set the maintenance flag: on|off.")
	if err := maintenanceCmd.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	switch {
	case *toggle:
		on, err := cli.gate.Toggle(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("maintenance: %s\n", onOff(on))
		return nil
	case *set != "":
		var on bool
		switch *set {
		case "on":
			on = true
		case "off":
			on = false
		default:
			maintenanceCmd.Usage()
			return errHelp
		}
		if err := cli.gate.Set(ctx, on); err != nil {
			return err
		}
		fmt.Printf("maintenance: %s\n", onOff(on))
		return nil
	case *status:
		fallthrough
	default:
		fmt.Printf("maintenance: %s\n", onOff(cli.gate.IsOn(ctx)))
		return nil
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
