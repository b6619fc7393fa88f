// Package app wires the pomo command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	pomoApp := &cli.App{
		Name: "pomo",
		Usage: `
		Pomo is a pomodoro timer for the command-line that keeps track of the 
		time spent on each task you add while it runs.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		// task descriptions may contain commas
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name: "stats",
				Usage: `
				Report on recorded work and break periods. Defaults to a 
				reporting period of 7 days`,
				Action: statsAction,
				Flags: []cli.Flag{
					periodFlag,
					sinceFlag,
					untilFlag,
					ticketFilterFlag,
					jsonFlag,
					listFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			breakFlag,
			autoReloadFlag,
			disableNotificationFlag,
			muteFlag,
			sessionCmdFlag,
			taskFlag,
			plainFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return pomoApp
}
