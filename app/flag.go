package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

var (
	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes or as a Go duration such as 25m (default: 25)",
	}

	breakFlag = &cli.StringFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break duration in minutes or as a Go duration such as 5m (default: 5)",
	}

	autoReloadFlag = &cli.BoolFlag{
		Name:  "auto-reload",
		Usage: "Load the next period as soon as the current one ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a period ends",
	}

	muteFlag = &cli.BoolFlag{
		Name:  "mute",
		Usage: "Do not play a tone when a period ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each period",
	}

	taskFlag = &cli.StringSliceFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Add a task as TICKET[:description]. Repeat to add more; the last one is selected",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Run a single period without the interactive screen",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage: fmt.Sprintf(
			"Specify a time period for the report. Possible values are: %v",
			timeutil.PeriodCollection,
		),
		Value: string(timeutil.Period7Days),
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Start of the reporting period (e.g. '2024-05-01' or '3 days ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "End of the reporting period",
	}

	ticketFilterFlag = &cli.StringFlag{
		Name:  "ticket",
		Usage: "Only report on the given comma-delimited tickets",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the report as JSON",
	}

	listFlag = &cli.BoolFlag{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "Print every recorded period in a table",
	}
)
