package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("KEYS"),
		keyHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + keys + env
}

func keyHelp() string {
	return `
s: start the countdown
p: pause
space: start or pause
r: reset to a fresh work period
n: load the next period
a: add a task
up/k, down/j, enter: move between tasks and select one
q, ctrl+c: quit`
}

func envHelp() string {
	return `
POMO_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

POMO_ENV: set to a name to keep a separate config file, database and log for that name.`
}
