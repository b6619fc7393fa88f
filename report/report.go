// Package report prints user-facing errors and notices
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

// Stopped notes that the timer was interrupted before the period ended.
func Stopped() {
	pterm.Info.Println("timer stopped")
}

// Quit prints err and exits with a failure status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(osutil.ExitError)
}
