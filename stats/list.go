package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/ledger"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const listDateFormat = "January 02, 2006 03:04 PM"

func periodRows(periods []models.Period) [][]string {
	rows := [][]string{
		{"#", "START DATE", "END DATE", "PHASE", "TICKET", "DURATION"},
	}

	for i, p := range periods {
		phase := ui.Green(string(p.Phase))
		if p.Phase == models.PhaseBreak {
			phase = ui.Blue(string(p.Phase))
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.StartTime.Format(listDateFormat),
			p.EndTime.Format(listDateFormat),
			phase,
			p.TicketID,
			humanDuration(p.Duration),
		})
	}

	return rows
}

// List prints a table of the periods the report covers.
func (s *Stats) List() {
	if len(s.Periods) == 0 {
		pterm.Info.Println(noPeriodsMsg)
		return
	}

	ui.PrintTable(periodRows(s.Periods), s.Opts.Stdout)
}

// PrintTasks prints the tasks worked on during a run.
func PrintTasks(w io.Writer, tasks []ledger.Task) {
	if len(tasks) == 0 {
		return
	}

	rows := [][]string{
		{"#", "TICKET", "DESCRIPTION", "TIME"},
	}

	for _, t := range tasks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.TicketID,
			t.Description,
			timeutil.HumanSecs(t.SecondsSpent),
		})
	}

	ui.PrintTable(rows, w)
}
