// Package stats reports on the periods recorded by pomo
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const (
	barChartChar     = "▇"
	noPeriodsMsg     = "No periods found for the specified time range"
	untrackedTicket  = "untracked"
	reportDateFormat = "January 02, 2006"
)

// Opts selects what the report covers and where it is written.
type Opts struct {
	config.FilterConfig
	Stdout io.Writer
}

// Summary holds the totals for one phase.
type Summary struct {
	Periods  int           `json:"periods"`
	Duration time.Duration `json:"duration"`
}

// TicketTotal is the work time credited to a single ticket.
type TicketTotal struct {
	TicketID string        `json:"ticket_id"`
	Periods  int           `json:"periods"`
	Duration time.Duration `json:"duration"`
}

// Stats is the computed report.
type Stats struct {
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	Weekly    map[string]int  `json:"weekly"`
	Opts      Opts            `json:"-"`
	Periods   []models.Period `json:"-"`
	Tickets   []TicketTotal   `json:"tickets"`
	Work      Summary         `json:"work"`
	Break     Summary         `json:"break"`
	weekdays  [7]time.Duration
}

// New creates an empty report for opts.
func New(opts Opts) *Stats {
	return &Stats{
		Opts:      opts,
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
	}
}

// filterPeriods drops periods whose end precedes their start.
func filterPeriods(periods []models.Period) []models.Period {
	filtered := make([]models.Period, 0, len(periods))

	for _, p := range periods {
		if p.EndTime.Before(p.StartTime) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

// Compute aggregates periods into work and break totals, per-ticket work
// time and a weekday breakdown of work minutes.
func (s *Stats) Compute(periods []models.Period) {
	s.Periods = filterPeriods(periods)
	s.Work, s.Break = Summary{}, Summary{}
	s.weekdays = [7]time.Duration{}

	// For all-time, start from the first recorded period
	if s.StartTime.IsZero() && len(s.Periods) > 0 {
		s.StartTime = timeutil.RoundToStart(s.Periods[0].StartTime)
	}

	tickets := make(map[string]*TicketTotal)

	for _, p := range s.Periods {
		if p.Phase == models.PhaseBreak {
			s.Break.Periods++
			s.Break.Duration += p.Duration

			continue
		}

		s.Work.Periods++
		s.Work.Duration += p.Duration
		s.weekdays[p.StartTime.Weekday()] += p.Duration

		id := p.TicketID
		if id == "" {
			id = untrackedTicket
		}

		t, ok := tickets[id]
		if !ok {
			t = &TicketTotal{TicketID: id}
			tickets[id] = t
		}

		t.Periods++
		t.Duration += p.Duration
	}

	s.Tickets = make([]TicketTotal, 0, len(tickets))
	for _, t := range tickets {
		s.Tickets = append(s.Tickets, *t)
	}

	slices.SortFunc(s.Tickets, func(a, b TicketTotal) int {
		switch {
		case natural.Less(a.TicketID, b.TicketID):
			return -1
		case natural.Less(b.TicketID, a.TicketID):
			return 1
		default:
			return 0
		}
	})

	s.Weekly = make(map[string]int, len(s.weekdays))
	for day, d := range s.weekdays {
		s.Weekly[time.Weekday(day).String()] = timeutil.Round(d.Minutes())
	}
}

// ToJSON renders the computed report as JSON.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

func humanDuration(d time.Duration) string {
	return timeutil.HumanSecs(int(d / time.Second))
}

// getSummary retrieves the phase totals for the reporting period.
func (s *Stats) getSummary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	work := fmt.Sprintf(
		"Work: %s in %s periods\n",
		ui.Green(humanDuration(s.Work.Duration)),
		ui.Green(s.Work.Periods),
	)

	brk := fmt.Sprintf(
		"Break: %s in %s periods\n",
		ui.Green(humanDuration(s.Break.Duration)),
		ui.Green(s.Break.Periods),
	)

	return header + work + brk
}

// getTickets retrieves the per-ticket breakdown in natural order.
func (s *Stats) getTickets() string {
	if len(s.Tickets) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Tickets")))

	for _, t := range s.Tickets {
		b.WriteString(fmt.Sprintf(
			"%s: %s\n",
			t.TicketID,
			ui.Green(humanDuration(t.Duration)),
		))
	}

	return b.String()
}

func (s *Stats) getBarChart() string {
	header := ui.Blue("\nWeekly breakdown (minutes)")

	bars := make(pterm.Bars, 0, len(s.weekdays))

	for day, d := range s.weekdays {
		bars = append(bars, pterm.Bar{
			Label: time.Weekday(day).String(),
			Value: timeutil.Round(d.Minutes()),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Show prints the computed report.
func (s *Stats) Show() {
	if len(s.Periods) == 0 {
		pterm.Info.Println(noPeriodsMsg)
		return
	}

	timePeriod := fmt.Sprintf(
		"Reporting period: %s - %s",
		s.StartTime.Format(reportDateFormat),
		s.EndTime.Format(reportDateFormat),
	)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	output := fmt.Sprint(
		header,
		s.getSummary(),
		s.getTickets(),
		s.getBarChart(),
	)

	fmt.Fprintln(s.Opts.Stdout, strings.TrimSpace(output))
}
