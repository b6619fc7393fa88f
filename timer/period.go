package timer

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/ledger"
	"github.com/ayoisaiah/pomo/internal/models"
)

// period tracks when the current countdown period began so that it can be
// recorded once it expires.
type period struct {
	start time.Time
	secs  int
}

// begin marks the start of a period. Resuming after a pause keeps the
// original start.
func (p *period) begin(e *countdown.Engine, now time.Time) {
	if !p.start.IsZero() || !e.Running() {
		return
	}

	p.start = now
	p.secs = e.Remaining()
}

func (p *period) clear() {
	*p = period{}
}

// finish builds the record for a period that just expired and clears the
// tracker.
func (p *period) finish(
	tick countdown.Tick,
	l *ledger.Ledger,
	now time.Time,
) *models.Period {
	rec := &models.Period{
		StartTime: p.start,
		EndTime:   now,
		Phase:     models.PhaseWork,
		Duration:  time.Duration(p.secs) * time.Second,
	}

	if rec.StartTime.IsZero() {
		rec.StartTime = now.Add(-rec.Duration)
	}

	if tick.WasBreak {
		rec.Phase = models.PhaseBreak
	}

	if t, ok := l.Current(); ok {
		rec.TicketID = t.TicketID
	}

	p.clear()

	return rec
}
