package timer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/ledger"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/store"
)

// Plain runs a single period without the interactive screen. It prints the
// countdown on one line and returns once the period expires or ctx is
// cancelled.
type Plain struct {
	db       store.DB
	notifier Notifier
	out      io.Writer
	engine   *countdown.Engine
	ledger   *ledger.Ledger
	now      func() time.Time
}

// NewPlain creates a plain runner from cfg. Tasks given on the command line
// are added as in the interactive mode.
func NewPlain(cfg *config.Config, out io.Writer, db store.DB, n Notifier) *Plain {
	l := ledger.New()

	for _, task := range cfg.CLI.Tasks {
		l.AddTask(task.TicketID, task.Description)
	}

	return &Plain{
		db:       db,
		notifier: n,
		out:      out,
		ledger:   l,
		engine: countdown.New(
			countdown.WithWorkDuration(cfg.Work.Duration),
			countdown.WithBreakDuration(cfg.Break.Duration),
			countdown.WithCrediter(l),
		),
		now: time.Now,
	}
}

// Tasks returns the tasks recorded so far.
func (p *Plain) Tasks() []ledger.Task {
	return p.ledger.Tasks()
}

// Run starts the engine and ticks it once per second.
func (p *Plain) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	return p.run(ctx, ticker.C)
}

func (p *Plain) run(ctx context.Context, ticks <-chan time.Time) error {
	var tracker period

	p.engine.Start()
	tracker.begin(p.engine, p.now())

	p.print(p.engine.Clock(), p.engine.OnBreak())

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return nil
		case <-ticks:
			res := p.engine.Tick()

			switch res.Kind {
			case countdown.TickCountdown:
				p.print(res.Text, p.engine.OnBreak())
			case countdown.TickExpired:
				p.print(res.Text, res.WasBreak)
				fmt.Fprintln(p.out)

				rec := tracker.finish(res, p.ledger, p.now())

				if p.db != nil {
					if err := p.db.SavePeriod(rec); err != nil {
						slog.Error("unable to save period", slog.Any("error", err))
					}
				}

				if p.notifier != nil {
					p.notifier.Notify(*rec, res.Text)
				}

				return nil
			case countdown.TickIgnored:
			}
		}
	}
}

func (p *Plain) print(text string, onBreak bool) {
	label := "[Work]"
	if onBreak {
		label = "[Break]"
	}

	fmt.Fprintf(p.out, "\r\033[K%s %s", label, ui.Yellow(text))
}
