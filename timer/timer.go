// Package timer is the interactive front end of pomo. It drives the
// countdown engine with a one-second tick, forwards key presses to the
// engine and the task ledger, and renders both with bubbletea.
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/ledger"
	"github.com/ayoisaiah/pomo/store"
)

const (
	padding  = 2
	maxWidth = 60
)

// tickMsg is delivered once per second for the lifetime of the program.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// taskDraft backs the add-task form fields.
type taskDraft struct {
	ticketID    string
	description string
}

// Model is the bubbletea model for the timer screen.
type Model struct {
	db         store.DB
	notifier   Notifier
	engine     *countdown.Engine
	ledger     *ledger.Ledger
	form       *huh.Form
	draft      *taskDraft
	now        func() time.Time
	styles     styles
	statusPath string
	clock      string
	keys       keymap
	help       help.Model
	progress   progress.Model
	period     period
	cursor     int
	total      int
	autoReload bool
	hour24     bool
}

// Option configures a Model.
type Option func(*Model)

// WithStore records expired periods in db.
func WithStore(db store.DB) Option {
	return func(m *Model) {
		m.db = db
	}
}

// WithNotifier sets the receiver of expiry notifications.
func WithNotifier(n Notifier) Option {
	return func(m *Model) {
		m.notifier = n
	}
}

// WithStatusFile makes the model write a status snapshot to path on every
// tick.
func WithStatusFile(path string) Option {
	return func(m *Model) {
		m.statusPath = path
	}
}

// WithNow overrides the wall clock used to timestamp periods.
func WithNow(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates the timer model from cfg. Tasks given on the command line are
// added in order, so the last one starts out selected.
func New(cfg *config.Config, opts ...Option) *Model {
	l := ledger.New()

	m := &Model{
		ledger: l,
		engine: countdown.New(
			countdown.WithWorkDuration(cfg.Work.Duration),
			countdown.WithBreakDuration(cfg.Break.Duration),
			countdown.WithCrediter(l),
		),
		keys:       defaultKeymap,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient()),
		styles:     newStyles(cfg.Display.DarkTheme),
		autoReload: cfg.Settings.AutoReload,
		hour24:     cfg.Settings.TwentyFourHour,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	for _, task := range cfg.CLI.Tasks {
		m.addTask(task.TicketID, task.Description)
	}

	m.clock = m.engine.Clock()
	m.total = m.engine.Remaining()
	m.progress.Width = maxWidth

	return m
}

// Tasks returns the tasks recorded so far.
func (m *Model) Tasks() []ledger.Task {
	return m.ledger.Tasks()
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

// addTask appends a task and moves the cursor onto it.
func (m *Model) addTask(ticketID, description string) {
	id, _, ok := m.ledger.AddTask(ticketID, description)
	if !ok {
		return
	}

	m.cursor = int(id) - 1
}
