package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/ledger"
	"github.com/ayoisaiah/pomo/internal/models"
)

// handleTick advances the engine by one second. It runs for every tick,
// including while the add-task form is open.
func (m *Model) handleTick() tea.Cmd {
	res := m.engine.Tick()

	var cmd tea.Cmd

	switch res.Kind {
	case countdown.TickCountdown:
		m.clock = res.Text
	case countdown.TickExpired:
		m.clock = res.Text
		cmd = m.expire(res)
	case countdown.TickIgnored:
	}

	status := snapshot(m.engine, m.ledger, m.clock, m.now())
	if err := writeStatusFile(m.statusPath, status); err != nil {
		slog.Warn("unable to write status file", slog.Any("error", err))
	}

	return tea.Batch(tick(), cmd)
}

// expire records the period that just ended and hands it to the notifier.
func (m *Model) expire(res countdown.Tick) tea.Cmd {
	rec := m.period.finish(res, m.ledger, m.now())

	slog.Info(
		"period expired",
		slog.String("phase", string(rec.Phase)),
		slog.String("ticket", rec.TicketID),
		slog.Duration("duration", rec.Duration),
	)

	if m.db != nil {
		if err := m.db.SavePeriod(rec); err != nil {
			slog.Error("unable to save period", slog.Any("error", err))
		}
	}

	if m.autoReload {
		m.reload()
	}

	if m.notifier == nil {
		return nil
	}

	n, p, msg := m.notifier, *rec, res.Text

	return func() tea.Msg {
		n.Notify(p, msg)
		return nil
	}
}

func (m *Model) start() {
	m.engine.Start()
	m.period.begin(m.engine, m.now())
}

func (m *Model) toggle() {
	m.engine.Toggle()
	m.period.begin(m.engine, m.now())
}

func (m *Model) reset() {
	m.engine.Reset()
	m.period.clear()
	m.clock = m.engine.Clock()
	m.total = m.engine.Remaining()
}

// reload prepares the period that follows the one that just expired. The
// expiry message stays on screen until the next period starts.
func (m *Model) reload() {
	m.engine.Reload()
	m.period.clear()
	m.total = m.engine.Remaining()
}

// next loads the following period and shows its full length.
func (m *Model) next() {
	m.reload()
	m.clock = m.engine.Clock()
}

func (m *Model) openForm() tea.Cmd {
	m.draft = &taskDraft{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ticket").
				CharLimit(ledger.MaxTicketIDLen).
				Value(&m.draft.ticketID),
			huh.NewInput().
				Title("Description").
				CharLimit(ledger.MaxDescriptionLen).
				Value(&m.draft.description),
		),
	).WithShowHelp(false)

	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.draft = nil
}

// submitForm adds the drafted task. An empty ticket adds nothing.
func (m *Model) submitForm() {
	if m.draft != nil {
		m.addTask(m.draft.ticketID, m.draft.description)
	}

	m.closeForm()
}

// updateForm forwards msg to the open add-task form.
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			return m.quit()
		case "esc":
			m.closeForm()
			return nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		return nil
	case huh.StateAborted:
		m.closeForm()
		return nil
	case huh.StateNormal:
	}

	return cmd
}

func (m *Model) moveCursor(delta int) {
	n := m.ledger.Len()
	if n == 0 {
		return
	}

	m.cursor = max(0, min(n-1, m.cursor+delta))
}

func (m *Model) selectUnderCursor() {
	m.ledger.Select(ledger.TaskID(m.cursor + 1))
}

func (m *Model) quit() tea.Cmd {
	slog.Info("quitting", slog.Int("tasks", m.ledger.Len()))

	return tea.Quit
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit()
	case key.Matches(msg, m.keys.toggle):
		m.toggle()
	case key.Matches(msg, m.keys.start):
		m.start()
	case key.Matches(msg, m.keys.pause):
		m.engine.Pause()
	case key.Matches(msg, m.keys.reset):
		m.reset()
	case key.Matches(msg, m.keys.next):
		m.next()
	case key.Matches(msg, m.keys.add):
		return m.openForm()
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.choose):
		m.selectUnderCursor()
	}

	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("update", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m, m.handleTick()

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if m.form != nil {
		return m, m.updateForm(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKeyPress(k)
	}

	return m, nil
}

// phase reports the kind of the period currently loaded.
func (m *Model) phase() models.Phase {
	if m.engine.OnBreak() {
		return models.PhaseBreak
	}

	return models.PhaseWork
}
