package timer

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/models"
)

func (m *Model) headerView() string {
	var s strings.Builder

	if m.phase() == models.PhaseBreak {
		s.WriteString(m.styles.brk.Render("Break"))
	} else {
		s.WriteString(m.styles.work.Render("Work"))
	}

	s.WriteString(" ")

	switch m.engine.State() {
	case countdown.Running:
		s.WriteString(m.styles.hint.Render("[running] until " + m.endTime()))
	case countdown.Idle:
		s.WriteString(m.styles.hint.Render("[paused]"))
	case countdown.Expired:
		s.WriteString(m.styles.hint.Render("[finished]"))
	}

	return s.String()
}

// endTime is the wall-clock time at which the running period will expire.
func (m *Model) endTime() string {
	layout := "03:04 PM"
	if m.hour24 {
		layout = "15:04"
	}

	end := m.now().Add(time.Duration(m.engine.Remaining()) * time.Second)

	return end.Format(layout)
}

// elapsed is the completed fraction of the loaded period.
func (m *Model) elapsed() float64 {
	if m.total <= 0 {
		return 1
	}

	return 1 - float64(m.engine.Remaining())/float64(m.total)
}

func (m *Model) tasksView() string {
	rows := m.ledger.Rows()
	if len(rows) == 0 {
		return m.styles.hint.Render("No tasks yet. Press a to add one.")
	}

	var s strings.Builder

	for i, row := range rows {
		marker := "  "
		if i == m.cursor {
			marker = m.styles.cursor.Render("> ")
		}

		label := m.styles.task.Render(row.Label)
		if row.Current {
			label = m.styles.current.Render(row.Label)
		}

		s.WriteString(marker + label)

		if i < len(rows)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (m *Model) helpView() string {
	return m.help.ShortHelpView([]key.Binding{
		m.keys.toggle,
		m.keys.start,
		m.keys.pause,
		m.keys.reset,
		m.keys.next,
		m.keys.add,
		m.keys.choose,
		m.keys.quit,
	})
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")
	s.WriteString(m.styles.clock.Render(m.clock))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.elapsed()))
	s.WriteString("\n\n")
	s.WriteString(m.tasksView())
	s.WriteString("\n\n")

	if m.form != nil {
		s.WriteString(m.form.View())
		s.WriteString("\n")
		s.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.esc}))
	} else {
		s.WriteString(m.helpView())
	}

	return m.styles.base.Render(s.String())
}
