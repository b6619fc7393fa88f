package timer

import "github.com/charmbracelet/lipgloss"

type styles struct {
	base    lipgloss.Style
	clock   lipgloss.Style
	work    lipgloss.Style
	brk     lipgloss.Style
	hint    lipgloss.Style
	task    lipgloss.Style
	current lipgloss.Style
	cursor  lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#1F1F1F")
	if dark {
		fg = lipgloss.Color("#F5F5F5")
	}

	return styles{
		base:    lipgloss.NewStyle().Padding(1, padding),
		clock:   lipgloss.NewStyle().Bold(true).Foreground(fg),
		work:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0DB43")),
		brk:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#12EAEA")),
		hint:    lipgloss.NewStyle().Faint(true),
		task:    lipgloss.NewStyle().Foreground(fg),
		current: lipgloss.NewStyle().Bold(true).Foreground(fg),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("#C492B1")),
	}
}
