package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fmizzell/tasklist"
)

type styles struct {
	title     lipgloss.Style
	stats     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	row       lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	empty     lipgloss.Style
	help      lipgloss.Style
	status    lipgloss.Style
	priority  map[tasklist.Priority]lipgloss.Style
}

func newStyles(dark bool) styles {
	fg, muted, accent, bg := lipgloss.Color("235"), lipgloss.Color("245"), lipgloss.Color("63"), lipgloss.Color("255")
	if dark {
		fg, muted, accent, bg = lipgloss.Color("252"), lipgloss.Color("241"), lipgloss.Color("141"), lipgloss.Color("236")
	}

	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		stats:     lipgloss.NewStyle().Foreground(muted),
		tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		activeTab: lipgloss.NewStyle().Foreground(bg).Background(accent).Bold(true).Padding(0, 1),
		row:       lipgloss.NewStyle().Foreground(fg),
		selected:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		done:      lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		empty:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		help:      lipgloss.NewStyle().Foreground(muted),
		status:    lipgloss.NewStyle().Foreground(accent),
		priority: map[tasklist.Priority]lipgloss.Style{
			tasklist.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			tasklist.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			tasklist.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		},
	}
}
