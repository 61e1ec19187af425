package tui

import (
	"fmt"
	"strings"

	"github.com/fmizzell/tasklist"
)

func (m Model) View() string {
	var b strings.Builder

	theme := "🌙"
	if m.dark {
		theme = "☀️"
	}
	b.WriteString(m.styles.title.Render("Tasks") + "  " + theme + "\n")

	st := m.view.Stats
	b.WriteString(m.styles.stats.Render(fmt.Sprintf("%d total · %d completed · %d active", st.Total, st.Completed, st.Active)))
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(tasklist.Filters))
	for i, f := range tasklist.Filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == m.view.Filter {
			tabs = append(tabs, m.styles.activeTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.tab.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if m.view.Empty() {
		b.WriteString(m.styles.empty.Render("No tasks here. Press 'a' to add one."))
		b.WriteString("\n")
	}
	for i, t := range m.view.Tasks {
		b.WriteString(m.renderRow(t, i == m.cursor && m.mode == modeList))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd:
		b.WriteString(fmt.Sprintf("Add [%s]: %s\n", m.priority, m.input.View()))
	case modeEdit:
		b.WriteString(fmt.Sprintf("Edit: %s\n", m.input.View()))
	}

	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderRow(t tasklist.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "› "
	}
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	indicator := m.styles.priority[t.Priority].Render("●")

	text := m.styles.row.Render(t.Text)
	if t.Completed {
		text = m.styles.done.Render(t.Text)
	}
	if selected {
		text = m.styles.selected.Render(t.Text)
	}
	return fmt.Sprintf("%s%s %s %s", cursor, indicator, check, text)
}

func (m Model) helpLine() string {
	if m.mode != modeList {
		return "enter save · esc cancel"
	}
	parts := []string{"a add", "p priority:" + string(m.priority), "space toggle", "e edit", "d delete", "y copy", "1-4 filter", "t theme"}
	if m.view.Stats.HasCompleted() {
		parts = append(parts, "c clear completed")
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " · ")
}
