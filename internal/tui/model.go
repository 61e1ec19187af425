// Package tui is the interactive terminal front end for a tasklist.Store.
//
// The model never keeps task data between frames: after every key that
// mutates the store it re-projects the store into a fresh tasklist.View.
// The cursor is bound to a task id, so re-sorting never moves the selection
// to a different task.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fmizzell/tasklist"
	"github.com/fmizzell/tasklist/internal/logger"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Model is the bubbletea model driving a Store
type Model struct {
	ctx    context.Context
	store  *tasklist.Store
	themes tasklist.ThemeStore
	copy   func(string) error

	view       tasklist.View
	selectedID int64
	cursor     int

	mode     mode
	input    textinput.Model
	editID   int64
	editOrig string
	priority tasklist.Priority

	dark   bool
	styles styles
	status string
}

// Option configures a Model
type Option func(*Model)

// WithClipboard replaces the system clipboard writer
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		if fn != nil {
			m.copy = fn
		}
	}
}

// WithPriority sets the priority preselected for new tasks
func WithPriority(p tasklist.Priority) Option {
	return func(m *Model) {
		if p.Valid() {
			m.priority = p
		}
	}
}

// New builds a model over store. themes may be nil, in which case the theme is not persisted.
func New(ctx context.Context, store *tasklist.Store, themes tasklist.ThemeStore, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		ctx:      ctx,
		store:    store,
		themes:   themes,
		copy:     clipboard.WriteAll,
		input:    ti,
		priority: tasklist.PriorityMedium,
		status:   "Press 'a' to add, space to toggle, 'e' to edit, 'd' to delete.",
	}
	for _, opt := range opts {
		opt(&m)
	}

	if themes != nil {
		dark, err := themes.LoadDarkTheme(ctx)
		if err != nil {
			logger.FromContext(ctx).Warn("tui: loading theme failed", "error", err)
		}
		m.dark = dark
	}
	m.styles = newStyles(m.dark)
	m.refresh()
	return m
}

// Run starts the interactive program and blocks until the user quits
func Run(ctx context.Context, store *tasklist.Store, themes tasklist.ThemeStore, opts ...Option) error {
	program := tea.NewProgram(New(ctx, store, themes, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		default:
			return m.updateListMode(msg.String())
		}
	case tea.WindowSizeMsg:
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.status = fmt.Sprintf("New %s priority task. Tab cycles priority.", m.priority)
		return m, m.input.Focus()
	case "p":
		m.priority = nextPriority(m.priority)
		m.status = fmt.Sprintf("New tasks get %s priority", m.priority)
	case " ", "x":
		if task, ok := m.selected(); ok {
			m.report(m.store.Toggle(m.ctx, task.ID))
		}
	case "d":
		if task, ok := m.selected(); ok {
			if _, err := m.store.Delete(m.ctx, task.ID); err != nil {
				m.status = fmt.Sprintf("save failed: %v", err)
			} else {
				m.status = fmt.Sprintf("Deleted %q", task.Text)
			}
		}
	case "e":
		if task, ok := m.selected(); ok {
			m.mode = modeEdit
			m.editID = task.ID
			m.editOrig = task.Text
			m.input.SetValue(task.Text)
			m.input.CursorEnd()
			m.status = "Editing. Enter saves, Esc cancels."
			return m, m.input.Focus()
		}
	case "c":
		n, err := m.store.ClearCompleted(m.ctx)
		if err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else if n > 0 {
			m.status = fmt.Sprintf("Cleared %d completed", n)
		}
	case "1", "2", "3", "4":
		f := tasklist.Filters[int(key[0]-'1')]
		if err := m.store.SetFilter(f); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("Showing %s", f)
		}
	case "t":
		m.toggleTheme()
	case "y":
		if task, ok := m.selected(); ok {
			if err := m.copy(task.Text); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = "Copied to clipboard"
			}
		}
	}
	m.refresh()
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		m.input.SetValue("")
		m.status = "Cancelled"
		return m, nil
	case "tab":
		m.priority = nextPriority(m.priority)
		m.status = fmt.Sprintf("New %s priority task. Tab cycles priority.", m.priority)
		return m, nil
	case "enter":
		task, ok, err := m.store.Add(m.ctx, m.input.Value(), m.priority)
		switch {
		case err != nil:
			m.status = fmt.Sprintf("save failed: %v", err)
		case !ok:
			// Blank input: stay in add mode
			m.status = "Task text cannot be empty"
			return m, nil
		default:
			m.selectedID = task.ID
			m.status = fmt.Sprintf("Added %q", task.Text)
		}
		m.input.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.finishEdit("Edit cancelled")
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" || text == m.editOrig {
			// Nothing to write; the old text stays on screen
			m.finishEdit("Unchanged")
			return m, nil
		}
		if _, err := m.store.Edit(m.ctx, m.editID, text); err != nil {
			m.finishEdit(fmt.Sprintf("save failed: %v", err))
		} else {
			m.finishEdit("Saved")
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) finishEdit(status string) {
	m.mode = modeList
	m.input.Blur()
	m.input.SetValue("")
	m.editID = 0
	m.editOrig = ""
	m.status = status
}

func (m *Model) toggleTheme() {
	m.dark = !m.dark
	m.styles = newStyles(m.dark)
	if m.themes == nil {
		return
	}
	if err := m.themes.SaveDarkTheme(m.ctx, m.dark); err != nil {
		m.status = fmt.Sprintf("saving theme failed: %v", err)
	}
}

func (m *Model) report(_ bool, err error) {
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
}

// refresh re-projects the store and rebinds the cursor to the selected id
func (m *Model) refresh() {
	m.view = m.store.View()
	if len(m.view.Tasks) == 0 {
		m.cursor = 0
		m.selectedID = 0
		return
	}

	for i, t := range m.view.Tasks {
		if t.ID == m.selectedID {
			m.cursor = i
			return
		}
	}

	// Selected task left the view: keep the cursor's position
	if m.cursor >= len(m.view.Tasks) {
		m.cursor = len(m.view.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.selectedID = m.view.Tasks[m.cursor].ID
}

func (m *Model) move(delta int) {
	if len(m.view.Tasks) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.view.Tasks) {
		m.cursor = len(m.view.Tasks) - 1
	}
	m.selectedID = m.view.Tasks[m.cursor].ID
}

func (m Model) selected() (tasklist.Task, bool) {
	if len(m.view.Tasks) == 0 {
		return tasklist.Task{}, false
	}
	return m.store.Task(m.selectedID)
}

func nextPriority(p tasklist.Priority) tasklist.Priority {
	for i, candidate := range tasklist.Priorities {
		if candidate == p {
			return tasklist.Priorities[(i+1)%len(tasklist.Priorities)]
		}
	}
	return tasklist.PriorityMedium
}
