package tasklist

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidFilter   = errors.New("invalid filter")
)

// Priority tags a task as high, medium or low
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority from highest to lowest rank
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank orders priorities for display: high=3, medium=2, low=1, unknown=0
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// ParsePriority converts user input into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Filter restricts which tasks a view shows
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterHigh      Filter = "high"
)

// Filters lists every filter in the order the UI offers them
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted, FilterHigh}

// Valid reports whether f is one of the known filters
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted, FilterHigh:
		return true
	}
	return false
}

// ParseFilter converts user input into a Filter.
// Unknown names are rejected instead of falling back to "all".
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return f, nil
}

// Task represents a single to-do item
type Task struct {
	ID        int64     `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Completed bool      `json:"completed" yaml:"completed"`
	Priority  Priority  `json:"priority" yaml:"priority"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// storeState holds the tasks in insertion order plus the current filter
type storeState struct {
	Tasks  []Task
	Filter Filter
}

// indexOf returns the position of the task with the given id, or -1
func (s *storeState) indexOf(id int64) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
