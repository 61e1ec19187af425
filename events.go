package tasklist

import "time"

// Event is a mutation applied to the store by a reducer
type Event interface {
	Type() string
	Timestamp() time.Time
}

// TaskAdded event
type TaskAdded struct {
	TaskID   int64
	Text     string
	Priority Priority
	Time     time.Time
}

func (e TaskAdded) Type() string         { return "task_added" }
func (e TaskAdded) Timestamp() time.Time { return e.Time }

// TaskToggled event
type TaskToggled struct {
	TaskID int64
	Time   time.Time
}

func (e TaskToggled) Type() string         { return "task_toggled" }
func (e TaskToggled) Timestamp() time.Time { return e.Time }

// TaskDeleted event
type TaskDeleted struct {
	TaskID int64
	Time   time.Time
}

func (e TaskDeleted) Type() string         { return "task_deleted" }
func (e TaskDeleted) Timestamp() time.Time { return e.Time }

// TaskEdited event
type TaskEdited struct {
	TaskID int64
	Text   string
	Time   time.Time
}

func (e TaskEdited) Type() string         { return "task_edited" }
func (e TaskEdited) Timestamp() time.Time { return e.Time }

// CompletedCleared event
type CompletedCleared struct {
	Time time.Time
}

func (e CompletedCleared) Type() string         { return "completed_cleared" }
func (e CompletedCleared) Timestamp() time.Time { return e.Time }
