package tasklist

import "time"

// DemoTasks returns the three tasks shown to a first-time user
func DemoTasks(now time.Time) []Task {
	return []Task{
		{ID: 1, Text: "Welcome to your new todo app! 🎉", Completed: false, Priority: PriorityHigh, CreatedAt: now},
		{ID: 2, Text: "Double-click any task to edit it", Completed: false, Priority: PriorityMedium, CreatedAt: now},
		{ID: 3, Text: "Click the checkbox to mark as complete", Completed: true, Priority: PriorityLow, CreatedAt: now},
	}
}

// SeedIfEmpty fills an empty store with the demo tasks without saving them.
// It reports whether seeding happened.
func SeedIfEmpty(s *Store, now time.Time) bool {
	if s.Len() > 0 {
		return false
	}
	s.Seed(DemoTasks(now))
	return true
}
