package tasklist

// Reducers apply one event to the state and return how many tasks it affected.
// Zero means the event was a no-op and nothing needs to be saved.

// reduceTaskAdded handles TaskAdded events
func reduceTaskAdded(s *storeState, e TaskAdded) int {
	s.Tasks = append(s.Tasks, Task{
		ID:        e.TaskID,
		Text:      e.Text,
		Completed: false,
		Priority:  e.Priority,
		CreatedAt: e.Time,
	})
	return 1
}

// reduceTaskToggled handles TaskToggled events
func reduceTaskToggled(s *storeState, e TaskToggled) int {
	i := s.indexOf(e.TaskID)
	if i < 0 {
		return 0
	}
	s.Tasks[i].Completed = !s.Tasks[i].Completed
	return 1
}

// reduceTaskDeleted handles TaskDeleted events
func reduceTaskDeleted(s *storeState, e TaskDeleted) int {
	i := s.indexOf(e.TaskID)
	if i < 0 {
		return 0
	}
	s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
	return 1
}

// reduceTaskEdited handles TaskEdited events
func reduceTaskEdited(s *storeState, e TaskEdited) int {
	if e.Text == "" {
		return 0
	}
	i := s.indexOf(e.TaskID)
	if i < 0 {
		return 0
	}
	s.Tasks[i].Text = e.Text
	return 1
}

// reduceCompletedCleared handles CompletedCleared events
func reduceCompletedCleared(s *storeState, e CompletedCleared) int {
	kept := s.Tasks[:0]
	removed := 0
	for _, t := range s.Tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	// Zero the tail so removed tasks are not retained by the backing array
	for i := len(kept); i < len(s.Tasks); i++ {
		s.Tasks[i] = Task{}
	}
	s.Tasks = kept
	return removed
}
