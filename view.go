package tasklist

import "sort"

// Stats summarizes a task collection
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}

// HasCompleted reports whether there is anything for ClearCompleted to remove
func (s Stats) HasCompleted() bool {
	return s.Completed > 0
}

// View is everything a presentation layer needs to render one frame
type View struct {
	Filter Filter
	Tasks  []Task // filtered and in display order
	Stats  Stats  // over all tasks, not just the filtered ones
}

// Empty reports whether the filtered list has nothing to show
func (v View) Empty() bool {
	return len(v.Tasks) == 0
}

// Project filters tasks, sorts the selection for display and computes stats
func Project(tasks []Task, filter Filter) View {
	return View{
		Filter: filter,
		Tasks:  DisplayOrder(FilterTasks(tasks, filter)),
		Stats:  ComputeStats(tasks),
	}
}

// FilterTasks selects the tasks matching filter, keeping their relative order.
// An invalid filter selects nothing.
func FilterTasks(tasks []Task, filter Filter) []Task {
	selected := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, filter) {
			selected = append(selected, t)
		}
	}
	return selected
}

func matches(t Task, filter Filter) bool {
	switch filter {
	case FilterAll:
		return true
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterHigh:
		return t.Priority == PriorityHigh
	default:
		return false
	}
}

// DisplayOrder returns tasks sorted incomplete first, then by priority rank descending.
// The sort is stable and the input slice is left untouched.
func DisplayOrder(tasks []Task) []Task {
	sorted := cloneTasks(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return a.Priority.Rank() > b.Priority.Rank()
	})
	return sorted
}

// ComputeStats counts total, completed and active tasks
func ComputeStats(tasks []Task) Stats {
	var st Stats
	st.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Active = st.Total - st.Completed
	return st
}
