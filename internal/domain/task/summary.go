package task

// Summary holds per-status task counts for a single project.
type Summary struct {
	Todo  int
	Doing int
	Done  int
}

// Total returns the number of tasks counted.
func (s Summary) Total() int {
	return s.Todo + s.Doing + s.Done
}

// Summarize counts the provided tasks by status.
func Summarize(tasks []Task) Summary {
	var s Summary
	for i := range tasks {
		switch tasks[i].Status {
		case StatusTodo:
			s.Todo++
		case StatusDoing:
			s.Doing++
		case StatusDone:
			s.Done++
		}
	}
	return s
}
