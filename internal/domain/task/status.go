package task

// Status represents the completion state of a Task.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// IsValid returns true if the status is one of the defined constants.
// Matching is case-sensitive; callers accepting user input are expected
// to normalize before constructing a Status.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
