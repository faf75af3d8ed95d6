package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mwachs/todolist/internal/domain"
)

// Field length bounds, in runes.
const (
	MaxTitleLen       = 50
	MaxDescriptionLen = 200
)

// DeadlineLayout is the accepted calendar-date format for deadlines.
const DeadlineLayout = "2006-01-02"

// Task represents a unit of work owned by exactly one project. The ID is
// local to the owning project: it starts at 1, increases monotonically, and
// is never reused within that project even after deletion.
type Task struct {
	ID          int64
	Title       string
	Description string
	Deadline    string // empty means no deadline; otherwise DeadlineLayout
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	} else if utf8.RuneCountInString(t.Title) > MaxTitleLen {
		fields["title"] = fmt.Sprintf("must be at most %d characters", MaxTitleLen)
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLen {
		fields["description"] = fmt.Sprintf("must be at most %d characters", MaxDescriptionLen)
	}
	if t.Deadline != "" {
		if _, err := time.Parse(DeadlineLayout, t.Deadline); err != nil {
			fields["deadline"] = fmt.Sprintf("must be a valid %s date", "YYYY-MM-DD")
		}
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
