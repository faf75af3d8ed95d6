package project

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mwachs/todolist/internal/domain"
	"github.com/mwachs/todolist/internal/domain/task"
)

// Field length bounds, in runes.
const (
	MaxNameLen        = 50
	MaxDescriptionLen = 200
)

// Project is the top-level container owning zero or more tasks. The ID is
// global: assigned once at creation, monotonically increasing, never reused
// even after deletion. Tasks are held in creation order.
type Project struct {
	ID          int64
	Name        string
	Description string
	Tasks       []task.Task
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	} else if utf8.RuneCountInString(p.Name) > MaxNameLen {
		fields["name"] = fmt.Sprintf("must be at most %d characters", MaxNameLen)
	}
	if utf8.RuneCountInString(p.Description) > MaxDescriptionLen {
		fields["description"] = fmt.Sprintf("must be at most %d characters", MaxDescriptionLen)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
