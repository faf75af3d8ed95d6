package cli

import (
	"errors"
	"fmt"

	"github.com/mwachs/todolist/internal/domain"
	"github.com/mwachs/todolist/internal/domain/project"
	"github.com/mwachs/todolist/internal/domain/task"
)

// renderProject formats one project line for the list command, including a
// per-status task summary.
func renderProject(p *project.Project) string {
	desc := p.Description
	if desc == "" {
		desc = "no description"
	}
	s := task.Summarize(p.Tasks)
	return fmt.Sprintf("[%d] %s - %s (%d tasks: %d todo, %d doing, %d done)",
		p.ID, p.Name, desc, s.Total(), s.Todo, s.Doing, s.Done)
}

// renderTask formats one task line for the tasks command.
func renderTask(t *task.Task) string {
	deadline := t.Deadline
	if deadline == "" {
		deadline = "-"
	}
	line := fmt.Sprintf("  [%d] %s (%s) due %s", t.ID, t.Title, t.Status, deadline)
	if t.Description != "" {
		line += ": " + t.Description
	}
	return line
}

// userMessage maps a service error to a user-facing message. Both error
// kinds (validation and operational) are recoverable and pass through
// verbatim; anything else is flagged as internal.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProjectLimit),
		errors.Is(err, domain.ErrTaskLimit):
		return err.Error()
	default:
		return "internal: " + err.Error()
	}
}
