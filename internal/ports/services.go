package ports

import (
	"context"

	"github.com/mwachs/todolist/internal/domain/project"
	"github.com/mwachs/todolist/internal/domain/task"
)

// TrackerService defines the service port for project/task aggregate
// operations. Implemented by the application layer; called by inbound
// adapters (the CLI front end). Every mutating operation either fully
// applies or fully fails: validation happens before any state change.
type TrackerService interface {
	// CreateProject creates a new project and returns the created entity
	// with its assigned global ID.
	// Returns domain.ErrProjectLimit when the live-project limit is reached.
	// Returns domain.ErrValidation for an invalid or duplicate name.
	CreateProject(ctx context.Context, name, description string) (*project.Project, error)

	// EditProject applies a partial update to an existing project.
	// Nil fields in upd keep their prior value.
	// Returns domain.ErrNotFound if the project does not exist.
	// Returns domain.ErrValidation for an invalid or duplicate new name.
	EditProject(ctx context.Context, id int64, upd ProjectUpdate) (*project.Project, error)

	// DeleteProject deletes a project and, as a single logical operation,
	// all of its tasks.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id int64) error

	// ListProjects returns all live projects in creation (ID) order, with
	// their tasks populated.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// AddTask creates a new task within the specified project. The task ID
	// is scoped to that project, starting at 1. Status defaults to todo.
	// Returns domain.ErrNotFound if the project does not exist.
	// Returns domain.ErrTaskLimit when the per-project task limit is reached.
	// Returns domain.ErrValidation for invalid title/description/deadline.
	AddTask(ctx context.Context, projectID int64, title, description, deadline string) (*task.Task, error)

	// EditTask applies a partial update to an existing task.
	// Nil fields in upd keep their prior value.
	// Returns domain.ErrNotFound if the project or task does not exist.
	EditTask(ctx context.Context, projectID, taskID int64, upd TaskUpdate) (*task.Task, error)

	// SetTaskStatus updates only the status of an existing task. This is a
	// narrower alternative to EditTask kept as its own operation because it
	// is a distinct user-facing action with its own validation path.
	// Returns domain.ErrNotFound if the project or task does not exist.
	// Returns domain.ErrValidation for an unknown status value.
	SetTaskStatus(ctx context.Context, projectID, taskID int64, status task.Status) (*task.Task, error)

	// DeleteTask removes a task from its project. The local ID is never
	// reassigned within that project.
	// Returns domain.ErrNotFound if the project or task does not exist.
	DeleteTask(ctx context.Context, projectID, taskID int64) error

	// ListTasks returns the project's tasks in creation order.
	// Returns domain.ErrNotFound if the project does not exist.
	ListTasks(ctx context.Context, projectID int64) ([]task.Task, error)
}

// ProjectUpdate carries optional replacement values for EditProject.
// Nil means "keep the current value".
type ProjectUpdate struct {
	Name        *string
	Description *string
}

// TaskUpdate carries optional replacement values for EditTask.
// Nil means "keep the current value". A non-nil empty Deadline clears
// the deadline.
type TaskUpdate struct {
	Title       *string
	Description *string
	Deadline    *string
	Status      *task.Status
}
