// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the in-memory store. The tracker
// service enforces limits and validation before any state change commits.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/mwachs/todolist/internal/domain"
	"github.com/mwachs/todolist/internal/domain/project"
	"github.com/mwachs/todolist/internal/domain/task"
	"github.com/mwachs/todolist/internal/platform/telemetry"
	"github.com/mwachs/todolist/internal/ports"
	"github.com/mwachs/todolist/internal/store"
)

// Compile-time check that TrackerService implements ports.TrackerService.
var _ ports.TrackerService = (*TrackerService)(nil)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Limits is the configuration snapshot handed to the service at
// construction: the maximum number of live projects and the maximum number
// of live tasks within a single project.
type Limits struct {
	MaxProjects int
	MaxTasks    int
}

// TrackerService implements ports.TrackerService over the in-memory store.
// All mutations follow validate-then-commit ordering: a precondition
// failure surfaces to the caller with no partial state change.
type TrackerService struct {
	store   *store.Memory
	limits  Limits
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewTrackerService creates a TrackerService. A nil logger is replaced with
// a discard logger and nil metrics with a no-op bundle, so both are always
// safe to use.
func NewTrackerService(st *store.Memory, limits Limits, logger *slog.Logger, metrics *telemetry.Metrics) *TrackerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &TrackerService{
		store:   st,
		limits:  limits,
		logger:  logger,
		metrics: metrics,
	}
}

// CreateProject validates and creates a new project, returning the created
// entity with its assigned global ID.
func (s *TrackerService) CreateProject(ctx context.Context, name, description string) (_ *project.Project, err error) {
	defer func() { s.record(ctx, "CreateProject", err) }()

	s.logger.InfoContext(ctx, "creating project", slog.String("name", name))

	if s.store.Len() >= s.limits.MaxProjects {
		err = fmt.Errorf("%w: max %d live projects", domain.ErrProjectLimit, s.limits.MaxProjects)
		return nil, err
	}

	now := time.Now()
	candidate := project.Project{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = candidate.Validate(); err != nil {
		return nil, err
	}
	if s.store.NameInUse(candidate.Name, 0) {
		err = &domain.ValidationError{Fields: map[string]string{
			"name": "must be unique among live projects",
		}}
		return nil, err
	}

	created := s.store.Insert(candidate)

	s.logger.InfoContext(ctx, "project created",
		slog.Int64("id", created.ID),
		slog.String("name", created.Name),
	)
	return &created, nil
}

// EditProject applies a partial update to an existing project. Nil fields
// in upd retain their prior value; a new name is re-validated for
// uniqueness against the other live projects.
func (s *TrackerService) EditProject(ctx context.Context, id int64, upd ports.ProjectUpdate) (_ *project.Project, err error) {
	defer func() { s.record(ctx, "EditProject", err) }()

	s.logger.InfoContext(ctx, "updating project", slog.Int64("id", id))

	current, ok := s.store.Get(id)
	if !ok {
		err = fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		return nil, err
	}

	candidate := current
	if upd.Name != nil {
		candidate.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Description != nil {
		candidate.Description = strings.TrimSpace(*upd.Description)
	}

	if err = candidate.Validate(); err != nil {
		return nil, err
	}
	if upd.Name != nil && s.store.NameInUse(candidate.Name, id) {
		err = &domain.ValidationError{Fields: map[string]string{
			"name": "must be unique among live projects",
		}}
		return nil, err
	}

	candidate.UpdatedAt = time.Now()
	s.store.Put(candidate)

	return &candidate, nil
}

// DeleteProject deletes a project and all of its tasks as a single logical
// operation: no task from the project is observable afterward.
func (s *TrackerService) DeleteProject(ctx context.Context, id int64) (err error) {
	defer func() { s.record(ctx, "DeleteProject", err) }()

	s.logger.InfoContext(ctx, "deleting project", slog.Int64("id", id))

	if !s.store.Delete(id) {
		err = fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		return err
	}
	return nil
}

// ListProjects returns all live projects in creation (ID) order.
func (s *TrackerService) ListProjects(ctx context.Context) (_ []project.Project, err error) {
	defer func() { s.record(ctx, "ListProjects", err) }()

	return s.store.List(), nil
}

// AddTask validates and creates a new task within the specified project.
// The task ID is local to the project and status defaults to todo.
func (s *TrackerService) AddTask(ctx context.Context, projectID int64, title, description, deadline string) (_ *task.Task, err error) {
	defer func() { s.record(ctx, "AddTask", err) }()

	s.logger.InfoContext(ctx, "adding task", slog.Int64("project_id", projectID))

	count, ok := s.store.TaskCount(projectID)
	if !ok {
		err = fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
		return nil, err
	}
	if count >= s.limits.MaxTasks {
		err = fmt.Errorf("%w: max %d tasks per project", domain.ErrTaskLimit, s.limits.MaxTasks)
		return nil, err
	}

	now := time.Now()
	candidate := task.Task{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Deadline:    strings.TrimSpace(deadline),
		Status:      task.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = candidate.Validate(); err != nil {
		return nil, err
	}

	created, _ := s.store.InsertTask(projectID, candidate)

	s.logger.InfoContext(ctx, "task added",
		slog.Int64("project_id", projectID),
		slog.Int64("task_id", created.ID),
	)
	return &created, nil
}

// EditTask applies a partial update to an existing task. Nil fields in upd
// retain their prior value; a non-nil empty deadline clears it.
func (s *TrackerService) EditTask(ctx context.Context, projectID, taskID int64, upd ports.TaskUpdate) (_ *task.Task, err error) {
	defer func() { s.record(ctx, "EditTask", err) }()

	s.logger.InfoContext(ctx, "updating task",
		slog.Int64("project_id", projectID),
		slog.Int64("task_id", taskID),
	)

	current, err := s.getTask(projectID, taskID)
	if err != nil {
		return nil, err
	}

	candidate := current
	if upd.Title != nil {
		candidate.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		candidate.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Deadline != nil {
		candidate.Deadline = strings.TrimSpace(*upd.Deadline)
	}
	if upd.Status != nil {
		candidate.Status = *upd.Status
	}

	if err = candidate.Validate(); err != nil {
		return nil, err
	}

	candidate.UpdatedAt = time.Now()
	s.store.PutTask(projectID, candidate)

	return &candidate, nil
}

// SetTaskStatus updates only the status of an existing task.
func (s *TrackerService) SetTaskStatus(ctx context.Context, projectID, taskID int64, status task.Status) (_ *task.Task, err error) {
	defer func() { s.record(ctx, "SetTaskStatus", err) }()

	s.logger.InfoContext(ctx, "setting task status",
		slog.Int64("project_id", projectID),
		slog.Int64("task_id", taskID),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		err = &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", status),
		}}
		return nil, err
	}

	current, err := s.getTask(projectID, taskID)
	if err != nil {
		return nil, err
	}

	current.Status = status
	current.UpdatedAt = time.Now()
	s.store.PutTask(projectID, current)

	return &current, nil
}

// DeleteTask removes a task from its project. Its local ID is never
// reassigned within that project.
func (s *TrackerService) DeleteTask(ctx context.Context, projectID, taskID int64) (err error) {
	defer func() { s.record(ctx, "DeleteTask", err) }()

	s.logger.InfoContext(ctx, "deleting task",
		slog.Int64("project_id", projectID),
		slog.Int64("task_id", taskID),
	)

	if _, ok := s.store.Get(projectID); !ok {
		err = fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
		return err
	}
	if !s.store.DeleteTask(projectID, taskID) {
		err = fmt.Errorf("task %d in project %d: %w", taskID, projectID, domain.ErrNotFound)
		return err
	}
	return nil
}

// ListTasks returns the project's tasks in creation order.
func (s *TrackerService) ListTasks(ctx context.Context, projectID int64) (_ []task.Task, err error) {
	defer func() { s.record(ctx, "ListTasks", err) }()

	tasks, ok := s.store.ListTasks(projectID)
	if !ok {
		err = fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
		return nil, err
	}
	return tasks, nil
}

// getTask resolves a task, distinguishing a missing project from a missing
// task in the returned error.
func (s *TrackerService) getTask(projectID, taskID int64) (task.Task, error) {
	if _, ok := s.store.Get(projectID); !ok {
		return task.Task{}, fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}
	t, ok := s.store.GetTask(projectID, taskID)
	if !ok {
		return task.Task{}, fmt.Errorf("task %d in project %d: %w", taskID, projectID, domain.ErrNotFound)
	}
	return t, nil
}

// record counts one completed operation, labeled by name and outcome.
func (s *TrackerService) record(ctx context.Context, op string, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	s.metrics.OperationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}
