// Package store provides the in-memory storage authority for projects and
// tasks. It owns ID allocation (global for projects, per-project for tasks)
// and cascade removal, but enforces no business rules: validation and limit
// checks belong to the application layer. State lives only for the process
// lifetime.
package store

import (
	"strings"

	"github.com/mwachs/todolist/internal/domain/project"
	"github.com/mwachs/todolist/internal/domain/task"
)

// record pairs a stored project with its task-ID counter. Keeping the
// counter here guarantees local IDs are never reused within a project,
// even after every task in it has been deleted.
type record struct {
	project    project.Project
	nextTaskID int64
}

// Memory is the single in-memory store for all projects and tasks. It is
// built for a single logical caller at a time; a multi-caller environment
// must serialize access at the boundary.
type Memory struct {
	records       map[int64]*record
	order         []int64 // project IDs in creation order
	nextProjectID int64
}

// New creates an empty store.
func New() *Memory {
	return &Memory{
		records:       make(map[int64]*record),
		nextProjectID: 1,
	}
}

// Len returns the number of live projects.
func (m *Memory) Len() int {
	return len(m.records)
}

// NameInUse reports whether a live project other than excludeID already
// uses the given name. Comparison is case-insensitive.
func (m *Memory) NameInUse(name string, excludeID int64) bool {
	for _, id := range m.order {
		if id == excludeID {
			continue
		}
		if strings.EqualFold(m.records[id].project.Name, name) {
			return true
		}
	}
	return false
}

// Insert stores a new project, assigning the next global ID. Global IDs
// increase monotonically and are never reused, even after deletion.
// Returns a copy of the stored project.
func (m *Memory) Insert(p project.Project) project.Project {
	p.ID = m.nextProjectID
	m.nextProjectID++

	m.records[p.ID] = &record{project: p, nextTaskID: 1}
	m.order = append(m.order, p.ID)
	return cloneProject(p)
}

// Get returns a copy of the project with the given ID.
func (m *Memory) Get(id int64) (project.Project, bool) {
	rec, ok := m.records[id]
	if !ok {
		return project.Project{}, false
	}
	return cloneProject(rec.project), true
}

// Put replaces the metadata (name, description, timestamps) of an existing
// project. The task collection and ID counters are untouched.
func (m *Memory) Put(p project.Project) bool {
	rec, ok := m.records[p.ID]
	if !ok {
		return false
	}
	rec.project.Name = p.Name
	rec.project.Description = p.Description
	rec.project.UpdatedAt = p.UpdatedAt
	return true
}

// Delete removes a project and all of its tasks. Task ownership is
// exclusive, so removing the record is the whole cascade: no task from the
// project is observable afterward.
func (m *Memory) Delete(id int64) bool {
	if _, ok := m.records[id]; !ok {
		return false
	}
	delete(m.records, id)
	for i, pid := range m.order {
		if pid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns copies of all live projects in creation order.
func (m *Memory) List() []project.Project {
	out := make([]project.Project, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, cloneProject(m.records[id].project))
	}
	return out
}

// TaskCount returns the number of live tasks in the given project.
func (m *Memory) TaskCount(projectID int64) (int, bool) {
	rec, ok := m.records[projectID]
	if !ok {
		return 0, false
	}
	return len(rec.project.Tasks), true
}

// InsertTask stores a new task under the given project, assigning the next
// local ID for that project. Returns a copy of the stored task, or false if
// the project does not exist.
func (m *Memory) InsertTask(projectID int64, t task.Task) (task.Task, bool) {
	rec, ok := m.records[projectID]
	if !ok {
		return task.Task{}, false
	}

	t.ID = rec.nextTaskID
	rec.nextTaskID++
	rec.project.Tasks = append(rec.project.Tasks, t)
	return t, true
}

// GetTask returns a copy of the task with the given local ID.
func (m *Memory) GetTask(projectID, taskID int64) (task.Task, bool) {
	rec, ok := m.records[projectID]
	if !ok {
		return task.Task{}, false
	}
	for i := range rec.project.Tasks {
		if rec.project.Tasks[i].ID == taskID {
			return rec.project.Tasks[i], true
		}
	}
	return task.Task{}, false
}

// PutTask replaces an existing task, matched by its local ID.
func (m *Memory) PutTask(projectID int64, t task.Task) bool {
	rec, ok := m.records[projectID]
	if !ok {
		return false
	}
	for i := range rec.project.Tasks {
		if rec.project.Tasks[i].ID == t.ID {
			rec.project.Tasks[i] = t
			return true
		}
	}
	return false
}

// DeleteTask removes a task from its project. The local ID counter is not
// rewound, so the ID is never reassigned.
func (m *Memory) DeleteTask(projectID, taskID int64) bool {
	rec, ok := m.records[projectID]
	if !ok {
		return false
	}
	for i := range rec.project.Tasks {
		if rec.project.Tasks[i].ID == taskID {
			rec.project.Tasks = append(rec.project.Tasks[:i], rec.project.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ListTasks returns copies of the project's tasks in creation order.
func (m *Memory) ListTasks(projectID int64) ([]task.Task, bool) {
	rec, ok := m.records[projectID]
	if !ok {
		return nil, false
	}
	out := make([]task.Task, len(rec.project.Tasks))
	copy(out, rec.project.Tasks)
	return out, true
}

// cloneProject copies a project including its task slice, so callers can
// never mutate stored state through a returned value.
func cloneProject(p project.Project) project.Project {
	if p.Tasks != nil {
		tasks := make([]task.Task, len(p.Tasks))
		copy(tasks, p.Tasks)
		p.Tasks = tasks
	}
	return p
}
