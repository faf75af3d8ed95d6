// Package cli implements the interactive line-oriented front end. It reads
// one command at a time, prompts for the command's fields, calls the
// tracker service, and prints the result. Both error kinds coming back from
// the service are recoverable: a bad command prints a message and the loop
// continues.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/mwachs/todolist/internal/domain"
	"github.com/mwachs/todolist/internal/domain/task"
	"github.com/mwachs/todolist/internal/platform/telemetry"
	"github.com/mwachs/todolist/internal/ports"
)

const banner = "todolist - commands: new, editp, deletep, list, add, editt, deletet, status, tasks, help, exit"

// errInputClosed signals that the input stream ended mid-prompt. The loop
// treats it like an explicit exit.
var errInputClosed = fmt.Errorf("input closed")

// Runner drives the command loop. Input and output are injected so the
// loop is testable without a terminal.
type Runner struct {
	svc     ports.TrackerService
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewRunner creates a Runner. A nil logger is replaced with a discard
// logger and nil metrics with a no-op bundle.
func NewRunner(svc ports.TrackerService, in io.Reader, out io.Writer, logger *slog.Logger, metrics *telemetry.Metrics) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &Runner{
		svc:     svc,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		metrics: metrics,
	}
}

// Run processes commands until exit, end of input, or context
// cancellation. Commands run one at a time to completion; cancellation is
// observed between commands, not during a blocking read.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, banner)

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "bye")
			return nil
		}

		fmt.Fprint(r.out, "\n> ")
		line, ok := r.readLine()
		if !ok {
			fmt.Fprintln(r.out, "bye")
			return nil
		}

		cmd := strings.ToLower(strings.TrimSpace(line))
		switch cmd {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(r.out, "bye")
			return nil
		}

		start := time.Now()
		err := r.dispatch(ctx, cmd)
		r.observe(ctx, cmd, time.Since(start), err)

		if err != nil {
			if err == errInputClosed {
				fmt.Fprintln(r.out, "bye")
				return nil
			}
			fmt.Fprintf(r.out, "error: %s\n", userMessage(err))
		}
	}
}

// dispatch routes one command to its handler. Unknown commands are not
// errors; they print a hint and keep the loop going.
func (r *Runner) dispatch(ctx context.Context, cmd string) error {
	switch cmd {
	case "new":
		return r.createProject(ctx)
	case "editp":
		return r.editProject(ctx)
	case "deletep":
		return r.deleteProject(ctx)
	case "list":
		return r.listProjects(ctx)
	case "add":
		return r.addTask(ctx)
	case "editt":
		return r.editTask(ctx)
	case "deletet":
		return r.deleteTask(ctx)
	case "status":
		return r.setTaskStatus(ctx)
	case "tasks":
		return r.listTasks(ctx)
	case "help":
		fmt.Fprintln(r.out, banner)
		return nil
	default:
		fmt.Fprintf(r.out, "unknown command %q (type help for commands)\n", cmd)
		return nil
	}
}

func (r *Runner) createProject(ctx context.Context) error {
	name, err := r.prompt("Project name: ")
	if err != nil {
		return err
	}
	desc, err := r.prompt("Description (optional): ")
	if err != nil {
		return err
	}

	p, err := r.svc.CreateProject(ctx, name, desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "project %q created (ID=%d)\n", p.Name, p.ID)
	return nil
}

func (r *Runner) editProject(ctx context.Context) error {
	id, err := r.promptID("Project ID: ")
	if err != nil {
		return err
	}
	upd := ports.ProjectUpdate{}
	if err := r.promptOptional("New name (leave empty to keep): ", &upd.Name); err != nil {
		return err
	}
	if err := r.promptOptional("New description (leave empty to keep): ", &upd.Description); err != nil {
		return err
	}

	p, err := r.svc.EditProject(ctx, id, upd)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "project %q updated\n", p.Name)
	return nil
}

func (r *Runner) deleteProject(ctx context.Context) error {
	id, err := r.promptID("Project ID: ")
	if err != nil {
		return err
	}
	if err := r.svc.DeleteProject(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "project deleted")
	return nil
}

func (r *Runner) listProjects(ctx context.Context) error {
	projects, err := r.svc.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(r.out, "no projects yet")
		return nil
	}
	for i := range projects {
		fmt.Fprintln(r.out, renderProject(&projects[i]))
	}
	return nil
}

func (r *Runner) addTask(ctx context.Context) error {
	id, err := r.promptID("Project ID: ")
	if err != nil {
		return err
	}
	title, err := r.prompt("Task title: ")
	if err != nil {
		return err
	}
	desc, err := r.prompt("Description (optional): ")
	if err != nil {
		return err
	}
	deadline, err := r.prompt("Deadline (YYYY-MM-DD, optional): ")
	if err != nil {
		return err
	}

	t, err := r.svc.AddTask(ctx, id, title, desc, deadline)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "task %q (ID=%d) added to project %d\n", t.Title, t.ID, id)
	return nil
}

func (r *Runner) editTask(ctx context.Context) error {
	pid, err := r.promptID("Project ID: ")
	if err != nil {
		return err
	}
	tid, err := r.promptID("Task ID: ")
	if err != nil {
		return err
	}
	upd := ports.TaskUpdate{}
	if err := r.promptOptional("New title (leave empty to keep): ", &upd.Title); err != nil {
		return err
	}
	if err := r.promptOptional("New description (leave empty to keep): ", &upd.Description); err != nil {
		return err
	}
	if err := r.promptOptional("New deadline (YYYY-MM-DD, leave empty to keep): ", &upd.Deadline); err != nil {
		return err
	}

	t, err := r.svc.EditTask(ctx, pid, tid, upd)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "task %q updated\n", t.Title)
	return nil
}

func (r *Runner) deleteTask(ctx context.Context) error {
	pid, err := r.promptID("Project ID: ")
	if err != nil {
		return err
	}
	tid, err := r.promptID("Task ID: ")
	if err != nil {
		return err
	}
	if err := r.svc.DeleteTask(ctx, pid, tid); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "task deleted")
	return nil
}

func (r *Runner) setTaskStatus(ctx context.Context) error {
	pid, err := r.promptID("Project ID: ")
	if err != nil {
		return err
	}
	tid, err := r.promptID("Task ID: ")
	if err != nil {
		return err
	}
	raw, err := r.prompt("New status (todo/doing/done): ")
	if err != nil {
		return err
	}
	status := task.Status(strings.ToLower(strings.TrimSpace(raw)))

	t, err := r.svc.SetTaskStatus(ctx, pid, tid, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "task %q is now %s\n", t.Title, t.Status)
	return nil
}

func (r *Runner) listTasks(ctx context.Context) error {
	pid, err := r.promptID("Project ID: ")
	if err != nil {
		return err
	}
	tasks, err := r.svc.ListTasks(ctx, pid)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, "no tasks in this project")
		return nil
	}
	for i := range tasks {
		fmt.Fprintln(r.out, renderTask(&tasks[i]))
	}
	return nil
}

// prompt prints a label and reads one line of input.
// Returns errInputClosed when the input stream ends.
func (r *Runner) prompt(label string) (string, error) {
	fmt.Fprint(r.out, label)
	line, ok := r.readLine()
	if !ok {
		return "", errInputClosed
	}
	return line, nil
}

// promptOptional reads one line and stores a pointer to it in dst when the
// trimmed answer is non-empty. An empty answer leaves dst nil ("keep").
func (r *Runner) promptOptional(label string, dst **string) error {
	raw, err := r.prompt(label)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	*dst = &raw
	return nil
}

// promptID reads one line and parses it as a positive integer ID.
func (r *Runner) promptID(label string) (int64, error) {
	raw, err := r.prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"id": "must be a valid integer"},
		}
	}
	return id, nil
}

func (r *Runner) readLine() (string, bool) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			r.logger.Error("reading input", slog.Any("error", err))
		}
		return "", false
	}
	return r.in.Text(), true
}

// observe counts one processed command and records its duration.
func (r *Runner) observe(ctx context.Context, cmd string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrCommand.String(cmd),
		telemetry.AttrResult.String(result),
	)
	r.metrics.CommandTotal.Add(ctx, 1, attrs)
	r.metrics.CommandDuration.Record(ctx, elapsed.Seconds(), attrs)
}
