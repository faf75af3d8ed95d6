package cli_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mwachs/todolist/internal/adapters/cli"
	"github.com/mwachs/todolist/internal/app"
	"github.com/mwachs/todolist/internal/store"
)

// runScript feeds the given lines to a fresh runner backed by a real
// service and returns everything it printed.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	svc := app.NewTrackerService(store.New(), app.Limits{MaxProjects: 10, MaxTasks: 100}, nil, nil)

	var out strings.Builder
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	runner := cli.NewRunner(svc, in, &out, nil, nil)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestRunner_Exit(t *testing.T) {
	t.Parallel()

	out := runScript(t, "exit")
	if !strings.Contains(out, "bye") {
		t.Errorf("output %q missing bye", out)
	}
}

func TestRunner_QuitAlias(t *testing.T) {
	t.Parallel()

	out := runScript(t, "quit")
	if !strings.Contains(out, "bye") {
		t.Errorf("output %q missing bye", out)
	}
}

func TestRunner_EndOfInputExitsGracefully(t *testing.T) {
	t.Parallel()

	// No exit command; the stream just ends.
	out := runScript(t, "list")
	if !strings.Contains(out, "no projects yet") {
		t.Errorf("output %q missing empty-list message", out)
	}
	if !strings.Contains(out, "bye") {
		t.Errorf("output %q missing bye after EOF", out)
	}
}

func TestRunner_EndOfInputMidPrompt(t *testing.T) {
	t.Parallel()

	// Stream ends while the new command is still prompting for fields.
	out := runScript(t, "new", "Demo")
	if !strings.Contains(out, "bye") {
		t.Errorf("output %q missing bye after EOF mid-prompt", out)
	}
	if strings.Contains(out, "error:") {
		t.Errorf("output %q reports an error for a plain EOF", out)
	}
}

func TestRunner_UnknownCommand(t *testing.T) {
	t.Parallel()

	out := runScript(t, "frobnicate", "exit")
	if !strings.Contains(out, `unknown command "frobnicate"`) {
		t.Errorf("output %q missing unknown-command hint", out)
	}
	if !strings.Contains(out, "bye") {
		t.Errorf("output %q missing bye, loop should survive unknown command", out)
	}
}

func TestRunner_CommandCaseInsensitive(t *testing.T) {
	t.Parallel()

	out := runScript(t, "  LIST  ", "exit")
	if !strings.Contains(out, "no projects yet") {
		t.Errorf("output %q, want LIST treated as list", out)
	}
}

func TestRunner_CreateAndList(t *testing.T) {
	t.Parallel()

	out := runScript(t,
		"new", "Demo", "a sample project",
		"list",
		"exit",
	)

	if !strings.Contains(out, `project "Demo" created (ID=1)`) {
		t.Errorf("output %q missing creation confirmation", out)
	}
	if !strings.Contains(out, "[1] Demo - a sample project (0 tasks: 0 todo, 0 doing, 0 done)") {
		t.Errorf("output %q missing project listing", out)
	}
}

func TestRunner_ListProjectWithoutDescription(t *testing.T) {
	t.Parallel()

	out := runScript(t,
		"new", "Bare", "",
		"list",
		"exit",
	)

	if !strings.Contains(out, "[1] Bare - no description") {
		t.Errorf("output %q missing placeholder description", out)
	}
}

func TestRunner_InvalidID(t *testing.T) {
	t.Parallel()

	out := runScript(t, "deletep", "abc", "exit")
	if !strings.Contains(out, "error: validation error: id: must be a valid integer") {
		t.Errorf("output %q missing invalid-ID error", out)
	}
	if !strings.Contains(out, "bye") {
		t.Errorf("output %q missing bye, loop should survive a bad ID", out)
	}
}

func TestRunner_ValidationErrorKeepsLoopAlive(t *testing.T) {
	t.Parallel()

	out := runScript(t,
		"new", "", "",
		"new", "Recovered", "",
		"exit",
	)

	if !strings.Contains(out, "error: validation error: name: is required") {
		t.Errorf("output %q missing validation error for blank name", out)
	}
	if !strings.Contains(out, `project "Recovered" created`) {
		t.Errorf("output %q, want later command to succeed after the error", out)
	}
}

func TestRunner_NotFoundError(t *testing.T) {
	t.Parallel()

	out := runScript(t, "tasks", "42", "exit")
	if !strings.Contains(out, "error: project 42: not found") {
		t.Errorf("output %q missing not-found error", out)
	}
}

func TestRunner_StatusLowercasesInput(t *testing.T) {
	t.Parallel()

	out := runScript(t,
		"new", "Demo", "",
		"add", "1", "Write report", "", "",
		"status", "1", "1", "DONE",
		"exit",
	)

	if !strings.Contains(out, `task "Write report" is now done`) {
		t.Errorf("output %q, want uppercase status accepted via lowercasing", out)
	}
}

func TestRunner_EndToEnd(t *testing.T) {
	t.Parallel()

	out := runScript(t,
		"new", "Demo", "",
		"add", "1", "Write report", "quarterly numbers", "2025-10-30",
		"tasks", "1",
		"status", "1", "1", "done",
		"tasks", "1",
		"deletep", "1",
		"tasks", "1",
		"exit",
	)

	if !strings.Contains(out, `task "Write report" (ID=1) added to project 1`) {
		t.Errorf("output %q missing task confirmation", out)
	}
	if !strings.Contains(out, "  [1] Write report (todo) due 2025-10-30: quarterly numbers") {
		t.Errorf("output %q missing initial task listing", out)
	}
	if !strings.Contains(out, "  [1] Write report (done) due 2025-10-30") {
		t.Errorf("output %q missing updated task listing", out)
	}
	if !strings.Contains(out, "project deleted") {
		t.Errorf("output %q missing deletion confirmation", out)
	}
	if !strings.Contains(out, "error: project 1: not found") {
		t.Errorf("output %q, want tasks after cascade delete to fail", out)
	}
}

func TestRunner_EditTaskKeepFields(t *testing.T) {
	t.Parallel()

	out := runScript(t,
		"new", "Demo", "",
		"add", "1", "Write report", "numbers", "2025-10-30",
		"editt", "1", "1", "Rewrite report", "", "",
		"tasks", "1",
		"exit",
	)

	if !strings.Contains(out, `task "Rewrite report" updated`) {
		t.Errorf("output %q missing edit confirmation", out)
	}
	if !strings.Contains(out, "  [1] Rewrite report (todo) due 2025-10-30: numbers") {
		t.Errorf("output %q, want empty answers to keep description and deadline", out)
	}
}

func TestRunner_TaskWithoutDeadline(t *testing.T) {
	t.Parallel()

	out := runScript(t,
		"new", "Demo", "",
		"add", "1", "Loose end", "", "",
		"tasks", "1",
		"exit",
	)

	if !strings.Contains(out, "  [1] Loose end (todo) due -") {
		t.Errorf("output %q, want dash placeholder for missing deadline", out)
	}
}

func TestRunner_CancelledContextStopsLoop(t *testing.T) {
	t.Parallel()

	svc := app.NewTrackerService(store.New(), app.Limits{MaxProjects: 10, MaxTasks: 100}, nil, nil)

	var out strings.Builder
	in := strings.NewReader("list\nlist\nexit\n")
	runner := cli.NewRunner(svc, in, &out, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runner.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "no projects yet") {
		t.Errorf("output %q, want no command processed after cancellation", out.String())
	}
	if !strings.Contains(out.String(), "bye") {
		t.Errorf("output %q missing bye", out.String())
	}
}
