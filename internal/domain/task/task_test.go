package task

import (
	"errors"
	"strings"
	"testing"

	"github.com/mwachs/todolist/internal/domain"
)

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{
			name:   "todo is valid",
			status: StatusTodo,
			want:   true,
		},
		{
			name:   "doing is valid",
			status: StatusDoing,
			want:   true,
		},
		{
			name:   "done is valid",
			status: StatusDone,
			want:   true,
		},
		{
			name:   "empty string is invalid",
			status: "",
			want:   false,
		},
		{
			name:   "unknown value is invalid",
			status: "blocked",
			want:   false,
		},
		{
			name:   "case sensitive",
			status: "Done",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "todo"},
		{StatusDoing, "doing"},
		{StatusDone, "done"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func validTask() Task {
	return Task{
		ID:          1,
		Title:       "Write report",
		Description: "Quarterly numbers",
		Deadline:    "2025-10-30",
		Status:      StatusTodo,
	}
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid task passes", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		if err := tk.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("empty deadline is allowed", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		tk.Deadline = ""
		if err := tk.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("blank title fails", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		tk.Title = "   "
		requireValidationField(t, tk.Validate(), "title")
	})

	t.Run("overlong title fails", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		tk.Title = strings.Repeat("x", MaxTitleLen+1)
		requireValidationField(t, tk.Validate(), "title")
	})

	t.Run("overlong description fails", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		tk.Description = strings.Repeat("x", MaxDescriptionLen+1)
		requireValidationField(t, tk.Validate(), "description")
	})

	t.Run("malformed deadline fails", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		tk.Deadline = "next tuesday"
		requireValidationField(t, tk.Validate(), "deadline")
	})

	t.Run("impossible calendar date fails", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		tk.Deadline = "2025-13-40"
		requireValidationField(t, tk.Validate(), "deadline")
	})

	t.Run("invalid status fails", func(t *testing.T) {
		t.Parallel()
		tk := validTask()
		tk.Status = "finished"
		requireValidationField(t, tk.Validate(), "status")
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tasks := []Task{
		{ID: 1, Status: StatusTodo},
		{ID: 2, Status: StatusDoing},
		{ID: 3, Status: StatusDone},
		{ID: 4, Status: StatusDone},
	}

	s := Summarize(tasks)
	if s.Todo != 1 || s.Doing != 1 || s.Done != 2 {
		t.Errorf("Summarize() = %+v, want 1 todo, 1 doing, 2 done", s)
	}
	if s.Total() != 4 {
		t.Errorf("Total() = %d, want 4", s.Total())
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	if s.Total() != 0 {
		t.Errorf("Summarize(nil).Total() = %d, want 0", s.Total())
	}
}
