package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"smart-task-parser/internal/extraction"
	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task"
	"smart-task-parser/internal/task/repository"
	"smart-task-parser/internal/task/repository/memory"
	"smart-task-parser/pkg/datemath"
	"smart-task-parser/pkg/log"
)

var testNow = time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC)

type fixture struct {
	uc       *implUseCase
	ext      *stubExtraction
	calendar *stubCalendar
	repo     repository.Repository
	logger   *mockLogger
}

func newFixture(t *testing.T, outcome extraction.Outcome, withCalendar bool) fixture {
	t.Helper()
	dates, err := datemath.NewParserWithClock("UTC", datemath.FixedClock(testNow))
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}
	repo, err := memory.New(log.NewNop(), 10)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}

	f := fixture{
		ext:    &stubExtraction{outcome: outcome},
		repo:   repo,
		logger: &mockLogger{},
	}
	var cal Calendar
	if withCalendar {
		f.calendar = &stubCalendar{link: "https://calendar.google.com/event?eid=1"}
		cal = f.calendar
	}

	uc := New(f.logger, f.ext, repo, cal, "team", dates).(*implUseCase)
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	f.uc = uc
	return f
}

func dueAt(hour, minute int) *time.Time {
	t := time.Date(2026, 10, 15, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestParse(t *testing.T) {
	parsed := model.ParsedTask{TaskName: "Call John", Assignee: "John", Priority: model.PriorityHigh}

	t.Run("Model source", func(t *testing.T) {
		f := newFixture(t, extraction.Outcome{Task: parsed, Source: extraction.SourceModel}, false)

		out, err := f.uc.Parse(context.Background(), task.ParseInput{Text: "call John asap"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task != parsed || out.Source != extraction.SourceModel || out.Notice != "" {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(f.ext.inputs) != 1 || f.ext.inputs[0] != "call John asap" {
			t.Errorf("extractor inputs = %v", f.ext.inputs)
		}
	})

	t.Run("Fallback notice", func(t *testing.T) {
		f := newFixture(t, extraction.Outcome{Task: parsed, Source: extraction.SourceRules, Reason: extraction.ErrTransport}, false)

		out, err := f.uc.Parse(context.Background(), task.ParseInput{Text: "call John"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Notice != extraction.FallbackNotice || out.Source != extraction.SourceRules {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Blank input", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t"} {
			f := newFixture(t, extraction.Outcome{}, false)
			if _, err := f.uc.Parse(context.Background(), task.ParseInput{Text: text}); !errors.Is(err, task.ErrEmptyInput) {
				t.Errorf("Parse(%q) error = %v, want ErrEmptyInput", text, err)
			}
			if len(f.ext.inputs) != 0 {
				t.Errorf("extractor called for blank input %q", text)
			}
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("With due date and calendar", func(t *testing.T) {
		parsed := model.ParsedTask{TaskName: "Team meeting", DueDate: dueAt(14, 0), Priority: model.PriorityMedium}
		f := newFixture(t, extraction.Outcome{Task: parsed, Source: extraction.SourceModel}, true)

		out, err := f.uc.Create(context.Background(), task.CreateInput{Text: "Team meeting tomorrow 2pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID != "task-1" || out.Task.TaskName != "Team meeting" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		if !out.Task.CreatedAt.Equal(testNow) || !out.Task.UpdatedAt.Equal(testNow) {
			t.Errorf("timestamps = %v / %v", out.Task.CreatedAt, out.Task.UpdatedAt)
		}
		if out.Task.CalendarLink != f.calendar.link {
			t.Errorf("CalendarLink = %q", out.Task.CalendarLink)
		}

		if len(f.calendar.reqs) != 1 {
			t.Fatalf("calendar calls = %d", len(f.calendar.reqs))
		}
		req := f.calendar.reqs[0]
		if req.CalendarID != "team" || req.Summary != "Team meeting" || req.Timezone != "UTC" {
			t.Errorf("unexpected request: %+v", req)
		}
		if !req.EndTime.Equal(*dueAt(14, 0)) || !req.StartTime.Equal(*dueAt(13, 30)) {
			t.Errorf("event range = %v - %v", req.StartTime, req.EndTime)
		}

		stored, err := f.repo.GetTask(context.Background(), "task-1")
		if err != nil {
			t.Fatalf("task not stored: %v", err)
		}
		if stored.CalendarLink != f.calendar.link {
			t.Errorf("stored link = %q", stored.CalendarLink)
		}
	})

	t.Run("Without due date skips calendar", func(t *testing.T) {
		parsed := model.ParsedTask{TaskName: "Pay rent", Priority: model.PriorityMedium}
		f := newFixture(t, extraction.Outcome{Task: parsed, Source: extraction.SourceRules}, true)

		out, err := f.uc.Create(context.Background(), task.CreateInput{Text: "Pay rent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.calendar.reqs) != 0 || out.Task.CalendarLink != "" {
			t.Errorf("calendar should not be called: %+v", f.calendar.reqs)
		}
		if out.Notice != extraction.FallbackNotice {
			t.Errorf("Notice = %q", out.Notice)
		}
	})

	t.Run("Calendar failure is non-fatal", func(t *testing.T) {
		parsed := model.ParsedTask{TaskName: "Team meeting", DueDate: dueAt(14, 0), Priority: model.PriorityMedium}
		f := newFixture(t, extraction.Outcome{Task: parsed, Source: extraction.SourceModel}, true)
		f.calendar.err = errCalendarDown

		out, err := f.uc.Create(context.Background(), task.CreateInput{Text: "Team meeting tomorrow 2pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.CalendarLink != "" {
			t.Errorf("CalendarLink = %q", out.Task.CalendarLink)
		}
		if len(f.logger.warnMessages) != 1 {
			t.Errorf("expected one warning, got %v", f.logger.warnMessages)
		}
	})

	t.Run("No calendar configured", func(t *testing.T) {
		parsed := model.ParsedTask{TaskName: "Team meeting", DueDate: dueAt(14, 0), Priority: model.PriorityMedium}
		f := newFixture(t, extraction.Outcome{Task: parsed, Source: extraction.SourceModel}, false)

		out, err := f.uc.Create(context.Background(), task.CreateInput{Text: "Team meeting"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.CalendarLink != "" {
			t.Errorf("CalendarLink = %q", out.Task.CalendarLink)
		}
	})

	t.Run("Blank input", func(t *testing.T) {
		f := newFixture(t, extraction.Outcome{}, false)
		if _, err := f.uc.Create(context.Background(), task.CreateInput{Text: " "}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})
}

func seed(t *testing.T, f fixture, tasks ...model.ParsedTask) {
	t.Helper()
	for _, p := range tasks {
		f.ext.outcome = extraction.Outcome{Task: p, Source: extraction.SourceRules}
		if _, err := f.uc.Create(context.Background(), task.CreateInput{Text: p.TaskName}); err != nil {
			t.Fatalf("seed %q: %v", p.TaskName, err)
		}
	}
}

func TestList(t *testing.T) {
	f := newFixture(t, extraction.Outcome{}, false)
	seed(t, f,
		model.ParsedTask{TaskName: "Call John", Assignee: "John", Priority: model.PriorityHigh},
		model.ParsedTask{TaskName: "Pay rent", Priority: model.PriorityMedium},
		model.ParsedTask{TaskName: "Email john", Assignee: "john", Priority: model.PriorityLow},
	)

	tests := []struct {
		name  string
		input task.ListInput
		want  int
		err   error
	}{
		{name: "All", input: task.ListInput{}, want: 3},
		{name: "By priority", input: task.ListInput{Priority: "P2"}, want: 1},
		{name: "By assignee", input: task.ListInput{Assignee: "JOHN"}, want: 2},
		{name: "Both", input: task.ListInput{Priority: "p4", Assignee: "john"}, want: 1},
		{name: "Invalid priority", input: task.ListInput{Priority: "P5"}, err: task.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.uc.List(context.Background(), tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if err != nil {
				return
			}
			if out.Total != tt.want || len(out.Tasks) != tt.want {
				t.Errorf("Total = %d (len %d), want %d", out.Total, len(out.Tasks), tt.want)
			}
		})
	}
}

func TestDetailAndDelete(t *testing.T) {
	f := newFixture(t, extraction.Outcome{}, false)
	seed(t, f, model.ParsedTask{TaskName: "Pay rent", Priority: model.PriorityMedium})

	out, err := f.uc.Detail(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Task.TaskName != "Pay rent" {
		t.Errorf("unexpected task: %+v", out.Task)
	}

	if err := f.uc.Delete(context.Background(), "task-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.uc.Detail(context.Background(), "task-1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Detail after delete = %v, want ErrTaskNotFound", err)
	}
	if err := f.uc.Delete(context.Background(), "task-1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second Delete = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name  string
		input task.UpdateInput
		err   error
		check func(t *testing.T, got model.Task)
	}{
		{
			name:  "Rename and reprioritize",
			input: task.UpdateInput{TaskName: ptr("  Call Mary  "), Priority: ptr("p2")},
			check: func(t *testing.T, got model.Task) {
				if got.TaskName != "Call Mary" || got.Priority != model.PriorityHigh {
					t.Errorf("unexpected task: %+v", got)
				}
			},
		},
		{
			name:  "Set due date",
			input: task.UpdateInput{DueDate: ptr("2026-10-20T09:15")},
			check: func(t *testing.T, got model.Task) {
				want := time.Date(2026, 10, 20, 9, 15, 0, 0, time.UTC)
				if got.DueDate == nil || !got.DueDate.Equal(want) {
					t.Errorf("DueDate = %v, want %v", got.DueDate, want)
				}
			},
		},
		{
			name:  "Clear due date and assignee",
			input: task.UpdateInput{DueDate: ptr(""), Assignee: ptr("")},
			check: func(t *testing.T, got model.Task) {
				if got.DueDate != nil || got.Assignee != "" {
					t.Errorf("expected cleared fields, got %+v", got)
				}
			},
		},
		{
			name:  "No changes keeps fields",
			input: task.UpdateInput{},
			check: func(t *testing.T, got model.Task) {
				if got.TaskName != "Call John" || got.Assignee != "John" || got.DueDate == nil {
					t.Errorf("fields changed: %+v", got)
				}
			},
		},
		{name: "Empty name", input: task.UpdateInput{TaskName: ptr("   ")}, err: task.ErrEmptyTaskName},
		{name: "Invalid priority", input: task.UpdateInput{Priority: ptr("urgent")}, err: task.ErrInvalidPriority},
		{name: "Invalid due date", input: task.UpdateInput{DueDate: ptr("next tuesday")}, err: task.ErrInvalidDueDate},
		{name: "Unknown ID", input: task.UpdateInput{ID: "missing"}, err: task.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, extraction.Outcome{}, false)
			seed(t, f, model.ParsedTask{TaskName: "Call John", Assignee: "John", DueDate: dueAt(14, 0), Priority: model.PriorityMedium})

			input := tt.input
			if input.ID == "" {
				input.ID = "task-1"
			}
			out, err := f.uc.Update(context.Background(), input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if err != nil {
				stored, getErr := f.repo.GetTask(context.Background(), "task-1")
				if getErr != nil || stored.TaskName != "Call John" || stored.Priority != model.PriorityMedium {
					t.Errorf("failed update modified the stored task: %+v", stored)
				}
				return
			}

			if !out.Task.CreatedAt.Equal(testNow) || !out.Task.UpdatedAt.Equal(testNow) {
				t.Errorf("timestamps = %v / %v", out.Task.CreatedAt, out.Task.UpdatedAt)
			}
			if !out.Task.Priority.IsValid() {
				t.Errorf("invalid priority after update: %q", out.Task.Priority)
			}
			tt.check(t, out.Task)

			stored, err := f.repo.GetTask(context.Background(), "task-1")
			if err != nil {
				t.Fatalf("GetTask: %v", err)
			}
			tt.check(t, stored)
		})
	}
}
