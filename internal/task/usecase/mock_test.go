package usecase

import (
	"context"
	"errors"
	"fmt"

	"smart-task-parser/internal/extraction"
	"smart-task-parser/pkg/gcalendar"
)

type stubExtraction struct {
	outcome extraction.Outcome
	inputs  []string
}

func (s *stubExtraction) Resolve(ctx context.Context, input string) extraction.Outcome {
	s.inputs = append(s.inputs, input)
	return s.outcome
}

type stubCalendar struct {
	link string
	err  error
	reqs []gcalendar.CreateEventRequest
}

func (s *stubCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: s.link, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

var errCalendarDown = errors.New("calendar down")

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprint(arg...))
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func ptr(s string) *string { return &s }

