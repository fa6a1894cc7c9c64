package modelbased

import (
	"context"
	"fmt"

	"smart-task-parser/pkg/llmprovider"
)

// stubGenerator returns a canned reply and records the last request.
type stubGenerator struct {
	text  string
	err   error
	calls int
	got   *llmprovider.Request
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: s.text}}},
		ProviderName: "stub",
		Usage:        &llmprovider.Usage{},
	}, nil
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	debugMessages []string
	warnMessages  []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any) {
	m.debugMessages = append(m.debugMessages, fmt.Sprint(arg...))
}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {
	m.debugMessages = append(m.debugMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
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
