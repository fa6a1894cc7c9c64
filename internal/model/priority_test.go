package model_test

import (
	"testing"
	"time"

	"smart-task-parser/internal/model"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   model.Priority
		wantOK bool
	}{
		{"P1", model.PriorityCritical, true},
		{"p2", model.PriorityHigh, true},
		{" P3 ", model.PriorityMedium, true},
		{"P4", model.PriorityLow, true},
		{"P5", "", false},
		{"high", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := model.ParsePriority(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPriorityOrDefault(t *testing.T) {
	if got := model.PriorityOrDefault("urgent"); got != model.DefaultPriority {
		t.Errorf("expected default for invalid tag, got %q", got)
	}
	if got := model.PriorityOrDefault("p1"); got != model.PriorityCritical {
		t.Errorf("expected P1, got %q", got)
	}
}

func TestFormatDueDate(t *testing.T) {
	p := model.ParsedTask{TaskName: "x", Priority: model.DefaultPriority}
	if got := p.FormatDueDate(); got != "" {
		t.Errorf("expected empty due date, got %q", got)
	}

	due := time.Date(2026, 6, 20, 23, 59, 0, 0, time.UTC)
	p.DueDate = &due
	if got := p.FormatDueDate(); got != "2026-06-20T23:59" {
		t.Errorf("unexpected due date format: %q", got)
	}
}
