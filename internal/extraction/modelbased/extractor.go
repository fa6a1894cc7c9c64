package modelbased

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"smart-task-parser/internal/extraction"
	"smart-task-parser/internal/model"
	"smart-task-parser/pkg/datemath"
	"smart-task-parser/pkg/llmprovider"
	pkgLog "smart-task-parser/pkg/log"
)

// Request shaping: near-deterministic, short replies.
const (
	temperature = 0.1
	maxTokens   = 500

	instructionExcerptLen = 200
)

// Generator is the remote text-completion capability.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Extractor delegates extraction to a remote model and salvages its reply.
type Extractor struct {
	l       pkgLog.Logger
	gen     Generator
	dates   *datemath.Parser
	verbose bool
}

// New creates a model-backed extractor. A nil gen makes every call fail
// with extraction.ErrCapabilityUnavailable.
func New(l pkgLog.Logger, gen Generator, dates *datemath.Parser, verbose bool) *Extractor {
	return &Extractor{
		l:       l,
		gen:     gen,
		dates:   dates,
		verbose: verbose,
	}
}

// Extract implements extraction.Extractor.
func (e *Extractor) Extract(ctx context.Context, input string) (model.ParsedTask, error) {
	if e.gen == nil {
		e.l.Debug(ctx, "modelbased.Extract: no generator configured")
		return model.ParsedTask{}, extraction.ErrCapabilityUnavailable
	}

	now := e.dates.Now()
	instruction := BuildInstruction(now, e.dates)
	if e.verbose {
		e.l.Debugf(ctx, "modelbased.Extract: sending input=%q current_date=%s instruction=%q",
			input, now.Format(time.RFC3339), excerpt(instruction, instructionExcerptLen))
	}

	resp, err := e.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemText(instruction),
		Messages:          []llmprovider.Message{llmprovider.UserText(input)},
		Temperature:       temperature,
		MaxTokens:         maxTokens,
	})
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			e.l.Debug(ctx, "modelbased.Extract: no model provider configured")
			return model.ParsedTask{}, extraction.ErrCapabilityUnavailable
		}
		e.l.Warnf(ctx, "modelbased.Extract: generate content failed: %v", err)
		return model.ParsedTask{}, fmt.Errorf("%w: %v", extraction.ErrTransport, err)
	}

	raw := strings.TrimSpace(resp.Text())
	if e.verbose {
		e.l.Debugf(ctx, "modelbased.Extract: received provider=%s reply=%q", resp.ProviderName, raw)
	}
	if raw == "" {
		e.l.Warn(ctx, "modelbased.Extract: empty reply")
		return model.ParsedTask{}, extraction.ErrEmptyReply
	}

	r, stage, err := salvage(raw)
	if err != nil {
		e.l.Warnf(ctx, "modelbased.Extract: unparseable reply %q: %v", raw, err)
		return model.ParsedTask{}, fmt.Errorf("%w: %v", extraction.ErrMalformedReply, err)
	}
	if e.verbose {
		e.l.Debugf(ctx, "modelbased.Extract: reply parsed by stage %s", stage)
	}

	return e.normalize(ctx, r, input), nil
}

// normalize enforces the ParsedTask invariants on a salvaged reply.
func (e *Extractor) normalize(ctx context.Context, r reply, input string) model.ParsedTask {
	task := model.ParsedTask{
		TaskName: strings.TrimSpace(r.TaskName),
		Assignee: strings.TrimSpace(r.Assignee),
		Priority: model.PriorityOrDefault(r.Priority),
	}
	if task.TaskName == "" {
		task.TaskName = strings.TrimSpace(input)
	}

	if s := strings.TrimSpace(r.DueDate); s != "" {
		due, err := parseDueDate(s, e.dates.Location())
		if err != nil {
			e.l.Warnf(ctx, "modelbased.normalize: dropping dueDate %q: %v", s, err)
		} else {
			task.DueDate = &due
		}
	}

	return task
}

var dueDateLayouts = []string{model.DueDateLayout, "2006-01-02T15:04:05"}

// parseDueDate accepts zone-less local times or RFC 3339 instants and
// returns local wall-clock time truncated to the minute.
func parseDueDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date format")
	}
	return t.In(loc).Truncate(time.Minute), nil
}

func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
