package rulebased

import (
	"context"
	"strings"
	"unicode"

	"smart-task-parser/internal/model"
	"smart-task-parser/pkg/datemath"
)

// Extractor is the deterministic, offline extractor. It never fails.
type Extractor struct {
	dates *datemath.Parser
}

// New creates a rule-based extractor resolving relative dates with dates.
func New(dates *datemath.Parser) *Extractor {
	return &Extractor{dates: dates}
}

// Extract implements extraction.Extractor. The error is always nil.
func (e *Extractor) Extract(_ context.Context, input string) (model.ParsedTask, error) {
	return e.Parse(input), nil
}

// Parse runs priority, assignee, due date and task name extraction in that
// order. The assignee and task name stages work on the text left by the
// previous one; the due date reads the whole priority-stripped text, so a day
// word claimed with an assignee still counts.
func (e *Extractor) Parse(input string) model.ParsedTask {
	now := e.dates.Now()

	priority := extractPriority(input)
	stripped := strings.TrimSpace(priorityPattern.ReplaceAllString(input, ""))

	assignee, working := extractAssignee(stripped)
	dueDate := e.resolveDueDate(stripped, now)

	return model.ParsedTask{
		TaskName: buildTaskName(working, input),
		Assignee: assignee,
		DueDate:  dueDate,
		Priority: priority,
	}
}

func extractPriority(input string) model.Priority {
	m := priorityPattern.FindStringSubmatch(input)
	if m == nil {
		return model.DefaultPriority
	}
	return model.Priority("P" + m[1])
}

// extractAssignee returns the assignee and the text with its span removed.
// Sentence-initial capitalization is never taken as a name.
func extractAssignee(text string) (string, string) {
	firstWord := strings.IndexFunc(text, unicode.IsLetter)

	for _, p := range assigneePatterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(text, -1) {
			name, start, end, ok := acceptCandidate(text, idx[2], idx[3], firstWord)
			if !ok {
				continue
			}
			// Whole candidate accepted: drop the connector with it.
			if start == idx[2] && end == idx[3] {
				start, end = idx[0], idx[1]
			}
			return name, removeSpan(text, start, end)
		}
	}

	// Any capitalized word.
	for _, idx := range capitalizedPattern.FindAllStringSubmatchIndex(text, -1) {
		name, start, end, ok := acceptCandidate(text, idx[2], idx[3], firstWord)
		if !ok {
			continue
		}
		return name, removeSpan(text, start, end)
	}

	return "", text
}

// acceptCandidate filters the tokens of text[start:end] through the excluded
// word table. A token beginning at skipAt is treated as excluded. It returns
// the accepted name and its span.
func acceptCandidate(text string, start, end, skipAt int) (string, int, int, bool) {
	keptStart, keptEnd := -1, -1
	var kept []string

	for i := start; i < end; {
		for i < end && isSpace(text[i]) {
			i++
		}
		j := i
		for j < end && !isSpace(text[j]) {
			j++
		}
		if i == j {
			break
		}
		tok := text[i:j]
		tokStart := i
		i = j

		if _, excluded := excludedNameWords[tok]; excluded || tokStart == skipAt {
			continue
		}
		if keptStart < 0 {
			keptStart = tokStart
		}
		keptEnd = j
		kept = append(kept, tok)
	}

	if len(kept) == 0 {
		return "", 0, 0, false
	}
	return strings.Join(kept, " "), keptStart, keptEnd, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func removeSpan(text string, start, end int) string {
	return strings.TrimSpace(text[:start] + " " + text[end:])
}

// buildTaskName strips residual markers from working. A result shorter than
// minTaskNameLen falls back to the input with only priority tokens removed.
func buildTaskName(working, input string) string {
	name := working
	for _, re := range taskNameStrips {
		name = re.ReplaceAllString(name, " ")
	}
	name = trimDangling(collapseSpaces(name))

	if len([]rune(name)) >= minTaskNameLen {
		return name
	}

	if fallback := collapseSpaces(priorityPattern.ReplaceAllString(input, " ")); fallback != "" {
		return fallback
	}
	return strings.TrimSpace(input)
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

func trimDangling(s string) string {
	for {
		trimmed := danglingTrailerPattern.ReplaceAllString(s, "")
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
