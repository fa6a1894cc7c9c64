package model

import "time"

// DueDateLayout is the wire format of due dates: local wall-clock time with
// minute precision and no zone.
const DueDateLayout = "2006-01-02T15:04"

// ParsedTask is the structured result of one extraction. It is built fresh
// per input and owned by the caller afterwards.
type ParsedTask struct {
	TaskName string     // Action description, never empty
	Assignee string     // Empty when no person was found
	DueDate  *time.Time // Nil means no deadline; minute precision
	Priority Priority   // Always one of the four levels
}

// HasAssignee reports whether an assignee was extracted.
func (p ParsedTask) HasAssignee() bool {
	return p.Assignee != ""
}

// FormatDueDate renders DueDate with DueDateLayout, or "" when absent.
func (p ParsedTask) FormatDueDate() string {
	if p.DueDate == nil {
		return ""
	}
	return p.DueDate.Format(DueDateLayout)
}

// Task is a ParsedTask the application has accepted into its collection.
type Task struct {
	ID           string // UUID assigned on creation
	TaskName     string
	Assignee     string
	DueDate      *time.Time
	Priority     Priority
	CalendarLink string // Google Calendar event link, may be empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTask attaches an identifier and timestamps to a parsed task.
func NewTask(id string, parsed ParsedTask, now time.Time) Task {
	return Task{
		ID:        id,
		TaskName:  parsed.TaskName,
		Assignee:  parsed.Assignee,
		DueDate:   parsed.DueDate,
		Priority:  parsed.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
