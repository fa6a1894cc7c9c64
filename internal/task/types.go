package task

import (
	"smart-task-parser/internal/extraction"
	"smart-task-parser/internal/model"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

type CreateInput struct {
	Text string
}

// ListInput filters the collection. Empty fields match everything.
type ListInput struct {
	Priority string
	Assignee string // Case-insensitive exact match
}

// UpdateInput edits a stored task. Nil fields are left unchanged; an empty
// Assignee or DueDate clears the field.
type UpdateInput struct {
	ID       string
	TaskName *string
	Assignee *string
	DueDate  *string // model.DueDateLayout
	Priority *string
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Task   model.ParsedTask
	Source extraction.Source
	Notice string // Non-empty when the fallback extractor was used
}

type CreateOutput struct {
	Task   model.Task
	Source extraction.Source
	Notice string
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
