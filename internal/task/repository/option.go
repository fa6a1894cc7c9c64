package repository

import "smart-task-parser/internal/model"

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	Priority model.Priority // Empty matches all priorities
	Assignee string         // Case-insensitive; empty matches all
}
