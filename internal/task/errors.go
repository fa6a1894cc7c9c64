package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTaskName   = errors.New("task name must not be empty")
	ErrInvalidPriority = errors.New("priority must be one of P1, P2, P3, P4")
	ErrInvalidDueDate  = errors.New("due date must use the YYYY-MM-DDTHH:MM format")
)
