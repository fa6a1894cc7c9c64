package repository

import (
	"context"

	"smart-task-parser/internal/model"
)

// Repository is the interface for task storage.
type Repository interface {
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, task model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
