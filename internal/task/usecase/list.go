package usecase

import (
	"context"

	"smart-task-parser/internal/task"
	"smart-task-parser/internal/task/repository"
)

// List returns stored tasks filtered by priority and assignee, oldest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	priority, err := parseListPriority(input.Priority)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Priority: priority,
		Assignee: input.Assignee,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: repo.ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}
