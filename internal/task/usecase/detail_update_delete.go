package usecase

import (
	"context"
	"strings"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, mapRepoError(err)
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial edit. The priority invariant holds after every edit.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		return task.UpdateOutput{}, mapRepoError(err)
	}

	if input.TaskName != nil {
		name := strings.TrimSpace(*input.TaskName)
		if name == "" {
			return task.UpdateOutput{}, task.ErrEmptyTaskName
		}
		existing.TaskName = name
	}
	if input.Assignee != nil {
		existing.Assignee = strings.TrimSpace(*input.Assignee)
	}
	if input.Priority != nil {
		p, ok := model.ParsePriority(*input.Priority)
		if !ok {
			return task.UpdateOutput{}, task.ErrInvalidPriority
		}
		existing.Priority = p
	}
	if input.DueDate != nil {
		due, err := uc.parseDueDate(*input.DueDate)
		if err != nil {
			return task.UpdateOutput{}, err
		}
		existing.DueDate = due
	}
	existing.UpdatedAt = uc.dateMath.Now()

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: repo.UpdateTask: %v", err)
		return task.UpdateOutput{}, mapRepoError(err)
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return mapRepoError(err)
	}
	uc.l.Infof(ctx, "task.usecase.Delete: deleted task id=%s", id)
	return nil
}
