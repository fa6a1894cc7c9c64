package memory

import (
	"context"
	"sort"
	"strings"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if ok, _ := r.tasks.ContainsOrAdd(task.ID, task); ok {
		return model.Task{}, repository.ErrDuplicate
	}
	return task, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	task, ok := r.tasks.Get(id)
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return task, nil
}

// ListTasks returns matching tasks ordered by creation time. Listing does not
// refresh recency.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, id := range r.tasks.Keys() {
		task, ok := r.tasks.Peek(id)
		if !ok || !matches(task, opt) {
			continue
		}
		out = append(out, task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if !r.tasks.Contains(task.ID) {
		return model.Task{}, repository.ErrNotFound
	}
	r.tasks.Add(task.ID, task)
	return task, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if !r.tasks.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

func matches(task model.Task, opt repository.ListTasksOptions) bool {
	if opt.Priority != "" && task.Priority != opt.Priority {
		return false
	}
	if opt.Assignee != "" && !strings.EqualFold(task.Assignee, strings.TrimSpace(opt.Assignee)) {
		return false
	}
	return true
}
