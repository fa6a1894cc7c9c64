package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task/repository"
	"smart-task-parser/internal/task/repository/memory"
	"smart-task-parser/pkg/log"
)

var base = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func newTask(id string, minute int, p model.Priority, assignee string) model.Task {
	return model.Task{
		ID:        id,
		TaskName:  "task " + id,
		Assignee:  assignee,
		Priority:  p,
		CreatedAt: base.Add(time.Duration(minute) * time.Minute),
	}
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo, err := memory.New(log.NewNop(), 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	task := newTask("a", 0, model.PriorityHigh, "John")
	if _, err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := repo.CreateTask(ctx, task); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("duplicate CreateTask error = %v, want ErrDuplicate", err)
	}

	got, err := repo.GetTask(ctx, "a")
	if err != nil || got.TaskName != "task a" {
		t.Fatalf("GetTask = %+v, %v", got, err)
	}

	got.TaskName = "renamed"
	if _, err := repo.UpdateTask(ctx, got); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got, _ := repo.GetTask(ctx, "a"); got.TaskName != "renamed" {
		t.Errorf("TaskName after update = %q", got.TaskName)
	}

	if _, err := repo.UpdateTask(ctx, newTask("missing", 0, model.PriorityLow, "")); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateTask(missing) error = %v, want ErrNotFound", err)
	}

	if err := repo.DeleteTask(ctx, "a"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := repo.DeleteTask(ctx, "a"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second DeleteTask error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetTask(ctx, "a"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetTask after delete error = %v, want ErrNotFound", err)
	}
}

func TestRepository_ListTasks(t *testing.T) {
	ctx := context.Background()
	repo, _ := memory.New(log.NewNop(), 10)

	// Inserted out of creation order.
	for _, task := range []model.Task{
		newTask("c", 2, model.PriorityMedium, "john"),
		newTask("a", 0, model.PriorityCritical, "John"),
		newTask("b", 1, model.PriorityMedium, ""),
		newTask("d", 3, model.PriorityCritical, "Alice"),
	} {
		repo.CreateTask(ctx, task)
	}

	tests := []struct {
		name string
		opt  repository.ListTasksOptions
		want []string
	}{
		{name: "All by creation time", want: []string{"a", "b", "c", "d"}},
		{name: "By priority", opt: repository.ListTasksOptions{Priority: model.PriorityCritical}, want: []string{"a", "d"}},
		{name: "By assignee ignoring case", opt: repository.ListTasksOptions{Assignee: "JOHN"}, want: []string{"a", "c"}},
		{name: "Both filters", opt: repository.ListTasksOptions{Priority: model.PriorityMedium, Assignee: "john"}, want: []string{"c"}},
		{name: "No match", opt: repository.ListTasksOptions{Priority: model.PriorityLow}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListTasks(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListTasks: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tasks, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestRepository_Eviction(t *testing.T) {
	ctx := context.Background()
	repo, _ := memory.New(log.NewNop(), 2)

	repo.CreateTask(ctx, newTask("a", 0, model.PriorityMedium, ""))
	repo.CreateTask(ctx, newTask("b", 1, model.PriorityMedium, ""))
	repo.GetTask(ctx, "a") // a is now most recently used
	repo.CreateTask(ctx, newTask("c", 2, model.PriorityMedium, ""))

	if _, err := repo.GetTask(ctx, "b"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected b to be evicted, got %v", err)
	}
	for _, id := range []string{"a", "c"} {
		if _, err := repo.GetTask(ctx, id); err != nil {
			t.Errorf("expected %s to be kept: %v", id, err)
		}
	}
}
