package memory

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task/repository"
	"smart-task-parser/pkg/log"
)

// DefaultCapacity applies when a non-positive capacity is given.
const DefaultCapacity = 1000

type implRepository struct {
	tasks *lru.Cache[string, model.Task]
	l     log.Logger
}

// New creates an in-memory Repository holding at most capacity tasks. The
// least recently used task is evicted when full.
func New(l log.Logger, capacity int) (repository.Repository, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	r := &implRepository{l: l}
	cache, err := lru.NewWithEvict(capacity, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("task/repository/memory: %w", err)
	}
	r.tasks = cache
	return r, nil
}

func (r *implRepository) onEvict(id string, t model.Task) {
	r.l.Warnf(context.Background(), "%s: capacity reached, evicted task %s (%q)", r.dsn("onEvict"), id, t.TaskName)
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
