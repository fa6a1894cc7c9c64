package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task"
	"smart-task-parser/internal/task/repository"
)

// calendarEventDuration is the length of the event ending at the due time.
const calendarEventDuration = 30 * time.Minute

func newTaskID() string {
	return uuid.NewString()
}

// mapRepoError translates storage errors into domain errors.
func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}

// parseDueDate reads a due date edit. An empty value clears the date.
func (uc *implUseCase) parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(model.DueDateLayout, s, uc.dateMath.Location())
	if err != nil {
		return nil, task.ErrInvalidDueDate
	}
	return &t, nil
}

func parseListPriority(s string) (model.Priority, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	p, ok := model.ParsePriority(s)
	if !ok {
		return "", task.ErrInvalidPriority
	}
	return p, nil
}
