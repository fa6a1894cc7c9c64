package usecase

import (
	"context"

	"smart-task-parser/internal/extraction"
	"smart-task-parser/internal/task"
	"smart-task-parser/internal/task/repository"
	"smart-task-parser/pkg/datemath"
	"smart-task-parser/pkg/gcalendar"
	pkgLog "smart-task-parser/pkg/log"
)

// Calendar creates events for tasks with a due date.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	extractor  extraction.UseCase
	repo       repository.Repository
	calendar   Calendar
	calendarID string
	dateMath   *datemath.Parser
	newID      func() string
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	extractor extraction.UseCase,
	repo repository.Repository,
	calendar Calendar,
	calendarID string,
	dateMath *datemath.Parser,
) task.UseCase {
	return &implUseCase{
		l:          l,
		extractor:  extractor,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		newID:      newTaskID,
	}
}
