package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task"
	"smart-task-parser/pkg/gcalendar"
)

// Create resolves the input text and stores the resulting task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	parsed, err := uc.Parse(ctx, task.ParseInput{Text: input.Text})
	if err != nil {
		return task.CreateOutput{}, err
	}

	t := model.NewTask(uc.newID(), parsed.Task, uc.dateMath.Now())
	t.CalendarLink = uc.tryCreateCalendarEvent(ctx, t)

	stored, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: repo.CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task %q id=%s", stored.TaskName, stored.ID)
	return task.CreateOutput{
		Task:   stored,
		Source: parsed.Source,
		Notice: parsed.Notice,
	}, nil
}

// tryCreateCalendarEvent returns the event link, or "" when the calendar is
// not configured, the task has no due date or creation fails.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	description := fmt.Sprintf("Priority: %s", t.Priority)
	if t.Assignee != "" {
		description += fmt.Sprintf("\nAssignee: %s", t.Assignee)
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.TaskName,
		Description: description,
		StartTime:   t.DueDate.Add(-calendarEventDuration),
		EndTime:     *t.DueDate,
		Timezone:    calendarTimezone(uc.dateMath.Location()),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create: calendar event creation failed for %q (non-fatal): %v", t.TaskName, err)
		return ""
	}

	return event.HtmlLink
}

// calendarTimezone returns the IANA name of loc. "Local" is not one, so the
// event falls back to the offset embedded in its times.
func calendarTimezone(loc *time.Location) string {
	if name := loc.String(); name != "Local" {
		return name
	}
	return ""
}
