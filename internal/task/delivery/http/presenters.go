package http

import (
	"smart-task-parser/internal/model"
	"smart-task-parser/internal/task"
	"smart-task-parser/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text"`
}

func (r parseReq) toParseInput() task.ParseInput {
	return task.ParseInput{Text: r.Text}
}

func (r parseReq) toCreateInput() task.CreateInput {
	return task.CreateInput{Text: r.Text}
}

// ---

type listReq struct {
	Priority string `form:"priority"`
	Assignee string `form:"assignee"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Priority: r.Priority,
		Assignee: r.Assignee,
	}
}

// ---

// updateReq is a partial edit. Omitted fields are left unchanged; an empty
// assignee or dueDate clears it.
type updateReq struct {
	ID       string  `json:"-"` // populated from URI param
	TaskName *string `json:"taskName"`
	Assignee *string `json:"assignee"`
	DueDate  *string `json:"dueDate"`
	Priority *string `json:"priority"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:       r.ID,
		TaskName: r.TaskName,
		Assignee: r.Assignee,
		DueDate:  r.DueDate,
		Priority: r.Priority,
	}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	TaskName string         `json:"taskName"`
	Assignee string         `json:"assignee,omitempty"`
	DueDate  string         `json:"dueDate,omitempty"` // YYYY-MM-DDTHH:MM
	Priority model.Priority `json:"priority"`
}

func newParsedTaskResp(p model.ParsedTask) parsedTaskResp {
	return parsedTaskResp{
		TaskName: p.TaskName,
		Assignee: p.Assignee,
		DueDate:  p.FormatDueDate(),
		Priority: p.Priority,
	}
}

type taskResp struct {
	ID           string            `json:"id"`
	TaskName     string            `json:"taskName"`
	Assignee     string            `json:"assignee,omitempty"`
	DueDate      string            `json:"dueDate,omitempty"`
	Priority     model.Priority    `json:"priority"`
	CalendarLink string            `json:"calendarLink,omitempty"`
	CreatedAt    response.DateTime `json:"createdAt"`
	UpdatedAt    response.DateTime `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	due := ""
	if t.DueDate != nil {
		due = t.DueDate.Format(model.DueDateLayout)
	}
	return taskResp{
		ID:           t.ID,
		TaskName:     t.TaskName,
		Assignee:     t.Assignee,
		DueDate:      due,
		Priority:     t.Priority,
		CalendarLink: t.CalendarLink,
		CreatedAt:    response.DateTime(t.CreatedAt),
		UpdatedAt:    response.DateTime(t.UpdatedAt),
	}
}

type parseResp struct {
	Task   parsedTaskResp `json:"task"`
	Source string         `json:"source"`
	Notice string         `json:"notice,omitempty"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{
		Task:   newParsedTaskResp(out.Task),
		Source: string(out.Source),
		Notice: out.Notice,
	}
}

type createResp struct {
	Task   taskResp `json:"task"`
	Source string   `json:"source"`
	Notice string   `json:"notice,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{
		Task:   newTaskResp(out.Task),
		Source: string(out.Source),
		Notice: out.Notice,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
