package http

import (
	"smart-task-tracker/internal/model"
	"smart-task-tracker/internal/priority"
	priorityHTTP "smart-task-tracker/internal/priority/delivery/http"
	"smart-task-tracker/internal/task"
	"smart-task-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Text        string `json:"text"`
	Keywords    string `json:"keywords"`
	EffortHours any    `json:"effort_hours" swaggertype:"number"`
	IsUrgent    any    `json:"is_urgent" swaggertype:"boolean"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Text:        r.Text,
		Keywords:    r.Keywords,
		EffortHours: r.EffortHours,
		IsUrgent:    r.IsUrgent,
	}
}

// updateReq fields left out of the body (or null) are not changed.
type updateReq struct {
	Text        *string `json:"text"`
	Keywords    *string `json:"keywords"`
	EffortHours any     `json:"effort_hours" swaggertype:"number"`
	IsUrgent    any     `json:"is_urgent" swaggertype:"boolean"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) toInput(id string) task.UpdateInput {
	return task.UpdateInput{
		ID:          id,
		Text:        r.Text,
		Keywords:    r.Keywords,
		EffortHours: r.EffortHours,
		IsUrgent:    r.IsUrgent,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Keywords    string  `json:"keywords"`
	EffortHours float64 `json:"effort_hours"`
	IsUrgent    bool    `json:"is_urgent"`
	Completed   bool    `json:"completed"`
	priorityHTTP.ResultResp
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
	UpdatedAt response.DateTime `json:"updated_at" swaggertype:"string"`
}

type countsResp struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Counts countsResp `json:"counts"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Text:        t.Text,
		Keywords:    t.Keywords,
		EffortHours: t.EffortHours,
		IsUrgent:    t.IsUrgent,
		Completed:   t.Completed,
		ResultResp:  priorityHTTP.NewResultResp(t.Classification),
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, h.newTaskResp(t))
	}
	return listResp{
		Tasks: tasks,
		Total: o.Total,
		Counts: countsResp{
			Critical: o.Counts[priority.PriorityCritical],
			High:     o.Counts[priority.PriorityHigh],
			Medium:   o.Counts[priority.PriorityMedium],
			Low:      o.Counts[priority.PriorityLow],
		},
	}
}
