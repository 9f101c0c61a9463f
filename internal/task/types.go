package task

import (
	"smart-task-tracker/internal/model"
	"smart-task-tracker/internal/priority"
)

// Filter selects which tasks List returns.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterCritical  Filter = "critical"
	FilterHigh      Filter = "high"
	FilterMedium    Filter = "medium"
	FilterLow       Filter = "low"
)

// ParseFilter maps a query value to a Filter. Empty means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted, FilterCritical, FilterHigh, FilterMedium, FilterLow:
		return f, nil
	default:
		return "", ErrInvalidFilter
	}
}

// --- UseCase Inputs ---

// CreateInput carries loosely typed fields straight from the request.
type CreateInput struct {
	Text        string
	Keywords    string
	EffortHours any
	IsUrgent    any
}

type ListInput struct {
	Filter Filter
}

// UpdateInput is a partial update; nil fields are left unchanged. Setting
// any of Text, Keywords, EffortHours or IsUrgent reclassifies the task.
type UpdateInput struct {
	ID          string
	Text        *string
	Keywords    *string
	EffortHours any
	IsUrgent    any
	Completed   *bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Counts map[priority.Priority]int // over every task, regardless of filter
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
