package repository

import "smart-task-tracker/internal/priority"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Text           string
	Keywords       string
	EffortHours    float64
	IsUrgent       bool
	Classification priority.Result
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All set fields are applied as AND conditions.
type ListTasksOptions struct {
	Completed *bool
	Priority  priority.Priority
}

// UpdateTaskOptions replaces the mutable fields of an existing Task.
type UpdateTaskOptions struct {
	ID             string
	Text           string
	Keywords       string
	EffortHours    float64
	IsUrgent       bool
	Completed      bool
	Classification priority.Result
}
