package model

import (
	"time"

	"smart-task-tracker/internal/priority"
)

// Task is a tracked task together with the classification computed when it
// was last created or edited.
type Task struct {
	ID          string
	Text        string
	Keywords    string
	EffortHours float64
	IsUrgent    bool
	Completed   bool

	Classification priority.Result

	CreatedAt time.Time
	UpdatedAt time.Time
}
