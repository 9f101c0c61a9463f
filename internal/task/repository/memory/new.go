package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-task-tracker/internal/model"
	"smart-task-tracker/internal/task/repository"
	"smart-task-tracker/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string // insertion order

	l     log.Logger
	now   func() time.Time
	newID func() string
}

// New creates an in-memory Repository. Tasks are lost on restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		tasks: make(map[string]model.Task),
		l:     l,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}
