package http

import (
	"smart-task-tracker/internal/priority"
	"smart-task-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc priority.UseCase
}

// New creates a new HTTP handler for the priority domain.
func New(l log.Logger, uc priority.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
