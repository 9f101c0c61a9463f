package usecase

import (
	"smart-task-tracker/internal/priority"
	"smart-task-tracker/internal/task/repository"
	"smart-task-tracker/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	classifier priority.UseCase
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository, classifier priority.UseCase) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		classifier: classifier,
	}
}
