package usecase

import (
	"time"

	"smart-task-tracker/internal/priority"
	"smart-task-tracker/internal/priority/rules"
	"smart-task-tracker/pkg/log"
)

// implUseCase is the private implementation of priority.UseCase.
type implUseCase struct {
	l         log.Logger
	engine    *rules.Engine
	predictor priority.Predictor
	timeout   time.Duration
}

// New creates a priority classifier. predictor may be nil, in which case
// every result comes from the local rules. timeout bounds the predictor call;
// zero means only the caller's context bounds it.
func New(l log.Logger, engine *rules.Engine, predictor priority.Predictor, timeout time.Duration) *implUseCase {
	if engine == nil {
		engine = rules.NewDefault()
	}
	return &implUseCase{
		l:         l,
		engine:    engine,
		predictor: predictor,
		timeout:   timeout,
	}
}
