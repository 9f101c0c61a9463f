package predictor

import (
	"context"

	"smart-task-tracker/internal/priority"
	"smart-task-tracker/pkg/log"
	pkgPredictor "smart-task-tracker/pkg/predictor"
)

// Client is the subset of pkg/predictor.Client used here.
type Client interface {
	Predict(ctx context.Context, req pkgPredictor.PredictRequest) (*pkgPredictor.PredictResponse, error)
}

type implPredictor struct {
	client Client
	l      log.Logger
}

// New adapts a prediction endpoint client to priority.Predictor.
func New(client Client, l log.Logger) priority.Predictor {
	return &implPredictor{client: client, l: l}
}
