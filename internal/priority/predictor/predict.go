package predictor

import (
	"context"
	"fmt"
	"math"

	"smart-task-tracker/internal/priority"
	pkgPredictor "smart-task-tracker/pkg/predictor"
)

// percentScale is the upper bound of confidences reported as percentages.
const percentScale = 100.0

// Predict calls the endpoint once and converts its answer. Every failure is
// wrapped in priority.ErrPredictorUnavailable.
func (p *implPredictor) Predict(ctx context.Context, in priority.TaskInput) (priority.Prediction, error) {
	resp, err := p.client.Predict(ctx, pkgPredictor.PredictRequest{
		Text:        in.Text,
		Keywords:    in.Keywords,
		EffortHours: in.EffortHours,
		IsUrgent:    in.IsUrgent,
	})
	if err != nil {
		return priority.Prediction{}, fmt.Errorf("%w: %v", priority.ErrPredictorUnavailable, err)
	}

	pred, err := toPrediction(resp)
	if err != nil {
		return priority.Prediction{}, fmt.Errorf("%w: %v", priority.ErrPredictorUnavailable, err)
	}

	p.l.Debugf(ctx, "predictor.Predict: %s (%.2f)", pred.Priority, pred.Confidence)
	return pred, nil
}

func toPrediction(resp *pkgPredictor.PredictResponse) (priority.Prediction, error) {
	if resp == nil || resp.Priority == nil {
		return priority.Prediction{}, fmt.Errorf("%w: missing priority", priority.ErrMalformedPrediction)
	}
	label, err := priority.ParsePriority(*resp.Priority)
	if err != nil {
		return priority.Prediction{}, err
	}

	if resp.Confidence == nil {
		return priority.Prediction{}, fmt.Errorf("%w: missing confidence", priority.ErrMalformedPrediction)
	}
	confidence, err := normalizeConfidence(*resp.Confidence)
	if err != nil {
		return priority.Prediction{}, err
	}

	pred := priority.Prediction{Priority: label, Confidence: confidence}
	if resp.UrgencyScore != nil {
		pred.UrgencyScore = *resp.UrgencyScore
	}

	return pred, pred.Validate()
}

// normalizeConfidence accepts [0,1] fractions and (1,100] percentages.
func normalizeConfidence(c float64) (float64, error) {
	switch {
	case math.IsNaN(c) || c < 0 || c > percentScale:
		return 0, fmt.Errorf("%w: %v", priority.ErrInvalidConfidence, c)
	case c > 1:
		return c / percentScale, nil
	default:
		return c, nil
	}
}
