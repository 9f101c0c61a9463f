package usecase

import (
	"context"
	"fmt"

	"smart-task-tracker/internal/priority"
)

// Normalize validates raw and logs every coercion applied to it.
func (uc *implUseCase) Normalize(ctx context.Context, raw priority.RawInput) (priority.TaskInput, error) {
	ext, err := priority.Extract(raw)
	if err != nil {
		return priority.TaskInput{}, err
	}
	for _, w := range ext.Warnings {
		uc.l.Warnf(ctx, "priority.usecase.Normalize: coerced input: %s", w)
	}
	return ext.Input, nil
}

// Classify computes the local rule result first, then consults the
// predictor at most once.
func (uc *implUseCase) Classify(ctx context.Context, in priority.TaskInput) priority.Result {
	local := uc.engine.Evaluate(in)
	result := uc.consult(ctx, in, local).resolve()

	uc.l.Debugf(ctx, "priority.usecase.Classify: %s (%.2f) source=%s score=%.1f",
		result.Priority, result.Confidence, result.Source, local.UrgencyScore)
	return result
}

// ClassifyRaw normalizes raw and classifies it.
func (uc *implUseCase) ClassifyRaw(ctx context.Context, raw priority.RawInput) (priority.Result, error) {
	in, err := uc.Normalize(ctx, raw)
	if err != nil {
		return priority.Result{}, err
	}
	return uc.Classify(ctx, in), nil
}

type predictReply struct {
	prediction priority.Prediction
	err        error
}

// consult asks the external predictor once. The local result is already
// computed, so any failure resolves to it immediately.
func (uc *implUseCase) consult(ctx context.Context, in priority.TaskInput, local priority.Result) outcome {
	if uc.predictor == nil {
		return fallbackOutcome{local: local, reason: priority.ErrPredictorNotConfigured}
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	// Buffered so the goroutine can finish after we stop waiting.
	replies := make(chan predictReply, 1)
	go func() {
		pred, err := uc.predictor.Predict(ctx, in)
		replies <- predictReply{prediction: pred, err: err}
	}()

	var reply predictReply
	select {
	case reply = <-replies:
	case <-ctx.Done():
		reply.err = fmt.Errorf("%w: %v", priority.ErrPredictorUnavailable, ctx.Err())
	}

	if reply.err == nil {
		if err := reply.prediction.Validate(); err != nil {
			reply.err = fmt.Errorf("%w: %v", priority.ErrPredictorUnavailable, err)
		}
	}
	if reply.err != nil {
		uc.l.Warnf(ctx, "priority.usecase.consult: falling back to rules: %v", reply.err)
		return fallbackOutcome{local: local, reason: reply.err}
	}

	return externalOutcome{prediction: reply.prediction, local: local}
}
