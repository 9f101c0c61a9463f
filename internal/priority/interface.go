package priority

import "context"

// UseCase classifies tasks into priorities.
type UseCase interface {
	// Normalize validates raw input and returns the canonical TaskInput.
	// Coercions are logged; the only error is a *ValidationError.
	Normalize(ctx context.Context, raw RawInput) (TaskInput, error)

	// Classify never fails: any predictor problem resolves to the local rules.
	Classify(ctx context.Context, in TaskInput) Result

	// ClassifyRaw is Normalize followed by Classify.
	ClassifyRaw(ctx context.Context, raw RawInput) (Result, error)
}

// Predictor is the external priority predictor.
type Predictor interface {
	Predict(ctx context.Context, input TaskInput) (Prediction, error)
}
