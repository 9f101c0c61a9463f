package priority

import (
	"errors"
	"fmt"
)

// ValidationError is returned for input that cannot be classified at all.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrEmptyText is returned when the task text is missing or blank.
var ErrEmptyText = &ValidationError{Field: "text", Message: "empty task text"}

var (
	ErrInvalidPriority     = errors.New("invalid priority label")
	ErrInvalidConfidence   = errors.New("confidence out of range")
	ErrMalformedPrediction = errors.New("malformed prediction")

	// ErrPredictorUnavailable wraps every external predictor failure.
	// It never reaches callers of Classify.
	ErrPredictorUnavailable = errors.New("predictor unavailable")

	// ErrPredictorNotConfigured is the fallback reason when no predictor is set.
	ErrPredictorNotConfigured = errors.New("predictor not configured")
)

// CoercionWarning records a non-fatal normalization of a raw input field.
type CoercionWarning struct {
	Field  string
	Value  any
	Reason string
}

func (w CoercionWarning) String() string {
	return fmt.Sprintf("%s: %s (got %#v)", w.Field, w.Reason, w.Value)
}
