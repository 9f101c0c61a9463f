package priority

import (
	"fmt"
	"math"
	"strings"
)

// Priority is a task priority label, ordered critical > high > medium > low.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Priorities lists every label from most to least urgent.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Rank orders labels: low=0 ... critical=3. Unknown labels rank -1.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		return -1
	}
}

// Valid reports whether p is one of the four labels.
func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Escalate returns the next more urgent label. Critical stays critical.
func (p Priority) Escalate() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityCritical
	}
}

// ParsePriority accepts any casing and surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Source tells where a Result came from.
type Source string

const (
	SourceExternal Source = "external"
	SourceFallback Source = "fallback"
)

// DefaultEffortHours replaces a missing or unusable effort estimate.
const DefaultEffortHours = 1.0

// RawInput is the loosely typed input as decoded from a request.
// EffortHours and IsUrgent hold whatever JSON produced: number, string, bool or nil.
type RawInput struct {
	Text        string
	Keywords    string
	EffortHours any
	IsUrgent    any
}

// TaskInput is the canonical scoring input.
type TaskInput struct {
	Text        string
	Keywords    string
	EffortHours float64
	IsUrgent    bool
}

// Extraction is the output of Extract: the canonical input plus any
// coercions applied on the way.
type Extraction struct {
	Input    TaskInput
	Warnings []CoercionWarning
}

// Result is a priority classification.
type Result struct {
	Priority     Priority
	Confidence   float64 // [0,1]
	UrgencyScore float64 // raw score before thresholding, diagnostic only
	Source       Source

	// Local rule result kept next to an external answer.
	BasePrediction Priority
	BaseConfidence float64

	// Why the local rules were used. Empty for external results.
	FallbackReason string
}

// Prediction is an answer from the external predictor.
type Prediction struct {
	Priority     Priority
	Confidence   float64
	UrgencyScore float64
}

// Validate checks the label and confidence range.
func (p Prediction) Validate() error {
	if !p.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, p.Priority)
	}
	if math.IsNaN(p.Confidence) || p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidConfidence, p.Confidence)
	}
	if math.IsNaN(p.UrgencyScore) || math.IsInf(p.UrgencyScore, 0) {
		return fmt.Errorf("%w: urgency score %v", ErrMalformedPrediction, p.UrgencyScore)
	}
	return nil
}
