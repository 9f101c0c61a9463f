package priority

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Extract turns raw input into a canonical TaskInput.
// Blank text fails with ErrEmptyText; every other problem is defaulted and
// reported as a CoercionWarning.
func Extract(raw RawInput) (Extraction, error) {
	text := strings.TrimSpace(raw.Text)
	if text == "" {
		return Extraction{}, ErrEmptyText
	}

	out := Extraction{
		Input: TaskInput{
			Text:     text,
			Keywords: strings.TrimSpace(raw.Keywords),
		},
	}

	effort, warn := coerceEffortHours(raw.EffortHours)
	out.Input.EffortHours = effort
	if warn != nil {
		out.Warnings = append(out.Warnings, *warn)
	}

	urgent, warn := coerceUrgent(raw.IsUrgent)
	out.Input.IsUrgent = urgent
	if warn != nil {
		out.Warnings = append(out.Warnings, *warn)
	}

	return out, nil
}

func coerceEffortHours(v any) (float64, *CoercionWarning) {
	if isAbsent(v) {
		return DefaultEffortHours, nil
	}

	invalid := &CoercionWarning{Field: "effort_hours", Value: v, Reason: "not a non-negative number, using default 1.0"}

	// cast turns booleans into 0/1, which is not an effort estimate.
	if _, ok := v.(bool); ok {
		return DefaultEffortHours, invalid
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return DefaultEffortHours, invalid
	}
	return f, nil
}

func coerceUrgent(v any) (bool, *CoercionWarning) {
	if isAbsent(v) {
		return false, nil
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if s, ok := v.(string); ok {
		v = strings.ToLower(strings.TrimSpace(s))
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, &CoercionWarning{Field: "is_urgent", Value: v, Reason: "not a boolean, using false"}
	}
	return b, &CoercionWarning{Field: "is_urgent", Value: v, Reason: "coerced to boolean"}
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
