package rules

import (
	"math"
	"strings"

	"smart-task-tracker/internal/priority"
)

// Engine is the local rule-based classifier. It is immutable after New and
// safe for concurrent use.
type Engine struct {
	categories []Category
	policy     Policy
}

// Score is the raw outcome of the scoring pass.
type Score struct {
	Value   float64
	Matched []string // names of the categories and signals that fired
}

// New builds an Engine. A nil categories slice selects DefaultCategories.
func New(policy Policy, categories []Category) *Engine {
	if categories == nil {
		categories = DefaultCategories()
	}

	owned := make([]Category, len(categories))
	for i, c := range categories {
		words := make([]string, 0, len(c.Words))
		for _, w := range c.Words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				words = append(words, w)
			}
		}
		owned[i] = Category{Name: c.Name, Weight: c.Weight, Words: words}
	}

	return &Engine{categories: owned, policy: policy.normalized()}
}

// NewDefault builds an Engine with the default policy and keyword table.
func NewDefault() *Engine {
	return New(DefaultPolicy(), nil)
}

// Score runs the keyword table and text signals over in.
func (e *Engine) Score(in priority.TaskInput) Score {
	lower := strings.ToLower(in.Text + " " + in.Keywords)

	var s Score
	for _, c := range e.categories {
		if containsAny(lower, c.Words) {
			s.Value += c.Weight
			s.Matched = append(s.Matched, c.Name)
		}
	}
	for _, sig := range signals {
		if sig.match(in.Text, lower) {
			s.Value += sig.weight
			s.Matched = append(s.Matched, sig.name)
		}
	}
	if adj := lengthSignal(in.Text); adj != 0 {
		s.Value += adj
		s.Matched = append(s.Matched, "length")
	}
	return s
}

// Evaluate classifies in with the local rules. The result is tagged as a
// fallback result; it is exactly what the classifier returns when the
// external predictor is not used.
func (e *Engine) Evaluate(in priority.TaskInput) priority.Result {
	score := e.Score(in)
	label, confidence := threshold(score.Value)
	label = e.policy.apply(label, in)

	return priority.Result{
		Priority:     label,
		Confidence:   confidence,
		UrgencyScore: score.Value,
		Source:       priority.SourceFallback,
	}
}

// threshold maps a raw score to a label and confidence.
func threshold(score float64) (priority.Priority, float64) {
	switch {
	case score >= 4:
		return priority.PriorityHigh, math.Min(0.9, 0.6+(score-4)*0.1)
	case score >= 2:
		return priority.PriorityMedium, 0.7
	case score <= 0:
		return priority.PriorityLow, math.Max(0.6, 0.8-math.Abs(score)*0.1)
	default:
		return priority.PriorityMedium, 0.6
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
