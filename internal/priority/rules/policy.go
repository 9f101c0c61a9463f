package rules

import (
	"strings"

	"smart-task-tracker/internal/priority"
)

// Policy decides how a user-declared urgency flag changes the scored label.
type Policy struct {
	// EscalateOnUrgent moves an urgent task one step up (low→medium→high→critical).
	EscalateOnUrgent bool

	// ForceCritical makes an urgent task critical when it is small
	// (EffortHours <= ForceCriticalMaxEffort) or its keywords mention one of
	// ForceCriticalKeywords. Takes precedence over EscalateOnUrgent.
	ForceCritical          bool
	ForceCriticalMaxEffort float64
	ForceCriticalKeywords  []string
}

// DefaultPolicy returns the standard urgency policy.
func DefaultPolicy() Policy {
	return Policy{
		EscalateOnUrgent:       true,
		ForceCritical:          true,
		ForceCriticalMaxEffort: 2,
		ForceCriticalKeywords:  []string{"deadline", "due", "submit"},
	}
}

func (p Policy) normalized() Policy {
	out := p
	out.ForceCriticalKeywords = make([]string, 0, len(p.ForceCriticalKeywords))
	for _, kw := range p.ForceCriticalKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out.ForceCriticalKeywords = append(out.ForceCriticalKeywords, kw)
		}
	}
	return out
}

// apply returns the label after urgency overrides. It never lowers base.
func (p Policy) apply(base priority.Priority, in priority.TaskInput) priority.Priority {
	if !in.IsUrgent {
		return base
	}
	if p.ForceCritical && p.forcesCritical(in) {
		return priority.PriorityCritical
	}
	if p.EscalateOnUrgent {
		return base.Escalate()
	}
	return base
}

func (p Policy) forcesCritical(in priority.TaskInput) bool {
	if in.EffortHours <= p.ForceCriticalMaxEffort {
		return true
	}
	keywords := strings.ToLower(in.Keywords)
	for _, kw := range p.ForceCriticalKeywords {
		if strings.Contains(keywords, kw) {
			return true
		}
	}
	return false
}
