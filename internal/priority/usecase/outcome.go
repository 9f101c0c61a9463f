package usecase

import "smart-task-tracker/internal/priority"

// outcome is either an external answer or a local fallback. Both branches
// carry the local rule result, so resolving never yields an empty label.
type outcome interface {
	resolve() priority.Result
}

type externalOutcome struct {
	prediction priority.Prediction
	local      priority.Result
}

func (o externalOutcome) resolve() priority.Result {
	return priority.Result{
		Priority:       o.prediction.Priority,
		Confidence:     o.prediction.Confidence,
		UrgencyScore:   o.prediction.UrgencyScore,
		Source:         priority.SourceExternal,
		BasePrediction: o.local.Priority,
		BaseConfidence: o.local.Confidence,
	}
}

type fallbackOutcome struct {
	local  priority.Result
	reason error
}

func (o fallbackOutcome) resolve() priority.Result {
	r := o.local
	r.Source = priority.SourceFallback
	r.BasePrediction = ""
	r.BaseConfidence = 0
	if o.reason != nil {
		r.FallbackReason = o.reason.Error()
	}
	return r
}
