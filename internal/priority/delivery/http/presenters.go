package http

import "smart-task-tracker/internal/priority"

// --- Request DTOs ---

type classifyReq struct {
	Text        string `json:"text"`
	Keywords    string `json:"keywords"`
	EffortHours any    `json:"effort_hours" swaggertype:"number"`
	IsUrgent    any    `json:"is_urgent" swaggertype:"boolean"`
}

func (r classifyReq) toInput() priority.RawInput {
	return priority.RawInput{
		Text:        r.Text,
		Keywords:    r.Keywords,
		EffortHours: r.EffortHours,
		IsUrgent:    r.IsUrgent,
	}
}

// --- Response DTOs ---

// ResultResp is the JSON form of a priority.Result. The task delivery layer
// embeds it too.
type ResultResp struct {
	Priority       string  `json:"priority"`
	Confidence     float64 `json:"confidence"`
	UrgencyScore   float64 `json:"urgency_score"`
	Source         string  `json:"source"`
	BasePrediction string  `json:"base_prediction,omitempty"`
	BaseConfidence float64 `json:"base_confidence,omitempty"`
	FallbackReason string  `json:"fallback_reason,omitempty"`
}

// NewResultResp converts a priority.Result to its JSON form.
func NewResultResp(r priority.Result) ResultResp {
	return ResultResp{
		Priority:       string(r.Priority),
		Confidence:     r.Confidence,
		UrgencyScore:   r.UrgencyScore,
		Source:         string(r.Source),
		BasePrediction: string(r.BasePrediction),
		BaseConfidence: r.BaseConfidence,
		FallbackReason: r.FallbackReason,
	}
}
