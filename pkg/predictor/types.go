package predictor

// PredictRequest is the body sent to the prediction endpoint.
type PredictRequest struct {
	Text        string  `json:"text"`
	Keywords    string  `json:"keywords"`
	EffortHours float64 `json:"effort_hours"`
	IsUrgent    bool    `json:"is_urgent"`
}

// PredictResponse is the endpoint's answer. Pointer fields stay nil when the
// field is missing so callers can tell "absent" from zero. Unknown fields
// are ignored.
type PredictResponse struct {
	Priority     *string  `json:"priority"`
	Confidence   *float64 `json:"confidence"`
	UrgencyScore *float64 `json:"urgency_score"`
}

// ErrorResponse is the error body some predictors send with a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
