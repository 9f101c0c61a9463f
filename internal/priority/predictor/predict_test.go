package predictor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-tracker/internal/priority"
	"smart-task-tracker/pkg/log"
	pkgPredictor "smart-task-tracker/pkg/predictor"
)

type mockClient struct {
	resp *pkgPredictor.PredictResponse
	err  error
	got  pkgPredictor.PredictRequest
}

func (m *mockClient) Predict(ctx context.Context, req pkgPredictor.PredictRequest) (*pkgPredictor.PredictResponse, error) {
	m.got = req
	return m.resp, m.err
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestPredict_ForwardsCanonicalInput(t *testing.T) {
	client := &mockClient{resp: &pkgPredictor.PredictResponse{
		Priority:   strPtr("low"),
		Confidence: floatPtr(0.4),
	}}
	p := New(client, log.NewNop())

	in := priority.TaskInput{Text: "Water plants", Keywords: "home", EffortHours: 0.5, IsUrgent: true}
	pred, err := p.Predict(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, pkgPredictor.PredictRequest{Text: "Water plants", Keywords: "home", EffortHours: 0.5, IsUrgent: true}, client.got)
	assert.Equal(t, priority.Prediction{Priority: priority.PriorityLow, Confidence: 0.4}, pred)
}

func TestPredict_Conversion(t *testing.T) {
	tests := []struct {
		name    string
		resp    *pkgPredictor.PredictResponse
		want    priority.Prediction
		wantErr bool
	}{
		{
			name: "percentage confidence",
			resp: &pkgPredictor.PredictResponse{Priority: strPtr("CRITICAL"), Confidence: floatPtr(98), UrgencyScore: floatPtr(3)},
			want: priority.Prediction{Priority: priority.PriorityCritical, Confidence: 0.98, UrgencyScore: 3},
		},
		{
			name: "fractional confidence",
			resp: &pkgPredictor.PredictResponse{Priority: strPtr("medium"), Confidence: floatPtr(0.61)},
			want: priority.Prediction{Priority: priority.PriorityMedium, Confidence: 0.61},
		},
		{
			name: "exactly one is a fraction",
			resp: &pkgPredictor.PredictResponse{Priority: strPtr("high"), Confidence: floatPtr(1)},
			want: priority.Prediction{Priority: priority.PriorityHigh, Confidence: 1},
		},
		{name: "nil response", resp: nil, wantErr: true},
		{name: "missing priority", resp: &pkgPredictor.PredictResponse{Confidence: floatPtr(0.5)}, wantErr: true},
		{name: "unknown priority", resp: &pkgPredictor.PredictResponse{Priority: strPtr("blocker"), Confidence: floatPtr(0.5)}, wantErr: true},
		{name: "missing confidence", resp: &pkgPredictor.PredictResponse{Priority: strPtr("high")}, wantErr: true},
		{name: "confidence above 100", resp: &pkgPredictor.PredictResponse{Priority: strPtr("high"), Confidence: floatPtr(140)}, wantErr: true},
		{name: "negative confidence", resp: &pkgPredictor.PredictResponse{Priority: strPtr("high"), Confidence: floatPtr(-1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&mockClient{resp: tt.resp}, log.NewNop())

			got, err := p.Predict(context.Background(), priority.TaskInput{Text: "task"})
			if tt.wantErr {
				assert.ErrorIs(t, err, priority.ErrPredictorUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Priority, got.Priority)
			assert.InDelta(t, tt.want.Confidence, got.Confidence, 1e-9)
			assert.InDelta(t, tt.want.UrgencyScore, got.UrgencyScore, 1e-9)
		})
	}
}

func TestPredict_TransportErrorIsWrapped(t *testing.T) {
	p := New(&mockClient{err: errors.New("connection refused")}, log.NewNop())

	_, err := p.Predict(context.Background(), priority.TaskInput{Text: "task"})
	assert.ErrorIs(t, err, priority.ErrPredictorUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}
