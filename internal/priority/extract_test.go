package priority_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-tracker/internal/priority"
)

func TestExtract_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := priority.Extract(priority.RawInput{Text: text})
		require.Error(t, err)

		var vErr *priority.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "empty task text", vErr.Error())
	}
}

func TestExtract_TrimsTextAndKeywords(t *testing.T) {
	ext, err := priority.Extract(priority.RawInput{
		Text:     "  Submit report  ",
		Keywords: " deadline, work ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Submit report", ext.Input.Text)
	assert.Equal(t, "deadline, work", ext.Input.Keywords)
	assert.Equal(t, priority.DefaultEffortHours, ext.Input.EffortHours)
	assert.False(t, ext.Input.IsUrgent)
	assert.Empty(t, ext.Warnings)
}

func TestExtract_EffortHours(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		want     float64
		wantWarn bool
	}{
		{name: "absent", raw: nil, want: 1.0},
		{name: "blank string", raw: "  ", want: 1.0},
		{name: "float", raw: 2.5, want: 2.5},
		{name: "int", raw: 3, want: 3},
		{name: "zero", raw: 0.0, want: 0},
		{name: "numeric string", raw: " 4.5 ", want: 4.5},
		{name: "garbage string", raw: "a few", want: 1.0, wantWarn: true},
		{name: "negative", raw: -2.0, want: 1.0, wantWarn: true},
		{name: "NaN", raw: math.NaN(), want: 1.0, wantWarn: true},
		{name: "infinity", raw: math.Inf(1), want: 1.0, wantWarn: true},
		{name: "bool", raw: true, want: 1.0, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := priority.Extract(priority.RawInput{Text: "task", EffortHours: tt.raw})
			require.NoError(t, err)

			assert.Equal(t, tt.want, ext.Input.EffortHours)
			if tt.wantWarn {
				require.Len(t, ext.Warnings, 1)
				assert.Equal(t, "effort_hours", ext.Warnings[0].Field)
			} else {
				assert.Empty(t, ext.Warnings)
			}
		})
	}
}

func TestExtract_IsUrgent(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		want     bool
		wantWarn bool
	}{
		{name: "absent", raw: nil, want: false},
		{name: "bool true", raw: true, want: true},
		{name: "bool false", raw: false, want: false},
		{name: "string true", raw: "true", want: true, wantWarn: true},
		{name: "string TRUE", raw: " TRUE ", want: true, wantWarn: true},
		{name: "string 1", raw: "1", want: true, wantWarn: true},
		{name: "number 1", raw: 1, want: true, wantWarn: true},
		{name: "float 0", raw: 0.0, want: false, wantWarn: true},
		{name: "string false", raw: "false", want: false, wantWarn: true},
		{name: "garbage", raw: "perhaps", want: false, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := priority.Extract(priority.RawInput{Text: "task", IsUrgent: tt.raw})
			require.NoError(t, err)

			assert.Equal(t, tt.want, ext.Input.IsUrgent)
			if tt.wantWarn {
				require.Len(t, ext.Warnings, 1)
				assert.Equal(t, "is_urgent", ext.Warnings[0].Field)
				assert.NotEmpty(t, ext.Warnings[0].String())
			} else {
				assert.Empty(t, ext.Warnings)
			}
		})
	}
}

func TestPriority_Ordering(t *testing.T) {
	assert.Equal(t, priority.PriorityMedium, priority.PriorityLow.Escalate())
	assert.Equal(t, priority.PriorityHigh, priority.PriorityMedium.Escalate())
	assert.Equal(t, priority.PriorityCritical, priority.PriorityHigh.Escalate())
	assert.Equal(t, priority.PriorityCritical, priority.PriorityCritical.Escalate())

	for i := 1; i < len(priority.Priorities); i++ {
		assert.Greater(t, priority.Priorities[i-1].Rank(), priority.Priorities[i].Rank())
	}
	assert.False(t, priority.Priority("urgent").Valid())
}

func TestParsePriority(t *testing.T) {
	p, err := priority.ParsePriority("  HIGH ")
	require.NoError(t, err)
	assert.Equal(t, priority.PriorityHigh, p)

	_, err = priority.ParsePriority("blocker")
	assert.ErrorIs(t, err, priority.ErrInvalidPriority)

	_, err = priority.ParsePriority("")
	assert.ErrorIs(t, err, priority.ErrInvalidPriority)
}

func TestPrediction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pred    priority.Prediction
		wantErr error
	}{
		{name: "valid", pred: priority.Prediction{Priority: priority.PriorityLow, Confidence: 0.8}},
		{name: "bad label", pred: priority.Prediction{Priority: "soon", Confidence: 0.8}, wantErr: priority.ErrInvalidPriority},
		{name: "empty label", pred: priority.Prediction{Confidence: 0.8}, wantErr: priority.ErrInvalidPriority},
		{name: "confidence above 1", pred: priority.Prediction{Priority: priority.PriorityHigh, Confidence: 1.5}, wantErr: priority.ErrInvalidConfidence},
		{name: "negative confidence", pred: priority.Prediction{Priority: priority.PriorityHigh, Confidence: -0.1}, wantErr: priority.ErrInvalidConfidence},
		{name: "NaN score", pred: priority.Prediction{Priority: priority.PriorityHigh, Confidence: 0.5, UrgencyScore: math.NaN()}, wantErr: priority.ErrMalformedPrediction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pred.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
