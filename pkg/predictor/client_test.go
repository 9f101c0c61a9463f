package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	if _, err := New("", time.Second); !errors.Is(err, ErrEmptyURL) {
		t.Errorf("expected ErrEmptyURL, got %v", err)
	}

	c, err := New("http://localhost:5000/predict", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, c.httpClient.Timeout)
	}
}

func TestPredict_Success(t *testing.T) {
	var received PredictRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %s", ct)
		}
		json.NewDecoder(r.Body).Decode(&received)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"priority":"high","confidence":87.5,"urgency_score":2,"base_prediction":"medium","aiPredicted":true}`))
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	resp, err := c.Predict(context.Background(), PredictRequest{
		Text:        "Fix customer bug",
		Keywords:    "bug,customer",
		EffortHours: 2,
		IsUrgent:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.Text != "Fix customer bug" || received.Keywords != "bug,customer" || received.EffortHours != 2 || !received.IsUrgent {
		t.Errorf("request body not forwarded: %+v", received)
	}
	if resp.Priority == nil || *resp.Priority != "high" {
		t.Errorf("unexpected priority: %v", resp.Priority)
	}
	if resp.Confidence == nil || *resp.Confidence != 87.5 {
		t.Errorf("unexpected confidence: %v", resp.Confidence)
	}
	if resp.UrgencyScore == nil || *resp.UrgencyScore != 2 {
		t.Errorf("unexpected urgency score: %v", resp.UrgencyScore)
	}
}

func TestPredict_MissingFieldsStayNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"label":"high"}`))
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	resp, err := c.Predict(context.Background(), PredictRequest{Text: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Priority != nil || resp.Confidence != nil || resp.UrgencyScore != nil {
		t.Errorf("expected nil fields, got %+v", resp)
	}
}

func TestPredict_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error with body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"model not loaded","priority":"medium"}`))
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "bad request without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "invalid JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"priority": "high"`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			c, _ := New(ts.URL, time.Second)
			_, err := c.Predict(context.Background(), PredictRequest{Text: "x"})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPredict_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c, _ := New(ts.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := c.Predict(context.Background(), PredictRequest{Text: "x"})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout not honoured, took %v", elapsed)
	}
}

func TestPredict_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c, _ := New(url, time.Second)
	if _, err := c.Predict(context.Background(), PredictRequest{Text: "x"}); err == nil {
		t.Fatal("expected connection error")
	}
}
