package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 2 * time.Second

	maxResponseBytes = 1 << 20
)

var (
	ErrEmptyURL         = errors.New("predictor URL is required")
	ErrUnexpectedStatus = errors.New("unexpected status from predictor")
)

// Client calls an external priority prediction endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a new predictor client. timeout <= 0 selects DefaultTimeout.
func New(url string, timeout time.Duration) (*Client, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Predict sends one request. It never retries.
func (c *Client) Predict(ctx context.Context, req PredictRequest) (*PredictResponse, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call predictor: %w", err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseBytes)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp ErrorResponse
		if jsonErr := json.NewDecoder(body).Decode(&errResp); jsonErr == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%w (%d): %s", ErrUnexpectedStatus, resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var predResp PredictResponse
	if err := json.NewDecoder(body).Decode(&predResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &predResp, nil
}
