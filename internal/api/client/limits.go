package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// CategoryLimit is one rate-limit category's budget and current usage.
type CategoryLimit struct {
	Category    string `json:"category"`
	MaxRequests int    `json:"max_requests"`
	PeriodMs    int64  `json:"period_ms"`
	Used        int    `json:"used"`
}

// GetLimits returns the proxy's per-category rate-limit usage.
func (c *Client) GetLimits(ctx context.Context) ([]CategoryLimit, error) {
	var resp struct {
		Categories []CategoryLimit `json:"categories"`
	}
	if err := c.get(ctx, "/api/v1/limits", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// ReadyReport is the readiness probe result.
type ReadyReport struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing,omitempty"`
}

// Readyz returns the server's readiness report. Unlike the other
// methods it decodes the body even on 503, since that is where the
// missing credential names live.
func (c *Client) Readyz(ctx context.Context) (*ReadyReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/readyz", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var report ReadyReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &report, nil
}
