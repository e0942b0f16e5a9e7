package client

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// ReportsParams filters a report listing request.
type ReportsParams struct {
	ReportTypes  []string
	Statuses     []string
	CreatedSince time.Time
	NextToken    string
}

// ListReports returns the raw Reports API payload for the given filters.
func (c *Client) ListReports(ctx context.Context, p ReportsParams) (json.RawMessage, error) {
	q := url.Values{}
	for _, rt := range p.ReportTypes {
		q.Add("report_types", rt)
	}
	for _, s := range p.Statuses {
		q.Add("statuses", s)
	}
	if !p.CreatedSince.IsZero() {
		q.Set("created_since", p.CreatedSince.UTC().Format(time.RFC3339))
	}
	if p.NextToken != "" {
		q.Set("next_token", p.NextToken)
	}

	return c.getPayload(ctx, "/api/v1/reports", q)
}

// CreateReportRequest describes a report to generate.
type CreateReportRequest struct {
	ReportType     string    `json:"report_type"`
	MarketplaceIDs []string  `json:"marketplace_ids"`
	StartTime      time.Time `json:"start_time,omitzero"`
	EndTime        time.Time `json:"end_time,omitzero"`
}

// CreateReport requests generation of a new report and returns the raw
// creation payload.
func (c *Client) CreateReport(ctx context.Context, req CreateReportRequest) (json.RawMessage, error) {
	return c.postPayload(ctx, "/api/v1/reports", req)
}

// GetReport returns the raw processing-status payload for one report.
func (c *Client) GetReport(ctx context.Context, reportID string) (json.RawMessage, error) {
	return c.getPayload(ctx, "/api/v1/reports/"+url.PathEscape(reportID), nil)
}

// GetReportDocument returns the raw download descriptor for a finished
// report document.
func (c *Client) GetReportDocument(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.getPayload(ctx, "/api/v1/reports/documents/"+url.PathEscape(documentID), nil)
}
