package spapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const categoryReports = "reports"

// ReportsQuery defines the parameters for listing reports.
type ReportsQuery struct {
	ReportTypes        []string
	ProcessingStatuses []string
	MarketplaceIDs     []string
	CreatedSince       time.Time
	PageSize           int
	NextToken          string
}

// GetReports lists reports matching the query.
func (c *Client) GetReports(ctx context.Context, q ReportsQuery) (*ResponseEnvelope, error) {
	params := url.Values{}
	if len(q.ReportTypes) > 0 {
		params.Set("reportTypes", strings.Join(q.ReportTypes, ","))
	}
	if len(q.ProcessingStatuses) > 0 {
		params.Set("processingStatuses", strings.Join(q.ProcessingStatuses, ","))
	}
	if len(q.MarketplaceIDs) > 0 {
		params.Set("marketplaceIds", strings.Join(q.MarketplaceIDs, ","))
	}
	if !q.CreatedSince.IsZero() {
		params.Set("createdSince", q.CreatedSince.UTC().Format(time.RFC3339))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.NextToken != "" {
		params.Set("nextToken", q.NextToken)
	}

	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/reports/2021-06-30/reports",
		Query:    params,
		Category: categoryReports,
	})
}

// CreateReportSpec describes a report-generation request.
type CreateReportSpec struct {
	ReportType     string    `json:"reportType"`
	MarketplaceIDs []string  `json:"marketplaceIds"`
	DataStartTime  time.Time `json:"dataStartTime,omitzero"`
	DataEndTime    time.Time `json:"dataEndTime,omitzero"`
}

// CreateReport requests generation of a new report.
func (c *Client) CreateReport(ctx context.Context, spec CreateReportSpec) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodPost,
		Path:     "/reports/2021-06-30/reports",
		Body:     spec,
		Category: categoryReports,
	})
}

// GetReport fetches the processing status of one report.
func (c *Client) GetReport(ctx context.Context, reportID string) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/reports/2021-06-30/reports/" + url.PathEscape(reportID),
		Category: categoryReports,
	})
}

// GetReportDocument fetches the download descriptor for a finished
// report document.
func (c *Client) GetReportDocument(ctx context.Context, documentID string) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/reports/2021-06-30/documents/" + url.PathEscape(documentID),
		Category: categoryReports,
	})
}
