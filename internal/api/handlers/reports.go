package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// ReportsAPI is the facade subset the reports endpoints use.
type ReportsAPI interface {
	GetReports(ctx context.Context, q spapi.ReportsQuery) (*spapi.ResponseEnvelope, error)
	CreateReport(ctx context.Context, spec spapi.CreateReportSpec) (*spapi.ResponseEnvelope, error)
	GetReport(ctx context.Context, reportID string) (*spapi.ResponseEnvelope, error)
	GetReportDocument(ctx context.Context, documentID string) (*spapi.ResponseEnvelope, error)
}

// ReportsHandler proxies report listing, creation, and download requests.
type ReportsHandler struct {
	api ReportsAPI
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(api ReportsAPI) *ReportsHandler {
	return &ReportsHandler{api: api}
}

// ListReportsInput defines the query parameters for listing reports.
type ListReportsInput struct {
	ReportTypes  []string  `query:"report_types,explode"  doc:"Report types to include" example:"GET_MERCHANT_LISTINGS_ALL_DATA"`
	Statuses     []string  `query:"statuses,explode"      doc:"Processing statuses to include" example:"DONE"`
	CreatedSince time.Time `query:"created_since" doc:"Only reports created after this time (RFC 3339)"`
	NextToken    string    `query:"next_token"    doc:"Pagination token from a previous response"`
}

// ListReports proxies a report listing request.
func (h *ReportsHandler) ListReports(ctx context.Context, input *ListReportsInput) (*ProxyOutput, error) {
	env, err := h.api.GetReports(ctx, spapi.ReportsQuery{
		ReportTypes:        input.ReportTypes,
		ProcessingStatuses: input.Statuses,
		CreatedSince:       input.CreatedSince,
		NextToken:          input.NextToken,
	})
	return proxyResult(env, err)
}

// CreateReportInput is the request body for report creation.
type CreateReportInput struct {
	Body struct {
		ReportType     string    `json:"report_type"     minLength:"1" doc:"SP-API report type" example:"GET_FLAT_FILE_OPEN_LISTINGS_DATA"`
		MarketplaceIDs []string  `json:"marketplace_ids" minItems:"1"  doc:"Marketplaces the report covers"`
		StartTime      time.Time `json:"start_time,omitempty"          doc:"Report data window start"`
		EndTime        time.Time `json:"end_time,omitempty"            doc:"Report data window end"`
	}
}

// CreateReport proxies a report-generation request.
func (h *ReportsHandler) CreateReport(ctx context.Context, input *CreateReportInput) (*ProxyOutput, error) {
	env, err := h.api.CreateReport(ctx, spapi.CreateReportSpec{
		ReportType:     input.Body.ReportType,
		MarketplaceIDs: input.Body.MarketplaceIDs,
		DataStartTime:  input.Body.StartTime,
		DataEndTime:    input.Body.EndTime,
	})
	return proxyResult(env, err)
}

// GetReportInput identifies one report.
type GetReportInput struct {
	ReportID string `path:"reportId" doc:"Report ID"`
}

// GetReport proxies a report status request.
func (h *ReportsHandler) GetReport(ctx context.Context, input *GetReportInput) (*ProxyOutput, error) {
	env, err := h.api.GetReport(ctx, input.ReportID)
	return proxyResult(env, err)
}

// GetReportDocumentInput identifies one report document.
type GetReportDocumentInput struct {
	DocumentID string `path:"documentId" doc:"Report document ID"`
}

// GetReportDocument proxies a report document descriptor request.
func (h *ReportsHandler) GetReportDocument(ctx context.Context, input *GetReportDocumentInput) (*ProxyOutput, error) {
	env, err := h.api.GetReportDocument(ctx, input.DocumentID)
	return proxyResult(env, err)
}

// RegisterReportsRoutes registers the reports endpoints with the Huma API.
func RegisterReportsRoutes(api huma.API, h *ReportsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-reports",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports",
		Summary:     "List reports",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListReports)

	huma.Register(api, huma.Operation{
		OperationID: "create-report",
		Method:      http.MethodPost,
		Path:        "/api/v1/reports",
		Summary:     "Request report generation",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusBadGateway},
	}, h.CreateReport)

	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports/{reportId}",
		Summary:     "Get report status",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetReport)

	huma.Register(api, huma.Operation{
		OperationID: "get-report-document",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports/documents/{documentId}",
		Summary:     "Get a report document descriptor",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetReportDocument)
}
