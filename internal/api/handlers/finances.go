package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// FinancesAPI is the facade subset the finances endpoint uses.
type FinancesAPI interface {
	ListFinancialEvents(ctx context.Context, q spapi.FinancesQuery) (*spapi.ResponseEnvelope, error)
}

// FinancesHandler proxies financial event requests.
type FinancesHandler struct {
	api FinancesAPI
}

// NewFinancesHandler creates a new FinancesHandler.
func NewFinancesHandler(api FinancesAPI) *FinancesHandler {
	return &FinancesHandler{api: api}
}

// ListFinancesInput defines the query parameters for financial events.
type ListFinancesInput struct {
	PostedAfter  time.Time `query:"posted_after"  doc:"Only events posted after this time (RFC 3339)"`
	PostedBefore time.Time `query:"posted_before" doc:"Only events posted before this time (RFC 3339)"`
	MaxResults   int       `query:"max_results"   doc:"Maximum events per page" example:"100"`
	NextToken    string    `query:"next_token"    doc:"Pagination token from a previous response"`
}

// ListFinances proxies a financial events request.
func (h *FinancesHandler) ListFinances(ctx context.Context, input *ListFinancesInput) (*ProxyOutput, error) {
	env, err := h.api.ListFinancialEvents(ctx, spapi.FinancesQuery{
		PostedAfter:  input.PostedAfter,
		PostedBefore: input.PostedBefore,
		MaxResults:   input.MaxResults,
		NextToken:    input.NextToken,
	})
	return proxyResult(env, err)
}

// RegisterFinancesRoutes registers the finances endpoint with the Huma API.
func RegisterFinancesRoutes(api huma.API, h *FinancesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-finances",
		Method:      http.MethodGet,
		Path:        "/api/v1/finances",
		Summary:     "List financial events",
		Tags:        []string{"finances"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListFinances)
}
