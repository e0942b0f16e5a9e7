package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// LimitsHandler exposes the outbound rate limiter's current usage.
type LimitsHandler struct {
	limiter *spapi.CategoryLimiter
}

// NewLimitsHandler creates a new LimitsHandler.
func NewLimitsHandler(limiter *spapi.CategoryLimiter) *LimitsHandler {
	return &LimitsHandler{limiter: limiter}
}

// CategoryLimit is one category's budget and current window usage.
type CategoryLimit struct {
	Category    string `json:"category"     example:"orders"  doc:"Rate-limit category name"`
	MaxRequests int    `json:"max_requests" example:"1"       doc:"Calls allowed per window"`
	PeriodMs    int64  `json:"period_ms"    example:"1000"    doc:"Window length in milliseconds"`
	Used        int    `json:"used"         example:"0"       doc:"Calls recorded in the current window"`
}

// LimitsOutput is the response body for the limits endpoint.
type LimitsOutput struct {
	Body struct {
		Categories []CategoryLimit `json:"categories" doc:"Per-category usage, sorted by name"`
	}
}

// GetLimits returns the current per-category rate-limit usage.
func (h *LimitsHandler) GetLimits(_ context.Context, _ *struct{}) (*LimitsOutput, error) {
	out := &LimitsOutput{}
	if h.limiter == nil {
		return out, nil
	}

	snapshot := h.limiter.Snapshot()
	for category, usage := range snapshot {
		out.Body.Categories = append(out.Body.Categories, CategoryLimit{
			Category:    category,
			MaxRequests: usage.MaxRequests,
			PeriodMs:    usage.Period.Milliseconds(),
			Used:        usage.Used,
		})
	}
	sort.Slice(out.Body.Categories, func(i, j int) bool {
		return out.Body.Categories[i].Category < out.Body.Categories[j].Category
	})

	return out, nil
}

// RegisterLimitsRoutes registers the limits endpoint with the Huma API.
func RegisterLimitsRoutes(api huma.API, h *LimitsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-limits",
		Method:      http.MethodGet,
		Path:        "/api/v1/limits",
		Summary:     "Get SP-API rate-limit usage",
		Description: "Returns each rate-limit category's budget and how much of the current window is used.",
		Tags:        []string{"limits"},
	}, h.GetLimits)
}
