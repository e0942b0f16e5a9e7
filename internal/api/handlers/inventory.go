package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// InventoryAPI is the facade subset the inventory endpoint uses.
type InventoryAPI interface {
	GetInventorySummaries(ctx context.Context, q spapi.InventoryQuery) (*spapi.ResponseEnvelope, error)
}

// InventoryHandler proxies FBA inventory summary requests.
type InventoryHandler struct {
	api InventoryAPI
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(api InventoryAPI) *InventoryHandler {
	return &InventoryHandler{api: api}
}

// ListInventoryInput defines the query parameters for inventory summaries.
type ListInventoryInput struct {
	MarketplaceID string   `query:"marketplace_id" doc:"Marketplace ID" example:"ATVPDKIKX0DER"`
	SKUs          []string `query:"skus,explode"   doc:"Seller SKUs to filter by"`
	Details       bool     `query:"details"        doc:"Include per-SKU detail breakdown"`
	NextToken     string   `query:"next_token"     doc:"Pagination token from a previous response"`
}

// ListInventory proxies an inventory summaries request.
func (h *InventoryHandler) ListInventory(ctx context.Context, input *ListInventoryInput) (*ProxyOutput, error) {
	env, err := h.api.GetInventorySummaries(ctx, spapi.InventoryQuery{
		MarketplaceID: input.MarketplaceID,
		SellerSKUs:    input.SKUs,
		Details:       input.Details,
		NextToken:     input.NextToken,
	})
	return proxyResult(env, err)
}

// RegisterInventoryRoutes registers the inventory endpoint with the Huma API.
func RegisterInventoryRoutes(api huma.API, h *InventoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-inventory",
		Method:      http.MethodGet,
		Path:        "/api/v1/inventory",
		Summary:     "List FBA inventory summaries",
		Tags:        []string{"inventory"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListInventory)
}
