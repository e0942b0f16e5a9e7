package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// ShipmentsAPI is the facade subset the shipments endpoints use.
type ShipmentsAPI interface {
	ListFulfillmentOrders(ctx context.Context, q spapi.FulfillmentQuery) (*spapi.ResponseEnvelope, error)
	GetFulfillmentOrder(ctx context.Context, sellerFulfillmentOrderID string) (*spapi.ResponseEnvelope, error)
}

// ShipmentsHandler proxies FBA outbound shipment requests.
type ShipmentsHandler struct {
	api ShipmentsAPI
}

// NewShipmentsHandler creates a new ShipmentsHandler.
func NewShipmentsHandler(api ShipmentsAPI) *ShipmentsHandler {
	return &ShipmentsHandler{api: api}
}

// ListShipmentsInput defines the query parameters for listing shipments.
type ListShipmentsInput struct {
	Since     time.Time `query:"since"      doc:"Only fulfillment orders updated after this time (RFC 3339)"`
	NextToken string    `query:"next_token" doc:"Pagination token from a previous response"`
}

// ListShipments proxies a fulfillment order listing request.
func (h *ShipmentsHandler) ListShipments(ctx context.Context, input *ListShipmentsInput) (*ProxyOutput, error) {
	env, err := h.api.ListFulfillmentOrders(ctx, spapi.FulfillmentQuery{
		QueryStartDate: input.Since,
		NextToken:      input.NextToken,
	})
	return proxyResult(env, err)
}

// GetShipmentInput identifies one fulfillment order.
type GetShipmentInput struct {
	OrderID string `path:"orderId" doc:"Seller fulfillment order ID"`
}

// GetShipment proxies a single fulfillment order request.
func (h *ShipmentsHandler) GetShipment(ctx context.Context, input *GetShipmentInput) (*ProxyOutput, error) {
	env, err := h.api.GetFulfillmentOrder(ctx, input.OrderID)
	return proxyResult(env, err)
}

// RegisterShipmentsRoutes registers the shipments endpoints with the Huma API.
func RegisterShipmentsRoutes(api huma.API, h *ShipmentsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-shipments",
		Method:      http.MethodGet,
		Path:        "/api/v1/shipments",
		Summary:     "List FBA outbound fulfillment orders",
		Tags:        []string{"shipments"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListShipments)

	huma.Register(api, huma.Operation{
		OperationID: "get-shipment",
		Method:      http.MethodGet,
		Path:        "/api/v1/shipments/{orderId}",
		Summary:     "Get one fulfillment order",
		Tags:        []string{"shipments"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetShipment)
}
