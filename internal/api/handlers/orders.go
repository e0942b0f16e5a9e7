package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// OrdersAPI is the facade subset the orders endpoints use.
type OrdersAPI interface {
	GetOrders(ctx context.Context, q spapi.OrdersQuery) (*spapi.ResponseEnvelope, error)
	GetOrder(ctx context.Context, orderID string) (*spapi.ResponseEnvelope, error)
	GetOrderItems(ctx context.Context, orderID string) (*spapi.ResponseEnvelope, error)
}

// OrdersHandler proxies order listing and detail requests.
type OrdersHandler struct {
	api OrdersAPI
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(api OrdersAPI) *OrdersHandler {
	return &OrdersHandler{api: api}
}

// ListOrdersInput defines the query parameters for listing orders.
type ListOrdersInput struct {
	MarketplaceIDs []string  `query:"marketplace_ids,explode" doc:"Marketplace IDs to query" example:"ATVPDKIKX0DER"`
	CreatedAfter   time.Time `query:"created_after"   doc:"Only orders created after this time (RFC 3339)"`
	CreatedBefore  time.Time `query:"created_before"  doc:"Only orders created before this time (RFC 3339)"`
	Statuses       []string  `query:"statuses,explode"        doc:"Order statuses to include" example:"Unshipped"`
	MaxResults     int       `query:"max_results"     doc:"Maximum orders per page" example:"50"`
	NextToken      string    `query:"next_token"      doc:"Pagination token from a previous response"`
}

// ListOrders proxies an order listing request.
func (h *OrdersHandler) ListOrders(ctx context.Context, input *ListOrdersInput) (*ProxyOutput, error) {
	env, err := h.api.GetOrders(ctx, spapi.OrdersQuery{
		MarketplaceIDs: input.MarketplaceIDs,
		CreatedAfter:   input.CreatedAfter,
		CreatedBefore:  input.CreatedBefore,
		OrderStatuses:  input.Statuses,
		MaxResults:     input.MaxResults,
		NextToken:      input.NextToken,
	})
	return proxyResult(env, err)
}

// GetOrderInput identifies one order.
type GetOrderInput struct {
	OrderID string `path:"orderId" doc:"Amazon order ID" example:"902-3159896-1390916"`
}

// GetOrder proxies a single-order request.
func (h *OrdersHandler) GetOrder(ctx context.Context, input *GetOrderInput) (*ProxyOutput, error) {
	env, err := h.api.GetOrder(ctx, input.OrderID)
	return proxyResult(env, err)
}

// GetOrderItems proxies an order line-item request.
func (h *OrdersHandler) GetOrderItems(ctx context.Context, input *GetOrderInput) (*ProxyOutput, error) {
	env, err := h.api.GetOrderItems(ctx, input.OrderID)
	return proxyResult(env, err)
}

// RegisterOrdersRoutes registers the orders endpoints with the Huma API.
func RegisterOrdersRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List orders",
		Description: "Proxies an Orders API listing request and returns the raw payload.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListOrders)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{orderId}",
		Summary:     "Get one order",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetOrder)

	huma.Register(api, huma.Operation{
		OperationID: "get-order-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{orderId}/items",
		Summary:     "Get an order's line items",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetOrderItems)
}
