package spapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const categoryOrders = "orders"

// OrdersQuery defines the parameters for listing orders.
type OrdersQuery struct {
	MarketplaceIDs      []string
	CreatedAfter        time.Time
	CreatedBefore       time.Time
	OrderStatuses       []string
	FulfillmentChannels []string
	MaxResults          int
	NextToken           string
}

// GetOrders lists orders matching the query.
func (c *Client) GetOrders(ctx context.Context, q OrdersQuery) (*ResponseEnvelope, error) {
	params := url.Values{}
	if len(q.MarketplaceIDs) > 0 {
		params.Set("MarketplaceIds", strings.Join(q.MarketplaceIDs, ","))
	}
	if !q.CreatedAfter.IsZero() {
		params.Set("CreatedAfter", q.CreatedAfter.UTC().Format(time.RFC3339))
	}
	if !q.CreatedBefore.IsZero() {
		params.Set("CreatedBefore", q.CreatedBefore.UTC().Format(time.RFC3339))
	}
	if len(q.OrderStatuses) > 0 {
		params.Set("OrderStatuses", strings.Join(q.OrderStatuses, ","))
	}
	if len(q.FulfillmentChannels) > 0 {
		params.Set("FulfillmentChannels", strings.Join(q.FulfillmentChannels, ","))
	}
	if q.MaxResults > 0 {
		params.Set("MaxResultsPerPage", strconv.Itoa(q.MaxResults))
	}
	if q.NextToken != "" {
		params.Set("NextToken", q.NextToken)
	}

	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/orders/v0/orders",
		Query:    params,
		Category: categoryOrders,
	})
}

// GetOrder fetches a single order by its Amazon order ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/orders/v0/orders/" + url.PathEscape(orderID),
		Category: categoryOrders,
	})
}

// GetOrderItems lists the line items of an order.
func (c *Client) GetOrderItems(ctx context.Context, orderID string) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/orders/v0/orders/" + url.PathEscape(orderID) + "/orderItems",
		Category: categoryOrders,
	})
}
