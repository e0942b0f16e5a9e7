package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// OrdersParams filters an order listing request.
type OrdersParams struct {
	MarketplaceIDs []string
	CreatedAfter   time.Time
	CreatedBefore  time.Time
	Statuses       []string
	MaxResults     int
	NextToken      string
}

// ListOrders returns the raw Orders API payload for the given filters.
func (c *Client) ListOrders(ctx context.Context, p OrdersParams) (json.RawMessage, error) {
	q := url.Values{}
	for _, id := range p.MarketplaceIDs {
		q.Add("marketplace_ids", id)
	}
	if !p.CreatedAfter.IsZero() {
		q.Set("created_after", p.CreatedAfter.UTC().Format(time.RFC3339))
	}
	if !p.CreatedBefore.IsZero() {
		q.Set("created_before", p.CreatedBefore.UTC().Format(time.RFC3339))
	}
	for _, s := range p.Statuses {
		q.Add("statuses", s)
	}
	if p.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(p.MaxResults))
	}
	if p.NextToken != "" {
		q.Set("next_token", p.NextToken)
	}

	return c.getPayload(ctx, "/api/v1/orders", q)
}

// GetOrder returns the raw payload for one order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.getPayload(ctx, "/api/v1/orders/"+url.PathEscape(orderID), nil)
}

// GetOrderItems returns the raw line-item payload for one order.
func (c *Client) GetOrderItems(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.getPayload(ctx, "/api/v1/orders/"+url.PathEscape(orderID)+"/items", nil)
}
