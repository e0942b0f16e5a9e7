package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// InventoryParams filters an inventory summaries request.
type InventoryParams struct {
	MarketplaceID string
	SKUs          []string
	Details       bool
	NextToken     string
}

// ListInventory returns the raw FBA inventory summaries payload.
func (c *Client) ListInventory(ctx context.Context, p InventoryParams) (json.RawMessage, error) {
	q := url.Values{}
	if p.MarketplaceID != "" {
		q.Set("marketplace_id", p.MarketplaceID)
	}
	for _, sku := range p.SKUs {
		q.Add("skus", sku)
	}
	if p.Details {
		q.Set("details", "true")
	}
	if p.NextToken != "" {
		q.Set("next_token", p.NextToken)
	}

	return c.getPayload(ctx, "/api/v1/inventory", q)
}

// FinancesParams filters a financial events request.
type FinancesParams struct {
	PostedAfter  time.Time
	PostedBefore time.Time
	MaxResults   int
	NextToken    string
}

// ListFinances returns the raw financial events payload.
func (c *Client) ListFinances(ctx context.Context, p FinancesParams) (json.RawMessage, error) {
	q := url.Values{}
	if !p.PostedAfter.IsZero() {
		q.Set("posted_after", p.PostedAfter.UTC().Format(time.RFC3339))
	}
	if !p.PostedBefore.IsZero() {
		q.Set("posted_before", p.PostedBefore.UTC().Format(time.RFC3339))
	}
	if p.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(p.MaxResults))
	}
	if p.NextToken != "" {
		q.Set("next_token", p.NextToken)
	}

	return c.getPayload(ctx, "/api/v1/finances", q)
}

// ListShipments returns the raw fulfillment orders payload for orders
// updated since the given time.
func (c *Client) ListShipments(ctx context.Context, since time.Time) (json.RawMessage, error) {
	q := url.Values{}
	if !since.IsZero() {
		q.Set("since", since.UTC().Format(time.RFC3339))
	}
	return c.getPayload(ctx, "/api/v1/shipments", q)
}

// GetShipment returns the raw payload for one fulfillment order.
func (c *Client) GetShipment(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.getPayload(ctx, "/api/v1/shipments/"+url.PathEscape(orderID), nil)
}
