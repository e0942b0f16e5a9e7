package spapi

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const categoryFulfillment = "fulfillment"

// FulfillmentQuery defines the parameters for listing FBA outbound
// fulfillment orders.
type FulfillmentQuery struct {
	QueryStartDate time.Time
	NextToken      string
}

// ListFulfillmentOrders lists FBA outbound fulfillment orders.
func (c *Client) ListFulfillmentOrders(ctx context.Context, q FulfillmentQuery) (*ResponseEnvelope, error) {
	params := url.Values{}
	if !q.QueryStartDate.IsZero() {
		params.Set("queryStartDate", q.QueryStartDate.UTC().Format(time.RFC3339))
	}
	if q.NextToken != "" {
		params.Set("nextToken", q.NextToken)
	}

	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/fba/outbound/2020-07-01/fulfillmentOrders",
		Query:    params,
		Category: categoryFulfillment,
	})
}

// GetFulfillmentOrder fetches one fulfillment order by seller order ID.
func (c *Client) GetFulfillmentOrder(ctx context.Context, sellerFulfillmentOrderID string) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/fba/outbound/2020-07-01/fulfillmentOrders/" + url.PathEscape(sellerFulfillmentOrderID),
		Category: categoryFulfillment,
	})
}
