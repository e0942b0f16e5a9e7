package spapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const categoryFinances = "finances"

// FinancesQuery defines the parameters for listing financial events.
type FinancesQuery struct {
	PostedAfter  time.Time
	PostedBefore time.Time
	MaxResults   int
	NextToken    string
}

// ListFinancialEvents lists financial events in the posted window.
func (c *Client) ListFinancialEvents(ctx context.Context, q FinancesQuery) (*ResponseEnvelope, error) {
	params := url.Values{}
	if !q.PostedAfter.IsZero() {
		params.Set("PostedAfter", q.PostedAfter.UTC().Format(time.RFC3339))
	}
	if !q.PostedBefore.IsZero() {
		params.Set("PostedBefore", q.PostedBefore.UTC().Format(time.RFC3339))
	}
	if q.MaxResults > 0 {
		params.Set("MaxResultsPerPage", strconv.Itoa(q.MaxResults))
	}
	if q.NextToken != "" {
		params.Set("NextToken", q.NextToken)
	}

	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/finances/v0/financialEvents",
		Query:    params,
		Category: categoryFinances,
	})
}

// ListFinancialEventsByOrder lists financial events for one order.
func (c *Client) ListFinancialEventsByOrder(ctx context.Context, orderID string) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/finances/v0/orders/" + url.PathEscape(orderID) + "/financialEvents",
		Category: categoryFinances,
	})
}
