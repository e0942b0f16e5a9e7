package spapi

import (
	"context"
	"net/http"
)

// GetMarketplaceParticipations lists the marketplaces the seller
// participates in. Used as a cheap connectivity check by the dashboard.
func (c *Client) GetMarketplaceParticipations(ctx context.Context) (*ResponseEnvelope, error) {
	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/sellers/v1/marketplaceParticipations",
		Category: DefaultCategory,
	})
}
