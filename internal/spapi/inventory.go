package spapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const categoryInventory = "inventory"

// InventoryQuery defines the parameters for listing FBA inventory
// summaries.
type InventoryQuery struct {
	MarketplaceID string
	SellerSKUs    []string
	Details       bool
	NextToken     string
}

// GetInventorySummaries lists FBA inventory summaries for the
// marketplace.
func (c *Client) GetInventorySummaries(ctx context.Context, q InventoryQuery) (*ResponseEnvelope, error) {
	params := url.Values{}
	params.Set("granularityType", "Marketplace")
	if q.MarketplaceID != "" {
		params.Set("granularityId", q.MarketplaceID)
		params.Set("marketplaceIds", q.MarketplaceID)
	}
	if len(q.SellerSKUs) > 0 {
		params.Set("sellerSkus", strings.Join(q.SellerSKUs, ","))
	}
	if q.Details {
		params.Set("details", "true")
	}
	if q.NextToken != "" {
		params.Set("nextToken", q.NextToken)
	}

	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/fba/inventory/v1/summaries",
		Query:    params,
		Category: categoryInventory,
	})
}
