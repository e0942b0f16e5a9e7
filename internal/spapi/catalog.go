package spapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const categoryCatalog = "catalog"

// GetCatalogItem fetches catalog details for one ASIN.
func (c *Client) GetCatalogItem(ctx context.Context, asin, marketplaceID string) (*ResponseEnvelope, error) {
	params := url.Values{}
	params.Set("marketplaceIds", marketplaceID)

	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/catalog/2022-04-01/items/" + url.PathEscape(asin),
		Query:    params,
		Category: categoryCatalog,
	})
}

// CatalogSearchQuery defines the parameters for a catalog keyword search.
type CatalogSearchQuery struct {
	MarketplaceID string
	Keywords      []string
	PageSize      int
	PageToken     string
}

// SearchCatalogItems searches the catalog by keyword.
func (c *Client) SearchCatalogItems(ctx context.Context, q CatalogSearchQuery) (*ResponseEnvelope, error) {
	params := url.Values{}
	params.Set("marketplaceIds", q.MarketplaceID)
	if len(q.Keywords) > 0 {
		params.Set("keywords", strings.Join(q.Keywords, ","))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.PageToken != "" {
		params.Set("pageToken", q.PageToken)
	}

	return c.exec.Execute(ctx, RequestDescriptor{
		Method:   http.MethodGet,
		Path:     "/catalog/2022-04-01/items",
		Query:    params,
		Category: categoryCatalog,
	})
}
