package spapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// recordedRequest captures what the fake SP-API server saw.
type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

func newFacade(t *testing.T) (*spapi.Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.method = r.Method
			rec.path = r.URL.Path
			rec.query = r.URL.RawQuery
			rec.body, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"payload":{}}`))
		}),
	)
	t.Cleanup(srv.Close)

	exec := spapi.NewExecutor(
		&fakeTokens{token: "t"}, nil, nil,
		spapi.WithEndpoint(srv.URL),
	)
	return spapi.NewClient(exec), rec
}

func TestClient_GetOrders(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	env, err := client.GetOrders(context.Background(), spapi.OrdersQuery{
		MarketplaceIDs: []string{"ATVPDKIKX0DER", "A2EUQ1WTGCTBG2"},
		CreatedAfter:   time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC),
		OrderStatuses:  []string{"Unshipped", "PartiallyShipped"},
		MaxResults:     50,
	})
	require.NoError(t, err)
	assert.True(t, env.Success)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/orders/v0/orders", rec.path)
	assert.Equal(
		t,
		"CreatedAfter=2026-01-15T08%3A30%3A00Z"+
			"&MarketplaceIds=ATVPDKIKX0DER%2CA2EUQ1WTGCTBG2"+
			"&MaxResultsPerPage=50"+
			"&OrderStatuses=Unshipped%2CPartiallyShipped",
		rec.query,
	)
}

func TestClient_GetOrders_OmitsZeroFields(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.GetOrders(context.Background(), spapi.OrdersQuery{
		MarketplaceIDs: []string{"ATVPDKIKX0DER"},
	})
	require.NoError(t, err)

	assert.Equal(t, "MarketplaceIds=ATVPDKIKX0DER", rec.query)
}

func TestClient_GetOrder_EscapesPath(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.GetOrder(context.Background(), "123-4567890-1234567")
	require.NoError(t, err)

	assert.Equal(t, "/orders/v0/orders/123-4567890-1234567", rec.path)
	assert.Empty(t, rec.query)
}

func TestClient_GetOrderItems(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.GetOrderItems(context.Background(), "123-4567890-1234567")
	require.NoError(t, err)

	assert.Equal(t, "/orders/v0/orders/123-4567890-1234567/orderItems", rec.path)
}

func TestClient_GetInventorySummaries(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.GetInventorySummaries(context.Background(), spapi.InventoryQuery{
		MarketplaceID: "ATVPDKIKX0DER",
		SellerSKUs:    []string{"SKU-1", "SKU-2"},
		Details:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/fba/inventory/v1/summaries", rec.path)
	assert.Equal(
		t,
		"details=true"+
			"&granularityId=ATVPDKIKX0DER"+
			"&granularityType=Marketplace"+
			"&marketplaceIds=ATVPDKIKX0DER"+
			"&sellerSkus=SKU-1%2CSKU-2",
		rec.query,
	)
}

func TestClient_SearchCatalogItems(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.SearchCatalogItems(context.Background(), spapi.CatalogSearchQuery{
		MarketplaceID: "ATVPDKIKX0DER",
		Keywords:      []string{"usb", "cable"},
		PageSize:      10,
	})
	require.NoError(t, err)

	assert.Equal(t, "/catalog/2022-04-01/items", rec.path)
	assert.Equal(
		t,
		"keywords=usb%2Ccable&marketplaceIds=ATVPDKIKX0DER&pageSize=10",
		rec.query,
	)
}

func TestClient_CreateReport(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	env, err := client.CreateReport(context.Background(), spapi.CreateReportSpec{
		ReportType:     "GET_FLAT_FILE_OPEN_LISTINGS_DATA",
		MarketplaceIDs: []string{"ATVPDKIKX0DER"},
		DataStartTime:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, env.Success)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/reports/2021-06-30/reports", rec.path)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &got))
	assert.Equal(t, "GET_FLAT_FILE_OPEN_LISTINGS_DATA", got["reportType"])
	assert.Equal(t, "2026-01-01T00:00:00Z", got["dataStartTime"])
	// Zero end time must be omitted entirely.
	assert.NotContains(t, got, "dataEndTime")
}

func TestClient_GetReportDocument(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.GetReportDocument(context.Background(), "amzn1.spdoc.1.abc")
	require.NoError(t, err)

	assert.Equal(t, "/reports/2021-06-30/documents/amzn1.spdoc.1.abc", rec.path)
}

func TestClient_ListFinancialEvents(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.ListFinancialEvents(context.Background(), spapi.FinancesQuery{
		PostedAfter: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MaxResults:  100,
	})
	require.NoError(t, err)

	assert.Equal(t, "/finances/v0/financialEvents", rec.path)
	assert.Equal(
		t,
		"MaxResultsPerPage=100&PostedAfter=2026-02-01T00%3A00%3A00Z",
		rec.query,
	)
}

func TestClient_ListFulfillmentOrders(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.ListFulfillmentOrders(context.Background(), spapi.FulfillmentQuery{
		QueryStartDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "/fba/outbound/2020-07-01/fulfillmentOrders", rec.path)
	assert.Equal(t, "queryStartDate=2026-03-01T12%3A00%3A00Z", rec.query)
}

func TestClient_GetMarketplaceParticipations(t *testing.T) {
	t.Parallel()

	client, rec := newFacade(t)

	_, err := client.GetMarketplaceParticipations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/sellers/v1/marketplaceParticipations", rec.path)
}
