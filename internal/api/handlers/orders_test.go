package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdash/sellerdash/internal/api/handlers"
	"github.com/sellerdash/sellerdash/internal/spapi"
)

// fakeOrdersAPI records calls and returns canned envelopes.
type fakeOrdersAPI struct {
	lastQuery   spapi.OrdersQuery
	lastOrderID string
	env         *spapi.ResponseEnvelope
	err         error
}

func (f *fakeOrdersAPI) GetOrders(_ context.Context, q spapi.OrdersQuery) (*spapi.ResponseEnvelope, error) {
	f.lastQuery = q
	return f.env, f.err
}

func (f *fakeOrdersAPI) GetOrder(_ context.Context, orderID string) (*spapi.ResponseEnvelope, error) {
	f.lastOrderID = orderID
	return f.env, f.err
}

func (f *fakeOrdersAPI) GetOrderItems(_ context.Context, orderID string) (*spapi.ResponseEnvelope, error) {
	f.lastOrderID = orderID
	return f.env, f.err
}

func successEnvelope(payload string) *spapi.ResponseEnvelope {
	return &spapi.ResponseEnvelope{
		Success:    true,
		StatusCode: http.StatusOK,
		Data:       json.RawMessage(payload),
	}
}

func TestListOrders(t *testing.T) {
	t.Parallel()

	fake := &fakeOrdersAPI{
		env: successEnvelope(`{"payload":{"Orders":[{"AmazonOrderId":"902-1"}]}}`),
	}

	_, api := humatest.New(t)
	handlers.RegisterOrdersRoutes(api, handlers.NewOrdersHandler(fake))

	resp := api.Get(
		"/api/v1/orders" +
			"?marketplace_ids=ATVPDKIKX0DER" +
			"&statuses=Unshipped&statuses=Shipped" +
			"&created_after=2026-01-01T00:00:00Z" +
			"&max_results=25",
	)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"AmazonOrderId":"902-1"`)

	assert.Equal(t, []string{"ATVPDKIKX0DER"}, fake.lastQuery.MarketplaceIDs)
	assert.Equal(t, []string{"Unshipped", "Shipped"}, fake.lastQuery.OrderStatuses)
	assert.Equal(t, 25, fake.lastQuery.MaxResults)
	assert.Equal(
		t,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		fake.lastQuery.CreatedAfter.UTC(),
	)
}

func TestListOrders_UpstreamError(t *testing.T) {
	t.Parallel()

	fake := &fakeOrdersAPI{
		env: &spapi.ResponseEnvelope{
			StatusCode: http.StatusForbidden,
			Error:      `{"errors":[{"code":"Unauthorized"}]}`,
		},
	}

	_, api := humatest.New(t)
	handlers.RegisterOrdersRoutes(api, handlers.NewOrdersHandler(fake))

	resp := api.Get("/api/v1/orders")
	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "status 403")
	assert.Contains(t, resp.Body.String(), "Unauthorized")
}

func TestListOrders_Unreachable(t *testing.T) {
	t.Parallel()

	fake := &fakeOrdersAPI{
		env: &spapi.ResponseEnvelope{Error: "transport error: connection refused"},
	}

	_, api := humatest.New(t)
	handlers.RegisterOrdersRoutes(api, handlers.NewOrdersHandler(fake))

	resp := api.Get("/api/v1/orders")
	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "SP-API unreachable")
}

func TestGetOrder(t *testing.T) {
	t.Parallel()

	fake := &fakeOrdersAPI{
		env: successEnvelope(`{"payload":{"AmazonOrderId":"902-3159896-1390916"}}`),
	}

	_, api := humatest.New(t)
	handlers.RegisterOrdersRoutes(api, handlers.NewOrdersHandler(fake))

	resp := api.Get("/api/v1/orders/902-3159896-1390916")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "902-3159896-1390916", fake.lastOrderID)
}

func TestGetOrderItems(t *testing.T) {
	t.Parallel()

	fake := &fakeOrdersAPI{
		env: successEnvelope(`{"payload":{"OrderItems":[]}}`),
	}

	_, api := humatest.New(t)
	handlers.RegisterOrdersRoutes(api, handlers.NewOrdersHandler(fake))

	resp := api.Get("/api/v1/orders/902-3159896-1390916/items")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "902-3159896-1390916", fake.lastOrderID)
	assert.Contains(t, resp.Body.String(), `"OrderItems"`)
}
