package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListOrders(context.Background(), OrdersParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"title":"Bad Gateway","detail":"SP-API error (status 403)"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListOrders(context.Background(), OrdersParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 502)")
	assert.Contains(t, err.Error(), "SP-API error (status 403)")
}

func TestClient_ListOrders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "ATVPDKIKX0DER", r.URL.Query().Get("marketplace_ids"))
		assert.Equal(t, []string{"Unshipped", "Shipped"}, r.URL.Query()["statuses"])
		assert.Equal(t, "2026-01-01T00:00:00Z", r.URL.Query().Get("created_after"))
		assert.Equal(t, "25", r.URL.Query().Get("max_results"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"payload":{"Orders":[{"AmazonOrderId":"902-1"}]}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	payload, err := c.ListOrders(context.Background(), OrdersParams{
		MarketplaceIDs: []string{"ATVPDKIKX0DER"},
		CreatedAfter:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Statuses:       []string{"Unshipped", "Shipped"},
		MaxResults:     25,
	})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"AmazonOrderId":"902-1"`)
}

func TestClient_GetOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/902-3159896-1390916", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"payload":{"AmazonOrderId":"902-3159896-1390916"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	payload, err := c.GetOrder(context.Background(), "902-3159896-1390916")
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestClient_CreateReport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/reports", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "GET_FLAT_FILE_OPEN_LISTINGS_DATA", req.ReportType)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"reportId":"12345"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	payload, err := c.CreateReport(context.Background(), CreateReportRequest{
		ReportType:     "GET_FLAT_FILE_OPEN_LISTINGS_DATA",
		MarketplaceIDs: []string{"ATVPDKIKX0DER"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"reportId":"12345"`)
}

func TestClient_GetLimits(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/limits", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(
			`{"categories":[{"category":"orders","max_requests":1,"period_ms":1000,"used":0}]}`,
		))
	}))
	defer srv.Close()

	c := New(srv.URL)
	limits, err := c.GetLimits(context.Background())
	require.NoError(t, err)
	require.Len(t, limits, 1)
	assert.Equal(t, "orders", limits[0].Category)
	assert.Equal(t, int64(1000), limits[0].PeriodMs)
}

func TestClient_Readyz(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/readyz", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable","missing":["REFRESH_TOKEN"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	report, err := c.Readyz(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unavailable", report.Status)
	assert.Equal(t, []string{"REFRESH_TOKEN"}, report.Missing)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
