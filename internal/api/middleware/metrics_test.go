package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/sellerdash/sellerdash/internal/api/middleware"
	"github.com/sellerdash/sellerdash/internal/metrics"
)

func readCounter(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	counter, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	m := &io_prometheus_client.Metric{}
	require.NoError(t, counter.Write(m))
	return m.GetCounter().GetValue()
}

func readGauge(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	m := &io_prometheus_client.Metric{}
	require.NoError(t, gauge.Write(m))
	return m.GetGauge().GetValue()
}

func TestMetricsMiddleware_ProxyRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records orders listing",
			method: http.MethodGet,
			route:  "/api/v1/orders",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"data": "{}"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records upstream failure status",
			method: http.MethodGet,
			route:  "/api/v1/finances",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusBadGateway)
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "records report creation",
			method: http.MethodPost,
			route:  "/api/v1/reports",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusAccepted)
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.route, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)
			assert.Positive(t,
				readCounter(t, metrics.HTTPRequestsTotal, tt.method, tt.route, statusStr))

			// Verify the histogram observed the request too.
			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_RouteTemplateLabel(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/api/v1/orders/:orderId", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/902-3159896-1390916", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)

	// The label is the route template, not the concrete order ID.
	assert.Positive(t,
		readCounter(t, metrics.HTTPRequestsTotal, http.MethodGet, "/api/v1/orders/:orderId", "200"))
}

func TestMetricsMiddleware_ProbeGauges(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	ready := true
	e.GET("/readyz", func(c echo.Context) error {
		if !ready {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	before := readCounter(t, metrics.HTTPRequestsTotal, http.MethodGet, "/healthz", "200")

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
	assert.InDelta(t, 1, readGauge(t, metrics.HealthzUp), 0)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 1, readGauge(t, metrics.ReadyzUp), 0)

	ready = false
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 0, readGauge(t, metrics.ReadyzUp), 0)

	// Probes stay out of the request counter.
	after := readCounter(t, metrics.HTTPRequestsTotal, http.MethodGet, "/healthz", "200")
	assert.InDelta(t, before, after, 0)
}

func TestMetricsMiddleware_InFlightSettles(t *testing.T) {
	var during float64
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/api/v1/inventory", func(c echo.Context) error {
		during = readGauge(t, metrics.HTTPInFlight)
		return c.NoContent(http.StatusOK)
	})

	baseline := readGauge(t, metrics.HTTPInFlight)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/inventory", http.NoBody))

	assert.InDelta(t, baseline+1, during, 0, "gauge counts the request while in the handler")
	assert.InDelta(t, baseline, readGauge(t, metrics.HTTPInFlight), 0, "gauge settles after the response")
}
