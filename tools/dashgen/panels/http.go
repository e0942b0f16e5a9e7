package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate shows proxied HTTP requests per second, from the
// pre-computed recording rule.
func RequestRate() *timeseries.PanelBuilder {
	return RateSeries("Request Rate", "HTTP requests per second", "reqps").
		WithTarget(Query(`sellerdash:http_requests:rate5m`, "req/s", "A")).
		Legend(CalcsLegend("mean", "max")).
		Thresholds(GreenSteps()).
		ColorScheme(ClassicColors())
}

// LatencyPercentiles shows p50/p95/p99 request durations from the
// sellerdash duration histogram.
func LatencyPercentiles() *timeseries.PanelBuilder {
	quantile := func(q string) string {
		return `histogram_quantile(` + q +
			`, sum(rate(sellerdash_http_request_duration_seconds_bucket{job="sellerdash"}[5m])) by (le))`
	}

	return RateSeries("Latency Percentiles", "HTTP request duration percentiles", "s").
		WithTarget(Query(quantile("0.50"), "p50", "A")).
		WithTarget(Query(quantile("0.95"), "p95", "B")).
		WithTarget(Query(quantile("0.99"), "p99", "C")).
		Legend(CalcsLegend("mean", "max")).
		Thresholds(GreenSteps()).
		ColorScheme(ClassicColors())
}

// ErrorRate shows the 5xx share of proxied requests. For this service a
// sustained error rate usually means SP-API is rejecting calls, so the
// tiers match the SellerdashHighErrorRate alert.
func ErrorRate() *timeseries.PanelBuilder {
	return RateSeries("Error Rate %", "HTTP 5xx responses as a share of all requests", "percent").
		WithTarget(Query(
			`sellerdash:http_errors:rate5m / sellerdash:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Thresholds(WarnSteps(1, 5)).
		ColorScheme(ThresholdColors())
}

// InFlight shows requests currently being served, a quick saturation
// signal when throttle waits pile up.
func InFlight() *timeseries.PanelBuilder {
	return RateSeries("In-Flight Requests", "Requests currently being served", "short").
		WithTarget(Query(
			`sellerdash_http_in_flight_requests{job="sellerdash"}`,
			"in flight", "A",
		)).
		Thresholds(GreenSteps()).
		ColorScheme(ClassicColors())
}
