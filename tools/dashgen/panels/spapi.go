package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SPAPICallRate shows outbound SP-API calls per second by rate-limit
// category.
func SPAPICallRate() *timeseries.PanelBuilder {
	return RateSeries("SP-API Call Rate", "Outbound SP-API calls per second by category", "reqps").
		WithTarget(Query(`sellerdash:spapi_calls:rate5m`, "{{category}}", "A")).
		Legend(CalcsLegend("mean", "max")).
		Thresholds(GreenSteps()).
		ColorScheme(ClassicColors())
}

// SPAPIErrorRate shows non-2xx SP-API outcomes per second by category,
// covering auth, transport, and upstream failures.
func SPAPIErrorRate() *timeseries.PanelBuilder {
	return RateSeries("SP-API Errors", "Auth, transport, and upstream failures per second by category", "reqps").
		WithTarget(Query(`sellerdash:spapi_errors:rate5m`, "{{category}}", "A")).
		Thresholds(WarnSteps(0.1, 1)).
		ColorScheme(ThresholdColors())
}

// SigningFallbacks shows STS exchanges that fell back to static keys in
// the past 24 hours.
func SigningFallbacks() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Signing Fallbacks (24h)").
		Description("STS role exchanges that fell back to static keys in the last 24 hours").
		Datasource(Datasource()).
		Height(SeriesHeight).
		Span(SeriesWidth).
		WithTarget(Query(
			`increase(sellerdash_spapi_signing_fallbacks_total{job="sellerdash"}[24h])`,
			"", "A",
		)).
		Thresholds(WarnSteps(1, 10)).
		ColorScheme(ThresholdColors()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// ThrottleWaitP95 shows the p95 time calls spend queued behind the
// per-category rate limiter.
func ThrottleWaitP95() *timeseries.PanelBuilder {
	return RateSeries("Throttle Wait p95", "p95 time spent queued behind the per-category rate limiter", "s").
		WithTarget(Query(
			`histogram_quantile(0.95, sum(rate(sellerdash_spapi_throttle_wait_seconds_bucket{job="sellerdash"}[5m])) by (le, category))`,
			"{{category}}",
			"A",
		)).
		Legend(CalcsLegend("mean", "max")).
		Thresholds(GreenSteps()).
		ColorScheme(ClassicColors())
}

// ClientThrottleRate shows inbound requests rejected with 429 by the
// per-client throttle.
func ClientThrottleRate() *timeseries.PanelBuilder {
	return RateSeries("Client Throttle Rejections", "Inbound requests rejected with 429 per second", "reqps").
		WithTarget(Query(`sellerdash:client_throttled:rate5m`, "rejected/s", "A")).
		Thresholds(WarnSteps(0.5, 5)).
		ColorScheme(ThresholdColors())
}
