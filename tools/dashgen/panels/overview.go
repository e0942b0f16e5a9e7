package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// probeStat builds the 0/1 stat panel shared by the liveness and
// readiness gauges.
func probeStat(title, description, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(Datasource()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(Query(expr, "", "A")).
		Thresholds(UpDownSteps(1)).
		ColorScheme(ThresholdColors()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows the liveness probe state.
func HealthzStat() *stat.PanelBuilder {
	return probeStat("Healthz",
		"Liveness probe (1 = ok, 0 = failing)",
		`sellerdash_healthz_up`)
}

// ReadyzStat shows the readiness probe state, which tracks whether the
// required SP-API credentials are present.
func ReadyzStat() *stat.PanelBuilder {
	return probeStat("Readyz",
		"Readiness probe (1 = credentials present, 0 = not ready)",
		`sellerdash_readyz_up`)
}

// TokenRefreshFailuresStat shows failed LWA token exchanges over the
// past hour. Any non-zero value here means SP-API calls are failing.
func TokenRefreshFailuresStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Token Refresh Failures (1h)").
		Description("Failed LWA token exchanges in the last hour").
		Datasource(Datasource()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(Query(
			`increase(sellerdash_spapi_token_refresh_failures_total{job="sellerdash"}[1h])`,
			"", "A",
		)).
		Thresholds(WarnSteps(1, 5)).
		ColorScheme(ThresholdColors()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(Datasource()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(Query(
			`time() - process_start_time_seconds{job="sellerdash"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(GreenSteps()).
		ColorScheme(ThresholdColors()).
		GraphMode(common.BigValueGraphModeNone)
}
