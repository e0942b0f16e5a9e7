// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/sellerdash/sellerdash/tools/dashgen/panels"
)

// BuildOverview constructs the sellerdash Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("sellerdash Overview").
		Uid("sellerdash-overview").
		Tags([]string{"sellerdash", "sp-api"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.TokenRefreshFailuresStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.InFlight()))

	// Row 3: SP-API.
	b.WithRow(dashboard.NewRowBuilder("SP-API").
		WithPanel(panels.SPAPICallRate()).
		WithPanel(panels.SPAPIErrorRate()).
		WithPanel(panels.SigningFallbacks()))

	// Row 4: Throttling.
	b.WithRow(dashboard.NewRowBuilder("Throttling").
		WithPanel(panels.ThrottleWaitP95()).
		WithPanel(panels.ClientThrottleRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
