// Package panels builds the Grafana panels for the sellerdash overview
// dashboard. Rate panels share one base builder so unit, tooltip, and
// line styling stay uniform across the HTTP and SP-API rows.
package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Panel dimensions on the 24-column grid: four stats per row, two
// timeseries per row.
const (
	StatWidth  = 6
	StatHeight = 4

	SeriesWidth  = 12
	SeriesHeight = 8
)

// Datasource returns a reference to the ${datasource} template variable.
func Datasource() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// Query builds a Prometheus target with the given expression, legend
// format, and ref ID.
func Query(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// RateSeries returns the base timeseries builder every rate panel starts
// from. Callers attach targets, thresholds, and legend.
func RateSeries(title, description, unit string) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(Datasource()).
		Height(SeriesHeight).
		Span(SeriesWidth).
		Unit(unit).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(SharedTooltip()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UpDownSteps colors a 0/1 probe gauge: red at 0, green at okAt.
func UpDownSteps(okAt float64) cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps([]dashboard.Threshold{
			{Color: "red"},
			{Value: cog.ToPtr[float64](okAt), Color: "green"},
		})
}

// WarnSteps builds green/yellow/red tiers at the given cutoffs.
func WarnSteps(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps([]dashboard.Threshold{
			{Color: "green"},
			{Value: cog.ToPtr[float64](yellow), Color: "yellow"},
			{Value: cog.ToPtr[float64](red), Color: "red"},
		})
}

// GreenSteps builds a single green step for panels with no alert tiers.
func GreenSteps() cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps([]dashboard.Threshold{
			{Color: "green"},
		})
}

// ThresholdColors maps series colors to the panel's threshold tiers.
func ThresholdColors() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdThresholds)
}

// ClassicColors uses the classic palette for multi-series panels.
func ClassicColors() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdPaletteClassic)
}

// CalcsLegend shows a bottom table legend with the given calculations.
func CalcsLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// SharedTooltip shows all series in the tooltip, sorted descending.
func SharedTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
