package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsCreatedRate returns a timeseries panel showing new alerts per second
// by severity.
func AlertsCreatedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Alerts Created").
		Description("New alert instances per second by severity").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`mae:alerts_created:rate5m`, "{{severity}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SuppressedAndAutoResolved returns a timeseries panel comparing suppressed
// duplicates with alerts closed by a recovering sample.
func SuppressedAndAutoResolved() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Suppressed / Auto-resolved").
		Description("Duplicate alerts suppressed and alerts resolved by recovery").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery("sum(rate("+Sel("mae_alerts_suppressed_total")+"[5m]))", "suppressed", "A")).
		WithTarget(PromQuery("sum(rate("+Sel("mae_alerts_auto_resolved_total")+"[5m]))", "auto-resolved", "B")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TransitionsRate returns a timeseries panel showing acknowledge and resolve
// transitions.
func TransitionsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Alert Transitions").
		Description("Acknowledged and resolved transitions per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery("sum by (status) (rate("+Sel("mae_alert_transitions_total")+"[5m]))", "{{status}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AlertRecordErrors returns a stat panel counting alerts that fired but could
// not be stored.
func AlertRecordErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Alert Record Errors (24h)").
		Description("Fired alerts that failed to persist").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery("increase("+Sel("mae_alert_record_errors_total")+"[24h])", "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
