package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// StepsExecutedRate returns a timeseries panel showing escalation steps
// dispatched and claims lost to another scanner.
func StepsExecutedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Escalation Steps").
		Description("Steps executed and step claims lost to a concurrent scan").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`mae:escalation_steps:rate5m`, "executed", "A")).
		WithTarget(PromQuery("sum(rate("+Sel("mae_escalation_claims_lost_total")+"[5m]))", "claims lost", "B")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ScanDuration returns a timeseries panel showing escalation scan latency.
func ScanDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Scan Duration").
		Description("Escalation scan duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			"histogram_quantile(0.50, sum(rate("+Sel("mae_escalation_scan_duration_seconds_bucket")+"[15m])) by (le))",
			"p50", "A",
		)).
		WithTarget(PromQuery(
			"histogram_quantile(0.95, sum(rate("+Sel("mae_escalation_scan_duration_seconds_bucket")+"[15m])) by (le))",
			"p95", "B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(10, 30)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NoRecipients returns a stat panel counting steps whose roles resolved to
// nobody.
func NoRecipients() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Steps Without Recipients (24h)").
		Description("Escalation steps whose roles resolved to no recipients").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery("increase("+Sel("mae_escalation_no_recipients_total")+"[24h])", "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextScan returns a stat panel showing time until the next scheduled scan.
func NextScan() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Scan").
		Description("Time until the next scheduled escalation scan").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(Sel("mae_scheduler_next_escalation_scan_timestamp")+" - time()", "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}

// RetentionPurged returns a stat panel showing samples removed by the
// retention job in the last day.
func RetentionPurged() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Samples Purged (24h)").
		Description("Metric samples deleted by the retention job").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery("increase("+Sel("mae_retention_samples_purged_total")+"[24h])", "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
