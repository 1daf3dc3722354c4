package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SamplesRate returns a timeseries panel showing accepted samples per second
// split by transport (http, mqtt).
func SamplesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Samples Ingested").
		Description("Metric samples accepted per second by transport").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`mae:ingest_samples:rate5m`, "{{transport}}", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// IngestErrors returns a timeseries panel showing rejected batches.
func IngestErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Ingest Errors").
		Description("Rejected sample batches per second by transport").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`mae:ingest_errors:rate5m`, "{{transport}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// IngestDuration returns a timeseries panel showing the p95 time to ingest
// and evaluate one batch.
func IngestDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Ingest Duration (p95)").
		Description("95th percentile time to store and evaluate one batch").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			"histogram_quantile(0.95, sum(rate("+Sel("mae_ingest_duration_seconds_bucket")+"[5m])) by (le))",
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.5, 2)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RulesEvaluatedRate returns a timeseries panel showing rule evaluations per
// second.
func RulesEvaluatedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rule Evaluations").
		Description("Rule conditions evaluated against incoming samples").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery("sum(rate("+Sel("mae_rules_evaluated_total")+"[5m]))", "evals/s", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MalformedRules returns a stat panel counting rules skipped because their
// condition could not be parsed.
func MalformedRules() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Malformed Rules (1h)").
		Description("Rule evaluations skipped because the condition did not parse").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery("increase("+Sel("mae_malformed_rules_total")+"[1h])", "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
