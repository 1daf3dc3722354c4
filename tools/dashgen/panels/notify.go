package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NotificationsRate returns a timeseries panel showing deliveries per channel.
func NotificationsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Notifications Sent").
		Description("Successful deliveries per second by channel").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`mae:notifications_sent:rate5m`, "{{channel}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NotificationFailures returns a stat panel showing delivery failures in the
// past 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Notification Failures (24h)").
		Description("Failed deliveries across email, sms and realtime").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery("sum(increase("+Sel("mae_notification_failures_total")+"[24h]))", "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// RealtimeClients returns a stat panel showing connected websocket clients.
func RealtimeClients() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Realtime Clients").
		Description("Connected websocket clients").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(Sel("mae_realtime_clients"), "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// EventsPublished returns a timeseries panel showing domain events published
// and backend publish failures.
func EventsPublished() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Domain Events").
		Description("Events published by type and failures by backend").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery("sum by (type) (rate("+Sel("mae_events_published_total")+"[5m]))", "{{type}}", "A")).
		WithTarget(PromQuery("sum by (backend) (rate("+Sel("mae_event_publish_failures_total")+"[5m]))", "failed: {{backend}}", "B")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
