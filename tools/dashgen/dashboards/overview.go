// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/msp-alert-engine/tools/dashgen/panels"
)

// UID is the stable dashboard uid used for provisioning.
const UID = "mae-overview"

// BuildOverview constructs the alert engine overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("MSP Alert Engine").
		Uid(UID).
		Tags([]string{"mae", "msp-alert-engine"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ActiveAlertsStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Ingest").
		WithPanel(panels.SamplesRate()).
		WithPanel(panels.IngestErrors()).
		WithPanel(panels.IngestDuration()).
		WithPanel(panels.RulesEvaluatedRate()).
		WithPanel(panels.MalformedRules()))

	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsCreatedRate()).
		WithPanel(panels.SuppressedAndAutoResolved()).
		WithPanel(panels.TransitionsRate()).
		WithPanel(panels.AlertRecordErrors()))

	b.WithRow(dashboard.NewRowBuilder("Escalation").
		WithPanel(panels.StepsExecutedRate()).
		WithPanel(panels.ScanDuration()).
		WithPanel(panels.NoRecipients()).
		WithPanel(panels.NextScan()).
		WithPanel(panels.RetentionPurged()))

	b.WithRow(dashboard.NewRowBuilder("Notifications & Events").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationFailures()).
		WithPanel(panels.RealtimeClients()).
		WithPanel(panels.EventsPublished()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
