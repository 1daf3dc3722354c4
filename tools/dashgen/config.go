package main

import "errors"

// generatedHeader prefixes every generated YAML file.
const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// KnownMetrics is the set of metric names exported by msp-alert-engine plus
// recording rule names referenced in dashboards and alerts. Histograms are
// listed by family name.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"mae_http_request_duration_seconds": true,
	"mae_http_requests_total":           true,

	// Health metrics.
	"mae_healthz_up": true,
	"mae_readyz_up":  true,

	// Ingest and rule evaluation.
	"mae_ingest_samples_total":    true,
	"mae_ingest_errors_total":     true,
	"mae_ingest_duration_seconds": true,
	"mae_rules_evaluated_total":   true,
	"mae_malformed_rules_total":   true,

	// Alert lifecycle.
	"mae_alerts_created_total":       true,
	"mae_alerts_suppressed_total":    true,
	"mae_alerts_auto_resolved_total": true,
	"mae_alert_record_errors_total":  true,
	"mae_alert_transitions_total":    true,

	// Escalation.
	"mae_escalation_steps_executed_total":  true,
	"mae_escalation_claims_lost_total":     true,
	"mae_escalation_claim_errors_total":    true,
	"mae_escalation_no_recipients_total":   true,
	"mae_escalation_scan_duration_seconds": true,
	"mae_escalation_active_alerts":         true,

	// Notifications and events.
	"mae_notifications_sent_total":     true,
	"mae_notification_failures_total":  true,
	"mae_realtime_clients":             true,
	"mae_events_published_total":       true,
	"mae_event_publish_failures_total": true,

	// Scheduler and retention.
	"mae_scheduler_next_escalation_scan_timestamp": true,
	"mae_scheduler_next_retention_timestamp":       true,
	"mae_retention_samples_purged_total":           true,

	// Recording rules.
	"mae:http_requests:rate5m":         true,
	"mae:http_errors:rate5m":           true,
	"mae:ingest_samples:rate5m":        true,
	"mae:ingest_errors:rate5m":         true,
	"mae:alerts_created:rate5m":        true,
	"mae:escalation_steps:rate5m":      true,
	"mae:notifications_sent:rate5m":    true,
	"mae:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
