package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "mae-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mae-recording",
					Rules: []Rule{
						{
							Record: "mae:http_requests:rate5m",
							Expr:   `sum(rate(mae_http_requests_total[5m]))`,
						},
						{
							Record: "mae:http_errors:rate5m",
							Expr:   `sum(rate(mae_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "mae:ingest_samples:rate5m",
							Expr:   `sum by (transport) (rate(mae_ingest_samples_total[5m]))`,
						},
						{
							Record: "mae:ingest_errors:rate5m",
							Expr:   `sum by (transport) (rate(mae_ingest_errors_total[5m]))`,
						},
						{
							Record: "mae:alerts_created:rate5m",
							Expr:   `sum by (severity) (rate(mae_alerts_created_total[5m]))`,
						},
						{
							Record: "mae:escalation_steps:rate5m",
							Expr:   `sum(rate(mae_escalation_steps_executed_total[5m]))`,
						},
						{
							Record: "mae:notifications_sent:rate5m",
							Expr:   `sum by (channel) (rate(mae_notifications_sent_total[5m]))`,
						},
						{
							Record: "mae:notification_failures:rate5m",
							Expr:   `sum by (channel) (rate(mae_notification_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
