package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// msp-alert-engine operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "mae-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mae-alerts",
					Rules: []Rule{
						{
							Alert:  "MaeDown",
							Expr:   `absent(up{job="msp-alert-engine"})`,
							For:    "2m",
							Labels: map[string]string{"severity": "critical"},
							Annotations: map[string]string{
								"summary":     "MSP alert engine is down",
								"description": "The msp-alert-engine job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert:  "MaeReadinessDown",
							Expr:   `mae_readyz_up == 0`,
							For:    "2m",
							Labels: map[string]string{"severity": "critical"},
							Annotations: map[string]string{
								"summary":     "MSP alert engine readiness check is failing",
								"description": "A dependency (database, redis or mqtt) has been unreachable for more than 2 minutes.",
							},
						},
						{
							Alert:  "MaeHighErrorRate",
							Expr:   `mae:http_errors:rate5m / mae:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the alert engine",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert:  "MaeIngestErrors",
							Expr:   `sum(mae:ingest_errors:rate5m) > 0.1`,
							For:    "10m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "Agents are sending rejected sample batches",
								"description": "Ingest has been rejecting batches at more than 0.1/s for 10 minutes.",
							},
						},
						{
							Alert:  "MaeEscalationScanStalled",
							Expr:   `time() - mae_scheduler_next_escalation_scan_timestamp > 600`,
							For:    "5m",
							Labels: map[string]string{"severity": "critical"},
							Annotations: map[string]string{
								"summary":     "Escalation scans are not running",
								"description": "The next escalation scan is more than 10 minutes overdue. Unacknowledged alerts will not escalate.",
							},
						},
						{
							Alert:  "MaeRecordErrors",
							Expr:   `increase(mae_alert_record_errors_total[5m]) > 0`,
							For:    "0m",
							Labels: map[string]string{"severity": "critical"},
							Annotations: map[string]string{
								"summary":     "Fired alerts could not be stored",
								"description": "Rule matches are being lost because alert instances failed to persist.",
							},
						},
						{
							Alert:  "MaeNoRecipients",
							Expr:   `increase(mae_escalation_no_recipients_total[15m]) > 0`,
							For:    "0m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "Escalation steps resolved to no recipients",
								"description": "A policy references roles with no members for the alert's tenant.",
							},
						},
						{
							Alert:  "MaeNotificationFailures",
							Expr:   `sum(mae:notification_failures:rate5m) > 0`,
							For:    "5m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "Email, SMS or realtime deliveries have been failing for more than 5 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
