// Package metrics defines Prometheus metrics for msp-alert-engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mae"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Ingestion metrics.
var (
	IngestSamplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_samples_total",
		Help:      "Total number of metric samples ingested, by transport.",
	}, []string{"transport"})

	IngestErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_errors_total",
		Help:      "Total number of rejected or failed ingestion batches, by transport.",
	}, []string{"transport"})

	IngestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingest_duration_seconds",
		Help:      "Duration of sample batch ingestion (persist, evaluate, record) in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Evaluation metrics.
var (
	RulesEvaluatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rules_evaluated_total",
		Help:      "Total number of rule evaluations (rules x batches).",
	})

	MalformedRulesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_rules_total",
		Help:      "Total number of malformed rules skipped during evaluation.",
	})
)

// Alert metrics.
var (
	AlertsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_created_total",
		Help:      "Total number of alert instances created, by severity.",
	}, []string{"severity"})

	AlertsSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_suppressed_total",
		Help:      "Total number of firings skipped by the suppression window.",
	})

	AlertsAutoResolvedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_auto_resolved_total",
		Help:      "Total number of alerts resolved because the condition cleared.",
	})

	AlertRecordErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_record_errors_total",
		Help:      "Total number of fired alerts that could not be persisted.",
	})

	AlertTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_transitions_total",
		Help:      "Total number of alert status transitions, by target status.",
	}, []string{"status"})
)

// Escalation metrics.
var (
	EscalationStepsExecutedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "escalation_steps_executed_total",
		Help:      "Total number of escalation steps executed.",
	})

	EscalationClaimsLostTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "escalation_claims_lost_total",
		Help:      "Total number of due steps already claimed elsewhere or no longer active.",
	})

	EscalationClaimErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "escalation_claim_errors_total",
		Help:      "Total number of claim persistence failures; the step stays due.",
	})

	EscalationNoRecipientsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "escalation_no_recipients_total",
		Help:      "Total number of executed steps whose roles resolved to no recipients.",
	})

	EscalationScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "escalation_scan_duration_seconds",
		Help:      "Duration of escalation scans in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	EscalationActiveAlerts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "escalation_active_alerts",
		Help:      "Active alerts observed by the last escalation scan.",
	})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications dispatched, by channel.",
	}, []string{"channel"})

	NotificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures, by channel.",
	}, []string{"channel"})

	RealtimeClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_clients",
		Help:      "Number of connected websocket clients.",
	})
)

// Event metrics.
var (
	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of lifecycle events published, by type.",
	}, []string{"type"})

	EventPublishFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_publish_failures_total",
		Help:      "Total number of event publish failures, by backend.",
	}, []string{"backend"})
)

// Scheduler metrics.
var (
	SchedulerNextScanTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_escalation_scan_timestamp",
		Help:      "Unix timestamp of the next scheduled escalation scan.",
	})

	SchedulerNextRetentionTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_retention_timestamp",
		Help:      "Unix timestamp of the next scheduled sample retention run.",
	})

	RetentionPurgedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retention_samples_purged_total",
		Help:      "Total number of metric samples removed by retention.",
	})
)
