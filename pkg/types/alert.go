package domain

import (
	"fmt"
	"slices"
	"time"
)

// AlertStatus is the lifecycle state of an alert instance.
type AlertStatus string

// Alert status constants.
const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
)

// alertTransitions lists the allowed target states per source state.
// A resolved alert never re-opens; a new firing creates a new instance.
var alertTransitions = map[AlertStatus][]AlertStatus{
	AlertActive:       {AlertAcknowledged, AlertResolved},
	AlertAcknowledged: {AlertResolved},
	AlertResolved:     nil,
}

// Valid reports whether s is a known status.
func (s AlertStatus) Valid() bool {
	_, ok := alertTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are possible from s.
func (s AlertStatus) Terminal() bool {
	return len(alertTransitions[s]) == 0
}

// CanTransition reports whether moving from s to next is allowed.
func (s AlertStatus) CanTransition(next AlertStatus) bool {
	return slices.Contains(alertTransitions[s], next)
}

// Transition returns next if the move is allowed, or ErrInvalidTransition.
func (s AlertStatus) Transition(next AlertStatus) (AlertStatus, error) {
	if !s.CanTransition(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}

// SourcesFor returns every status that may transition into next.
func SourcesFor(next AlertStatus) []AlertStatus {
	var from []AlertStatus
	for _, s := range []AlertStatus{AlertActive, AlertAcknowledged, AlertResolved} {
		if s.CanTransition(next) {
			from = append(from, s)
		}
	}
	return from
}

// AlertInstance is one firing of a rule against one sample (an alert-history row).
type AlertInstance struct {
	ID             string      `json:"id"                        db:"id"`
	TenantID       string      `json:"tenant_id"                 db:"tenant_id"`
	RuleID         string      `json:"rule_id"                   db:"rule_id"`
	DeviceID       string      `json:"device_id"                 db:"device_id"`
	Severity       Severity    `json:"severity"                  db:"severity"`
	Message        string      `json:"message"                   db:"message"`
	MetricName     string      `json:"metric_name"               db:"metric_name"`
	MetricValue    float64     `json:"metric_value"              db:"metric_value"`
	ThresholdValue float64     `json:"threshold_value"           db:"threshold_value"`
	Status         AlertStatus `json:"status"                    db:"status"`
	TriggeredAt    time.Time   `json:"triggered_at"              db:"triggered_at"`
	SampleAt       time.Time   `json:"sample_at"                 db:"sample_at"`
	AcknowledgedAt *time.Time  `json:"acknowledged_at,omitempty" db:"acknowledged_at"`
	AcknowledgedBy string      `json:"acknowledged_by,omitempty" db:"acknowledged_by"`
	ResolvedAt     *time.Time  `json:"resolved_at,omitempty"     db:"resolved_at"`
	ResolvedBy     string      `json:"resolved_by,omitempty"     db:"resolved_by"`
	ResolutionNote string      `json:"resolution_note,omitempty" db:"resolution_note"`
}

// RenderAlertMessage builds the human-readable message stored on an instance.
func RenderAlertMessage(rule *AlertRule, value float64) string {
	threshold := "<unset>"
	if rule.Condition.Threshold != nil {
		threshold = FormatValue(*rule.Condition.Threshold)
	}
	return fmt.Sprintf("%s: %s is %s (threshold %s %s)",
		rule.Name,
		rule.Condition.Metric,
		FormatValue(value),
		rule.Condition.Operator,
		threshold,
	)
}

// NewAlertInstance builds an active instance for a fired alert.
func NewAlertInstance(f *FiredAlert, now time.Time) AlertInstance {
	var threshold float64
	if f.Rule.Condition.Threshold != nil {
		threshold = *f.Rule.Condition.Threshold
	}
	return AlertInstance{
		TenantID:       f.Rule.TenantID,
		RuleID:         f.Rule.ID,
		DeviceID:       f.Sample.DeviceID,
		Severity:       f.Rule.Severity,
		Message:        RenderAlertMessage(&f.Rule, f.MetricValue),
		MetricName:     f.Rule.Condition.Metric,
		MetricValue:    f.MetricValue,
		ThresholdValue: threshold,
		Status:         AlertActive,
		TriggeredAt:    now,
		SampleAt:       f.Sample.CollectedAt,
	}
}
