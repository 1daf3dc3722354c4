package domain

import "time"

// EventType names an audit/observability event emitted by the engine.
type EventType string

// Event types.
const (
	EventAlertCreated      EventType = "alert.created"
	EventAlertAcknowledged EventType = "alert.acknowledged"
	EventAlertResolved     EventType = "alert.resolved"
	EventEscalationStep    EventType = "escalation.step_executed"
)

// Event is published for every alert lifecycle change and escalation step.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	TenantID   string    `json:"tenant_id"`
	AlertID    string    `json:"alert_id"`
	RuleID     string    `json:"rule_id,omitempty"`
	DeviceID   string    `json:"device_id,omitempty"`
	PolicyID   string    `json:"policy_id,omitempty"`
	Step       *int      `json:"step,omitempty"`
	Severity   Severity  `json:"severity,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AlertEvent builds an event describing an alert instance.
func AlertEvent(t EventType, a *AlertInstance, at time.Time) Event {
	return Event{
		Type:       t,
		TenantID:   a.TenantID,
		AlertID:    a.ID,
		RuleID:     a.RuleID,
		DeviceID:   a.DeviceID,
		Severity:   a.Severity,
		Message:    a.Message,
		OccurredAt: at,
	}
}
