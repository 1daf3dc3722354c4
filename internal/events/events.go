// Package events publishes alert lifecycle events to downstream consumers.
// Publishing is best effort: failures are logged and counted by callers and
// never roll back the state change that produced the event.
package events

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// Publisher delivers one event to a backend.
type Publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

// Publish implements Publisher. Events without an ID get one so every
// backend sees the same identifier.
func (m Multi) Publish(ctx context.Context, e domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	metrics.EventsPublishedTotal.WithLabelValues(string(e.Type)).Inc()

	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogPublisher writes events to a structured logger.
type LogPublisher struct {
	log *slog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish implements Publisher.
func (p *LogPublisher) Publish(ctx context.Context, e domain.Event) error {
	attrs := []any{
		"event_id", e.ID,
		"tenant_id", e.TenantID,
		"alert_id", e.AlertID,
	}
	if e.RuleID != "" {
		attrs = append(attrs, "rule_id", e.RuleID)
	}
	if e.DeviceID != "" {
		attrs = append(attrs, "device_id", e.DeviceID)
	}
	if e.PolicyID != "" {
		attrs = append(attrs, "policy_id", e.PolicyID)
	}
	if e.Step != nil {
		attrs = append(attrs, "step", *e.Step)
	}
	if e.Severity != "" {
		attrs = append(attrs, "severity", e.Severity)
	}
	if e.Actor != "" {
		attrs = append(attrs, "actor", e.Actor)
	}
	p.log.InfoContext(ctx, string(e.Type), attrs...)
	return nil
}

// publishFailed records a backend failure.
func publishFailed(backend string) {
	metrics.EventPublishFailuresTotal.WithLabelValues(backend).Inc()
}
