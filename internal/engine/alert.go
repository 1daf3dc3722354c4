package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	"github.com/donaldgifford/msp-alert-engine/pkg/rules"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// AutoResolveActor is recorded as resolved_by on auto-resolved alerts.
const AutoResolveActor = "auto"

// RecordFired creates one active alert instance per firing, bumps the rule's
// trigger counter and publishes alert.created. A firing that cannot be
// persisted is logged and counted and the rest still proceed; the joined
// errors are returned alongside the instances that were created.
func (eng *Engine) RecordFired(
	ctx context.Context,
	device *domain.Device,
	fired []domain.FiredAlert,
) ([]domain.AlertInstance, error) {
	var (
		created []domain.AlertInstance
		errs    []error
	)

	for i := range fired {
		f := &fired[i]
		now := eng.now()

		if eng.suppressed(ctx, f, now) {
			metrics.AlertsSuppressedTotal.Inc()
			continue
		}

		inst := domain.NewAlertInstance(f, now)
		if inst.TenantID == "" {
			inst.TenantID = device.TenantID
		}

		if err := eng.store.CreateAlertInstance(ctx, &inst); err != nil {
			metrics.AlertRecordErrorsTotal.Inc()
			eng.log.Error("recording alert failed",
				"rule_id", f.Rule.ID,
				"device_id", f.Sample.DeviceID,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("recording alert for rule %s: %w", f.Rule.ID, err))
			continue
		}

		if err := eng.store.IncrementRuleTrigger(ctx, f.Rule.ID, now); err != nil {
			eng.log.Error("incrementing rule trigger count failed",
				"rule_id", f.Rule.ID,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("incrementing trigger count for rule %s: %w", f.Rule.ID, err))
		}

		metrics.AlertsCreatedTotal.WithLabelValues(string(inst.Severity)).Inc()
		eng.instruments.AddAlert(ctx, inst.TenantID, string(inst.Severity))
		eng.log.Info("alert created",
			"alert_id", inst.ID,
			"rule_id", inst.RuleID,
			"device_id", inst.DeviceID,
			"severity", inst.Severity,
			"value", inst.MetricValue,
		)

		eng.publish(ctx, domain.AlertEvent(domain.EventAlertCreated, &inst, now))
		created = append(created, inst)
	}

	return created, errors.Join(errs...)
}

// suppressed reports whether f falls inside the suppression window. Lookup
// errors fail open.
func (eng *Engine) suppressed(ctx context.Context, f *domain.FiredAlert, now time.Time) bool {
	if eng.suppressionWindow <= 0 {
		return false
	}
	recent, err := eng.store.HasRecentAlert(ctx, f.Rule.ID, f.Sample.DeviceID, now.Add(-eng.suppressionWindow))
	if err != nil {
		eng.log.Warn("suppression lookup failed", "rule_id", f.Rule.ID, "error", err)
		return false
	}
	if recent {
		eng.log.Debug("firing suppressed",
			"rule_id", f.Rule.ID,
			"device_id", f.Sample.DeviceID,
			"window", eng.suppressionWindow,
		)
	}
	return recent
}

// Acknowledge moves an active alert to acknowledged and stops its
// escalation. It returns domain.ErrInvalidTransition for any other status.
func (eng *Engine) Acknowledge(
	ctx context.Context,
	alertID, actor, note string,
) (*domain.AlertInstance, error) {
	return eng.transition(ctx, alertID, domain.AlertAcknowledged, actor, note)
}

// Resolve moves an active or acknowledged alert to resolved and stops its
// escalation.
func (eng *Engine) Resolve(
	ctx context.Context,
	alertID, actor, note string,
) (*domain.AlertInstance, error) {
	return eng.transition(ctx, alertID, domain.AlertResolved, actor, note)
}

func (eng *Engine) transition(
	ctx context.Context,
	alertID string,
	to domain.AlertStatus,
	actor, note string,
) (*domain.AlertInstance, error) {
	now := eng.now()
	a, err := eng.store.TransitionAlert(ctx, alertID, &store.AlertTransition{
		To:    to,
		Actor: actor,
		Note:  note,
		At:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("moving alert %s to %s: %w", alertID, to, err)
	}

	metrics.AlertTransitionsTotal.WithLabelValues(string(to)).Inc()
	eng.log.Info("alert transitioned", "alert_id", alertID, "status", to, "actor", actor)

	evType := domain.EventAlertAcknowledged
	if to == domain.AlertResolved {
		evType = domain.EventAlertResolved
	}
	ev := domain.AlertEvent(evType, a, now)
	ev.Actor = actor
	eng.publish(ctx, ev)

	return a, nil
}

// resolveRecovered resolves the device's open alerts for every rule whose
// condition no longer holds on the newest sample of the batch.
func (eng *Engine) resolveRecovered(
	ctx context.Context,
	device *domain.Device,
	applied []domain.AlertRule,
	batch []domain.MetricSample,
) int {
	latest := rules.Latest(batch)
	var resolved int

	for _, r := range rules.Recovered(latest, applied) {
		open, err := eng.store.ListOpenAlerts(ctx, r.ID, device.ID)
		if err != nil {
			eng.log.Warn("listing open alerts failed", "rule_id", r.ID, "error", err)
			continue
		}
		for i := range open {
			value, _ := latest.Numeric(r.Condition.Metric)
			note := fmt.Sprintf("condition cleared: %s is %s", r.Condition.Metric, domain.FormatValue(value))
			_, err := eng.transition(ctx, open[i].ID, domain.AlertResolved, AutoResolveActor, note)
			switch {
			case errors.Is(err, domain.ErrInvalidTransition):
				// Resolved concurrently.
			case err != nil:
				eng.log.Warn("auto-resolve failed", "alert_id", open[i].ID, "error", err)
			default:
				metrics.AlertsAutoResolvedTotal.Inc()
				resolved++
			}
		}
	}
	return resolved
}
