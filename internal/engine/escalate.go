package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	"github.com/donaldgifford/msp-alert-engine/internal/notify"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	"github.com/donaldgifford/msp-alert-engine/pkg/escalation"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// ScanResult summarizes one escalation scan.
type ScanResult struct {
	Alerts     int `json:"alerts"`
	Executed   int `json:"executed"`
	Waiting    int `json:"waiting"`
	ClaimsLost int `json:"claims_lost"`
	Cancelled  int `json:"cancelled"`
	Completed  int `json:"completed"`
	Errors     int `json:"errors"`
}

type stepOutcome int

const (
	stepExecuted stepOutcome = iota
	stepLost
	stepCancelled
	stepError
)

// scanTally accumulates results from concurrent workers.
type scanTally struct {
	mu  sync.Mutex
	res ScanResult
}

func (t *scanTally) add(f func(*ScanResult)) {
	t.mu.Lock()
	f(&t.res)
	t.mu.Unlock()
}

// RunEscalationScan advances the escalation of every active alert as of now.
// It is safe to run concurrently with itself and to re-run after a crash:
// each step is claimed with a compare-and-set before any notification is
// sent, so a step executes at most once and never out of order.
func (eng *Engine) RunEscalationScan(ctx context.Context, now time.Time) (ScanResult, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RunEscalationScan")
	defer span.End()

	start := time.Now()
	defer func() {
		d := time.Since(start)
		metrics.EscalationScanDuration.Observe(d.Seconds())
		eng.instruments.RecordScan(ctx, d)
	}()

	active, err := eng.store.ListActiveAlerts(ctx)
	if err != nil {
		return ScanResult{}, fmt.Errorf("listing active alerts: %w", err)
	}
	metrics.EscalationActiveAlerts.Set(float64(len(active)))
	if len(active) == 0 {
		return ScanResult{}, nil
	}

	ids := make([]string, len(active))
	for i := range active {
		ids[i] = active[i].ID
	}
	stateRows, err := eng.store.ListEscalationStates(ctx, ids)
	if err != nil {
		return ScanResult{}, fmt.Errorf("loading escalation states: %w", err)
	}
	states := make(map[string]map[string]*domain.EscalationState, len(active))
	for i := range stateRows {
		st := &stateRows[i]
		if states[st.AlertID] == nil {
			states[st.AlertID] = make(map[string]*domain.EscalationState)
		}
		states[st.AlertID][st.PolicyID] = st
	}

	policies := eng.loadPolicies(ctx, active)

	tally := &scanTally{res: ScanResult{Alerts: len(active)}}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.workers)

	for i := range active {
		a := &active[i]
		tenantPolicies, ok := policies[a.TenantID]
		if !ok {
			tally.add(func(r *ScanResult) { r.Errors++ })
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			for _, p := range escalation.Matching(tenantPolicies, a.Severity) {
				eng.advance(gctx, a, &p, states[a.ID][p.ID], now, tally)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return tally.res, fmt.Errorf("escalation scan interrupted: %w", err)
	}

	span.SetAttributes(
		attribute.Int("alerts", tally.res.Alerts),
		attribute.Int("executed", tally.res.Executed),
	)
	if tally.res.Executed > 0 || tally.res.Errors > 0 {
		eng.log.Info("escalation scan complete",
			"alerts", tally.res.Alerts,
			"executed", tally.res.Executed,
			"waiting", tally.res.Waiting,
			"claims_lost", tally.res.ClaimsLost,
			"errors", tally.res.Errors,
		)
	}
	return tally.res, nil
}

// loadPolicies reads the enabled policies of every tenant with an active
// alert. Tenants whose policies fail to load are left out of the map.
func (eng *Engine) loadPolicies(
	ctx context.Context,
	active []domain.AlertInstance,
) map[string][]domain.EscalationPolicy {
	out := make(map[string][]domain.EscalationPolicy)
	for i := range active {
		tenant := active[i].TenantID
		if _, ok := out[tenant]; ok {
			continue
		}
		ps, err := eng.store.ListPolicies(ctx, &store.PolicyQuery{TenantID: &tenant, EnabledOnly: true})
		if err != nil {
			eng.log.Error("loading escalation policies failed", "tenant_id", tenant, "error", err)
			continue
		}
		if ps == nil {
			ps = []domain.EscalationPolicy{}
		}
		out[tenant] = ps
	}
	return out
}

// advance executes every step of one (alert, policy) pair that is due,
// strictly in order, and schedules the next one.
func (eng *Engine) advance(
	ctx context.Context,
	a *domain.AlertInstance,
	p *domain.EscalationPolicy,
	state *domain.EscalationState,
	now time.Time,
	tally *scanTally,
) {
	var st *domain.EscalationState
	if state != nil {
		cp := *state
		st = &cp
	}

	for range len(p.Steps) + 1 {
		d := escalation.Plan(a, p, st, now)
		switch d.Kind {
		case escalation.Inactive:
			return

		case escalation.Completed:
			if st != nil && !st.Finished() {
				if err := eng.store.CompleteEscalation(ctx, a.ID, p.ID); err != nil {
					eng.log.Error("completing escalation failed", "alert_id", a.ID, "policy_id", p.ID, "error", err)
					tally.add(func(r *ScanResult) { r.Errors++ })
					return
				}
				tally.add(func(r *ScanResult) { r.Completed++ })
			}
			return

		case escalation.Wait:
			if st == nil || st.NextDueAt == nil || !st.NextDueAt.Equal(d.DueAt) {
				if err := eng.store.ScheduleEscalation(ctx, a.ID, p.ID, d.DueAt); err != nil {
					eng.log.Warn("scheduling escalation failed", "alert_id", a.ID, "policy_id", p.ID, "error", err)
				}
			}
			tally.add(func(r *ScanResult) { r.Waiting++ })
			return

		case escalation.Execute:
			switch eng.executeStep(ctx, a, p, &d, now) {
			case stepExecuted:
				tally.add(func(r *ScanResult) { r.Executed++ })
			case stepLost:
				tally.add(func(r *ScanResult) { r.ClaimsLost++ })
				return
			case stepCancelled:
				tally.add(func(r *ScanResult) { r.Cancelled++ })
				return
			case stepError:
				tally.add(func(r *ScanResult) { r.Errors++ })
				return
			}

			if d.Last {
				if err := eng.store.CompleteEscalation(ctx, a.ID, p.ID); err != nil {
					eng.log.Error("completing escalation failed", "alert_id", a.ID, "policy_id", p.ID, "error", err)
				} else {
					tally.add(func(r *ScanResult) { r.Completed++ })
				}
				return
			}

			executedAt := now
			if st == nil {
				fresh := domain.NewEscalationState(a.ID, p.ID)
				st = &fresh
			}
			st.State = domain.EscalationEscalating
			st.LastExecutedStep = d.Step
			st.LastExecutedAt = &executedAt
			st.NextDueAt = escalation.NextDueAfter(p, d.Step, now)
		}
	}
}

// executeStep claims step d.Step and, if the claim wins and the alert is
// still active, notifies the step's roles on each of its channels.
func (eng *Engine) executeStep(
	ctx context.Context,
	a *domain.AlertInstance,
	p *domain.EscalationPolicy,
	d *escalation.Decision,
	now time.Time,
) stepOutcome {
	ctx, span := eng.tracer.Start(ctx, "engine.executeStep", trace.WithAttributes(
		attribute.String("alert_id", a.ID),
		attribute.String("policy_id", p.ID),
		attribute.Int("step", d.Step),
	))
	defer span.End()

	log := eng.log.With("alert_id", a.ID, "policy_id", p.ID, "step", d.Step)

	dispatches, err := eng.store.ClaimEscalationStep(ctx, &store.StepClaim{
		AlertID:    a.ID,
		PolicyID:   p.ID,
		Step:       d.Step,
		ExecutedAt: now,
		NextDueAt:  escalation.NextDueAfter(p, d.Step, now),
		Channels:   d.StepDef.Channels(),
	})
	if errors.Is(err, store.ErrClaimLost) {
		metrics.EscalationClaimsLostTotal.Inc()
		log.Debug("escalation step already claimed")
		return stepLost
	}
	if err != nil {
		metrics.EscalationClaimErrorsTotal.Inc()
		span.RecordError(err)
		log.Error("claiming escalation step failed", "error", err)
		return stepError
	}

	metrics.EscalationStepsExecutedTotal.Inc()
	eng.instruments.AddStep(ctx, d.Step)

	status, err := eng.store.GetAlertStatus(ctx, a.ID)
	switch {
	case err != nil:
		log.Warn("re-checking alert status failed, dispatching anyway", "error", err)
	case status != domain.AlertActive:
		log.Info("alert changed before dispatch, skipping notifications", "status", status)
		eng.completeDispatches(ctx, dispatches, domain.DispatchSkipped, 0, "alert "+string(status))
		return stepCancelled
	}

	recipients := eng.resolveRecipients(ctx, a, &d.StepDef)
	if len(recipients) == 0 {
		metrics.EscalationNoRecipientsTotal.Inc()
		log.Warn("escalation step has no recipients", "roles", d.StepDef.Roles)
		eng.completeDispatches(ctx, dispatches, domain.DispatchSkipped, 0, "no recipients")
	} else {
		payload := notify.NewAlertPayload(a, p, d.Step, d.StepDef.Roles)
		for i := range dispatches {
			eng.dispatch(ctx, &dispatches[i], recipients, payload)
		}
	}

	step := d.Step
	ev := domain.AlertEvent(domain.EventEscalationStep, a, now)
	ev.PolicyID = p.ID
	ev.Step = &step
	eng.publish(ctx, ev)

	log.Info("escalation step executed",
		"channels", len(dispatches),
		"recipients", len(recipients),
		"last", d.Last,
	)
	return stepExecuted
}

func (eng *Engine) resolveRecipients(
	ctx context.Context,
	a *domain.AlertInstance,
	step *domain.EscalationStep,
) []domain.Recipient {
	if len(step.Roles) == 0 || eng.directory == nil {
		return nil
	}
	recipients, err := eng.directory.Resolve(ctx, a.TenantID, step.Roles)
	if err != nil {
		eng.log.Error("resolving escalation roles failed",
			"alert_id", a.ID,
			"roles", step.Roles,
			"error", err,
		)
		return nil
	}
	return recipients
}

// dispatch sends one channel's notification and records the outcome. A
// failure is recorded but never rolls back the executed step.
func (eng *Engine) dispatch(
	ctx context.Context,
	d *domain.EscalationDispatch,
	recipients []domain.Recipient,
	payload *notify.AlertPayload,
) {
	status, errText := domain.DispatchSent, ""
	if err := eng.dispatcher.Dispatch(ctx, d.Channel, recipients, payload); err != nil {
		status, errText = domain.DispatchFailed, err.Error()
		eng.log.Error("notification dispatch failed",
			"alert_id", d.AlertID,
			"channel", d.Channel,
			"step", d.Step,
			"error", err,
		)
	}
	if err := eng.store.CompleteDispatch(ctx, d.ID, status, len(recipients), errText); err != nil {
		eng.log.Warn("recording dispatch outcome failed", "dispatch_id", d.ID, "error", err)
	}
}

func (eng *Engine) completeDispatches(
	ctx context.Context,
	dispatches []domain.EscalationDispatch,
	status string,
	recipients int,
	errText string,
) {
	for i := range dispatches {
		if err := eng.store.CompleteDispatch(ctx, dispatches[i].ID, status, recipients, errText); err != nil {
			eng.log.Warn("recording dispatch outcome failed", "dispatch_id", dispatches[i].ID, "error", err)
		}
	}
}
