package escalation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

var t0 = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func activeAlert(sev domain.Severity) *domain.AlertInstance {
	return &domain.AlertInstance{
		ID:          "a1",
		TenantID:    "t1",
		Severity:    sev,
		Status:      domain.AlertActive,
		TriggeredAt: t0,
	}
}

func oneStepPolicy() *domain.EscalationPolicy {
	return &domain.EscalationPolicy{
		ID:                  "p1",
		TenantID:            "t1",
		Name:                "critical-oncall",
		TriggerSeverities:   []domain.Severity{domain.SeverityCritical},
		TriggerAfterMinutes: 30,
		Enabled:             true,
		Steps: []domain.EscalationStep{
			{Order: 1, WaitMinutesAfterPrevious: 0, Roles: []string{"manager"}, NotifyEmail: true},
		},
	}
}

func twoStepPolicy() *domain.EscalationPolicy {
	p := oneStepPolicy()
	p.Steps = []domain.EscalationStep{
		{Order: 2, WaitMinutesAfterPrevious: 60, Roles: []string{"owner"}, NotifySMS: true},
		{Order: 1, WaitMinutesAfterPrevious: 0, Roles: []string{"tech"}, NotifyEmail: true},
	}
	return p
}

func executed(state domain.EscalationState, step int, at time.Time) domain.EscalationState {
	state.State = domain.EscalationEscalating
	state.LastExecutedStep = step
	state.LastExecutedAt = &at
	return state
}

func TestPlan_ExecutesAfterTriggerDelay(t *testing.T) {
	t.Parallel()

	alert := activeAlert(domain.SeverityCritical)
	policy := oneStepPolicy()

	before := Plan(alert, policy, nil, t0.Add(29*time.Minute))
	assert.Equal(t, Wait, before.Kind)
	assert.Equal(t, t0.Add(30*time.Minute), before.DueAt)

	d := Plan(alert, policy, nil, t0.Add(31*time.Minute))
	require.Equal(t, Execute, d.Kind)
	assert.Equal(t, 0, d.Step)
	assert.True(t, d.Last)
	assert.Equal(t, []string{"manager"}, d.StepDef.Roles)
	assert.True(t, d.StepDef.NotifyEmail)

	st := executed(domain.NewEscalationState(alert.ID, policy.ID), 0, t0.Add(31*time.Minute))
	after := Plan(alert, policy, &st, t0.Add(40*time.Minute))
	assert.Equal(t, Completed, after.Kind)
}

func TestPlan_AcknowledgedNoAction(t *testing.T) {
	t.Parallel()

	alert := activeAlert(domain.SeverityCritical)
	alert.Status = domain.AlertAcknowledged

	d := Plan(alert, oneStepPolicy(), nil, t0.Add(31*time.Minute))
	assert.Equal(t, Inactive, d.Kind)

	alert.Status = domain.AlertResolved
	assert.Equal(t, Inactive, Plan(alert, oneStepPolicy(), nil, t0.Add(31*time.Minute)).Kind)
}

func TestPlan_SecondStepWaitsFromFirstExecution(t *testing.T) {
	t.Parallel()

	alert := activeAlert(domain.SeverityCritical)
	policy := twoStepPolicy()

	d := Plan(alert, policy, nil, t0.Add(30*time.Minute))
	require.Equal(t, Execute, d.Kind)
	assert.Equal(t, 0, d.Step)
	assert.Equal(t, []string{"tech"}, d.StepDef.Roles, "steps run in Order, not slice order")
	assert.False(t, d.Last)

	st := executed(domain.NewEscalationState(alert.ID, policy.ID), 0, t0.Add(30*time.Minute))

	mid := Plan(alert, policy, &st, t0.Add(45*time.Minute))
	assert.Equal(t, Wait, mid.Kind)
	assert.Equal(t, 1, mid.Step)
	assert.Equal(t, t0.Add(90*time.Minute), mid.DueAt)

	late := Plan(alert, policy, &st, t0.Add(91*time.Minute))
	require.Equal(t, Execute, late.Kind)
	assert.Equal(t, 1, late.Step)
	assert.True(t, late.Last)
	assert.Equal(t, []string{"owner"}, late.StepDef.Roles)
}

func TestPlan_CancelledAndNonMatching(t *testing.T) {
	t.Parallel()

	alert := activeAlert(domain.SeverityCritical)
	policy := oneStepPolicy()

	st := domain.NewEscalationState(alert.ID, policy.ID)
	st.State = domain.EscalationCancelled
	assert.Equal(t, Inactive, Plan(alert, policy, &st, t0.Add(time.Hour)).Kind)

	low := activeAlert(domain.SeverityLow)
	d := Plan(low, policy, nil, t0.Add(time.Hour))
	assert.Equal(t, Inactive, d.Kind)
	assert.Equal(t, "policy does not apply", d.Reason)

	policy.Enabled = false
	assert.Equal(t, Inactive, Plan(alert, policy, nil, t0.Add(time.Hour)).Kind)
}

func TestPlan_EmptyPolicyCompletes(t *testing.T) {
	t.Parallel()

	policy := oneStepPolicy()
	policy.Steps = nil
	assert.Equal(t, Completed, Plan(activeAlert(domain.SeverityCritical), policy, nil, t0.Add(time.Hour)).Kind)
}

func TestPlan_PolicyEditsApplyLive(t *testing.T) {
	t.Parallel()

	alert := activeAlert(domain.SeverityCritical)
	policy := twoStepPolicy()
	st := executed(domain.NewEscalationState(alert.ID, policy.ID), 0, t0.Add(30*time.Minute))

	assert.Equal(t, Wait, Plan(alert, policy, &st, t0.Add(40*time.Minute)).Kind)

	policy.Steps[0].WaitMinutesAfterPrevious = 5
	d := Plan(alert, policy, &st, t0.Add(40*time.Minute))
	assert.Equal(t, Execute, d.Kind)
	assert.Equal(t, 1, d.Step)
}

// Repeated and overlapping ticks driven through Plan plus a CAS on
// LastExecutedStep must yield strictly increasing step indices.
func TestPlan_MonotonicStepsUnderDuplicateTicks(t *testing.T) {
	t.Parallel()

	alert := activeAlert(domain.SeverityCritical)
	policy := oneStepPolicy()
	policy.Steps = []domain.EscalationStep{
		{Order: 1, Roles: []string{"tech"}, NotifyEmail: true},
		{Order: 2, WaitMinutesAfterPrevious: 10, Roles: []string{"manager"}, NotifyEmail: true},
		{Order: 3, WaitMinutesAfterPrevious: 10, Roles: []string{"owner"}, NotifySMS: true},
	}

	state := domain.NewEscalationState(alert.ID, policy.ID)
	claim := func(from, to int, at time.Time) bool {
		if state.LastExecutedStep != from {
			return false
		}
		state = executed(state, to, at)
		return true
	}

	var log []int
	for minute := 0; minute <= 120; minute++ {
		now := t0.Add(time.Duration(minute) * time.Minute)
		snapshot := state
		// Three scanners observe the same snapshot.
		for range 3 {
			d := Plan(alert, policy, &snapshot, now)
			if d.Kind != Execute {
				continue
			}
			if claim(d.Step-1, d.Step, now) {
				log = append(log, d.Step)
			}
		}
	}

	assert.Equal(t, []int{0, 1, 2}, log)
}

func TestMatching(t *testing.T) {
	t.Parallel()

	crit := *oneStepPolicy()
	high := *oneStepPolicy()
	high.ID = "p2"
	high.TriggerSeverities = []domain.Severity{domain.SeverityHigh, domain.SeverityCritical}
	disabled := *oneStepPolicy()
	disabled.ID = "p3"
	disabled.Enabled = false

	got := Matching([]domain.EscalationPolicy{crit, high, disabled}, domain.SeverityCritical)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
	assert.Len(t, Matching([]domain.EscalationPolicy{crit, high}, domain.SeverityHigh), 1)
}

func TestNextDueAfter(t *testing.T) {
	t.Parallel()

	policy := twoStepPolicy()
	at := t0.Add(30 * time.Minute)

	next := NextDueAfter(policy, 0, at)
	require.NotNil(t, next)
	assert.Equal(t, at.Add(time.Hour), *next)
	assert.Nil(t, NextDueAfter(policy, 1, at))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "execute", Execute.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
