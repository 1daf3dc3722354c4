// Package escalation plans the next action for an alert under an escalation
// policy. It holds no state of its own; callers persist the EscalationState
// and invoke Plan on every scheduler tick.
package escalation

import (
	"fmt"
	"time"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// Kind is the outcome of planning one (alert, policy) pair.
type Kind int

// Decision kinds.
const (
	// Inactive means the alert is no longer active, the escalation was
	// cancelled, or the policy no longer applies.
	Inactive Kind = iota
	// Wait means the next step is not yet due.
	Wait
	// Execute means step Decision.Step is due now.
	Execute
	// Completed means every step has executed.
	Completed
)

func (k Kind) String() string {
	switch k {
	case Inactive:
		return "inactive"
	case Wait:
		return "wait"
	case Execute:
		return "execute"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Decision describes what the scanner should do for one (alert, policy) pair.
type Decision struct {
	Kind Kind
	// Step is the index into the ordered steps for Execute, and the next
	// step index for Wait.
	Step int
	// StepDef is the step to execute or wait for.
	StepDef domain.EscalationStep
	// DueAt is when Step becomes (or became) due.
	DueAt time.Time
	// Last is true when Step is the final step of the policy.
	Last bool
	// Reason explains Inactive decisions.
	Reason string
}

// Matches reports whether policy escalates alerts of the given severity.
func Matches(policy *domain.EscalationPolicy, sev domain.Severity) bool {
	return policy.Applies(sev)
}

// Matching filters policies down to those that apply to sev.
func Matching(policies []domain.EscalationPolicy, sev domain.Severity) []domain.EscalationPolicy {
	var out []domain.EscalationPolicy
	for i := range policies {
		if Matches(&policies[i], sev) {
			out = append(out, policies[i])
		}
	}
	return out
}

// EntryTime is when the alert enters escalation under policy.
func EntryTime(instance *domain.AlertInstance, policy *domain.EscalationPolicy) time.Time {
	return instance.TriggeredAt.Add(policy.TriggerAfter())
}

// Plan decides the next action. It never mutates its arguments. A nil state
// is treated as a fresh escalation with no executed steps.
func Plan(
	instance *domain.AlertInstance,
	policy *domain.EscalationPolicy,
	state *domain.EscalationState,
	now time.Time,
) Decision {
	if instance.Status != domain.AlertActive {
		return Decision{Kind: Inactive, Reason: "alert " + string(instance.Status)}
	}

	st := domain.NewEscalationState(instance.ID, policy.ID)
	if state != nil {
		st = *state
	}
	switch st.State {
	case domain.EscalationCancelled:
		return Decision{Kind: Inactive, Reason: "escalation cancelled"}
	case domain.EscalationCompleted:
		return Decision{Kind: Completed}
	}

	if !Matches(policy, instance.Severity) {
		return Decision{Kind: Inactive, Reason: "policy does not apply"}
	}

	steps := policy.OrderedSteps()
	next := max(st.LastExecutedStep+1, 0)
	if next >= len(steps) {
		return Decision{Kind: Completed}
	}

	due := DueAt(instance, policy, steps, &st, next)
	d := Decision{
		Step:    next,
		StepDef: steps[next],
		DueAt:   due,
		Last:    next == len(steps)-1,
	}
	if now.Before(due) {
		d.Kind = Wait
		return d
	}
	d.Kind = Execute
	return d
}

// DueAt computes when step index next becomes due. Step 0 waits from the
// escalation entry time; later steps wait from the previous execution.
func DueAt(
	instance *domain.AlertInstance,
	policy *domain.EscalationPolicy,
	steps []domain.EscalationStep,
	state *domain.EscalationState,
	next int,
) time.Time {
	base := EntryTime(instance, policy)
	if next > 0 && state.LastExecutedAt != nil {
		base = *state.LastExecutedAt
	}
	return base.Add(steps[next].Wait())
}

// NextDueAfter returns when the step after executed becomes due, given the
// time it executed. It returns nil when executed was the last step.
func NextDueAfter(policy *domain.EscalationPolicy, executed int, at time.Time) *time.Time {
	steps := policy.OrderedSteps()
	if executed+1 >= len(steps) {
		return nil
	}
	t := at.Add(steps[executed+1].Wait())
	return &t
}
