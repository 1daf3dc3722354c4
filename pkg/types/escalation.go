package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Channel is a notification transport.
type Channel string

// Notification channels.
const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelRealtime Channel = "realtime"
)

// EscalationStep is one ordered "notify these roles via these channels" unit.
type EscalationStep struct {
	Order                    int      `json:"order"`
	WaitMinutesAfterPrevious int      `json:"wait_minutes_after_previous"`
	Roles                    []string `json:"roles"`
	NotifyEmail              bool     `json:"notify_email"`
	NotifySMS                bool     `json:"notify_sms"`
	NotifyRealtime           bool     `json:"notify_realtime"`
}

// Channels returns the enabled channels in a stable order.
func (s *EscalationStep) Channels() []Channel {
	var chs []Channel
	if s.NotifyEmail {
		chs = append(chs, ChannelEmail)
	}
	if s.NotifySMS {
		chs = append(chs, ChannelSMS)
	}
	if s.NotifyRealtime {
		chs = append(chs, ChannelRealtime)
	}
	return chs
}

// Wait returns the step delay as a duration; negative values clamp to zero.
func (s *EscalationStep) Wait() time.Duration {
	return time.Duration(max(s.WaitMinutesAfterPrevious, 0)) * time.Minute
}

// EscalationPolicy is an ordered plan for notifying humans about
// unacknowledged alerts. Policies are referenced live, never snapshotted.
type EscalationPolicy struct {
	ID                  string           `json:"id"                    db:"id"`
	TenantID            string           `json:"tenant_id"             db:"tenant_id"`
	Name                string           `json:"name"                  db:"name"`
	TriggerSeverities   []Severity       `json:"trigger_severities"    db:"trigger_severities"`
	TriggerAfterMinutes int              `json:"trigger_after_minutes" db:"trigger_after_minutes"`
	Enabled             bool             `json:"enabled"               db:"enabled"`
	Steps               []EscalationStep `json:"steps"                 db:"steps"`
	CreatedAt           time.Time        `json:"created_at"            db:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"            db:"updated_at"`
}

// Applies reports whether the policy escalates alerts of the given severity.
func (p *EscalationPolicy) Applies(sev Severity) bool {
	return p.Enabled && slices.Contains(p.TriggerSeverities, sev)
}

// TriggerAfter returns the delay before escalation begins.
func (p *EscalationPolicy) TriggerAfter() time.Duration {
	return time.Duration(max(p.TriggerAfterMinutes, 0)) * time.Minute
}

// OrderedSteps returns the steps sorted by Order without mutating the policy.
func (p *EscalationPolicy) OrderedSteps() []EscalationStep {
	steps := slices.Clone(p.Steps)
	slices.SortStableFunc(steps, func(a, b EscalationStep) int {
		return a.Order - b.Order
	})
	return steps
}

// Validate checks the authoring invariants. The escalation runtime does not
// rely on them and tolerates policies that violate them.
func (p *EscalationPolicy) Validate() error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("%w: name is required", ErrInvalidPolicy))
	}
	if p.TriggerAfterMinutes < 0 {
		errs = append(errs, fmt.Errorf("%w: trigger_after_minutes must be >= 0", ErrInvalidPolicy))
	}
	for _, sev := range p.TriggerSeverities {
		if !sev.Valid() {
			errs = append(errs, fmt.Errorf("%w: unknown severity %q", ErrInvalidPolicy, sev))
		}
	}
	if p.Enabled && len(p.Steps) == 0 {
		errs = append(errs, fmt.Errorf("%w: enabled policy needs at least one step", ErrInvalidPolicy))
	}

	seen := make(map[int]bool, len(p.Steps))
	for i := range p.Steps {
		s := &p.Steps[i]
		if seen[s.Order] {
			errs = append(errs, fmt.Errorf("%w: duplicate step order %d", ErrInvalidPolicy, s.Order))
		}
		seen[s.Order] = true
		if s.WaitMinutesAfterPrevious < 0 {
			errs = append(errs, fmt.Errorf("%w: step %d wait must be >= 0", ErrInvalidPolicy, s.Order))
		}
		if len(s.Roles) == 0 {
			errs = append(errs, fmt.Errorf("%w: step %d needs at least one role", ErrInvalidPolicy, s.Order))
		}
		if len(s.Channels()) == 0 {
			errs = append(errs, fmt.Errorf("%w: step %d needs at least one channel", ErrInvalidPolicy, s.Order))
		}
	}

	return errors.Join(errs...)
}

// EscalationStateKind is the per-(alert, policy) escalation state.
type EscalationStateKind string

// Escalation states. Pending is "no escalation yet"; completed means every
// step has executed; cancelled follows acknowledgement or resolution.
const (
	EscalationPending    EscalationStateKind = "pending"
	EscalationEscalating EscalationStateKind = "escalating"
	EscalationCompleted  EscalationStateKind = "completed"
	EscalationCancelled  EscalationStateKind = "cancelled"
)

// NoStepExecuted is the LastExecutedStep value before step 0 runs.
const NoStepExecuted = -1

// EscalationState is the scheduled-action record for one alert under one policy.
type EscalationState struct {
	AlertID          string              `json:"alert_id"                   db:"alert_id"`
	PolicyID         string              `json:"policy_id"                  db:"policy_id"`
	State            EscalationStateKind `json:"state"                      db:"state"`
	LastExecutedStep int                 `json:"last_executed_step"         db:"last_executed_step"`
	LastExecutedAt   *time.Time          `json:"last_executed_at,omitempty" db:"last_executed_at"`
	StartedAt        *time.Time          `json:"started_at,omitempty"       db:"started_at"`
	NextDueAt        *time.Time          `json:"next_due_at,omitempty"      db:"next_due_at"`
	UpdatedAt        time.Time           `json:"updated_at"                 db:"updated_at"`
}

// NewEscalationState returns the initial state for an (alert, policy) pair.
func NewEscalationState(alertID, policyID string) EscalationState {
	return EscalationState{
		AlertID:          alertID,
		PolicyID:         policyID,
		State:            EscalationPending,
		LastExecutedStep: NoStepExecuted,
	}
}

// Finished reports whether no more steps will run for this state.
func (s *EscalationState) Finished() bool {
	return s.State == EscalationCompleted || s.State == EscalationCancelled
}

// EscalationDispatch records the outcome of one channel send for one step.
type EscalationDispatch struct {
	ID         string     `json:"id"                   db:"id"`
	AlertID    string     `json:"alert_id"             db:"alert_id"`
	PolicyID   string     `json:"policy_id"            db:"policy_id"`
	Step       int        `json:"step"                 db:"step"`
	Channel    Channel    `json:"channel"              db:"channel"`
	Recipients int        `json:"recipients"           db:"recipients"`
	Status     string     `json:"status"               db:"status"`
	ErrorText  string     `json:"error_text,omitempty" db:"error_text"`
	ClaimedAt  time.Time  `json:"claimed_at"           db:"claimed_at"`
	SentAt     *time.Time `json:"sent_at,omitempty"    db:"sent_at"`
}

// Dispatch status values.
const (
	DispatchClaimed = "claimed"
	DispatchSent    = "sent"
	DispatchFailed  = "failed"
	DispatchSkipped = "skipped"
)

// RoleMember maps a tenant role to a concrete person.
type RoleMember struct {
	ID              string    `json:"id"                         db:"id"`
	TenantID        string    `json:"tenant_id"                  db:"tenant_id"`
	Role            string    `json:"role"                       db:"role"`
	Name            string    `json:"name"                       db:"name"`
	Email           string    `json:"email,omitempty"            db:"email"`
	Phone           string    `json:"phone,omitempty"            db:"phone"`
	RealtimeChannel string    `json:"realtime_channel,omitempty" db:"realtime_channel"`
	CreatedAt       time.Time `json:"created_at"                 db:"created_at"`
}

// Recipient is a resolved notification target.
type Recipient struct {
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	RealtimeChannel string `json:"realtime_channel,omitempty"`
}

// Recipient converts a role member into a notification target.
func (m *RoleMember) Recipient() Recipient {
	return Recipient{
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		RealtimeChannel: m.RealtimeChannel,
	}
}
