// Package store defines the datastore abstraction for msp-alert-engine.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// Sentinel errors returned by Store implementations.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrClaimLost means an escalation step was already claimed by another
	// scan, or the alert is no longer active.
	ErrClaimLost = errors.New("escalation claim lost")
)

// RuleQuery defines optional filters for rule listings.
type RuleQuery struct {
	TenantID       *string
	DeviceID       *string
	ActiveOnly     bool
	IncludeDeleted bool
}

// PolicyQuery defines optional filters for policy listings.
type PolicyQuery struct {
	TenantID    *string
	EnabledOnly bool
}

// AlertQuery defines optional filters for alert instance listings.
type AlertQuery struct {
	TenantID *string
	DeviceID *string
	RuleID   *string
	Severity *string
	Statuses []string
	Since    *time.Time
	Limit    int // default 50
	Offset   int
	OrderBy  string // "triggered_at", "severity"
}

// AlertTransition describes a status change requested by an operator or by
// auto-resolution.
type AlertTransition struct {
	To    domain.AlertStatus
	Actor string
	Note  string
	At    time.Time
}

// StepClaim is the claim-then-act record written before a step's side effects.
type StepClaim struct {
	AlertID    string
	PolicyID   string
	Step       int
	ExecutedAt time.Time
	NextDueAt  *time.Time
	Channels   []domain.Channel
}

// Store defines all data access operations for msp-alert-engine.
type Store interface {
	// Devices
	CreateDevice(ctx context.Context, d *domain.Device) error
	GetDevice(ctx context.Context, id string) (*domain.Device, error)
	ListDevices(ctx context.Context, tenantID string) ([]domain.Device, error)
	TouchDevice(ctx context.Context, id string, seenAt time.Time) error

	// Samples
	InsertSamples(ctx context.Context, samples []domain.MetricSample) (int, error)
	PurgeSamples(ctx context.Context, olderThan time.Time) (int, error)

	// Rules
	FindApplicableRules(ctx context.Context, tenantID, deviceID string) ([]domain.AlertRule, error)
	CreateRule(ctx context.Context, r *domain.AlertRule) error
	GetRule(ctx context.Context, id string) (*domain.AlertRule, error)
	ListRules(ctx context.Context, q *RuleQuery) ([]domain.AlertRule, error)
	UpdateRule(ctx context.Context, r *domain.AlertRule) error
	SetRuleActive(ctx context.Context, id string, active bool) error
	SoftDeleteRule(ctx context.Context, id string) error
	IncrementRuleTrigger(ctx context.Context, id string, at time.Time) error

	// Escalation policies
	CreatePolicy(ctx context.Context, p *domain.EscalationPolicy) error
	GetPolicy(ctx context.Context, id string) (*domain.EscalationPolicy, error)
	ListPolicies(ctx context.Context, q *PolicyQuery) ([]domain.EscalationPolicy, error)
	UpdatePolicy(ctx context.Context, p *domain.EscalationPolicy) error
	DeletePolicy(ctx context.Context, id string) error

	// Alert instances
	CreateAlertInstance(ctx context.Context, a *domain.AlertInstance) error
	GetAlertInstance(ctx context.Context, id string) (*domain.AlertInstance, error)
	ListAlertInstances(ctx context.Context, q *AlertQuery) ([]domain.AlertInstance, int, error)
	ListActiveAlerts(ctx context.Context) ([]domain.AlertInstance, error)
	GetAlertStatus(ctx context.Context, id string) (domain.AlertStatus, error)
	TransitionAlert(ctx context.Context, id string, t *AlertTransition) (*domain.AlertInstance, error)
	HasRecentAlert(ctx context.Context, ruleID, deviceID string, since time.Time) (bool, error)
	ListOpenAlerts(ctx context.Context, ruleID, deviceID string) ([]domain.AlertInstance, error)

	// Escalation state
	ListEscalationStates(ctx context.Context, alertIDs []string) ([]domain.EscalationState, error)
	ScheduleEscalation(ctx context.Context, alertID, policyID string, dueAt time.Time) error
	ClaimEscalationStep(ctx context.Context, c *StepClaim) ([]domain.EscalationDispatch, error)
	CompleteEscalation(ctx context.Context, alertID, policyID string) error
	CompleteDispatch(ctx context.Context, id, status string, recipients int, errText string) error
	ListEscalationDispatches(ctx context.Context, alertID string) ([]domain.EscalationDispatch, error)

	// Directory
	ListRoleMembers(ctx context.Context, tenantID string, roles []string) ([]domain.RoleMember, error)
	CreateRoleMember(ctx context.Context, m *domain.RoleMember) error
	DeleteRoleMember(ctx context.Context, id string) error

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
