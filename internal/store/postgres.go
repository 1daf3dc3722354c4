package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

const defaultPoolSize = 10

// PostgreSQL error codes mapped onto store sentinels.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// mapErr converts driver errors into store sentinels where one applies.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.ConstraintName)
		case pgInvalidTextRepr:
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.Message)
		}
	}
	return err
}

// execOne runs a statement that must affect exactly one row.
func (s *PostgresStore) execOne(ctx context.Context, what, query string, args ...any) error {
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", what, mapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// CreateDevice registers a device and its owning tenant.
func (s *PostgresStore) CreateDevice(ctx context.Context, d *domain.Device) error {
	args := pgx.NamedArgs{
		"id":        d.ID,
		"tenant_id": d.TenantID,
		"hostname":  d.Hostname,
	}
	if err := s.pool.QueryRow(ctx, queryCreateDevice, args).Scan(&d.CreatedAt); err != nil {
		return fmt.Errorf("creating device: %w", mapErr(err))
	}
	return nil
}

// GetDevice retrieves a device by id.
func (s *PostgresStore) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	d := &domain.Device{}
	err := s.pool.QueryRow(ctx, queryGetDevice, id).Scan(
		&d.ID, &d.TenantID, &d.Hostname, &d.LastSeenAt, &d.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("getting device %s: %w", id, mapErr(err))
	}
	return d, nil
}

// ListDevices returns devices, optionally filtered by tenant.
func (s *PostgresStore) ListDevices(ctx context.Context, tenantID string) ([]domain.Device, error) {
	rows, err := s.pool.Query(ctx, queryListDevices, tenantID)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		var d domain.Device
		if err := rows.Scan(&d.ID, &d.TenantID, &d.Hostname, &d.LastSeenAt, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// TouchDevice advances the device's last_seen_at, never moving it backwards.
func (s *PostgresStore) TouchDevice(ctx context.Context, id string, seenAt time.Time) error {
	return s.execOne(ctx, "touching device", queryTouchDevice, id, seenAt)
}

// InsertSamples bulk-loads samples with COPY. Samples are insert-only.
func (s *PostgresStore) InsertSamples(ctx context.Context, samples []domain.MetricSample) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(samples))
	for i := range samples {
		values, err := json.Marshal(samples[i].Values)
		if err != nil {
			return 0, fmt.Errorf("marshaling sample values: %w", err)
		}
		rows = append(rows, []any{samples[i].DeviceID, samples[i].CollectedAt, values})
	}

	n, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"metric_samples"},
		[]string{"device_id", "collected_at", "metric_values"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copying metric samples: %w", mapErr(err))
	}
	return int(n), nil
}

// PurgeSamples deletes samples collected before olderThan.
func (s *PostgresStore) PurgeSamples(ctx context.Context, olderThan time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryPurgeSamples, olderThan)
	if err != nil {
		return 0, fmt.Errorf("purging metric samples: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// FindApplicableRules returns active, non-deleted rules for the device and
// the tenant's global rules, device-specific first.
func (s *PostgresStore) FindApplicableRules(
	ctx context.Context,
	tenantID, deviceID string,
) ([]domain.AlertRule, error) {
	return s.queryRules(ctx, queryFindApplicableRules, tenantID, deviceID)
}

// CreateRule inserts a new alert rule.
func (s *PostgresStore) CreateRule(ctx context.Context, r *domain.AlertRule) error {
	err := s.pool.QueryRow(ctx, queryCreateRule, ruleArgs(r)).Scan(
		&r.ID, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating rule: %w", mapErr(err))
	}
	return nil
}

// GetRule retrieves a rule by id, including soft-deleted rules.
func (s *PostgresStore) GetRule(ctx context.Context, id string) (*domain.AlertRule, error) {
	r := &domain.AlertRule{}
	if err := scanRule(s.pool.QueryRow(ctx, queryGetRule, id), r); err != nil {
		return nil, fmt.Errorf("getting rule %s: %w", id, mapErr(err))
	}
	return r, nil
}

// ListRules returns rules matching the query.
func (s *PostgresStore) ListRules(ctx context.Context, q *RuleQuery) ([]domain.AlertRule, error) {
	if q == nil {
		q = &RuleQuery{}
	}
	return s.queryRules(ctx, queryListRules, q.TenantID, q.DeviceID, q.ActiveOnly, q.IncludeDeleted)
}

// UpdateRule replaces a rule's definition. Runtime counters are untouched.
func (s *PostgresStore) UpdateRule(ctx context.Context, r *domain.AlertRule) error {
	args := ruleArgs(r)
	args["id"] = r.ID
	if err := s.pool.QueryRow(ctx, queryUpdateRule, args).Scan(&r.UpdatedAt); err != nil {
		return fmt.Errorf("updating rule %s: %w", r.ID, mapErr(err))
	}
	return nil
}

// SetRuleActive enables or disables a rule.
func (s *PostgresStore) SetRuleActive(ctx context.Context, id string, active bool) error {
	return s.execOne(ctx, "setting rule active", querySetRuleActive, id, active)
}

// SoftDeleteRule marks a rule deleted. Rules are never hard-deleted.
func (s *PostgresStore) SoftDeleteRule(ctx context.Context, id string) error {
	return s.execOne(ctx, "deleting rule", querySoftDeleteRule, id)
}

// IncrementRuleTrigger bumps trigger_count and last_triggered in one UPDATE.
func (s *PostgresStore) IncrementRuleTrigger(ctx context.Context, id string, at time.Time) error {
	return s.execOne(ctx, "incrementing rule trigger", queryIncrementRuleTrigger, id, at)
}

// CreatePolicy inserts a new escalation policy.
func (s *PostgresStore) CreatePolicy(ctx context.Context, p *domain.EscalationPolicy) error {
	args, err := policyArgs(p)
	if err != nil {
		return err
	}
	if err := s.pool.QueryRow(ctx, queryCreatePolicy, args).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("creating policy: %w", mapErr(err))
	}
	return nil
}

// GetPolicy retrieves a policy by id.
func (s *PostgresStore) GetPolicy(ctx context.Context, id string) (*domain.EscalationPolicy, error) {
	p := &domain.EscalationPolicy{}
	if err := scanPolicy(s.pool.QueryRow(ctx, queryGetPolicy, id), p); err != nil {
		return nil, fmt.Errorf("getting policy %s: %w", id, mapErr(err))
	}
	return p, nil
}

// ListPolicies returns policies matching the query.
func (s *PostgresStore) ListPolicies(
	ctx context.Context,
	q *PolicyQuery,
) ([]domain.EscalationPolicy, error) {
	if q == nil {
		q = &PolicyQuery{}
	}
	rows, err := s.pool.Query(ctx, queryListPolicies, q.TenantID, q.EnabledOnly)
	if err != nil {
		return nil, fmt.Errorf("querying policies: %w", err)
	}
	defer rows.Close()

	var policies []domain.EscalationPolicy
	for rows.Next() {
		var p domain.EscalationPolicy
		if err := scanPolicy(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning policy: %w", err)
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// UpdatePolicy replaces a policy. In-flight escalations see the change on
// the next scan.
func (s *PostgresStore) UpdatePolicy(ctx context.Context, p *domain.EscalationPolicy) error {
	args, err := policyArgs(p)
	if err != nil {
		return err
	}
	args["id"] = p.ID
	if err := s.pool.QueryRow(ctx, queryUpdatePolicy, args).Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("updating policy %s: %w", p.ID, mapErr(err))
	}
	return nil
}

// DeletePolicy removes a policy and its escalation state.
func (s *PostgresStore) DeletePolicy(ctx context.Context, id string) error {
	return s.execOne(ctx, "deleting policy", queryDeletePolicy, id)
}

// CreateAlertInstance inserts a new alert-history row.
func (s *PostgresStore) CreateAlertInstance(ctx context.Context, a *domain.AlertInstance) error {
	args := pgx.NamedArgs{
		"tenant_id":       a.TenantID,
		"rule_id":         a.RuleID,
		"device_id":       a.DeviceID,
		"severity":        string(a.Severity),
		"message":         a.Message,
		"metric_name":     a.MetricName,
		"metric_value":    a.MetricValue,
		"threshold_value": a.ThresholdValue,
		"status":          string(a.Status),
		"triggered_at":    a.TriggeredAt,
		"sample_at":       a.SampleAt,
	}
	if err := s.pool.QueryRow(ctx, queryCreateAlertInstance, args).Scan(&a.ID); err != nil {
		return fmt.Errorf("creating alert instance: %w", mapErr(err))
	}
	return nil
}

// GetAlertInstance retrieves an alert instance by id.
func (s *PostgresStore) GetAlertInstance(ctx context.Context, id string) (*domain.AlertInstance, error) {
	a := &domain.AlertInstance{}
	if err := scanAlert(s.pool.QueryRow(ctx, queryGetAlertInstance, id), a); err != nil {
		return nil, fmt.Errorf("getting alert %s: %w", id, mapErr(err))
	}
	return a, nil
}

// ListAlertInstances queries alert instances with optional filters,
// returning results and total count.
func (s *PostgresStore) ListAlertInstances(
	ctx context.Context,
	q *AlertQuery,
) ([]domain.AlertInstance, int, error) {
	if q == nil {
		q = &AlertQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting alerts: %w", mapErr(err))
	}

	alerts, err := s.queryAlerts(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// ListActiveAlerts returns every active (unacknowledged) alert, oldest first.
func (s *PostgresStore) ListActiveAlerts(ctx context.Context) ([]domain.AlertInstance, error) {
	return s.queryAlerts(ctx, queryListActiveAlerts)
}

// GetAlertStatus reads only the status column, for pre-dispatch re-checks.
func (s *PostgresStore) GetAlertStatus(ctx context.Context, id string) (domain.AlertStatus, error) {
	var status string
	if err := s.pool.QueryRow(ctx, queryGetAlertStatus, id).Scan(&status); err != nil {
		return "", fmt.Errorf("getting alert status %s: %w", id, mapErr(err))
	}
	return domain.AlertStatus(status), nil
}

// TransitionAlert moves an alert to t.To if its current status allows it,
// and cancels its escalations in the same transaction. It returns
// domain.ErrInvalidTransition when the current status forbids the move.
func (s *PostgresStore) TransitionAlert(
	ctx context.Context,
	id string,
	t *AlertTransition,
) (*domain.AlertInstance, error) {
	from := domain.SourcesFor(t.To)
	if len(from) == 0 {
		return nil, fmt.Errorf("%w: nothing transitions to %s", domain.ErrInvalidTransition, t.To)
	}
	fromStr := make([]string, len(from))
	for i, f := range from {
		fromStr[i] = string(f)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transition: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	args := pgx.NamedArgs{
		"id":    id,
		"to":    string(t.To),
		"from":  fromStr,
		"at":    t.At,
		"actor": t.Actor,
		"note":  t.Note,
	}

	a := &domain.AlertInstance{}
	err = scanAlert(tx.QueryRow(ctx, queryTransitionAlert, args), a)
	if errors.Is(err, pgx.ErrNoRows) {
		var current string
		if err := tx.QueryRow(ctx, queryGetAlertStatus, id).Scan(&current); err != nil {
			return nil, fmt.Errorf("transitioning alert %s: %w", id, mapErr(err))
		}
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, t.To)
	}
	if err != nil {
		return nil, fmt.Errorf("transitioning alert %s: %w", id, mapErr(err))
	}

	if _, err := tx.Exec(ctx, queryCancelEscalations, id); err != nil {
		return nil, fmt.Errorf("cancelling escalations for %s: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing transition: %w", err)
	}
	return a, nil
}

// HasRecentAlert reports whether the rule fired for the device at or after since.
func (s *PostgresStore) HasRecentAlert(
	ctx context.Context,
	ruleID, deviceID string,
	since time.Time,
) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryHasRecentAlert, ruleID, deviceID, since).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking recent alert: %w", mapErr(err))
	}
	return exists, nil
}

// ListOpenAlerts returns active or acknowledged alerts for a (rule, device) pair.
func (s *PostgresStore) ListOpenAlerts(
	ctx context.Context,
	ruleID, deviceID string,
) ([]domain.AlertInstance, error) {
	return s.queryAlerts(ctx, queryListOpenAlerts, ruleID, deviceID)
}

// ListEscalationStates returns the state records for the given alerts.
func (s *PostgresStore) ListEscalationStates(
	ctx context.Context,
	alertIDs []string,
) ([]domain.EscalationState, error) {
	if len(alertIDs) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, queryListEscalationStates, alertIDs)
	if err != nil {
		return nil, fmt.Errorf("querying escalation states: %w", mapErr(err))
	}
	defer rows.Close()

	var states []domain.EscalationState
	for rows.Next() {
		var st domain.EscalationState
		var state string
		if err := rows.Scan(
			&st.AlertID, &st.PolicyID, &state, &st.LastExecutedStep,
			&st.LastExecutedAt, &st.StartedAt, &st.NextDueAt, &st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning escalation state: %w", err)
		}
		st.State = domain.EscalationStateKind(state)
		states = append(states, st)
	}
	return states, rows.Err()
}

// ScheduleEscalation records when the next step of an (alert, policy) pair
// is due, creating a pending state record if none exists.
func (s *PostgresStore) ScheduleEscalation(
	ctx context.Context,
	alertID, policyID string,
	dueAt time.Time,
) error {
	if _, err := s.pool.Exec(ctx, queryScheduleEscalation, alertID, policyID, dueAt); err != nil {
		return fmt.Errorf("scheduling escalation: %w", mapErr(err))
	}
	return nil
}

// ClaimEscalationStep atomically advances last_executed_step from c.Step-1
// to c.Step while the alert is active, and records one dispatch row per
// channel. It returns ErrClaimLost when another scan got there first or the
// alert is no longer active.
func (s *PostgresStore) ClaimEscalationStep(
	ctx context.Context,
	c *StepClaim,
) ([]domain.EscalationDispatch, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning claim: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, queryEnsureEscalationState, c.AlertID, c.PolicyID); err != nil {
		return nil, fmt.Errorf("ensuring escalation state: %w", mapErr(err))
	}

	tag, err := tx.Exec(ctx, queryClaimEscalationStep, pgx.NamedArgs{
		"alert_id":    c.AlertID,
		"policy_id":   c.PolicyID,
		"step":        c.Step,
		"at":          c.ExecutedAt,
		"next_due_at": c.NextDueAt,
	})
	if err != nil {
		return nil, fmt.Errorf("claiming escalation step: %w", mapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrClaimLost
	}

	dispatches := make([]domain.EscalationDispatch, 0, len(c.Channels))
	for _, ch := range c.Channels {
		d := domain.EscalationDispatch{
			AlertID:   c.AlertID,
			PolicyID:  c.PolicyID,
			Step:      c.Step,
			Channel:   ch,
			Status:    domain.DispatchClaimed,
			ClaimedAt: c.ExecutedAt,
		}
		if err := tx.QueryRow(ctx, queryInsertDispatch,
			c.AlertID, c.PolicyID, c.Step, string(ch), c.ExecutedAt,
		).Scan(&d.ID); err != nil {
			return nil, fmt.Errorf("recording dispatch: %w", mapErr(err))
		}
		dispatches = append(dispatches, d)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return dispatches, nil
}

// CompleteEscalation marks an (alert, policy) escalation fully executed.
func (s *PostgresStore) CompleteEscalation(ctx context.Context, alertID, policyID string) error {
	if _, err := s.pool.Exec(ctx, queryCompleteEscalation, alertID, policyID); err != nil {
		return fmt.Errorf("completing escalation: %w", mapErr(err))
	}
	return nil
}

// CompleteDispatch records the outcome of a claimed dispatch.
func (s *PostgresStore) CompleteDispatch(
	ctx context.Context,
	id, status string,
	recipients int,
	errText string,
) error {
	return s.execOne(ctx, "completing dispatch", queryCompleteDispatch, id, status, recipients, errText)
}

// ListEscalationDispatches returns the dispatch log of an alert.
func (s *PostgresStore) ListEscalationDispatches(
	ctx context.Context,
	alertID string,
) ([]domain.EscalationDispatch, error) {
	rows, err := s.pool.Query(ctx, queryListEscalationDispatches, alertID)
	if err != nil {
		return nil, fmt.Errorf("querying dispatches: %w", mapErr(err))
	}
	defer rows.Close()

	var out []domain.EscalationDispatch
	for rows.Next() {
		var d domain.EscalationDispatch
		var channel string
		if err := rows.Scan(
			&d.ID, &d.AlertID, &d.PolicyID, &d.Step, &channel, &d.Recipients,
			&d.Status, &d.ErrorText, &d.ClaimedAt, &d.SentAt,
		); err != nil {
			return nil, fmt.Errorf("scanning dispatch: %w", err)
		}
		d.Channel = domain.Channel(channel)
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListRoleMembers returns the members of any of roles within a tenant.
func (s *PostgresStore) ListRoleMembers(
	ctx context.Context,
	tenantID string,
	roles []string,
) ([]domain.RoleMember, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, queryListRoleMembers, tenantID, roles)
	if err != nil {
		return nil, fmt.Errorf("querying role members: %w", err)
	}
	defer rows.Close()

	var members []domain.RoleMember
	for rows.Next() {
		var m domain.RoleMember
		if err := rows.Scan(
			&m.ID, &m.TenantID, &m.Role, &m.Name, &m.Email, &m.Phone,
			&m.RealtimeChannel, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning role member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// CreateRoleMember adds a person to a tenant role.
func (s *PostgresStore) CreateRoleMember(ctx context.Context, m *domain.RoleMember) error {
	args := pgx.NamedArgs{
		"tenant_id":        m.TenantID,
		"role":             m.Role,
		"name":             m.Name,
		"email":            m.Email,
		"phone":            m.Phone,
		"realtime_channel": m.RealtimeChannel,
	}
	if err := s.pool.QueryRow(ctx, queryCreateRoleMember, args).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("creating role member: %w", mapErr(err))
	}
	return nil
}

// DeleteRoleMember removes a role membership.
func (s *PostgresStore) DeleteRoleMember(ctx context.Context, id string) error {
	return s.execOne(ctx, "deleting role member", queryDeleteRoleMember, id)
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func ruleArgs(r *domain.AlertRule) pgx.NamedArgs {
	var deviceID *string
	if !r.IsGlobal() {
		deviceID = r.DeviceID
	}
	alertType := r.AlertType
	if alertType == "" {
		alertType = "threshold"
	}
	return pgx.NamedArgs{
		"tenant_id":  r.TenantID,
		"name":       r.Name,
		"alert_type": alertType,
		"severity":   string(r.Severity),
		"device_id":  deviceID,
		"metric":     r.Condition.Metric,
		"operator":   string(r.Condition.Operator),
		"threshold":  r.Condition.Threshold,
		"is_active":  r.IsActive,
	}
}

func scanRule(row scannable, r *domain.AlertRule) error {
	var severity, operator string
	if err := row.Scan(
		&r.ID, &r.TenantID, &r.Name, &r.AlertType, &severity, &r.DeviceID,
		&r.Condition.Metric, &operator, &r.Condition.Threshold,
		&r.IsActive, &r.Deleted, &r.LastTriggered, &r.TriggerCount,
		&r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return err
	}
	r.Severity = domain.Severity(severity)
	r.Condition.Operator = domain.Operator(operator)
	return nil
}

func (s *PostgresStore) queryRules(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.AlertRule, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.AlertRule
	for rows.Next() {
		var r domain.AlertRule
		if err := scanRule(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func policyArgs(p *domain.EscalationPolicy) (pgx.NamedArgs, error) {
	steps := p.Steps
	if steps == nil {
		steps = []domain.EscalationStep{}
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("marshaling steps: %w", err)
	}
	severities := make([]string, len(p.TriggerSeverities))
	for i, sev := range p.TriggerSeverities {
		severities[i] = string(sev)
	}
	return pgx.NamedArgs{
		"tenant_id":             p.TenantID,
		"name":                  p.Name,
		"trigger_severities":    severities,
		"trigger_after_minutes": p.TriggerAfterMinutes,
		"enabled":               p.Enabled,
		"steps":                 stepsJSON,
	}, nil
}

func scanPolicy(row scannable, p *domain.EscalationPolicy) error {
	var severities []string
	var stepsJSON []byte
	if err := row.Scan(
		&p.ID, &p.TenantID, &p.Name, &severities, &p.TriggerAfterMinutes,
		&p.Enabled, &stepsJSON, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}
	p.TriggerSeverities = make([]domain.Severity, len(severities))
	for i, sev := range severities {
		p.TriggerSeverities[i] = domain.Severity(sev)
	}
	if err := json.Unmarshal(stepsJSON, &p.Steps); err != nil {
		return fmt.Errorf("unmarshaling steps: %w", err)
	}
	return nil
}

func scanAlert(row scannable, a *domain.AlertInstance) error {
	var severity, status string
	if err := row.Scan(
		&a.ID, &a.TenantID, &a.RuleID, &a.DeviceID, &severity, &a.Message,
		&a.MetricName, &a.MetricValue, &a.ThresholdValue, &status,
		&a.TriggeredAt, &a.SampleAt,
		&a.AcknowledgedAt, &a.AcknowledgedBy, &a.ResolvedAt,
		&a.ResolvedBy, &a.ResolutionNote,
	); err != nil {
		return err
	}
	a.Severity = domain.Severity(severity)
	a.Status = domain.AlertStatus(status)
	return nil
}

func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.AlertInstance, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", mapErr(err))
	}
	defer rows.Close()

	var alerts []domain.AlertInstance
	for rows.Next() {
		var a domain.AlertInstance
		if err := scanAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
