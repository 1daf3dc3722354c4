package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Device queries.
const (
	deviceColumns = `id, tenant_id, hostname, last_seen_at, created_at`

	queryCreateDevice = `
		INSERT INTO devices (id, tenant_id, hostname)
		VALUES (@id, @tenant_id, @hostname)
		RETURNING created_at`

	queryGetDevice = `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	queryListDevices = `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE ($1 = '' OR tenant_id = $1)
		ORDER BY tenant_id, id`

	queryTouchDevice = `
		UPDATE devices SET last_seen_at = GREATEST(COALESCE(last_seen_at, $2), $2)
		WHERE id = $1`
)

// Sample queries.
const (
	queryPurgeSamples = `DELETE FROM metric_samples WHERE collected_at < $1`
)

// Rule queries.
const (
	ruleColumns = `id, tenant_id, name, alert_type, severity, device_id,
		metric, operator, threshold, is_active, deleted,
		last_triggered, trigger_count, created_at, updated_at`

	queryFindApplicableRules = `
		SELECT ` + ruleColumns + `
		FROM alert_rules
		WHERE tenant_id = $1
			AND (device_id = $2 OR device_id IS NULL)
			AND is_active AND NOT deleted
		ORDER BY (device_id IS NULL), created_at, id`

	queryCreateRule = `
		INSERT INTO alert_rules (
			tenant_id, name, alert_type, severity, device_id,
			metric, operator, threshold, is_active
		) VALUES (
			@tenant_id, @name, @alert_type, @severity, @device_id,
			@metric, @operator, @threshold, @is_active
		)
		RETURNING id, created_at, updated_at`

	queryGetRule = `SELECT ` + ruleColumns + ` FROM alert_rules WHERE id = $1`

	queryListRules = `
		SELECT ` + ruleColumns + `
		FROM alert_rules
		WHERE ($1::text IS NULL OR tenant_id = $1)
			AND ($2::text IS NULL OR device_id = $2)
			AND (NOT $3 OR is_active)
			AND ($4 OR NOT deleted)
		ORDER BY tenant_id, (device_id IS NULL), created_at, id`

	queryUpdateRule = `
		UPDATE alert_rules SET
			name       = @name,
			alert_type = @alert_type,
			severity   = @severity,
			device_id  = @device_id,
			metric     = @metric,
			operator   = @operator,
			threshold  = @threshold,
			is_active  = @is_active,
			updated_at = now()
		WHERE id = @id AND NOT deleted
		RETURNING updated_at`

	querySetRuleActive = `
		UPDATE alert_rules SET is_active = $2, updated_at = now()
		WHERE id = $1 AND NOT deleted`

	querySoftDeleteRule = `
		UPDATE alert_rules SET deleted = true, is_active = false, updated_at = now()
		WHERE id = $1 AND NOT deleted`

	// Single statement so concurrent firings never lose an increment.
	queryIncrementRuleTrigger = `
		UPDATE alert_rules SET
			trigger_count  = trigger_count + 1,
			last_triggered = $2
		WHERE id = $1`
)

// Escalation policy queries.
const (
	policyColumns = `id, tenant_id, name, trigger_severities, trigger_after_minutes,
		enabled, steps, created_at, updated_at`

	queryCreatePolicy = `
		INSERT INTO escalation_policies (
			tenant_id, name, trigger_severities, trigger_after_minutes, enabled, steps
		) VALUES (
			@tenant_id, @name, @trigger_severities, @trigger_after_minutes, @enabled, @steps
		)
		RETURNING id, created_at, updated_at`

	queryGetPolicy = `SELECT ` + policyColumns + ` FROM escalation_policies WHERE id = $1`

	queryListPolicies = `
		SELECT ` + policyColumns + `
		FROM escalation_policies
		WHERE ($1::text IS NULL OR tenant_id = $1)
			AND (NOT $2 OR enabled)
		ORDER BY tenant_id, created_at, id`

	queryUpdatePolicy = `
		UPDATE escalation_policies SET
			name                  = @name,
			trigger_severities    = @trigger_severities,
			trigger_after_minutes = @trigger_after_minutes,
			enabled               = @enabled,
			steps                 = @steps,
			updated_at            = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeletePolicy = `DELETE FROM escalation_policies WHERE id = $1`
)

// Alert instance queries.
const (
	alertColumns = `id, tenant_id, rule_id, device_id, severity, message,
	metric_name, metric_value, threshold_value, status, triggered_at, sample_at,
	acknowledged_at, COALESCE(acknowledged_by, ''), resolved_at,
	COALESCE(resolved_by, ''), COALESCE(resolution_note, '')`

	baseAlertsSelect = `SELECT ` + alertColumns + `
FROM alert_instances`

	queryCreateAlertInstance = `
		INSERT INTO alert_instances (
			tenant_id, rule_id, device_id, severity, message,
			metric_name, metric_value, threshold_value, status,
			triggered_at, sample_at
		) VALUES (
			@tenant_id, @rule_id, @device_id, @severity, @message,
			@metric_name, @metric_value, @threshold_value, @status,
			@triggered_at, @sample_at
		)
		RETURNING id`

	queryGetAlertInstance = baseAlertsSelect + ` WHERE id = $1`

	queryListActiveAlerts = baseAlertsSelect + `
		WHERE status = 'active'
		ORDER BY triggered_at, id`

	queryGetAlertStatus = `SELECT status FROM alert_instances WHERE id = $1`

	queryTransitionAlert = `
		UPDATE alert_instances SET
			status          = @to,
			acknowledged_at = CASE WHEN @to = 'acknowledged' THEN @at ELSE acknowledged_at END,
			acknowledged_by = CASE WHEN @to = 'acknowledged' THEN @actor ELSE acknowledged_by END,
			resolved_at     = CASE WHEN @to = 'resolved' THEN @at ELSE resolved_at END,
			resolved_by     = CASE WHEN @to = 'resolved' THEN @actor ELSE resolved_by END,
			resolution_note = CASE WHEN @to = 'resolved' THEN @note ELSE resolution_note END
		WHERE id = @id AND status = ANY(@from)
		RETURNING ` + alertColumns

	queryHasRecentAlert = `
		SELECT EXISTS(
			SELECT 1 FROM alert_instances
			WHERE rule_id = $1 AND device_id = $2 AND triggered_at >= $3
		)`

	queryListOpenAlerts = baseAlertsSelect + `
		WHERE rule_id = $1 AND device_id = $2 AND status IN ('active', 'acknowledged')
		ORDER BY triggered_at, id`
)

// Escalation state queries.
const (
	escalationStateColumns = `alert_id, policy_id, state, last_executed_step,
		last_executed_at, started_at, next_due_at, updated_at`

	queryListEscalationStates = `
		SELECT ` + escalationStateColumns + `
		FROM escalation_states
		WHERE alert_id = ANY($1::text[]::uuid[])
		ORDER BY alert_id, policy_id`

	queryScheduleEscalation = `
		INSERT INTO escalation_states (alert_id, policy_id, next_due_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (alert_id, policy_id) DO UPDATE
			SET next_due_at = EXCLUDED.next_due_at,
				updated_at  = now()
			WHERE escalation_states.state IN ('pending', 'escalating')
				AND escalation_states.next_due_at IS DISTINCT FROM EXCLUDED.next_due_at`

	queryEnsureEscalationState = `
		INSERT INTO escalation_states (alert_id, policy_id)
		VALUES ($1, $2)
		ON CONFLICT (alert_id, policy_id) DO NOTHING`

	// Compare-and-set: only the scan that observes step-1 advances to step,
	// and only while the alert is still active.
	queryClaimEscalationStep = `
		UPDATE escalation_states es SET
			state              = 'escalating',
			last_executed_step = @step,
			last_executed_at   = @at,
			started_at         = COALESCE(es.started_at, @at),
			next_due_at        = @next_due_at,
			updated_at         = now()
		WHERE es.alert_id = @alert_id
			AND es.policy_id = @policy_id
			AND es.last_executed_step = @step - 1
			AND es.state IN ('pending', 'escalating')
			AND EXISTS (
				SELECT 1 FROM alert_instances a
				WHERE a.id = es.alert_id AND a.status = 'active'
			)`

	queryInsertDispatch = `
		INSERT INTO escalation_dispatches (alert_id, policy_id, step, channel, claimed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	queryCompleteEscalation = `
		UPDATE escalation_states SET
			state       = 'completed',
			next_due_at = NULL,
			updated_at  = now()
		WHERE alert_id = $1 AND policy_id = $2 AND state IN ('pending', 'escalating')`

	queryCancelEscalations = `
		UPDATE escalation_states SET
			state       = 'cancelled',
			next_due_at = NULL,
			updated_at  = now()
		WHERE alert_id = $1 AND state IN ('pending', 'escalating')`

	queryCompleteDispatch = `
		UPDATE escalation_dispatches SET
			status     = $2,
			recipients = $3,
			error_text = NULLIF($4, ''),
			sent_at    = now()
		WHERE id = $1`

	queryListEscalationDispatches = `
		SELECT id, alert_id, policy_id, step, channel, recipients, status,
			COALESCE(error_text, ''), claimed_at, sent_at
		FROM escalation_dispatches
		WHERE alert_id = $1
		ORDER BY step, claimed_at, channel`
)

// Directory queries.
const (
	queryListRoleMembers = `
		SELECT id, tenant_id, role, name, email, phone, realtime_channel, created_at
		FROM role_members
		WHERE tenant_id = $1 AND role = ANY($2)
		ORDER BY role, name, id`

	queryCreateRoleMember = `
		INSERT INTO role_members (tenant_id, role, name, email, phone, realtime_channel)
		VALUES (@tenant_id, @role, @name, @email, @phone, @realtime_channel)
		RETURNING id, created_at`

	queryDeleteRoleMember = `DELETE FROM role_members WHERE id = $1`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
				OR scheduler_locks.lock_holder = EXCLUDED.lock_holder
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
