package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByTriggeredAt = "triggered_at"
	orderBySeverity    = "severity"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByTriggeredAt: "triggered_at DESC, id",
	orderBySeverity: `CASE severity
		WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1
	END DESC, triggered_at DESC, id`,
}

const defaultOrderBy = "triggered_at DESC, id"

const countAlertsSelect = "SELECT COUNT(*) FROM alert_instances"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an alert query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *AlertQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.TenantID != nil {
		conditions = append(conditions, fmt.Sprintf("tenant_id = $%d", paramIdx))
		args = append(args, *q.TenantID)
		paramIdx++
	}

	if q.DeviceID != nil {
		conditions = append(conditions, fmt.Sprintf("device_id = $%d", paramIdx))
		args = append(args, *q.DeviceID)
		paramIdx++
	}

	if q.RuleID != nil {
		conditions = append(conditions, fmt.Sprintf("rule_id = $%d", paramIdx))
		args = append(args, *q.RuleID)
		paramIdx++
	}

	if q.Severity != nil {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", paramIdx))
		args = append(args, *q.Severity)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("triggered_at >= $%d", paramIdx))
		args = append(args, *q.Since)
		paramIdx++
	}

	if len(q.Statuses) > 0 {
		placeholders := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, s)
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"status IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAlertsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countAlertsSelect + whereClause

	return dataSQL, countSQL, args
}
