// Package domain defines the core business types for the MSP alert engine.
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Domain validation errors.
var (
	ErrInvalidCondition  = errors.New("invalid rule condition")
	ErrInvalidPolicy     = errors.New("invalid escalation policy")
	ErrInvalidTransition = errors.New("invalid alert status transition")
)

// Severity is the ordinal importance of a rule and the alerts it raises.
type Severity string

// Severity constants, lowest first.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// Rank returns the ordinal of s (0 for unknown values).
func (s Severity) Rank() int {
	return severityRank[s]
}

// Device is a monitored endpoint that reports metric samples. The owning
// tenant is the isolation boundary for global rules and escalation policies.
type Device struct {
	ID         string     `json:"id"                     db:"id"`
	TenantID   string     `json:"tenant_id"              db:"tenant_id"`
	Hostname   string     `json:"hostname"               db:"hostname"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty" db:"last_seen_at"`
	CreatedAt  time.Time  `json:"created_at"             db:"created_at"`
}

// MetricSample is one telemetry reading from a device. CollectedAt is the
// time the reading represents, not the time it was ingested.
type MetricSample struct {
	DeviceID    string         `json:"device_id"    db:"device_id"`
	CollectedAt time.Time      `json:"collected_at" db:"collected_at"`
	Values      map[string]any `json:"values"       db:"values"`
}

// Numeric returns the named metric as a float64. Booleans map to 1 and 0.
// The second return value is false when the metric is absent or not numeric.
func (s *MetricSample) Numeric(metric string) (float64, bool) {
	v, ok := s.Values[metric]
	if !ok {
		return 0, false
	}
	return toFloat64(v)
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Operator is a comparison applied as `value <op> threshold`.
type Operator string

// Supported comparison operators.
const (
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "=="
)

// Valid reports whether o is a supported operator.
func (o Operator) Valid() bool {
	switch o {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual, OpEqual:
		return true
	default:
		return false
	}
}

// Condition is the declarative trigger of an alert rule.
type Condition struct {
	Metric    string   `json:"metric"`
	Operator  Operator `json:"operator"`
	Threshold *float64 `json:"threshold"`
}

// Validate checks that the condition is evaluable.
func (c *Condition) Validate() error {
	var errs []error
	if c.Metric == "" {
		errs = append(errs, fmt.Errorf("%w: metric is required", ErrInvalidCondition))
	}
	if !c.Operator.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown operator %q", ErrInvalidCondition, c.Operator))
	}
	if c.Threshold == nil {
		errs = append(errs, fmt.Errorf("%w: threshold is required", ErrInvalidCondition))
	}
	return errors.Join(errs...)
}

// String renders the condition as "metric op threshold".
func (c *Condition) String() string {
	if c.Threshold == nil {
		return fmt.Sprintf("%s %s <unset>", c.Metric, c.Operator)
	}
	return fmt.Sprintf("%s %s %s", c.Metric, c.Operator, FormatValue(*c.Threshold))
}

// ParseCondition parses "metric op threshold", for example
// "cpu_percent >= 90". Fields must be separated by whitespace.
func ParseCondition(s string) (Condition, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Condition{}, fmt.Errorf("%w: want \"metric op threshold\", got %q", ErrInvalidCondition, s)
	}
	threshold, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Condition{}, fmt.Errorf("%w: threshold %q is not a number", ErrInvalidCondition, fields[2])
	}
	c := Condition{Metric: fields[0], Operator: Operator(fields[1]), Threshold: &threshold}
	if err := c.Validate(); err != nil {
		return Condition{}, err
	}
	return c, nil
}

// AlertRule is a declarative trigger definition. A nil DeviceID scopes the
// rule to every device of the tenant. TriggerCount and LastTriggered are
// runtime counters owned by the engine.
type AlertRule struct {
	ID            string     `json:"id"                       db:"id"`
	TenantID      string     `json:"tenant_id"                db:"tenant_id"`
	Name          string     `json:"name"                     db:"name"`
	AlertType     string     `json:"alert_type"               db:"alert_type"`
	Severity      Severity   `json:"severity"                 db:"severity"`
	DeviceID      *string    `json:"device_id,omitempty"      db:"device_id"`
	Condition     Condition  `json:"condition"                db:"condition"`
	IsActive      bool       `json:"is_active"                db:"is_active"`
	Deleted       bool       `json:"deleted"                  db:"deleted"`
	LastTriggered *time.Time `json:"last_triggered,omitempty" db:"last_triggered"`
	TriggerCount  int64      `json:"trigger_count"            db:"trigger_count"`
	CreatedAt     time.Time  `json:"created_at"               db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"               db:"updated_at"`
}

// IsGlobal reports whether the rule applies to all devices of its tenant.
func (r *AlertRule) IsGlobal() bool {
	return r.DeviceID == nil || *r.DeviceID == ""
}

// Evaluable reports whether the rule takes part in evaluation at all.
func (r *AlertRule) Evaluable() bool {
	return r.IsActive && !r.Deleted
}

// FiredAlert is one (rule, sample) match produced by the evaluator.
type FiredAlert struct {
	Rule        AlertRule    `json:"rule"`
	Sample      MetricSample `json:"sample"`
	MetricValue float64      `json:"metric_value"`
}

// FormatValue renders a metric value without trailing zeros.
func FormatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// Job run status values.
const (
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
	JobStatusCrashed   = "crashed"
)
