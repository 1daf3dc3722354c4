// Package rules evaluates declarative threshold rules against metric samples.
// Everything here is pure: callers load rules and samples, the evaluator
// only decides which (rule, sample) pairs fire.
package rules

import (
	"cmp"
	"log/slog"
	"slices"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// EvalOption configures an evaluation pass.
type EvalOption func(*evalConfig)

type evalConfig struct {
	log *slog.Logger
}

// WithLogger sets the logger used for malformed-rule warnings.
func WithLogger(l *slog.Logger) EvalOption {
	return func(c *evalConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Outcome is the result of checking one rule against one sample.
type Outcome struct {
	// Present is false when the metric is missing or not numeric.
	Present bool
	Value   float64
	Fired   bool
	// Err is non-nil when the rule condition is malformed.
	Err error
}

// Check applies rule to sample. A malformed rule never fires.
func Check(rule *domain.AlertRule, sample *domain.MetricSample) Outcome {
	if err := rule.Condition.Validate(); err != nil {
		return Outcome{Err: err}
	}
	v, ok := sample.Numeric(rule.Condition.Metric)
	if !ok {
		return Outcome{}
	}
	fired, _ := Compare(v, rule.Condition.Operator, *rule.Condition.Threshold)
	return Outcome{Present: true, Value: v, Fired: fired}
}

// Compare applies `value op threshold`. The second result is false for
// unknown operators. Equality is exact.
func Compare(value float64, op domain.Operator, threshold float64) (bool, bool) {
	switch op {
	case domain.OpGreater:
		return value > threshold, true
	case domain.OpLess:
		return value < threshold, true
	case domain.OpGreaterEqual:
		return value >= threshold, true
	case domain.OpLessEqual:
		return value <= threshold, true
	case domain.OpEqual:
		return value == threshold, true
	default:
		return false, false
	}
}

// Evaluate returns one FiredAlert for every (rule, sample) pair whose
// condition holds. Samples are not deduplicated. Inactive or deleted rules
// are skipped. A malformed rule is logged once and skipped; the remaining
// rules are still evaluated.
func Evaluate(
	samples []domain.MetricSample,
	rules []domain.AlertRule,
	opts ...EvalOption,
) []domain.FiredAlert {
	cfg := evalConfig{log: slog.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	var fired []domain.FiredAlert
	for ri := range rules {
		rule := &rules[ri]
		if !rule.Evaluable() {
			continue
		}
		if err := rule.Condition.Validate(); err != nil {
			cfg.log.Warn("skipping malformed alert rule",
				"rule_id", rule.ID,
				"rule_name", rule.Name,
				"tenant_id", rule.TenantID,
				"error", err,
			)
			continue
		}

		for si := range samples {
			out := Check(rule, &samples[si])
			if !out.Fired {
				continue
			}
			fired = append(fired, domain.FiredAlert{
				Rule:        *rule,
				Sample:      samples[si],
				MetricValue: out.Value,
			})
		}
	}
	return fired
}

// Sort orders rules device-specific first, then by creation time, then id.
func Sort(rules []domain.AlertRule) {
	slices.SortStableFunc(rules, func(a, b domain.AlertRule) int {
		if ag, bg := a.IsGlobal(), b.IsGlobal(); ag != bg {
			if ag {
				return 1
			}
			return -1
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// ApplyPrecedence returns the rules that apply to one device after
// device-scoped rules shadow global rules on the same metric. Only a device
// rule that can fire shadows anything; an inactive or malformed one leaves
// the global rule in place. The input should contain only rules for a single
// device and its tenant. The result is sorted with Sort.
func ApplyPrecedence(rules []domain.AlertRule) []domain.AlertRule {
	covered := make(map[string]bool)
	for i := range rules {
		r := &rules[i]
		if !r.IsGlobal() && r.Evaluable() && r.Condition.Validate() == nil {
			covered[r.Condition.Metric] = true
		}
	}

	out := make([]domain.AlertRule, 0, len(rules))
	for i := range rules {
		r := rules[i]
		if r.IsGlobal() && covered[r.Condition.Metric] {
			continue
		}
		out = append(out, r)
	}
	Sort(out)
	return out
}

// Latest returns the sample with the newest CollectedAt, or nil.
func Latest(samples []domain.MetricSample) *domain.MetricSample {
	if len(samples) == 0 {
		return nil
	}
	idx := 0
	for i := 1; i < len(samples); i++ {
		if !samples[i].CollectedAt.Before(samples[idx].CollectedAt) {
			idx = i
		}
	}
	return &samples[idx]
}

// Recovered returns the rules whose metric is present in sample and whose
// condition does not hold on it. Malformed rules are never reported.
func Recovered(sample *domain.MetricSample, rules []domain.AlertRule) []domain.AlertRule {
	if sample == nil {
		return nil
	}
	var out []domain.AlertRule
	for i := range rules {
		if !rules[i].Evaluable() {
			continue
		}
		o := Check(&rules[i], sample)
		if o.Err == nil && o.Present && !o.Fired {
			out = append(out, rules[i])
		}
	}
	return out
}
