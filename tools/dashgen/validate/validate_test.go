package validate

import (
	"testing"

	"github.com/prometheus/prometheus/promql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/tools/dashgen/rules"
)

var known = map[string]bool{
	"mae_http_request_duration_seconds": true,
	"mae_http_requests_total":           true,
	"mae:http_requests:rate5m":          true,
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	node, err := parser.ParseExpr(`histogram_quantile(0.95, sum(rate(mae_http_request_duration_seconds_bucket{job="x"}[5m])) by (le)) / mae:http_requests:rate5m`)
	require.NoError(t, err)
	assert.Equal(t, []string{"mae:http_requests:rate5m", "mae_http_request_duration_seconds"}, Metrics(node))
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		wantErr  bool
		wantWarn bool
	}{
		{name: "known", expr: `sum(rate(mae_http_requests_total[5m]))`},
		{name: "recording rule", expr: `mae:http_requests:rate5m > 1`},
		{name: "unknown metric", expr: `rate(listings_total[5m])`, wantErr: true},
		{name: "syntax error", expr: `sum(rate(mae_http_requests_total[5m])`, wantErr: true},
		{name: "empty", expr: ``, wantWarn: true},
		{name: "no selectors", expr: `time()`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Expr("panel", tt.expr, known)
			assert.Equal(t, !tt.wantErr, res.Ok(), "errors: %v", res.Errors)
			assert.Equal(t, tt.wantWarn, len(res.Warnings) > 0)
		})
	}
}

func TestDashboard_WalksTargets(t *testing.T) {
	t.Parallel()

	dash := map[string]any{
		"panels": []any{
			map[string]any{
				"title": "Row",
				"panels": []any{
					map[string]any{
						"title":   "Good",
						"targets": []any{map[string]any{"expr": `mae:http_requests:rate5m`}},
					},
					map[string]any{
						"title":   "Bad",
						"targets": []any{map[string]any{"expr": `nope_total`}},
					},
				},
			},
		},
	}

	res := Dashboard(dash, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Bad")
	assert.Contains(t, res.Errors[0], "nope_total")
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name: "g",
		Rules: []rules.Rule{
			{Record: "mae:http_requests:rate5m", Expr: `sum(rate(mae_http_requests_total[5m]))`},
			{Alert: "Broken", Expr: `missing_metric > 0`},
		},
	}}}}

	res := Rules(cr, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "g/Broken")
}
