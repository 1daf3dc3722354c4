// Package validate checks generated dashboards and rules for PromQL that does
// not parse or references metrics the engine does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/msp-alert-engine/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Expr parses one PromQL expression and checks every metric it selects
// against known.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result
	if expr == "" {
		res.Warnings = append(res.Warnings, where+": empty expression")
		return res
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", where, err))
		return res
	}

	for _, name := range Metrics(node) {
		if !known[name] {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
	}
	return res
}

// Metrics returns the sorted, de-duplicated metric names selected in node.
// Histogram series resolve to their base metric so only the family has to
// be registered as known.
func Metrics(node parser.Node) []string {
	seen := make(map[string]bool)
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[baseName(vs.Name)] = true
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}

// Dashboard validates every query target in a built dashboard. The model is
// walked through its JSON form so every panel type is covered.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	walkTargets(doc, "", func(panel, expr string) {
		res.merge(Expr(panel, expr, known))
	})
	return res
}

func walkTargets(v any, panel string, fn func(panel, expr string)) {
	switch t := v.(type) {
	case map[string]any:
		if title, ok := t["title"].(string); ok {
			panel = title
		}
		if expr, ok := t["expr"].(string); ok {
			fn(panel, expr)
		}
		for _, child := range t {
			walkTargets(child, panel, fn)
		}
	case []any:
		for _, child := range t {
			walkTargets(child, panel, fn)
		}
	}
}

// Rules validates every rule expression in cr.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	exprs := cr.Exprs()
	keys := make([]string, 0, len(exprs))
	for k := range exprs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		res.merge(Expr(k, exprs[k], known))
	}
	return res
}
