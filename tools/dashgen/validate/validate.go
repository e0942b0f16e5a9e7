// Package validate checks generated dashboard artifacts: every panel
// query must be parseable PromQL, and every metric it references must be
// one the application actually exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors are malformed queries;
// Warnings are queries referencing metrics the application does not
// export.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Dashboard validates every Prometheus target in the dashboard against
// the known metric set. It works on the serialized form, the same JSON
// that ships to Grafana.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result

	data, err := json.Marshal(dash)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return result
	}

	var doc struct {
		Panels []struct {
			Title   string `json:"title"`
			Targets []struct {
				Expr string `json:"expr"`
			} `json:"targets"`
			Panels []struct {
				Title   string `json:"title"`
				Targets []struct {
					Expr string `json:"expr"`
				} `json:"targets"`
			} `json:"panels"`
		} `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("decoding dashboard JSON: %v", err))
		return result
	}

	check := func(title, expr string) {
		if expr == "" {
			return
		}
		Expr(title, expr, known, &result)
	}

	for _, row := range doc.Panels {
		for _, t := range row.Targets {
			check(row.Title, t.Expr)
		}
		for _, p := range row.Panels {
			for _, t := range p.Targets {
				check(p.Title, t.Expr)
			}
		}
	}

	return result
}

// Expr parses one PromQL expression and records findings in result.
// Template variables like ${datasource} never appear in expressions, so
// no substitution pass is needed.
func Expr(context, expr string, known map[string]bool, result *Result) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s: invalid PromQL %q: %v", context, expr, err))
		return
	}

	//nolint:errcheck // the walk function never returns an error
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[baseMetricName(vs.Name)] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unknown metric %q", context, vs.Name))
		}
		return nil
	})
}

// baseMetricName strips histogram series suffixes so that
// foo_seconds_bucket validates against the declared foo_seconds.
func baseMetricName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && base != "" {
			return base
		}
	}
	return name
}
