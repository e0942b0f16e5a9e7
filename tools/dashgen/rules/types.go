// Package rules defines the sellerdash Prometheus recording and alert
// rules. Both are emitted as Prometheus Operator PrometheusRule custom
// resources so the deploy repo can apply them directly.
package rules

// PrometheusRule is the monitoring.coreos.com/v1 custom resource
// wrapping one or more rule groups.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the CR metadata fields.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named collection of recording or alerting rules.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is a single recording or alerting rule. Record and Alert are
// mutually exclusive.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// Name returns the rule's identity: the recorded series name for
// recording rules, the alert name otherwise.
func (r Rule) Name() string {
	if r.Record != "" {
		return r.Record
	}
	return r.Alert
}

// AllRules flattens the CR's groups into one slice, preserving order.
// The generator validates every expression through this view.
func (p PrometheusRule) AllRules() []Rule {
	var out []Rule
	for _, g := range p.Spec.Groups {
		out = append(out, g.Rules...)
	}
	return out
}

// RuleFile is a standalone Prometheus rules file for deployments that
// load rule_files directly instead of running the operator.
type RuleFile struct {
	Groups []RuleGroup `yaml:"groups"`
}

// AsRuleFile strips the CR wrapping.
func (p PrometheusRule) AsRuleFile() RuleFile {
	return RuleFile{Groups: p.Spec.Groups}
}
