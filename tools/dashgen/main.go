// Command dashgen generates the Grafana dashboard and Prometheus rule
// files under deploy/ from code. Run with -validate to check the
// definitions without writing anything.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sellerdash/sellerdash/tools/dashgen/dashboards"
	"github.com/sellerdash/sellerdash/tools/dashgen/rules"
	"github.com/sellerdash/sellerdash/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	result := validate.Dashboard(dash, KnownMetrics)
	for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
		for _, rule := range cr.AllRules() {
			validate.Expr(rule.Name(), rule.Expr, KnownMetrics, &result)
		}
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.Ok() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	dashJSON, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dashboard: %w", err)
	}
	dashJSON = append(dashJSON, '\n')

	recordingYAML, err := marshalRuleFile(rules.RecordingRules())
	if err != nil {
		return err
	}
	alertsYAML, err := marshalRuleFile(rules.AlertRules())
	if err != nil {
		return err
	}

	outputs := []struct {
		path string
		data []byte
	}{
		{filepath.Join(cfg.OutputDir, "grafana", "data", "sellerdash-overview.json"), dashJSON},
		{filepath.Join(cfg.OutputDir, "prometheus", "sellerdash-recording-rules.yaml"), recordingYAML},
		{filepath.Join(cfg.OutputDir, "prometheus", "sellerdash-alerts.yaml"), alertsYAML},
	}
	if !cfg.DashboardEnabled {
		outputs = outputs[1:]
	}
	if !cfg.RulesEnabled {
		outputs = outputs[:1]
	}

	for _, out := range outputs {
		if err := os.MkdirAll(filepath.Dir(out.path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(out.path), err)
		}
		if err := os.WriteFile(out.path, out.data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out.path, err)
		}
		fmt.Printf("wrote %s\n", out.path)
	}

	return nil
}

func marshalRuleFile(cr rules.PrometheusRule) ([]byte, error) {
	data, err := yaml.Marshal(cr)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", cr.Metadata.Name, err)
	}
	return append([]byte(generatedHeader), data...), nil
}
