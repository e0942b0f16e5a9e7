package main

import "errors"

// KnownMetrics is the set of metric names exported by sellerdash plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"sellerdash_http_request_duration_seconds": true,
	"sellerdash_http_requests_total":           true,
	"sellerdash_http_in_flight_requests":       true,
	"sellerdash_client_throttled_total":        true,
	"sellerdash_panics_total":                  true,

	// Health metrics.
	"sellerdash_healthz_up": true,
	"sellerdash_readyz_up":  true,

	// SP-API metrics.
	"sellerdash_spapi_calls_total":                  true,
	"sellerdash_spapi_throttle_wait_seconds":        true,
	"sellerdash_spapi_token_refreshes_total":        true,
	"sellerdash_spapi_token_refresh_failures_total": true,
	"sellerdash_spapi_signing_fallbacks_total":      true,

	// Recording rules.
	"sellerdash:http_requests:rate5m":          true,
	"sellerdash:http_errors:rate5m":            true,
	"sellerdash:spapi_calls:rate5m":            true,
	"sellerdash:spapi_errors:rate5m":           true,
	"sellerdash:token_refresh_failures:rate5m": true,
	"sellerdash:client_throttled:rate5m":       true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
