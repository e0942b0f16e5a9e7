// Package config handles loading and validating the application
// configuration from YAML files with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	SPAPI   SPAPIConfig   `yaml:"spapi"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string          `yaml:"host"`
	Port         int             `yaml:"port"`
	ReadTimeout  time.Duration   `yaml:"read_timeout"`
	WriteTimeout time.Duration   `yaml:"write_timeout"`
	ClientLimit  ClientLimitRule `yaml:"client_limit"`
}

// ClientLimitRule defines the inbound per-client throttle.
type ClientLimitRule struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// SPAPIConfig defines Selling Partner API settings.
type SPAPIConfig struct {
	Endpoint    string                   `yaml:"endpoint"`
	Region      string                   `yaml:"region"`
	TokenURL    string                   `yaml:"token_url"`
	Timeout     time.Duration            `yaml:"timeout"`
	Credentials Credentials              `yaml:"credentials"`
	RateLimits  map[string]RateLimitRule `yaml:"rate_limits"`
}

// RateLimitRule defines one rate-limit category's budget.
type RateLimitRule struct {
	MaxRequests int           `yaml:"max_requests"`
	Period      time.Duration `yaml:"period"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment
// variable substitution and applying defaults. Credential completeness
// is not checked here; callers run Credentials.Validate separately so
// missing secrets surface as a structured report instead of a load
// failure.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applySPAPIDefaults(&cfg.SPAPI)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ClientLimit.PerSecond == 0 {
		s.ClientLimit.PerSecond = 10.0
	}
	if s.ClientLimit.Burst == 0 {
		s.ClientLimit.Burst = 20
	}
}

func applySPAPIDefaults(s *SPAPIConfig) {
	if s.Endpoint == "" {
		s.Endpoint = "https://sellingpartnerapi-na.amazon.com"
	}
	if s.Region == "" {
		s.Region = "us-east-1"
	}
	if s.TokenURL == "" {
		s.TokenURL = "https://api.amazon.com/auth/o2/token"
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.RateLimits == nil {
		s.RateLimits = map[string]RateLimitRule{}
	}
	for name, rule := range defaultRateLimits {
		if _, ok := s.RateLimits[name]; !ok {
			s.RateLimits[name] = rule
		}
	}
}

// defaultRateLimits mirrors the published SP-API budgets for the
// endpoint families the dashboard uses. The reports family is by far
// the slowest bucket.
var defaultRateLimits = map[string]RateLimitRule{
	"default":     {MaxRequests: 5, Period: time.Second},
	"orders":      {MaxRequests: 1, Period: time.Second},
	"inventory":   {MaxRequests: 2, Period: time.Second},
	"catalog":     {MaxRequests: 2, Period: time.Second},
	"reports":     {MaxRequests: 1, Period: time.Minute},
	"finances":    {MaxRequests: 1, Period: 2 * time.Second},
	"fulfillment": {MaxRequests: 2, Period: time.Second},
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// RateSpecs converts the configured rules into limiter specs.
func (s *SPAPIConfig) RateSpecs() map[string]spapi.RateSpec {
	specs := make(map[string]spapi.RateSpec, len(s.RateLimits))
	for name, rule := range s.RateLimits {
		specs[name] = spapi.RateSpec{
			MaxRequests: rule.MaxRequests,
			Period:      rule.Period,
		}
	}
	return specs
}
