// Package config provides configuration loading and validation for the
// career-insights service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied by Defaults.
const (
	DefaultPort           = 8080
	DefaultStoreURL       = "memory://"
	DefaultJobSearchURL   = "https://jsearch.p.rapidapi.com"
	DefaultJobSearchHost  = "jsearch.p.rapidapi.com"
	DefaultMaxInputBytes  = 5 << 20
	DefaultRequestTimeout = "30s"
)

// Config represents the service configuration that can be loaded from a JSON
// or YAML file. All fields are optional; missing values use defaults or
// environment overrides.
type Config struct {
	// Server
	Port           int      `json:"port,omitempty" yaml:"port,omitempty"`
	MaxInputBytes  int64    `json:"max_input_bytes,omitempty" yaml:"max_input_bytes,omitempty"` // Request body limit for analysis routes
	RequestTimeout string   `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"` // Go duration, e.g. "30s"
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"` // CORS origins; empty allows any

	// Storage
	StoreURL string `json:"store_url,omitempty" yaml:"store_url,omitempty"` // memory://, postgres://, sqlite://, firestore://

	// Job search
	JobSearchURL    string `json:"job_search_url,omitempty" yaml:"job_search_url,omitempty"`
	JobSearchAPIKey string `json:"job_search_api_key,omitempty" yaml:"job_search_api_key,omitempty"`
	JobSearchHost   string `json:"job_search_host,omitempty" yaml:"job_search_host,omitempty"`

	// Behavior
	Seed    *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`       // Fixed analysis seed for reproducible scores
	Verbose bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:           DefaultPort,
		MaxInputBytes:  DefaultMaxInputBytes,
		RequestTimeout: DefaultRequestTimeout,
		StoreURL:       DefaultStoreURL,
		JobSearchURL:   DefaultJobSearchURL,
		JobSearchHost:  DefaultJobSearchHost,
	}
}

// LoadConfig loads configuration from a JSON or YAML file. The format is
// chosen by extension: .yaml and .yml are YAML, anything else is JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("config error: 'max_input_bytes' must be non-negative")
	}
	if c.RequestTimeout != "" {
		d, err := time.ParseDuration(c.RequestTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'request_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'request_timeout' must be positive")
		}
	}
	if c.StoreURL != "" && !strings.Contains(c.StoreURL, "://") {
		return fmt.Errorf("config error: 'store_url' must be a URL, got %q", c.StoreURL)
	}
	return nil
}

// Timeout returns the parsed request timeout, or zero when unset or invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0
	}
	return d
}

// JobSearchEnabled reports whether a job search API key is configured.
func (c *Config) JobSearchEnabled() bool {
	return c.JobSearchAPIKey != ""
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	if result.RequestTimeout == "" {
		result.RequestTimeout = defaults.RequestTimeout
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}
	if result.StoreURL == "" {
		result.StoreURL = defaults.StoreURL
	}
	if result.JobSearchURL == "" {
		result.JobSearchURL = defaults.JobSearchURL
	}
	if result.JobSearchAPIKey == "" {
		result.JobSearchAPIKey = defaults.JobSearchAPIKey
	}
	if result.JobSearchHost == "" {
		result.JobSearchHost = defaults.JobSearchHost
	}
	if result.Seed == nil {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables. Unset variables
// leave the current value in place.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Port = port
	}
	if v := os.Getenv("STORE_URL"); v != "" {
		c.StoreURL = v
	}
	if v := os.Getenv("JOB_SEARCH_URL"); v != "" {
		c.JobSearchURL = v
	}
	if v := os.Getenv("JOB_SEARCH_API_KEY"); v != "" {
		c.JobSearchAPIKey = v
	}
	if v := os.Getenv("JOB_SEARCH_HOST"); v != "" {
		c.JobSearchHost = v
	}
	if v := os.Getenv("ANALYSIS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ANALYSIS_SEED: %v", err)
		}
		c.Seed = &seed
	}
	if v := os.Getenv("MAX_INPUT_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_INPUT_BYTES: %v", err)
		}
		c.MaxInputBytes = n
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		c.RequestTimeout = v
	}
	return nil
}

// Load reads the optional config file at path, applies environment
// overrides, fills defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
