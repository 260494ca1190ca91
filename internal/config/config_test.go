package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "STORE_URL", "JOB_SEARCH_URL", "JOB_SEARCH_API_KEY", "JOB_SEARCH_HOST",
	"ANALYSIS_SEED", "MAX_INPUT_BYTES", "REQUEST_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_JSONAndYAMLParity(t *testing.T) {
	jsonPath := writeConfig(t, "config.json", `{
		"port": 9090,
		"store_url": "sqlite:///tmp/reports.db",
		"job_search_api_key": "key-123",
		"seed": 42,
		"request_timeout": "10s",
		"allowed_origins": ["https://app.example.com"],
		"verbose": true
	}`)
	yamlPath := writeConfig(t, "config.yaml", `
port: 9090
store_url: sqlite:///tmp/reports.db
job_search_api_key: key-123
seed: 42
request_timeout: 10s
allowed_origins:
  - https://app.example.com
verbose: true
`)

	fromJSON, err := LoadConfig(jsonPath)
	require.NoError(t, err)
	fromYAML, err := LoadConfig(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, 9090, fromJSON.Port)
	assert.Equal(t, "sqlite:///tmp/reports.db", fromJSON.StoreURL)
	require.NotNil(t, fromJSON.Seed)
	assert.Equal(t, int64(42), *fromJSON.Seed)
	assert.Equal(t, 10*time.Second, fromJSON.Timeout())
	assert.True(t, fromJSON.Verbose)
}

func TestLoadConfig_YMLExtension(t *testing.T) {
	path := writeConfig(t, "config.yml", "port: 7000\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "port: [not, a, number\n")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "empty", cfg: Config{}},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port'"},
		{name: "negative body limit", cfg: Config{MaxInputBytes: -1}, wantErr: "'max_input_bytes'"},
		{name: "bad timeout", cfg: Config{RequestTimeout: "soon"}, wantErr: "'request_timeout'"},
		{name: "zero timeout", cfg: Config{RequestTimeout: "0s"}, wantErr: "must be positive"},
		{name: "store url without scheme", cfg: Config{StoreURL: "reports.db"}, wantErr: "'store_url'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	seed := int64(7)
	cfg := &Config{
		Port:     9000,
		StoreURL: "sqlite://custom.db",
	}
	defaults := Defaults()
	defaults.Seed = &seed

	result := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, result.Port)
	assert.Equal(t, "sqlite://custom.db", result.StoreURL)
	assert.Equal(t, DefaultJobSearchURL, result.JobSearchURL)
	assert.Equal(t, DefaultJobSearchHost, result.JobSearchHost)
	assert.Equal(t, int64(DefaultMaxInputBytes), result.MaxInputBytes)
	assert.Equal(t, DefaultRequestTimeout, result.RequestTimeout)
	assert.Equal(t, &seed, result.Seed)

	// Original is untouched
	assert.Empty(t, cfg.JobSearchURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Port: 1234}
	result := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, 1234, result.Port)
	assert.Empty(t, result.StoreURL)
	assert.Nil(t, result.Seed)
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("STORE_URL", "postgres://localhost/career")
	t.Setenv("JOB_SEARCH_API_KEY", "secret")
	t.Setenv("JOB_SEARCH_HOST", "jobs.example.com")
	t.Setenv("JOB_SEARCH_URL", "https://jobs.example.com")
	t.Setenv("ANALYSIS_SEED", "-3")
	t.Setenv("MAX_INPUT_BYTES", "2048")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg := &Config{Port: 1, StoreURL: "memory://"}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "postgres://localhost/career", cfg.StoreURL)
	assert.Equal(t, "secret", cfg.JobSearchAPIKey)
	assert.Equal(t, "jobs.example.com", cfg.JobSearchHost)
	assert.Equal(t, "https://jobs.example.com", cfg.JobSearchURL)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(-3), *cfg.Seed)
	assert.Equal(t, int64(2048), cfg.MaxInputBytes)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.True(t, cfg.JobSearchEnabled())
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"PORT", "eighty", "invalid PORT"},
		{"ANALYSIS_SEED", "x", "invalid ANALYSIS_SEED"},
		{"MAX_INPUT_BYTES", "1MB", "invalid MAX_INPUT_BYTES"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			cfg := &Config{}
			err := cfg.ApplyEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "port: 7070\nstore_url: memory://16\n")
	t.Setenv("PORT", "7171")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7171, cfg.Port, "environment wins over file")
	assert.Equal(t, "memory://16", cfg.StoreURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.False(t, cfg.JobSearchEnabled())
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_InvalidAfterMerge(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "never")
	_, err := Load("")
	assert.Error(t, err)
}
