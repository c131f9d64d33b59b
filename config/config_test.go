package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
http:
  timeout: 5s
  user_agent: podcast-indexer/2.0
defaults:
  country: BE
  lang: ja_jp
  limit: 25
  explicit: false
output:
  format: json
filters:
  free: isFree()
  comedy: hasGenre("Comedy")
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "podcast-indexer/2.0", cfg.HTTP.UserAgent)
	assert.Equal(t, "BE", cfg.Defaults.Country)
	assert.Equal(t, "ja_jp", cfg.Defaults.Lang)
	assert.Equal(t, 25, cfg.Defaults.Limit)
	assert.False(t, cfg.Defaults.Explicit)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, FilterConfig{"free": "isFree()", "comedy": `hasGenre("Comedy")`}, cfg.Filters)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", Color: false}, cfg.Logging)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Empty(t, cfg.HTTP.UserAgent)
	assert.Equal(t, DefaultsConfig{Country: "us", Lang: "en_us", Limit: 50, Explicit: true}, cfg.Defaults)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoadEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, "defaults:\n  limit: 25\n")
	t.Setenv("ITUNESAPI_DEFAULTS_LIMIT", "100")
	t.Setenv("ITUNESAPI_HTTP_TIMEOUT", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Defaults.Limit)
	assert.Equal(t, 2*time.Second, cfg.HTTP.Timeout)
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, "defaults: [unbalanced\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(cfg *Config)
		errContains string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:        "zero timeout",
			modify:      func(cfg *Config) { cfg.HTTP.Timeout = 0 },
			errContains: "http.timeout",
		},
		{
			name:        "unknown country",
			modify:      func(cfg *Config) { cfg.Defaults.Country = "zz" },
			errContains: "defaults.country",
		},
		{
			name:        "unknown lang",
			modify:      func(cfg *Config) { cfg.Defaults.Lang = "fr_fr" },
			errContains: "defaults.lang",
		},
		{
			name:        "limit too small",
			modify:      func(cfg *Config) { cfg.Defaults.Limit = 0 },
			errContains: "defaults.limit",
		},
		{
			name:        "limit too large",
			modify:      func(cfg *Config) { cfg.Defaults.Limit = 201 },
			errContains: "defaults.limit",
		},
		{
			name:        "unknown output format",
			modify:      func(cfg *Config) { cfg.Output.Format = "csv" },
			errContains: "invalid output format: csv",
		},
		{
			name:        "empty filter",
			modify:      func(cfg *Config) { cfg.Filters = FilterConfig{"broken": " "} },
			errContains: "filters.broken",
		},
		{
			name:        "unknown logging level",
			modify:      func(cfg *Config) { cfg.Logging.Level = "verbose" },
			errContains: "invalid logging level: verbose",
		},
		{
			name:        "unknown logging format",
			modify:      func(cfg *Config) { cfg.Logging.Format = "xml" },
			errContains: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
