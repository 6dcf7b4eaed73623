package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.False(t, cfg.Server.EnableReset)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 1, cfg.RateLimit.WindowMinutes)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Empty(t, cfg.File)
}

func TestLoadConfig_File(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8081"
  mode: debug
  enable_reset: true
log:
  level: warn
  file: ""
cors:
  allowed_origins:
    - http://example.test
    - http://localhost:3000
rate_limit:
  max_requests: 10
  window_minutes: 2
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.True(t, cfg.Server.EnableReset)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, []string{"http://example.test", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 2, cfg.RateLimit.WindowMinutes)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad mode", "server:\n  mode: production\n"},
		{"zero rate limit", "rate_limit:\n  max_requests: 0\n"},
		{"tracing without endpoint", "tracing:\n  enabled: true\n  collector_endpoint: \"\"\n"},
		{"malformed yaml", "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
