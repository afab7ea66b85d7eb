package server

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, EnvironmentDevelopment, cfg.Environment)
	assert.Equal(t, ":8085", cfg.Server.Addr)
	assert.Equal(t, "https://events.api.tampa.dev", cfg.API.BaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "session", cfg.SessionCookieName())
}

func TestLoadConfigEnvOverlay(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("EVENTS_API_URL", "https://api.staging.test")
	t.Setenv("SERVER_ADDR", ":9999")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, EnvironmentStaging, cfg.Environment)
	assert.Equal(t, "https://api.staging.test", cfg.API.BaseURL)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "session_staging", cfg.SessionCookieName())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment = "production"

[log]
level = "debug"

[server]
addr = ":7777"
shutdown_timeout = "10s"

[api]
base_url = "https://api.test"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, time.Duration(cfg.Server.ShutdownTimeout))
	assert.Equal(t, "https://api.test", cfg.API.BaseURL)
	assert.Equal(t, "session", cfg.SessionCookieName())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
