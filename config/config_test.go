package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithOptions_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	assert.Equal(t, 3600, cfg.Session.ExpirySeconds)
	assert.Empty(t, cfg.Session.StoragePath)
	assert.True(t, cfg.SeedDemoData)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadWithOptions_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "override-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_STORAGE_PATH", "/tmp/session.json")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/session.json", cfg.Session.StoragePath)
	assert.False(t, cfg.SeedDemoData)
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithOptions_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET is required")
}
