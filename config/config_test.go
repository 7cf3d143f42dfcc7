package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "cinedelices", cfg.DBName)
	assert.Equal(t, 200, cfg.RateLimitMax)
	assert.Equal(t, 20, cfg.RateLimitAuthMax)
	// Outside production a missing secret falls back, with a warning.
	assert.Equal(t, DevFallbackSecret, cfg.JWTSecret)
}

func TestLoadConfigUsesSessionSecret(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SESSION_SECRET", "super-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
}

func TestProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("DB_PASSWORD", "pass")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestProductionRequiresDBPassword(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "super-secret")
	t.Setenv("DB_PASSWORD", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestEnvironmentDetection(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.True(t, IsTest())
	assert.False(t, IsProduction())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
