package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))
	cfg.Sanitize()

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "rentr", cfg.Postgres.Name)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Cache.ProfileTTL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.NotEmpty(t, cfg.HTTP.AllowedOrigins)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	environment := map[string]string{
		"DB_HOST":              "db.internal",
		"DB_PORT":              "6543",
		"REDIS_ENABLED":        "false",
		"CACHE_PROFILE_TTL":    "1h",
		"HTTP_ADDR":            ":9090",
		"HTTP_ALLOWED_ORIGINS": "https://app.example.com, https://admin.example.com",
	}

	var cfg AppConfig
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: environment}))
	cfg.Sanitize()

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 6543, cfg.Postgres.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.ProfileTTL)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	h := HTTPConfig{
		Addr:           "   ",
		AllowedOrigins: []string{" https://app.example.com ", "", "  "},
	}
	h.Sanitize()

	assert.Equal(t, ":8080", h.Addr)
	assert.Equal(t, []string{"https://app.example.com"}, h.AllowedOrigins)
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
