package config_test

import (
	"rentdesk/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "rentdesk_session", cfg.App.Session.CookieName)
	assert.Equal(t, 300, cfg.Cache.TTL)
	assert.Equal(t, "schema_migrations", cfg.DB.Postgres.MigrationTable)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_RATE_LIMITER_ENABLE", "true")
	t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "5")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://desk.example.com,https://admin.example.com")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db.internal")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.App.RateLimiter.Enable)
	assert.Equal(t, 5, cfg.App.RateLimiter.MaxRequests)
	assert.Equal(t, []string{"https://desk.example.com", "https://admin.example.com"}, cfg.App.CORS.AllowedOrigins)
	assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CACHE_TTL", "forever")

	_, err := config.Load()

	assert.Error(t, err)
}
