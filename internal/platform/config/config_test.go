package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "mongo", cfg.DBType)
	assert.Equal(t, "insurhub", cfg.MongoDB)
	assert.Equal(t, "insurhub-admin", cfg.AuthLogin)
	assert.NotEmpty(t, cfg.APIKey, "dev runs get a default key")
	assert.Equal(t, 100, cfg.RateLimitRPM)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "memory")
	t.Setenv("RATE_LIMIT_RPM", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "memory", cfg.DBType)
	assert.Equal(t, 5, cfg.RateLimitRPM)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsUnknownDBType(t *testing.T) {
	t.Setenv("DB_TYPE", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresAPIKeyInProd(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
