package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, "gemini-1.0-pro", cfg.Gemini.Model)
	assert.Equal(t, 0.8, cfg.Gemini.Temperature)
	assert.Equal(t, 1024, cfg.Gemini.MaxOutputTokens)
	assert.False(t, cfg.PersistenceEnabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_API_KEY", "k-123")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/portfolio")
	t.Setenv("CLIENT_URL", "https://me.example.com")
	t.Setenv("RATE_LIMIT_MAX", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.Equal(t, "k-123", cfg.Gemini.APIKey)
	assert.Equal(t, "https://me.example.com", cfg.CORS.ClientURL)
	assert.Equal(t, 15, cfg.RateLimit.MaxRequests)
	assert.True(t, cfg.PersistenceEnabled())
}

func TestPostgresDSNTLSMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.URL = "postgres://u:p@db:5432/portfolio"

	cfg.App.Env = "dev"
	assert.Equal(t, "postgres://u:p@db:5432/portfolio?sslmode=disable", cfg.PostgresDSN())

	cfg.App.Env = "production"
	assert.Equal(t, "postgres://u:p@db:5432/portfolio?sslmode=require", cfg.PostgresDSN())

	cfg.Database.URL = "postgres://u:p@db:5432/portfolio?sslmode=verify-full"
	assert.Equal(t, cfg.Database.URL, cfg.PostgresDSN(), "explicit sslmode wins")

	cfg.Database.URL = "postgres://u:p@db:5432/portfolio?application_name=chat"
	assert.Equal(t, "postgres://u:p@db:5432/portfolio?application_name=chat&sslmode=require", cfg.PostgresDSN())
}

func TestInvalidEnvIntFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.App.Port)
}
