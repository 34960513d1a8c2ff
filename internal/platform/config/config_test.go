package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_RequiresSigningKey(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")
	_, err := FromEnv()
	require.ErrorIs(t, err, ErrMissingSigningKey)
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	t.Setenv("CONSENTRY_ADDR", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "test-signing-key", cfg.JWTSigningKey)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "k")
	t.Setenv("CONSENTRY_ADDR", ":9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/consentry")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "postgres://localhost/consentry", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestFromEnv_ParsesCORSOrigins(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "k")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com,")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}
