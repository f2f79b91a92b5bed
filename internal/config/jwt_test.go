package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Secret)
	assert.Equal(t, "namesmith", cfg.Issuer)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ISSUER", "custom-issuer")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, "custom-issuer", cfg.Issuer)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")
	_, err := NewJWTConfig()
	require.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1 hour")
}
