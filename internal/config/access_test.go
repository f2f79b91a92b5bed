package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessConfig_Defaults(t *testing.T) {
	t.Setenv("ACCESS_PASSWORD_HASH", "some-hash")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewAccessConfig()

	require.NoError(t, err)
	assert.Equal(t, "some-hash", cfg.PasswordHash)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewAccessConfig_MissingHash(t *testing.T) {
	t.Setenv("ACCESS_PASSWORD_HASH", "")

	cfg, err := NewAccessConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ACCESS_PASSWORD_HASH is required")
}

func TestNewAccessConfig_CostBounds(t *testing.T) {
	t.Setenv("ACCESS_PASSWORD_HASH", "some-hash")

	t.Setenv("BCRYPT_COST", "9")
	_, err := NewAccessConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	t.Setenv("BCRYPT_COST", "15")
	_, err = NewAccessConfig()
	require.Error(t, err)

	t.Setenv("BCRYPT_COST", "junk")
	_, err = NewAccessConfig()
	require.Error(t, err)

	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewAccessConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestVerifyAccess_RoundTrip(t *testing.T) {
	hash, err := HashPassword("open sesame", 10)
	require.NoError(t, err)

	cfg := &AccessConfig{BcryptCost: 10, PasswordHash: hash}

	assert.True(t, cfg.VerifyAccess("open sesame"))
	assert.False(t, cfg.VerifyAccess("open says me"))
	assert.False(t, cfg.VerifyAccess(""))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("password", 10)
	require.NoError(t, err)
	second, err := HashPassword("password", 10)
	require.NoError(t, err)

	// bcrypt salts every hash.
	assert.NotEqual(t, first, second)
}

func TestAccessConfig_HashPassword(t *testing.T) {
	cfg := &AccessConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("secret")
	require.NoError(t, err)

	verify := &AccessConfig{PasswordHash: hash}
	assert.True(t, verify.VerifyAccess("secret"))
}
