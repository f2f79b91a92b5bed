package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namesmith/namesmith/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key",
		Issuer:          "namesmith-test",
		ExpirationHours: 1,
	})
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "namesmith-test", claims.Issuer)
	assert.NotEqual(t, uuid.Nil, claims.SessionID)
	assert.Equal(t, claims.SessionID, claims.GetSessionID())
}

func TestGenerateToken_UniqueSessions(t *testing.T) {
	svc := testJWTService()

	first, err := svc.GenerateToken()
	require.NoError(t, err)
	second, err := svc.GenerateToken()
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.SessionID, secondClaims.SessionID)
}

func TestValidateToken_EmptyString(t *testing.T) {
	svc := testJWTService()

	claims, err := svc.ValidateToken("")

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken()
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-different-secret",
		Issuer:          "namesmith-test",
		ExpirationHours: 1,
	})

	claims, err := other.ValidateToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService()

	now := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		SessionID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "namesmith-test",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	parsed, err := svc.ValidateToken(signed)

	require.Error(t, err)
	assert.Nil(t, parsed)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	svc := testJWTService()

	// An unsigned token must be rejected even with a matching payload.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: uuid.New()})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := svc.ValidateToken(signed)

	require.Error(t, err)
	assert.Nil(t, parsed)
}
