// Package config - access.go provides the server access-password
// configuration and hashing.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AccessConfig holds the bcrypt hash of the service access password. The
// server is single-tenant: one shared password gates token issuance.
type AccessConfig struct {
	BcryptCost   int
	PasswordHash string
}

// NewAccessConfig creates an access configuration from environment variables.
// It reads ACCESS_PASSWORD_HASH (required) and BCRYPT_COST (default: 12).
func NewAccessConfig() (*AccessConfig, error) {
	hash := os.Getenv("ACCESS_PASSWORD_HASH")
	if hash == "" {
		return nil, fmt.Errorf("ACCESS_PASSWORD_HASH is required but not set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &AccessConfig{BcryptCost: cost, PasswordHash: hash}, nil
}

// HashPassword hashes a password using bcrypt. Used by the hash-password
// helper command to produce ACCESS_PASSWORD_HASH values.
func (c *AccessConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyAccess verifies a password against the configured hash.
func (c *AccessConfig) VerifyAccess(pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(pw)) == nil
}

// HashPassword is a package-level helper for tooling that has no
// AccessConfig yet.
func HashPassword(pw string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
