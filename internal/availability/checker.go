// Package availability provides the domain-availability check. The real
// registrar integration is out of scope; the mock checker is deterministic so
// runs are reproducible.
package availability

import (
	"context"
	"hash/fnv"
	"strings"
)

// Checker reports whether a domain looks registerable.
type Checker interface {
	Check(ctx context.Context, domain string) (bool, error)
}

// MockChecker derives availability from a hash of the domain. Roughly
// threshold-in-8 domains report available; the same domain always reports the
// same answer.
type MockChecker struct {
	threshold uint32
}

// NewMockChecker returns a MockChecker with the default availability rate.
func NewMockChecker() *MockChecker {
	return &MockChecker{threshold: 5}
}

// Check reports mock availability for a domain. Never returns an error; the
// error is part of the Checker contract for real implementations.
func (c *MockChecker) Check(_ context.Context, domain string) (bool, error) {
	h := fnv.New32a()
	// Hash the bare label so "trustflow" and "trustflow.com" agree.
	_, _ = h.Write([]byte(strings.TrimSuffix(strings.ToLower(domain), ".com")))
	return h.Sum32()%8 < c.threshold, nil
}
