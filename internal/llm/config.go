// Package llm provides the scoring oracle client abstraction and its
// configuration. The oracle is treated as unreliable: callers must parse its
// output defensively.
package llm

import "time"

// Provider represents an oracle provider.
type Provider string

// Provider constants define supported oracle providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the oracle client configuration for the application.
type Config struct {
	Provider Provider
	// Model is the model used for batch scoring calls.
	Model string
	// Temperature for scoring calls. Low values keep rubric output consistent.
	Temperature float32
	// MaxAttempts is the total number of tries per call (first try + retries).
	MaxAttempts int
	// RetryBaseDelay is the first backoff delay; it doubles per retry.
	RetryBaseDelay time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGemini,
		Model:          "gemini-2.5-flash",
		Temperature:    0.1,
		MaxAttempts:    3,
		RetryBaseDelay: time.Second,
	}
}

// WithModel returns a copy of the config with a different scoring model.
func (c *Config) WithModel(model string) *Config {
	clone := *c
	clone.Model = model
	return &clone
}
