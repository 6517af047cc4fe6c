// Package llm provides centralized LLM configuration and client abstractions.
// The matching core only ever sees the Client interface, so tests substitute a
// deterministic stub and no scoring logic depends on a concrete vendor SDK.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: numeric scoring, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured resume extraction
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultTimeout bounds a single model call. Model calls are the only
// operations in the core expected to suspend for non-trivial wall-clock time;
// they are never retried here.
const DefaultTimeout = 30 * time.Second

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	Timeout  time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Timeout: DefaultTimeout,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// Options tunes a single generation call.
type Options struct {
	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int
	// Temperature controls sampling randomness. The core always requests
	// low-temperature, deterministic-leaning output.
	Temperature float32
}

// DefaultOptions returns the options used for extraction and scoring calls.
func DefaultOptions() Options {
	return Options{Temperature: 0.1}
}
