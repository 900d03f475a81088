// Package llm provides the language-model boundary for the advisor:
// a Provider abstraction over OpenAI-compatible and Anthropic APIs plus
// a bounded-retry wrapper.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// httpTimeout bounds each provider HTTP call independently of the
// caller's context deadline.
const httpTimeout = 60 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Request is one generation call.
type Request struct {
	System      string  // system instruction framing the model
	Prompt      string  // user-role prompt body
	Temperature float32 // 0 for deterministic SQL generation
	MaxTokens   int     // 0 = provider default
}

// Provider defines the interface for LLM integrations.
type Provider interface {
	// Generate sends one prompt and returns the model's raw text.
	Generate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name for logging/debugging.
	Name() string
}

// Config holds LLM provider configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string // API key for the provider
	Model    string // Model name (e.g., "gpt-4o-mini", "claude-sonnet-4-20250514")
	BaseURL  string // Base URL override (for OpenRouter, Groq, proxies, etc.)
}

// NewProvider creates an LLM provider based on configuration.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}

	switch cfg.Provider {
	case "openai":
		if cfg.Model == "" {
			cfg.Model = "gpt-4o-mini"
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "anthropic":
		if cfg.Model == "" {
			cfg.Model = "claude-sonnet-4-20250514"
		}
		return NewAnthropicProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (supported: openai, anthropic)", cfg.Provider)
	}
}
