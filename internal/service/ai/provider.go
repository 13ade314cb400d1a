package ai

import (
	"context"
	"errors"
)

// Provider is a chat model backend.
type Provider interface {
	// Test sends a minimal prompt and returns the reply.
	Test(ctx context.Context) (string, error)
	Name() string
	// Complete returns the model's free-form reply to content.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
	// CompleteJSON returns a reply that must be a single JSON object. Providers
	// with a JSON output mode enable it.
	CompleteJSON(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config selects and configures a Provider.
type Config struct {
	Provider  string // openai, anthropic, compatible
	APIKey    string
	BaseURL   string // optional for openai and anthropic, required for compatible
	Model     string
	MaxTokens int // anthropic only
}

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderCompatible:
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
	}
	return nil, ErrInvalidProvider
}
