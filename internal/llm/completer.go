package llm

import (
	"context"
	"fmt"

	"github.com/mristin/extract-flash-cards/internal"
)

// Completer defines the interface for chat-completion providers.
type Completer interface {
	// Complete sends a single prompt and returns the model's text response.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name.
	Name() string
}

// Config holds common configuration for completion providers.
type Config struct {
	Provider string // Provider name: "openai" or "gemini"
	Model    string // Model identifier; empty selects the provider default

	// OpenAI-specific settings
	OpenAIKey string

	// Gemini-specific settings
	GeminiKey string
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: "openai",
	}
}

// NewCompleter creates the appropriate completion provider based on
// configuration.
func NewCompleter(ctx context.Context, config *Config) (Completer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAICompleter(config)
	case "gemini":
		return NewGeminiCompleter(ctx, config)
	default:
		return nil, fmt.Errorf("%w: unknown completion provider: %s",
			internal.ErrConfiguration, config.Provider)
	}
}
