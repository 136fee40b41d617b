package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mristin/extract-flash-cards/internal"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiCompleter implements Completer for the Google Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates a new Gemini completion provider.
func NewGeminiCompleter(ctx context.Context, config *Config) (*GeminiCompleter, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("%w: Gemini API key is required", internal.ErrConfiguration)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			internal.ErrExternalService, err)
	}

	model := config.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiCompleter{client: client, model: model}, nil
}

// Complete sends the prompt and returns the concatenated text parts of the
// first candidate.
func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: Gemini API: %v", internal.ErrExternalService, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: Gemini API returned no candidates", internal.ErrExternalService)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: Gemini API returned empty content", internal.ErrExternalService)
	}

	return strings.TrimSpace(text), nil
}

// Name returns the provider name.
func (c *GeminiCompleter) Name() string {
	return "gemini"
}
