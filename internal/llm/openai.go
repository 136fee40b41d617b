package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/mristin/extract-flash-cards/internal"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT4TurboPreview

// OpenAICompleter implements Completer for the OpenAI chat-completion API.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAICompleter creates a new OpenAI completion provider.
func NewOpenAICompleter(config *Config) (*OpenAICompleter, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key is required", internal.ErrConfiguration)
	}

	model := config.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAICompleter{
		client: openai.NewClient(config.OpenAIKey),
		model:  model,
	}, nil
}

// Complete sends the prompt as a single user message and returns the
// model's answer.
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: OpenAI API: %v", internal.ErrExternalService, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: OpenAI API returned no choices", internal.ErrExternalService)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name.
func (c *OpenAICompleter) Name() string {
	return "openai"
}
