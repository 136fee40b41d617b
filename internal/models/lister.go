package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/mristin/extract-flash-cards/internal"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists the available OpenAI models, grouped into chat
// and TTS models since those are the two kinds this tool uses
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" {
		return fmt.Errorf("%w: OpenAI API key not found; "+
			"pass --openai-key-path or set OPENAI_API_KEY", internal.ErrConfiguration)
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to list models: %v", internal.ErrExternalService, err)
	}

	chatModels := []string{}
	ttsModels := []string{}

	for _, model := range models.Models {
		modelID := model.ID
		switch {
		case strings.Contains(modelID, "tts") || strings.Contains(modelID, "audio"):
			ttsModels = append(ttsModels, modelID)
		case strings.Contains(modelID, "gpt") || strings.Contains(modelID, "chat"):
			chatModels = append(chatModels, modelID)
		}
	}

	sort.Strings(chatModels)
	sort.Strings(ttsModels)

	fmt.Println("Available OpenAI Models:")

	fmt.Println("\nChat Models (for vocabulary extraction):")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	fmt.Println("\nText-to-Speech (TTS) Models:")
	if len(ttsModels) == 0 {
		fmt.Println("  No TTS models found")
	} else {
		for _, model := range ttsModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}
