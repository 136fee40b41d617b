package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/mristin/extract-flash-cards/internal"
)

// OpenAIProvider implements Provider interface for OpenAI TTS
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key is required", internal.ErrConfiguration)
	}

	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// GenerateAudio generates audio using OpenAI TTS
func (p *OpenAIProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text); err != nil {
		return err
	}

	req := openai.CreateSpeechRequest{
		Model: openai.SpeechModel(p.config.OpenAIModel),
		Input: preprocessText(text),
		Voice: openai.SpeechVoice(p.config.OpenAIVoice),
		Speed: p.config.OpenAISpeed,
	}

	// The gpt-4o-mini-tts model accepts voice instructions; use them to
	// steer pronunciation towards the requested language.
	if p.config.OpenAIModel == "gpt-4o-mini-tts" {
		req.Instructions = p.languageInstruction()
	}

	// Determine response format based on output file extension
	ext := strings.ToLower(filepath.Ext(outputFile))
	switch ext {
	case ".mp3":
		req.ResponseFormat = openai.SpeechResponseFormatMp3
	case ".wav":
		req.ResponseFormat = openai.SpeechResponseFormatWav
	case ".opus":
		req.ResponseFormat = openai.SpeechResponseFormatOpus
	case ".aac":
		req.ResponseFormat = openai.SpeechResponseFormatAac
	case ".flac":
		req.ResponseFormat = openai.SpeechResponseFormatFlac
	default:
		req.ResponseFormat = openai.SpeechResponseFormatMp3
		if !strings.HasSuffix(outputFile, ".mp3") {
			outputFile += ".mp3"
		}
	}

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: OpenAI TTS API: %v", internal.ErrExternalService, err)
	}
	defer response.Close()

	// Ensure output directory exists
	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create output directory: %v",
				internal.ErrFileIO, err)
		}
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %v", internal.ErrFileIO, err)
	}
	defer out.Close()

	written, err := io.Copy(out, response)
	if err != nil {
		return fmt.Errorf("%w: failed to write audio file: %v", internal.ErrFileIO, err)
	}

	if written == 0 {
		return fmt.Errorf("%w: no audio data received from OpenAI", internal.ErrExternalService)
	}

	return nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("%w: OpenAI API key not configured", internal.ErrConfiguration)
	}

	// A test API call would use credits; having a key is good enough here.
	return nil
}

// languageInstruction returns the voice instruction, deriving one from the
// configured language when none is set explicitly.
func (p *OpenAIProvider) languageInstruction() string {
	if p.config.OpenAIInstruction != "" {
		return p.config.OpenAIInstruction
	}
	if p.config.Language == "" {
		return ""
	}
	return fmt.Sprintf("The text is in the language with code %q. "+
		"Pronounce it with authentic phonetics for that language. "+
		"Speak slowly and clearly for language learners.", p.config.Language)
}

// preprocessText strips punctuation that should not be spoken so that short
// terms come out clean.
func preprocessText(text string) string {
	cleaned := strings.TrimSpace(text)

	punctuation := []string{"!", "?", ";", ":", "\"", "(", ")", "[", "]", "{", "}"}
	for _, punct := range punctuation {
		cleaned = strings.ReplaceAll(cleaned, punct, "")
	}

	return strings.TrimSpace(cleaned)
}
