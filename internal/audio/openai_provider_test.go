package audio

import (
	"strings"
	"testing"
)

func TestNewOpenAIProviderRequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(&Config{})
	if err == nil {
		t.Fatal("Expected an error without an API key, got nil")
	}
}

func TestOpenAIProviderIsAvailable(t *testing.T) {
	provider, err := NewOpenAIProvider(&Config{OpenAIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	if err := provider.IsAvailable(); err != nil {
		t.Errorf("Expected provider to be available with a key, got %v", err)
	}
}

func TestLanguageInstruction(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantContain string
		wantEmpty   bool
	}{
		{
			name: "explicit instruction wins",
			config: Config{
				OpenAIKey:         "k",
				Language:          "bg",
				OpenAIInstruction: "Speak like a news anchor.",
			},
			wantContain: "news anchor",
		},
		{
			name:        "derived from language",
			config:      Config{OpenAIKey: "k", Language: "de"},
			wantContain: `"de"`,
		},
		{
			name:      "no language, no instruction",
			config:    Config{OpenAIKey: "k"},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &OpenAIProvider{config: &tt.config}

			instruction := provider.languageInstruction()
			if tt.wantEmpty {
				if instruction != "" {
					t.Errorf("Expected empty instruction, got %q", instruction)
				}
				return
			}
			if !strings.Contains(instruction, tt.wantContain) {
				t.Errorf("Expected instruction to contain %q, got %q", tt.wantContain, instruction)
			}
		})
	}
}

func TestPreprocessText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips question mark",
			input:    "Как си?",
			expected: "Как си",
		},
		{
			name:     "keeps sentence punctuation minimal",
			input:    `  "ябълка"  `,
			expected: "ябълка",
		},
		{
			name:     "plain word unchanged",
			input:    "куче",
			expected: "куче",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := preprocessText(tt.input)
			if result != tt.expected {
				t.Errorf("preprocessText(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
