package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestNewGenerator(t *testing.T) {
	gen := NewGenerator("German A2")

	if gen.DeckName() != "German A2" {
		t.Errorf("Expected deck name 'German A2', got '%s'", gen.DeckName())
	}
	if len(gen.Cards()) != 0 {
		t.Errorf("Expected no cards, got %d", len(gen.Cards()))
	}
}

func TestAddCardPreservesOrder(t *testing.T) {
	gen := NewGenerator("Test Deck")

	cards := []Card{
		{Source: "котка", Target: "cat"},
		{Source: "куче", Target: "dog"},
		{Source: "хляб", Target: "bread"},
	}
	for _, card := range cards {
		gen.AddCard(card)
	}

	got := gen.Cards()
	if len(got) != len(cards) {
		t.Fatalf("Expected %d cards, got %d", len(cards), len(got))
	}
	for i, want := range cards {
		if got[i] != want {
			t.Errorf("Card %d: expected %+v, got %+v", i, want, got[i])
		}
	}
}

func TestFormatAudioField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "simple audio file",
			input:    "audio.mp3",
			expected: "[sound:audio.mp3]",
		},
		{
			name:     "path reduced to filename",
			input:    "/tmp/media/0001_котка.mp3",
			expected: "[sound:0001_котка.mp3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatAudioField(tt.input)
			if result != tt.expected {
				t.Errorf("formatAudioField(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGenerateCSV(t *testing.T) {
	gen := NewGenerator("Test Deck")
	gen.AddCard(Card{Source: "котка", Target: "cat", AudioFile: "/tmp/a/0001_котка.mp3"})
	gen.AddCard(Card{Source: "куче", Target: "dog"})

	outputPath := filepath.Join(t.TempDir(), "import.csv")
	if err := gen.GenerateCSV(outputPath); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	// Prompt side first, then answer, then audio reference.
	if records[0][0] != "cat" || records[0][1] != "котка" {
		t.Errorf("Unexpected first record: %v", records[0])
	}
	if records[0][2] != "[sound:0001_котка.mp3]" {
		t.Errorf("Expected audio reference, got %q", records[0][2])
	}
	if records[1][2] != "" {
		t.Errorf("Expected empty audio field, got %q", records[1][2])
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator("Test Deck")
	gen.AddCard(Card{Source: "котка", Target: "cat", AudioFile: "a.mp3"})
	gen.AddCard(Card{Source: "куче", Target: "dog"})

	total, withAudio := gen.Stats()
	if total != 2 {
		t.Errorf("Expected 2 total cards, got %d", total)
	}
	if withAudio != 1 {
		t.Errorf("Expected 1 card with audio, got %d", withAudio)
	}
}
