package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Card represents a single flashcard. The prompt side shows the target-language
// term, the answer side the source-language term with optional audio.
type Card struct {
	Source    string // The source-language term
	Target    string // The translation in the target language
	AudioFile string // Path to the synthesized audio file, empty for none
}

// Generator collects cards in input order and serializes them
type Generator struct {
	deckName string
	cards    []Card
}

// NewGenerator creates a new Anki generator for the named deck
func NewGenerator(deckName string) *Generator {
	return &Generator{
		deckName: deckName,
		cards:    make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// Cards returns all cards in insertion order
func (g *Generator) Cards() []Card {
	return g.cards
}

// DeckName returns the deck name
func (g *Generator) DeckName() string {
	return g.deckName
}

// GenerateAPKG creates a .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath string) error {
	apkgGen := NewAPKGGenerator(g.deckName)

	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	return apkgGen.GenerateAPKG(outputPath)
}

// GenerateCSV creates a legacy CSV import file for Anki. The audio column
// uses Anki's [sound:...] reference format.
func (g *Generator) GenerateCSV(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, card := range g.cards {
		record := []string{
			card.Target,
			card.Source,
			formatAudioField(card.AudioFile),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// formatAudioField formats the audio file reference for Anki
func formatAudioField(audioFile string) string {
	if audioFile == "" {
		return ""
	}

	// Anki audio format: [sound:filename.mp3]
	return fmt.Sprintf("[sound:%s]", filepath.Base(audioFile))
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withAudio int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.AudioFile != "" {
			withAudio++
		}
	}

	return
}
