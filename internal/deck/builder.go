package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mristin/extract-flash-cards/internal"
	"github.com/mristin/extract-flash-cards/internal/anki"
	"github.com/mristin/extract-flash-cards/internal/audio"
	"github.com/mristin/extract-flash-cards/internal/vocab"
)

// Options configures a deck build.
type Options struct {
	CSVPath  string // Path to the two-column vocabulary CSV (required)
	AnkiPath string // Output path of the .apkg deck file (required)
	DeckName string // Name of the deck inside the package (required)

	// AnkiCSVPath additionally writes a legacy Anki CSV import file
	// (prompt, answer, audio reference). Empty disables it.
	AnkiCSVPath string

	// AudioProvider synthesizes audio for each source term. Nil disables
	// audio; cards then carry no audio payload.
	AudioProvider audio.Provider
}

// Builder assembles an Anki deck from a vocabulary CSV.
type Builder struct {
	options *Options
}

// NewBuilder creates a new deck builder.
func NewBuilder(options *Options) (*Builder, error) {
	if options.CSVPath == "" {
		return nil, fmt.Errorf("%w: CSV path is required", internal.ErrConfiguration)
	}
	if options.AnkiPath == "" {
		return nil, fmt.Errorf("%w: Anki output path is required", internal.ErrConfiguration)
	}
	if options.DeckName == "" {
		return nil, fmt.Errorf("%w: deck name is required", internal.ErrConfiguration)
	}

	return &Builder{options: options}, nil
}

// Build reads the CSV and writes the deck file. The CSV is parsed fully
// before any output is produced. Every row becomes exactly one card, in row
// order, with the target term on the prompt side and the source term on the
// answer side. The first failed synthesis call aborts the build.
func (b *Builder) Build(ctx context.Context) error {
	entries, err := vocab.ReadFile(b.options.CSVPath)
	if err != nil {
		return err
	}

	generator := anki.NewGenerator(b.options.DeckName)

	var mediaDir string
	if b.options.AudioProvider != nil {
		mediaDir, err = os.MkdirTemp("", "extract_flash_cards_media_*")
		if err != nil {
			return fmt.Errorf("%w: failed to create media directory: %v",
				internal.ErrFileIO, err)
		}
		defer os.RemoveAll(mediaDir)
	}

	for i, entry := range entries {
		card := anki.Card{
			Source: entry.Source,
			Target: entry.Target,
		}

		if b.options.AudioProvider != nil {
			audioFile := filepath.Join(mediaDir, fmt.Sprintf("%04d_%s.mp3",
				i+1, internal.SanitizeFilename(entry.Source)))

			if err := b.options.AudioProvider.GenerateAudio(ctx, entry.Source, audioFile); err != nil {
				return fmt.Errorf("failed to synthesize audio for row %d (%s): %w",
					i+1, entry.Source, err)
			}
			card.AudioFile = audioFile
		}

		generator.AddCard(card)
	}

	// Ensure the output directory exists
	if dir := filepath.Dir(b.options.AnkiPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create output directory: %v",
				internal.ErrFileIO, err)
		}
	}

	if err := generator.GenerateAPKG(b.options.AnkiPath); err != nil {
		return fmt.Errorf("%w: %v", internal.ErrFileIO, err)
	}

	if b.options.AnkiCSVPath != "" {
		if err := generator.GenerateCSV(b.options.AnkiCSVPath); err != nil {
			return fmt.Errorf("%w: %v", internal.ErrFileIO, err)
		}
	}

	total, withAudio := generator.Stats()
	fmt.Printf("Deck %q written to %s (%d cards, %d with audio)\n",
		b.options.DeckName, b.options.AnkiPath, total, withAudio)

	return nil
}
