package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mristin/extract-flash-cards/internal"
	"github.com/mristin/extract-flash-cards/internal/llm"
	"github.com/mristin/extract-flash-cards/internal/vocab"
)

// Options configures an extraction run.
type Options struct {
	SourceLanguage string // Language of the input text
	TargetLanguage string // Language the user already masters
	MaxBatchLength int    // Maximum prompt text length; 0 selects the default
}

// DefaultOptions returns sensible defaults matching the command-line
// defaults.
func DefaultOptions() *Options {
	return &Options{
		SourceLanguage: "Russian",
		TargetLanguage: "English",
		MaxBatchLength: DefaultMaxBatchLength,
	}
}

// Extractor extracts vocabulary pairs from text through a completion
// provider.
type Extractor struct {
	completer llm.Completer
	options   *Options
}

// NewExtractor creates a new extractor.
func NewExtractor(completer llm.Completer, options *Options) *Extractor {
	if options == nil {
		options = DefaultOptions()
	}
	if options.MaxBatchLength <= 0 {
		options.MaxBatchLength = DefaultMaxBatchLength
	}
	return &Extractor{completer: completer, options: options}
}

// Run extracts vocabulary entries from the text. The text is split into
// prompt-sized batches; each batch costs one completion call. Responses are
// parsed as two-column CSV. Source terms repeated across batches are emitted
// once, first occurrence wins, and the overall order follows the responses.
func (e *Extractor) Run(ctx context.Context, text string) ([]vocab.Entry, error) {
	batches, err := SplitTextIntoBatches(text, e.options.MaxBatchLength)
	if err != nil {
		return nil, err
	}

	observed := make(map[string]bool)
	var entries []vocab.Entry

	for _, batch := range batches {
		prompt := buildPrompt(e.options.SourceLanguage, e.options.TargetLanguage, batch)

		answer, err := e.completer.Complete(ctx, prompt)
		if err != nil {
			return nil, err
		}

		batchEntries, err := parseResponse(answer)
		if err != nil {
			return nil, err
		}

		for _, entry := range batchEntries {
			if observed[entry.Source] {
				continue
			}
			observed[entry.Source] = true
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// parseResponse parses a model answer expected to already be two-column CSV.
// Code fences around the CSV are tolerated since models add them despite
// instructions.
func parseResponse(answer string) ([]vocab.Entry, error) {
	answer = stripCodeFence(answer)

	reader := csv.NewReader(strings.NewReader(answer))
	reader.FieldsPerRecord = -1

	var entries []vocab.Entry
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("%w: model response row %d: %v",
				internal.ErrParse, row, err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: model response row %d: expected 2 columns, got %d",
				internal.ErrParse, row, len(record))
		}

		source := strings.TrimSpace(record[0])
		target := strings.TrimSpace(record[1])
		if source == "" {
			continue
		}
		entries = append(entries, vocab.Entry{Source: source, Target: target})
	}

	return entries, nil
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
