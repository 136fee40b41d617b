package extract

import (
	"fmt"
	"strings"

	"github.com/mristin/extract-flash-cards/internal"
)

// DefaultMaxBatchLength bounds the text fed into a single completion prompt.
const DefaultMaxBatchLength = 3000

// SplitTextIntoBatches splits the text into newline-preserving batches so
// that each fits into a completion prompt. The concatenation of the batches
// equals the input. A single line longer than maxBatchLength fails with
// internal.ErrConfiguration and the 1-based line number.
func SplitTextIntoBatches(text string, maxBatchLength int) ([]string, error) {
	if maxBatchLength <= 0 {
		return nil, fmt.Errorf("%w: max batch length must be positive, got %d",
			internal.ErrConfiguration, maxBatchLength)
	}

	var batches []string
	var batch strings.Builder

	for i, line := range splitLinesKeepEnds(text) {
		if len(line) > maxBatchLength {
			return nil, fmt.Errorf("%w: line %d is too long (got %d, max. is %d)",
				internal.ErrConfiguration, i+1, len(line), maxBatchLength)
		}

		if batch.Len()+len(line) > maxBatchLength {
			batches = append(batches, batch.String())
			batch.Reset()
		}

		batch.WriteString(line)
	}

	if batch.Len() > 0 {
		batches = append(batches, batch.String())
	}

	return batches, nil
}

// splitLinesKeepEnds splits text on newlines, keeping the newline at the end
// of each line so the split is lossless.
func splitLinesKeepEnds(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
