package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/mristin/extract-flash-cards/internal"
)

func TestSplitTextIntoBatches(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		maxBatchLength int
		expected       []string
	}{
		{
			name:           "multiple lines packed greedily",
			text:           "hello\nworld\nearly\nin the\nmorning",
			maxBatchLength: 12,
			expected:       []string{"hello\nworld\n", "early\n", "in the\n", "morning"},
		},
		{
			name:           "single batch",
			text:           "hello\nworld",
			maxBatchLength: 100,
			expected:       []string{"hello\nworld"},
		},
		{
			name:           "empty text",
			text:           "",
			maxBatchLength: 10,
			expected:       nil,
		},
		{
			name:           "trailing newline preserved",
			text:           "one\ntwo\n",
			maxBatchLength: 100,
			expected:       []string{"one\ntwo\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches, err := SplitTextIntoBatches(tt.text, tt.maxBatchLength)
			if err != nil {
				t.Fatalf("SplitTextIntoBatches() error = %v", err)
			}

			if len(batches) != len(tt.expected) {
				t.Fatalf("Expected %d batches, got %d: %q", len(tt.expected), len(batches), batches)
			}
			for i, want := range tt.expected {
				if batches[i] != want {
					t.Errorf("Batch %d: expected %q, got %q", i, want, batches[i])
				}
			}

			// The split must be lossless.
			if strings.Join(batches, "") != tt.text {
				t.Errorf("Concatenated batches differ from input: %q", strings.Join(batches, ""))
			}

			for i, batch := range batches {
				if len(batch) > tt.maxBatchLength {
					t.Errorf("Batch %d exceeds max length: %d > %d", i, len(batch), tt.maxBatchLength)
				}
			}
		})
	}
}

func TestSplitTextIntoBatchesLineTooLong(t *testing.T) {
	_, err := SplitTextIntoBatches("short\n"+strings.Repeat("x", 20)+"\nshort", 10)
	if err == nil {
		t.Fatal("Expected an error for an over-long line, got nil")
	}
	if !errors.Is(err, internal.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected the error to name line 2, got %q", err.Error())
	}
}

func TestSplitTextIntoBatchesInvalidMax(t *testing.T) {
	_, err := SplitTextIntoBatches("hello", 0)
	if err == nil {
		t.Fatal("Expected an error for a non-positive max batch length, got nil")
	}
	if !errors.Is(err, internal.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}
