package vocab

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mristin/extract-flash-cards/internal"
)

func TestRead(t *testing.T) {
	input := "Die Katze,the cat\nschlafen,to sleep\n\"läuft, schnell\",runs fast\n"

	entries, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	expected := []Entry{
		{Source: "Die Katze", Target: "the cat"},
		{Source: "schlafen", Target: "to sleep"},
		{Source: "läuft, schnell", Target: "runs fast"},
	}

	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(entries))
	}

	for i, want := range expected {
		if entries[i] != want {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want, entries[i])
		}
	}
}

func TestReadWrongColumnCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "one column",
			input: "Die Katze,the cat\nschlafen\n",
		},
		{
			name:  "three columns",
			input: "Die Katze,the cat,extra\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Expected an error for malformed CSV, got nil")
			}
			if !errors.Is(err, internal.ErrParse) {
				t.Errorf("Expected ErrParse, got %v", err)
			}
		})
	}
}

func TestReadEmpty(t *testing.T) {
	entries, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "no-such.csv"))
	if err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}
	if !errors.Is(err, internal.ErrFileIO) {
		t.Errorf("Expected ErrFileIO, got %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	entries := []Entry{
		{Source: "котка", Target: "cat"},
		{Source: "бяга, бързо", Target: "runs fast"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, entries); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	parsed, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(parsed) != len(entries) {
		t.Fatalf("Expected %d entries, got %d", len(entries), len(parsed))
	}
	for i, want := range entries {
		if parsed[i] != want {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want, parsed[i])
		}
	}
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")

	entries := []Entry{{Source: "хляб", Target: "bread"}}
	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Output file was not created: %v", err)
	}

	parsed, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(parsed) != 1 || parsed[0] != entries[0] {
		t.Errorf("Expected %+v, got %+v", entries, parsed)
	}
}
