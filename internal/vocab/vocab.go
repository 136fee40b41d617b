package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/mristin/extract-flash-cards/internal"
)

// Entry is a single vocabulary pair: a term in the source language and its
// translation into the target language.
type Entry struct {
	Source string
	Target string
}

// Read parses two-column CSV into entries, preserving row order. Every row
// is data; there is no header. A row with any other column count fails with
// internal.ErrParse and the 1-based row number.
func Read(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	// Column count is checked per row so that the error can name the row.
	reader.FieldsPerRecord = -1

	var entries []Entry
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", internal.ErrParse, row, err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: row %d: expected 2 columns, got %d",
				internal.ErrParse, row, len(record))
		}
		entries = append(entries, Entry{Source: record[0], Target: record[1]})
	}

	return entries, nil
}

// ReadFile reads entries from a CSV file.
func ReadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrFileIO, err)
	}
	defer file.Close()

	entries, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Write writes entries as two-column CSV in order, without a header.
func Write(w io.Writer, entries []Entry) error {
	writer := csv.NewWriter(w)
	for _, entry := range entries {
		if err := writer.Write([]string{entry.Source, entry.Target}); err != nil {
			return fmt.Errorf("%w: %v", internal.ErrFileIO, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", internal.ErrFileIO, err)
	}
	return nil
}

// WriteFile writes entries to a CSV file, creating or truncating it.
func WriteFile(path string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", internal.ErrFileIO, err)
	}
	defer file.Close()

	return Write(file, entries)
}
