package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAPKGGenerator(t *testing.T) {
	gen := NewAPKGGenerator("Test Deck")

	if gen.deckName != "Test Deck" {
		t.Errorf("Expected deck name 'Test Deck', got '%s'", gen.deckName)
	}
	if len(gen.cards) != 0 {
		t.Errorf("Expected empty cards slice, got %d cards", len(gen.cards))
	}
	if len(gen.mediaFiles) != 0 {
		t.Errorf("Expected empty media files, got %d files", len(gen.mediaFiles))
	}
	if gen.deckID == gen.modelID {
		t.Error("Expected distinct deck and model IDs")
	}
}

func TestGenerateAPKG(t *testing.T) {
	tempDir := t.TempDir()

	audioFile := filepath.Join(tempDir, "0001_котка.mp3")
	os.WriteFile(audioFile, []byte("test audio data"), 0644)

	gen := NewAPKGGenerator("Test Deck")
	gen.AddCard(Card{Source: "котка", Target: "cat", AudioFile: audioFile})
	gen.AddCard(Card{Source: "куче", Target: "dog"})

	outputPath := filepath.Join(tempDir, "test.apkg")
	if err := gen.GenerateAPKG(outputPath); err != nil {
		t.Fatalf("GenerateAPKG() error = %v", err)
	}

	// Verify it's a valid zip file with the required entries
	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Failed to open APKG as zip: %v", err)
	}
	defer reader.Close()

	requiredFiles := map[string]bool{
		"collection.anki2": false,
		"media":            false,
		"0":                false, // the audio blob
	}

	var mediaEntry *zip.File
	for _, file := range reader.File {
		if _, ok := requiredFiles[file.Name]; ok {
			requiredFiles[file.Name] = true
		}
		if file.Name == "media" {
			mediaEntry = file
		}
	}

	for name, found := range requiredFiles {
		if !found {
			t.Errorf("Required file '%s' not found in APKG", name)
		}
	}

	// The media mapping must point number 0 at the audio filename
	if mediaEntry != nil {
		rc, err := mediaEntry.Open()
		if err != nil {
			t.Fatalf("Failed to open media mapping: %v", err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("Failed to read media mapping: %v", err)
		}

		var mapping map[string]string
		if err := json.Unmarshal(data, &mapping); err != nil {
			t.Fatalf("Media mapping is not valid JSON: %v", err)
		}
		if mapping["0"] != "0001_котка.mp3" {
			t.Errorf("Expected media 0 to map to '0001_котка.mp3', got '%s'", mapping["0"])
		}
	}
}

func TestCreateDatabase(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.anki2")

	gen := NewAPKGGenerator("Test Deck")
	gen.AddCard(Card{Source: "котка", Target: "cat"})
	gen.AddCard(Card{Source: "куче", Target: "dog"})
	gen.AddCard(Card{Source: "хляб", Target: "bread"})

	if err := gen.createDatabase(dbPath); err != nil {
		t.Fatalf("createDatabase() error = %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// One note and exactly one card per CSV row
	var noteCount, cardCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&noteCount); err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cardCount); err != nil {
		t.Fatalf("Failed to count cards: %v", err)
	}

	if noteCount != 3 {
		t.Errorf("Expected 3 notes, got %d", noteCount)
	}
	if cardCount != 3 {
		t.Errorf("Expected 3 cards, got %d", cardCount)
	}

	// Card order must follow insertion order via the due position
	rows, err := db.Query(
		"SELECT n.flds FROM cards c JOIN notes n ON c.nid = n.id ORDER BY c.due")
	if err != nil {
		t.Fatalf("Failed to query cards: %v", err)
	}
	defer rows.Close()

	expectedTargets := []string{"cat", "dog", "bread"}
	expectedSources := []string{"котка", "куче", "хляб"}

	i := 0
	for rows.Next() {
		var flds string
		if err := rows.Scan(&flds); err != nil {
			t.Fatalf("Failed to scan row: %v", err)
		}

		fields := strings.Split(flds, "\x1f")
		if len(fields) != 3 {
			t.Fatalf("Expected 3 note fields, got %d", len(fields))
		}
		if fields[0] != expectedTargets[i] {
			t.Errorf("Card %d: expected target '%s', got '%s'", i, expectedTargets[i], fields[0])
		}
		if fields[1] != expectedSources[i] {
			t.Errorf("Card %d: expected source '%s', got '%s'", i, expectedSources[i], fields[1])
		}
		i++
	}

	if i != 3 {
		t.Errorf("Expected to iterate 3 cards, got %d", i)
	}
}

func TestCreateDatabaseAudioField(t *testing.T) {
	tempDir := t.TempDir()

	audioFile := filepath.Join(tempDir, "0001_котка.mp3")
	os.WriteFile(audioFile, []byte("audio"), 0644)

	gen := NewAPKGGenerator("Test Deck")
	gen.AddCard(Card{Source: "котка", Target: "cat", AudioFile: audioFile})

	// copyMediaFiles populates the media map which the audio field needs
	if err := gen.copyMediaFiles(tempDir); err != nil {
		t.Fatalf("copyMediaFiles() error = %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.anki2")
	if err := gen.createDatabase(dbPath); err != nil {
		t.Fatalf("createDatabase() error = %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var flds string
	if err := db.QueryRow("SELECT flds FROM notes").Scan(&flds); err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}

	fields := strings.Split(flds, "\x1f")
	if fields[2] != "[sound:0001_котка.mp3]" {
		t.Errorf("Expected audio field '[sound:0001_котка.mp3]', got '%s'", fields[2])
	}
}
