// Package deck orchestrates the CSV-to-Anki stage: it reads vocabulary
// entries, optionally synthesizes audio per entry, and writes the deck file.
package deck
