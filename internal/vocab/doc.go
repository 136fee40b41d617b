// Package vocab defines the vocabulary entry exchanged between the two
// commands and its two-column CSV encoding.
package vocab
