package internal

import (
	"unicode"
)

// SanitizeFilename creates a safe media filename from a term. Anything that
// is not a letter, digit, dash or underscore becomes an underscore so that
// terms in any alphabet map to portable filenames.
func SanitizeFilename(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}
