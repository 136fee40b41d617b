package audio

import (
	"fmt"
	"strings"

	"github.com/mristin/extract-flash-cards/internal"
)

// maxTextLength bounds synthesis input; OpenAI TTS rejects longer inputs.
const maxTextLength = 4096

// ValidateText validates that the input is suitable for speech synthesis
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text cannot be empty", internal.ErrConfiguration)
	}

	if len(text) > maxTextLength {
		return fmt.Errorf("%w: text too long for synthesis (got %d, max. is %d)",
			internal.ErrConfiguration, len(text), maxTextLength)
	}

	return nil
}
