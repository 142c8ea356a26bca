package scanning

import (
	"fmt"
	"strings"
)

// cleanTranscript normalizes an OCR transcript returned by a vision model.
// Models tend to wrap plain-text answers in markdown code fences despite
// being told not to; those are stripped along with surrounding whitespace.
// An empty transcript is an error: the receipt was unreadable.
func cleanTranscript(text string) (string, error) {
	text = strings.TrimSpace(text)

	text = strings.TrimPrefix(text, "```text")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" {
		return "", fmt.Errorf("empty transcript")
	}
	return text, nil
}
