package domain

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxMessageLen is the hard per-message character limit enforced by
// the delivery platform.
const DefaultMaxMessageLen = 2000

// SplitMessage splits text into ordered chunks of at most maxLen characters
// each, breaking on line boundaries. A line longer than maxLen on its own is
// hard-split into maxLen-sized slices at rune boundaries rather than
// overflowing a chunk. Each chunk is trimmed of leading and trailing
// whitespace; text already within the limit comes back unchanged as a single
// chunk. maxLen values below 1 fall back to DefaultMaxMessageLen.
func SplitMessage(text string, maxLen int) []string {
	if maxLen < 1 {
		maxLen = DefaultMaxMessageLen
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	current := ""

	flush := func() {
		if trimmed := strings.TrimSpace(current); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
		current = ""
	}

	for _, line := range strings.Split(text, "\n") {
		lineLen := utf8.RuneCountInString(line)

		if current != "" && utf8.RuneCountInString(current)+lineLen+1 > maxLen {
			flush()
		}

		if lineLen > maxLen {
			// The line alone exceeds the limit: emit full-size slices
			// and carry the remainder into the next chunk.
			runes := []rune(line)
			for len(runes) > maxLen {
				chunks = append(chunks, string(runes[:maxLen]))
				runes = runes[maxLen:]
			}
			if len(runes) > 0 {
				current = string(runes) + "\n"
			}
			continue
		}

		current += line + "\n"
	}

	flush()
	return chunks
}
