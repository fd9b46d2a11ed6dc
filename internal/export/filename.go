package export

import (
	"regexp"
	"strings"
)

// defaultFileName is used when sanitization leaves nothing of the thread name.
const defaultFileName = "image_posts_reactions_results.csv"

var (
	unsafeChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Sanitize reduces a thread name to a safe filename base: characters outside
// the word/space/hyphen classes are stripped and runs of whitespace collapse
// to single underscores. May return "".
func Sanitize(name string) string {
	base := unsafeChars.ReplaceAllString(name, "")
	base = whitespace.ReplaceAllString(base, "_")
	return strings.Trim(base, "_")
}

// FileName derives the CSV filename for a thread, falling back to a fixed
// default when the sanitized name is empty.
func FileName(threadName string) string {
	base := Sanitize(threadName)
	if base == "" {
		return defaultFileName
	}
	return base + "_results.csv"
}
