package discord

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	threadIDPattern = regexp.MustCompile(`/(\d+)$`)
	bareIDPattern   = regexp.MustCompile(`^\d+$`)
)

// ThreadIDFromURL extracts the trailing numeric thread ID from a Discord
// URL. A bare numeric ID passes through unchanged.
func ThreadIDFromURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if bareIDPattern.MatchString(raw) {
		return raw, nil
	}
	if m := threadIDPattern.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("no thread ID found in %q", raw)
}
