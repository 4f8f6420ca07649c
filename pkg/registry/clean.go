package registry

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// CleanCell canonicalizes a raw cell value: runs of spaces/tabs collapse
// to a single space and leading/trailing whitespace is trimmed. Case and
// punctuation are preserved.
func CleanCell(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}
