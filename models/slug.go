package models

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a display name:
// lowercase, runs of non-alphanumerics collapse to a single hyphen,
// leading/trailing hyphens trimmed. "Ceylon Black Tea!" -> "ceylon-black-tea".
func Slugify(name string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
