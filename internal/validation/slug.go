// Package validation provides input validation utilities.
package validation

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9 -]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphenRuns = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a post title: lowercase, strip
// everything outside [a-z0-9 -], turn whitespace runs into single hyphens,
// collapse hyphen runs, and trim hyphens at the ends. Idempotent.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
