package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify converts free text into a lowercase URL-safe slug: diacritics are
// stripped, runs of anything outside [a-z0-9] collapse to a single hyphen,
// and leading/trailing hyphens are trimmed.
//
// Event slugs are always recomputed from the event name with this function at
// the write boundary; the stored slug is never set directly.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip combining marks so "café" becomes "cafe"
	var runes []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		runes = append(runes, r)
	}
	s = string(runes)

	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
