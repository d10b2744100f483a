package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRun  = regexp.MustCompile(`[^a-z0-9]+`)
	dashRun     = regexp.MustCompile(`-+`)
	nonTagChars = regexp.MustCompile(`[^\w\s-]`)
	deaccent    = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify normalizes a person's name into a filesystem-safe slug:
// lower-case, diacritics stripped, every run of non-word characters
// collapsed to a single underscore, edges trimmed.
//
//	Slugify("Andi Pratama")    == "andi_pratama"
//	Slugify("  Maya   Sari!!") == "maya_sari"
func Slugify(text string) string {
	s := strings.ToLower(text)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	s = nonWordRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// TagSlug is the dash-separated variant used for tag slugs.
func TagSlug(nama string) string {
	s := strings.ToLower(nama)
	s = nonTagChars.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), "-")
	return dashRun.ReplaceAllString(s, "-")
}
