package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// asciiFold decomposes accented characters and drops anything that
// does not survive as plain ASCII.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

func normalizeStr(value string) string {
	folded, _, err := transform.String(asciiFold, value)
	if err != nil {
		return value
	}
	return folded
}

// Slugify turns free text into a lowercase hyphen-separated identifier.
// Titles that normalize to nothing (pure symbols, non-Latin scripts) fall
// back to "<prefix>-<unix seconds>" so the slug is still usable.
func Slugify(text string, fallbackPrefix string) string {
	slug := normalizeStr(text)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.ToLower(strings.Trim(slug, "-"))
	if slug == "" {
		slug = fmt.Sprintf("%s-%d", fallbackPrefix, time.Now().UTC().Unix())
	}
	return slug
}

func SlugifyTrip(title string) string     { return Slugify(title, "trip") }
func SlugifyActivity(title string) string { return Slugify(title, "activity") }
func SlugifyExpense(title string) string  { return Slugify(title, "expense") }
