package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// letter folding for German street names
var foldings = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'ß': "ss",
}

// NFC returns s in composed form, so decomposed and composed umlauts compare equal.
// Each run of invalid UTF-8 bytes becomes a single U+FFFD.
func NFC(s string) string {
	return norm.NFC.String(strings.ToValidUTF8(s, "\uFFFD"))
}

// StandardizeLetters lower-cases s, drops everything that is not a letter or
// digit and folds umlauts and ß into their two-letter spelling.
func StandardizeLetters(s string) string {
	// Casers keep state, so each call gets its own.
	lowered := cases.Lower(language.German).String(NFC(s))

	b := strings.Builder{}
	b.Grow(len(lowered))
	for _, r := range lowered {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if folded, ok := foldings[r]; ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StandardizeStreetSuffix abbreviates a trailing "Straße" to "Str.".
func StandardizeStreetSuffix(s string) string {
	switch {
	case strings.HasSuffix(s, "Straße"):
		return strings.TrimSuffix(s, "Straße") + "Str."
	case strings.HasSuffix(s, "straße"):
		return strings.TrimSuffix(s, "straße") + "str."
	}
	return s
}

// StandardizeStreetName applies the suffix rule and then the letter rule.
func StandardizeStreetName(s string) string {
	return StandardizeLetters(StandardizeStreetSuffix(NFC(s)))
}

// StreetKey is the comparison key for street names. Every spelling of
// "straße" ("strasse", "str.") collapses to "str", so dictionary entries and
// user input meet regardless of how the street type was written.
func StreetKey(s string) string {
	return strings.ReplaceAll(StandardizeLetters(s), "strasse", "str")
}

// RemoveTrailingSpecialChars strips trailing runes that are neither letters,
// digits nor '.'.
func RemoveTrailingSpecialChars(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
}

func StartsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

func EndsWithDigit(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsDigit(r[len(r)-1])
}

// IsStreetSeparator reports whether r may sit between the words and numbers
// of a street name without ending it.
func IsStreetSeparator(r rune) bool {
	return r == '.' || r == '-' || r == ' '
}
