// Package divider splits German street address lines into street name, house
// number and house number affix.
//
// A line is split in one of two ways. If its street key starts with a known
// special street ("Bundesstraße 1", "D 4", "Straße des 17. Juni"), the street
// ends where that name ends. Otherwise the street ends at the first digit.
// Whatever follows the street must start with a house number, optionally
// preceded by a comma or "Nr.", or the whole line is taken as the street.
package divider

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/streetdivider/internal/debug"
	"github.com/streetdivider/internal/dictionary"
	"github.com/streetdivider/internal/normalize"
	"github.com/streetdivider/internal/streets"
)

// e.g. "Nr. 25 - 27 b", ", 3", "25a"
var reHouseNumber = regexp.MustCompile(`^,? ?(Nr\.)? *(\d+)(.*)$`)

// Divider parses address lines. It is safe for concurrent use.
type Divider struct {
	dict *dictionary.Dictionary

	// Debug traces every parsing decision through the debug log.
	Debug bool
}

// New returns a divider that knows the embedded special streets.
func New() *Divider {
	return NewWithStreets(streets.Default()...)
}

// NewWithStreets returns a divider that knows the given special streets.
// Names may be spelled freely; they are reduced to street keys.
func NewWithStreets(names ...string) *Divider {
	return NewWithDictionary(dictionary.New(Keys(names)...))
}

// NewWithDictionary uses dict as is. Its words must already be street keys.
func NewWithDictionary(dict *dictionary.Dictionary) *Divider {
	return &Divider{dict: dict}
}

// Keys reduces street names to their dictionary keys.
func Keys(names []string) []string {
	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, normalize.StreetKey(name))
	}
	return keys
}

// Dictionary exposes the special street dictionary, e.g. for reloading.
func (d *Divider) Dictionary() *dictionary.Dictionary {
	return d.dict
}

// Parse splits text into street, house number and affix. It only fails for
// blank input; a line it cannot split comes back as a street without number.
// Text is NFC-normalised first and each run of invalid UTF-8 bytes becomes
// U+FFFD, so the returned street may contain replacement characters.
func (d *Divider) Parse(text string) (Location, error) {
	debug.DebugHeader(d.Debug)
	defer debug.DebugFooter(d.Debug)

	text = strings.TrimSpace(normalize.NFC(text))
	if text == "" {
		return Location{}, ErrEmptyInput
	}
	debug.DebugOutput(d.Debug, "Input: %s", text)

	key := normalize.StreetKey(text)
	for _, word := range d.dict.PrefixesOf(key) {
		street, rest, ok := splitAtKey(text, word)
		if !ok {
			continue
		}
		debug.DebugOutput(d.Debug, "Special street %q: street=%q rest=%q", word, street, rest)
		if loc, ok := d.locate(street, rest); ok {
			return loc, nil
		}
	}

	street, rest := splitAtFirstDigit(text)
	debug.DebugOutput(d.Debug, "Digit split: street=%q rest=%q", street, rest)
	if street == "" || rest == "" {
		return Location{Street: text}, nil
	}
	if loc, ok := d.locate(street, rest); ok {
		return loc, nil
	}

	debug.DebugOutput(d.Debug, "No house number found")
	return Location{Street: text}, nil
}

// locate reads the house number and affix off rest.
func (d *Divider) locate(street, rest string) (Location, bool) {
	m := reHouseNumber.FindStringSubmatch(rest)
	if m == nil {
		debug.DebugOutput(d.Debug, "No house number in %q", rest)
		return Location{}, false
	}
	loc, err := NewLocation(street, m[2], m[3])
	if err != nil {
		debug.DebugOutput(d.Debug, "Rejected %q: %v", rest, err)
		return Location{}, false
	}
	debug.DebugOutput(d.Debug, "Result: %s", loc)
	return loc, true
}

// splitAtKey cuts text right after the shortest prefix whose street key is
// word. The cut then moves over separators, and over the rest of "straße"
// when the key ends in an abbreviated "str".
func splitAtKey(text, word string) (street, rest string, ok bool) {
	cut := -1
	for i := range text {
		if i == 0 {
			continue
		}
		prefix := text[:i]
		if normalize.StreetKey(prefix) == word {
			cut = i
			break
		}
		// Collapsing "strasse" to "str" shrinks a key to no less than 3/7
		// of its letters; beyond that the key can no longer equal word.
		if 3*len(normalize.StandardizeLetters(prefix)) > 7*len(word) {
			break
		}
	}
	if cut < 0 {
		if normalize.StreetKey(text) != word {
			return "", "", false
		}
		cut = len(text)
	}

	cut = skipSeparators(text, cut)
	if strings.HasSuffix(word, "str") {
		for _, tail := range []string{"aße", "asse", "AßE", "ASSE"} {
			if strings.HasPrefix(text[cut:], tail) {
				cut = skipSeparators(text, cut+len(tail))
				break
			}
		}
	}

	return strings.TrimSpace(text[:cut]), strings.TrimSpace(text[cut:]), true
}

func skipSeparators(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !normalize.IsStreetSeparator(r) {
			break
		}
		i += size
	}
	return i
}

// splitAtFirstDigit cuts text before its first ASCII digit. Without a digit
// rest is empty.
func splitAtFirstDigit(text string) (street, rest string) {
	i := strings.IndexAny(text, "0123456789")
	if i < 0 {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i:])
}
