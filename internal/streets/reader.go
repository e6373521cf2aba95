// Package streets supplies the special street names that the divider keeps in
// its dictionary: the embedded default list, external list files and a
// PostgreSQL-backed store.
package streets

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/streetdivider/internal/normalize"
)

//go:embed specialstreets.txt
var specialStreets string

// Default returns the embedded list of special streets.
func Default() []string {
	list, err := Read(strings.NewReader(specialStreets))
	if err != nil {
		// strings.Reader cannot fail
		panic(err)
	}
	return list
}

// Read parses one street per line. Blank lines and lines starting with '#'
// are skipped; trailing separators left over from spreadsheet exports
// ("Straße 6;") are dropped.
func Read(r io.Reader) ([]string, error) {
	var list []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line = normalize.RemoveTrailingSpecialChars(line); line == "" {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading street list: %w", err)
	}
	return list, nil
}

// ReadFile reads a street list in the given text encoding.
func ReadFile(path, enc string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening street list: %w", err)
	}
	defer f.Close()

	r, err := DecodeReader(f, enc)
	if err != nil {
		return nil, err
	}
	return Read(r)
}

// DecodeReader wraps r so that it yields UTF-8. German address exports are
// frequently Latin-1 or Windows-1252.
func DecodeReader(r io.Reader, enc string) (io.Reader, error) {
	decoder, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, decoder), nil
}

func decoderFor(enc string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", "utf-8", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
}
