//go:build libpostal

package postal

import (
	parser "github.com/openvenues/gopostal/parser"
)

// Available reports whether this build links libpostal.
const Available = true

// Parse runs libpostal's parser on text.
func Parse(text string) (Components, error) {
	parsed := parser.ParseAddress(text)

	labels := make([]Label, 0, len(parsed))
	for _, p := range parsed {
		labels = append(labels, Label{Label: p.Label, Value: p.Value})
	}
	return fromLabels(labels), nil
}
