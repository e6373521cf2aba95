// Package postal cross-checks the divider against libpostal's address parser.
// libpostal is a C library; it is only linked in when building with
// -tags libpostal.
package postal

import (
	"errors"
	"strings"
)

// ErrUnavailable is returned by Parse in builds without libpostal.
var ErrUnavailable = errors.New("libpostal support not compiled in (build with -tags libpostal)")

// Components holds the libpostal labels that correspond to a street line.
type Components struct {
	Road        string            `json:"road,omitempty"`
	HouseNumber string            `json:"house_number,omitempty"`
	Unit        string            `json:"unit,omitempty"`
	Other       map[string]string `json:"other,omitempty"`
}

// Label is one labelled span of a libpostal parse.
type Label struct {
	Label string
	Value string
}

func fromLabels(labels []Label) Components {
	var c Components
	for _, l := range labels {
		value := strings.TrimSpace(l.Value)
		switch l.Label {
		case "road":
			c.Road = value
		case "house_number":
			c.HouseNumber = value
		case "unit":
			c.Unit = value
		default:
			if c.Other == nil {
				c.Other = map[string]string{}
			}
			c.Other[l.Label] = value
		}
	}
	return c
}
