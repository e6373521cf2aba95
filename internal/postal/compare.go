package postal

import (
	"fmt"
	"strings"

	"github.com/streetdivider/internal/normalize"
	"github.com/streetdivider/internal/ranges"
)

// Check is the outcome of comparing one component with libpostal's reading.
type Check struct {
	Agree  bool   `json:"agree"`
	Reason string `json:"reason"`
}

// Agreement reports where a divider result and libpostal read a line alike.
type Agreement struct {
	Street      Check `json:"street"`
	HouseNumber Check `json:"house_number"`
}

// Compare checks street, house number and affix against libpostal's
// components. Streets are compared by street key, house numbers ignoring
// case and blanks.
func Compare(street string, houseNumber int, affix string, c Components) Agreement {
	return Agreement{
		Street:      compareStreet(street, c.Road),
		HouseNumber: compareHouseNumber(houseNumber, affix, c.HouseNumber),
	}
}

func compareStreet(ours, theirs string) Check {
	ourKey, theirKey := normalize.StreetKey(ours), normalize.StreetKey(theirs)
	switch {
	case ourKey == "" || theirKey == "":
		return Check{Reason: fmt.Sprintf("missing street: ours=%q libpostal=%q", ours, theirs)}
	case ourKey == theirKey:
		return Check{Agree: true, Reason: fmt.Sprintf("same street key %q", ourKey)}
	}
	return Check{Reason: fmt.Sprintf("street mismatch: %q vs %q", ours, theirs)}
}

func compareHouseNumber(number int, affix, theirs string) Check {
	ours := ""
	if number > 0 {
		ours = ranges.Join(number, affix)
	}

	a, b := compactNumber(ours), compactNumber(theirs)
	switch {
	case a == "" && b == "":
		return Check{Agree: true, Reason: "neither found a house number"}
	case a == "" || b == "":
		return Check{Reason: fmt.Sprintf("missing house number: ours=%q libpostal=%q", ours, theirs)}
	case a == b:
		return Check{Agree: true, Reason: fmt.Sprintf("same house number %q", ours)}
	}
	return Check{Reason: fmt.Sprintf("house number mismatch: %q vs %q", ours, theirs)}
}

func compactNumber(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
