package divider

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyInput         = errors.New("address is empty")
	ErrEmptyStreet        = errors.New("street must not be empty")
	ErrInvalidHouseNumber = errors.New("house number must be a positive integer")
)

// Location is a street address line split into its parts. House numbers are
// always positive, so a zero HouseNumber means the line carried none. An
// empty Affix likewise means there was no affix.
type Location struct {
	Street      string `json:"street"`
	HouseNumber int    `json:"house_number,omitempty"`
	Affix       string `json:"affix,omitempty"`
}

// NewLocation validates and trims the parts of a location.
func NewLocation(street, houseNumber, affix string) (Location, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return Location{}, ErrEmptyStreet
	}

	loc := Location{Street: street, Affix: strings.TrimSpace(affix)}

	if houseNumber = strings.TrimSpace(houseNumber); houseNumber != "" {
		n, err := strconv.Atoi(houseNumber)
		if err != nil || n <= 0 {
			return Location{}, fmt.Errorf("%w: %q", ErrInvalidHouseNumber, houseNumber)
		}
		loc.HouseNumber = n
	}

	return loc, nil
}

func (l Location) HasHouseNumber() bool {
	return l.HouseNumber > 0
}

func (l Location) String() string {
	number := "null"
	if l.HasHouseNumber() {
		number = strconv.Itoa(l.HouseNumber)
	}
	affix := "null"
	if l.Affix != "" {
		affix = l.Affix
	}
	return fmt.Sprintf("Location(street=%s, houseNumber=%s, houseNumberAffix=%s)", l.Street, number, affix)
}
