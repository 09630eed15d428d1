package tempconv

import (
	"strings"
	"unicode/utf8"
)

// Unit identifies one of the three supported temperature scales. The
// underlying value is the unit's one-letter abbreviation.
type Unit byte

const (
	Celsius    Unit = 'C'
	Fahrenheit Unit = 'F'
	Kelvin     Unit = 'K'
)

// UnitOf returns the Unit identified by the abbreviation c. Only the
// uppercase letters 'C', 'F', and 'K' identify a unit.
func UnitOf(c byte) (Unit, bool) {
	switch u := Unit(c); u {
	case Celsius, Fahrenheit, Kelvin:
		return u, true
	}

	return 0, false
}

// String returns the name of the unit.
func (u Unit) String() string {
	switch u {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "kelvin"
	}

	return "unknown"
}

// Abbrev returns the one-letter code identifying the unit in parsed and
// formatted text.
func (u Unit) Abbrev() string {
	return string(byte(u))
}

// MarshalText implements [encoding.TextMarshaler] by returning the unit's
// abbreviation.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte{byte(u)}, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the
// one-letter abbreviation or the full unit name, ignoring case.
func (u *Unit) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "c", "celsius":
		*u = Celsius
	case "f", "fahrenheit":
		*u = Fahrenheit
	case "k", "kelvin":
		*u = Kelvin
	default:
		r, _ := utf8.DecodeRune(b)
		return &InvalidUnitError{r}
	}

	return nil
}
