package tempconv

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse decodes text of the form "<number><unit>", e.g. "25°C", "98.6F",
// or "273.15K". Surrounding whitespace is ignored, as is a degree sign
// between the number and the unit, so Parse accepts anything produced by
// [Temperature.String]. The unit letter must be the uppercase 'C', 'F',
// or 'K'. Failures are returned as a [*ParseError] wrapping one of
// [ErrEmpty], [ErrMissingUnit], [*InvalidUnitError], [ErrInvalidNumber],
// or [ErrBelowAbsoluteZero].
func Parse(s string) (Temperature, error) {
	text := strings.TrimSpace(s)
	if len(text) == 0 {
		return Temperature{}, &ParseError{s, ErrEmpty}
	}

	if utf8.RuneCountInString(text) < 2 {
		return Temperature{}, &ParseError{s, ErrMissingUnit}
	}

	last, size := utf8.DecodeLastRuneInString(text)

	var unit Unit

	if last < utf8.RuneSelf {
		unit, _ = UnitOf(byte(last))
	}

	if unit == 0 {
		return Temperature{}, &ParseError{s, &InvalidUnitError{last}}
	}

	num := strings.TrimSpace(text[:len(text)-size])
	num = strings.TrimSpace(strings.TrimSuffix(num, "°"))

	if num == "" {
		return Temperature{}, &ParseError{s, ErrInvalidNumber}
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Temperature{}, &ParseError{s, ErrInvalidNumber}
	}

	t, err := New(v, unit)
	if err != nil {
		return Temperature{}, &ParseError{s, err}
	}

	return t, nil
}
