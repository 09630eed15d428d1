package tempconv

import (
	"errors"
	"strconv"
)

// Errors returned by [New] and [Parse]. The parser wraps the failure kind
// in a [ParseError] carrying the offending input, so callers match kinds
// with [errors.Is] and [errors.As].
var (
	ErrBelowAbsoluteZero = errors.New("temperature below absolute zero")
	ErrEmpty             = errors.New("empty input")
	ErrMissingUnit       = errors.New("missing unit")
	ErrInvalidNumber     = errors.New("invalid number")
)

// InvalidUnitError reports a unit character that is not one of 'C', 'F',
// or 'K'.
type InvalidUnitError struct {
	Char rune
}

func (e *InvalidUnitError) Error() string {
	return "invalid unit " + strconv.QuoteRune(e.Char)
}

// ParseError is the error returned by [Parse].
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
