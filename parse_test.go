package tempconv_test

import (
	"errors"
	"testing"

	"github.com/mlogothetis/tempconv"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		in    string
		value float64
		unit  tempconv.Unit
	}{
		{"25C", 25, tempconv.Celsius},
		{"25°C", 25, tempconv.Celsius},
		{"98.6F", 98.6, tempconv.Fahrenheit},
		{"300K", 300, tempconv.Kelvin},
		{" 273.15K ", 273.15, tempconv.Kelvin},
		{"-40 °F", -40, tempconv.Fahrenheit},
		{"37.5 ° C", 37.5, tempconv.Celsius},
		{"-273.15C", -273.15, tempconv.Celsius},
		{"1e2C", 100, tempconv.Celsius},
	}
	for _, tt := range tests {
		got, err := tempconv.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got.Value() != tt.value || got.Unit() != tt.unit {
			t.Errorf("Parse(%q): wanted %v %s, got %v %s", tt.in, tt.value, tt.unit, got.Value(), got.Unit())
		}
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		in   string
		want error
	}{
		{"", tempconv.ErrEmpty},
		{"   ", tempconv.ErrEmpty},
		{"5", tempconv.ErrMissingUnit},
		{"F", tempconv.ErrMissingUnit},
		{"10X", nil}, // InvalidUnitError, checked below
		{"10c", nil},
		{"abcC", tempconv.ErrInvalidNumber},
		{"°C", tempconv.ErrInvalidNumber},
		{"-300C", tempconv.ErrBelowAbsoluteZero},
		{"-1K", tempconv.ErrBelowAbsoluteZero},
	}
	for _, tt := range tests {
		_, err := tempconv.Parse(tt.in)
		if err == nil {
			t.Errorf("Parse(%q): wanted error, got nil", tt.in)
			continue
		}

		var perr *tempconv.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): wanted *ParseError, got %T", tt.in, err)
			continue
		}
		if perr.Input != tt.in {
			t.Errorf("Parse(%q): ParseError.Input = %q", tt.in, perr.Input)
		}

		if tt.want != nil {
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q): wanted %v, got %v", tt.in, tt.want, err)
			}
			continue
		}

		var uerr *tempconv.InvalidUnitError
		if !errors.As(err, &uerr) {
			t.Errorf("Parse(%q): wanted *InvalidUnitError, got %v", tt.in, err)
		}
	}
}

func TestParseInvalidUnitChar(t *testing.T) {
	_, err := tempconv.Parse("10X")

	var uerr *tempconv.InvalidUnitError
	if !errors.As(err, &uerr) {
		t.Fatalf("Parse(\"10X\"): wanted *InvalidUnitError, got %v", err)
	}
	if uerr.Char != 'X' {
		t.Errorf("Parse(\"10X\"): wanted char 'X', got %q", uerr.Char)
	}
}

func TestParseStringInverse(t *testing.T) {
	var tests = []struct {
		value float64
		unit  tempconv.Unit
	}{
		{25, tempconv.Celsius},
		{37.5, tempconv.Celsius},
		{98.6, tempconv.Fahrenheit},
		{-40, tempconv.Fahrenheit},
		{300, tempconv.Kelvin},
		{0.25, tempconv.Kelvin},
	}
	for _, tt := range tests {
		temp := mustNewT(t, tt.value, tt.unit)

		got, err := tempconv.Parse(temp.String())
		if err != nil {
			t.Errorf("Parse(%q): %v", temp.String(), err)
			continue
		}
		if got != temp {
			t.Errorf("Parse(%q): wanted %v %s, got %v %s", temp.String(), tt.value, tt.unit, got.Value(), got.Unit())
		}
	}
}
