package tempconv_test

import (
	"testing"

	"github.com/mlogothetis/tempconv"
)

func TestUnitString(t *testing.T) {
	var tests = []struct {
		unit   tempconv.Unit
		name   string
		abbrev string
	}{
		{tempconv.Celsius, "Celsius", "C"},
		{tempconv.Fahrenheit, "Fahrenheit", "F"},
		{tempconv.Kelvin, "kelvin", "K"},
	}
	for _, tt := range tests {
		if got := tt.unit.String(); got != tt.name {
			t.Errorf("%s.String(): wanted %q, got %q", tt.abbrev, tt.name, got)
		}
		if got := tt.unit.Abbrev(); got != tt.abbrev {
			t.Errorf("%s.Abbrev(): wanted %q, got %q", tt.name, tt.abbrev, got)
		}
	}
}

func TestUnitOf(t *testing.T) {
	var tests = []struct {
		in   byte
		want tempconv.Unit
		ok   bool
	}{
		{'C', tempconv.Celsius, true},
		{'F', tempconv.Fahrenheit, true},
		{'K', tempconv.Kelvin, true},
		{'c', 0, false},
		{'k', 0, false},
		{'R', 0, false},
		{'X', 0, false},
	}
	for _, tt := range tests {
		got, ok := tempconv.UnitOf(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("UnitOf(%q): wanted (%d, %v), got (%d, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestUnitUnmarshalText(t *testing.T) {
	var tests = []struct {
		in   string
		want tempconv.Unit
		fail bool
	}{
		{"C", tempconv.Celsius, false},
		{"f", tempconv.Fahrenheit, false},
		{"Kelvin", tempconv.Kelvin, false},
		{"celsius", tempconv.Celsius, false},
		{"FAHRENHEIT", tempconv.Fahrenheit, false},
		{"rankine", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		var got tempconv.Unit

		err := got.UnmarshalText([]byte(tt.in))
		if tt.fail {
			if err == nil {
				t.Errorf("%q: wanted error, got %s", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: wanted %s, got %s", tt.in, tt.want, got)
		}
	}
}
