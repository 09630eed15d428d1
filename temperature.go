package tempconv

import "strconv"

// Temperature is an immutable temperature value tagged with its unit.
// Temperatures are created with [New] or [Parse] and converted with
// [Temperature.To]; conversions return new values.
type Temperature struct {
	value float64
	unit  Unit
}

// Well-known reference points.
var (
	AbsoluteZero  = Temperature{0, Kelvin}
	WaterBoiling  = Temperature{100, Celsius}
	WaterFreezing = Temperature{0, Celsius}
)

// New returns the Temperature with the given value and unit. A value below
// absolute zero (0 kelvin) is rejected with [ErrBelowAbsoluteZero]; the
// kelvin conversion is only used for validation, the returned Temperature
// keeps the given unit.
func New(value float64, unit Unit) (Temperature, error) {
	t := Temperature{value, unit}
	if t.To(Kelvin).value < 0 {
		return Temperature{}, ErrBelowAbsoluteZero
	}

	return t, nil
}

// Value returns the scalar value of t, expressed in [Temperature.Unit].
func (t Temperature) Value() float64 {
	return t.value
}

// Unit returns the unit of t.
func (t Temperature) Unit() Unit {
	return t.unit
}

// celsiusTo converts v degrees Celsius to u.
func celsiusTo(v float64, u Unit) float64 {
	switch u {
	case Fahrenheit:
		return v*9/5 + 32
	case Kelvin:
		return v + 273.15
	}

	return v
}

// To converts t to the given unit. It never fails; a same-unit conversion
// returns t unchanged. Fahrenheit and kelvin convert to each other through
// Celsius, so those conversions round twice.
func (t Temperature) To(unit Unit) Temperature {
	if unit == t.unit {
		return Temperature{t.value, unit}
	}

	switch t.unit {
	case Fahrenheit:
		return Temperature{(t.value - 32) * 5 / 9, Celsius}.To(unit)
	case Kelvin:
		return Temperature{t.value - 273.15, Celsius}.To(unit)
	}

	return Temperature{celsiusTo(t.value, unit), unit}
}

// String formats t as its shortest round-trip decimal followed by the
// unit abbreviation. Celsius and Fahrenheit carry a degree sign, kelvin
// does not:
//
//	25°C, 77°F, 300K
func (t Temperature) String() string {
	v := strconv.FormatFloat(t.value, 'f', -1, 64)
	if t.unit == Kelvin {
		return v + "K"
	}

	return v + "°" + t.unit.Abbrev()
}
