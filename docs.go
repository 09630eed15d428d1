// Package tempconv converts scalar temperatures between Celsius,
// Fahrenheit, and kelvin.
//
// A [Temperature] pairs a float64 value with its [Unit] and is created
// with [New], which rejects values below absolute zero, or with [Parse],
// which decodes text such as "25°C" or "300K". [Temperature.To] converts
// between any two of the three units and never fails.
//
// Fahrenheit and kelvin convert to each other through Celsius rather than
// by a direct formula, so those conversions round twice. This keeps the
// conversion table at four independent formulas and is relied upon by
// callers comparing results bit for bit.
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/mlogothetis/tempconv
package tempconv
