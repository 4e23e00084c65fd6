// Package astromath provides the angle-unit constants and range-reduction
// primitives shared by the planisphere core.
package astromath

import "math"

const (
	// D2R converts degrees to radians.
	D2R = math.Pi / 180
	// R2D converts radians to degrees.
	R2D = 180 / math.Pi
	// AS2R converts arcseconds to radians.
	AS2R = D2R / 3600
	// H2R converts hours (of right ascension or sidereal time) to radians.
	H2R = math.Pi / 12
	// R2H converts radians to hours.
	R2H = 12 / math.Pi

	// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 UT).
	J2000 = 2451545.0

	// TwoPi is a full turn in radians.
	TwoPi = 2 * math.Pi
	// HalfPi is a quarter turn in radians.
	HalfPi = math.Pi / 2
)

// Mod reduces x into [0, y) using floor division, so negative dividends
// land in the positive range (unlike math.Mod).
func Mod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// Normalize reduces x into the half-open interval [from, to).
// The interval width must be positive; Normalize panics otherwise.
func Normalize(x, from, to float64) float64 {
	if to <= from {
		panic("astromath: Normalize requires to > from")
	}
	return from + Mod(x-from, to-from)
}
