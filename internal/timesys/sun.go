package timesys

import (
	"math"

	"github.com/litescript/ls-planisphere/internal/astromath"
)

// EquationOfTimeMinutes returns the approximate difference between
// apparent (sundial) and mean (clock) solar time for the given date, in
// minutes. Positive means the sundial runs ahead of the clock.
//
// This is a two-harmonic Fourier approximation, good to a couple of
// minutes across the year. That is sufficient for placing the date ring
// of a planisphere; it is not a timekeeping formula.
func EquationOfTimeMinutes(year, month, day int) float64 {
	n := DayOfYear(year, month, day)
	b := astromath.TwoPi * float64(n-81) / 365
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}
