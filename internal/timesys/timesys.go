// Package timesys converts between civil time, universal time, sidereal
// time, and Julian Day numbers.
//
// A Julian Day value carries its time system implicitly: the same float64
// may represent a moment in UT, GST, LST, or local civil time, and the
// caller is responsible for tracking which. The conversion functions in
// this package are the only way meaning moves between systems.
package timesys

import "math"

// monthLengths is the day count of each month in a common year.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// MonthDays returns the number of days in each month of year.
func MonthDays(year int) [12]int {
	days := monthLengths
	if IsLeapYear(year) {
		days[1] = 29
	}
	return days
}

// MonthMidDay returns the middle day of the given month (1-12),
// rounding up: ceil(days/2).
func MonthMidDay(year, month int) int {
	days := MonthDays(year)[month-1]
	return (days + 1) / 2
}

// DayOfYear returns the 1-based ordinal day of the date within its year.
func DayOfYear(year, month, day int) int {
	n := day
	days := MonthDays(year)
	for m := 1; m < month; m++ {
		n += days[m-1]
	}
	return n
}

// JulianDay converts a Gregorian calendar date and time of day to a
// Julian Day number. The day boundary follows the astronomical
// convention: the integer part transitions at 12:00, not at midnight.
//
// Out-of-calendar fields (day=32, hour=25) are not validated; they flow
// through the arithmetic and produce the correspondingly shifted moment.
func JulianDay(year, month, day int, hour, minute int, second float64) float64 {
	y := float64(year)
	m := float64(month)

	// Treat January and February as months 13 and 14 of the previous
	// year so the month-length term stays monotonic.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	dayFrac := (float64(hour) + float64(minute)/60 + second/3600) / 24

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + dayFrac + b - 1524.5
}

// DateIntegerPart returns the Julian Day of the most recent 0h boundary
// at or before jd. The fractional part of the result is always 0.5.
func DateIntegerPart(jd float64) float64 {
	return math.Floor(jd-0.5) + 0.5
}

// TimeOfDay returns the hours elapsed since the day boundary of jd,
// in [0, 24).
func TimeOfDay(jd float64) float64 {
	return (jd - DateIntegerPart(jd)) * 24
}
