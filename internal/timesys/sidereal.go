package timesys

import (
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
)

// Rate constants relating the sidereal and solar day lengths.
const (
	siderealRate = 1.00273790935 // sidereal hours per UT hour
	solarRate    = 0.9972695663  // UT hours per sidereal hour
)

// UTToGST converts a universal-time Julian moment to Greenwich sidereal
// time, keeping the same date part. The IAU polynomial gives the
// sidereal time at 0h, and the day's elapsed UT advances it at the
// sidereal rate.
func UTToGST(ut float64) float64 {
	d0 := DateIntegerPart(ut)
	t := (d0 - astromath.J2000) / 36525
	t0 := 6.697374558 + 2400.051336*t + 0.000025862*t*t
	gst := astromath.Mod(t0+TimeOfDay(ut)*siderealRate, 24)
	return d0 + gst/24
}

// GSTToUT converts a Greenwich-sidereal-time Julian moment back to
// universal time via the solar rate.
//
// The conversion is approximate and many-to-one near day boundaries: a
// sidereal day is shorter than a solar day, so roughly four minutes of
// GST each day have no UT preimage on the same date. Round-tripping
// through UTToGST agrees to about 1e-4 days; callers needing better
// than disc-alignment accuracy should not lean on this pair.
func GSTToUT(gst float64) float64 {
	d0 := DateIntegerPart(gst)
	t := (d0 - astromath.J2000) / 36525
	t0 := astromath.Mod(6.697374558+2400.051336*t+0.000025862*t*t, 24)
	ut := astromath.Mod(TimeOfDay(gst)-t0, 24) * solarRate
	return d0 + ut/24
}

// SiderealAngle converts a sidereal-time Julian moment to the equivalent
// rotation angle: 24 sidereal hours is one full turn.
func SiderealAngle(st float64) unit.Angle {
	return unit.Angle(TimeOfDay(st) * astromath.H2R)
}
