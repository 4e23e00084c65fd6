package timesys

import (
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
)

// Clock binds the time-system conversions to one observer. All
// location-dependent conversions go through a Clock so there is no
// package-level observer state.
type Clock struct {
	utcOffsetHours float64
	lon            unit.Angle // east positive
	lat            unit.Angle // north positive
}

// NewClock returns a Clock for an observer at the given UTC offset,
// longitude, and latitude. Observer validation happens upstream; the
// Clock itself accepts any finite values.
func NewClock(utcOffsetHours float64, lon, lat unit.Angle) *Clock {
	return &Clock{utcOffsetHours: utcOffsetHours, lon: lon, lat: lat}
}

// UTCOffsetHours returns the observer's UTC offset in hours.
func (c *Clock) UTCOffsetHours() float64 { return c.utcOffsetHours }

// Longitude returns the observer's longitude, east positive.
func (c *Clock) Longitude() unit.Angle { return c.lon }

// Latitude returns the observer's latitude, north positive.
func (c *Clock) Latitude() unit.Angle { return c.lat }

// LonHours returns the observer's longitude expressed in hours.
func (c *Clock) LonHours() float64 { return c.lon.Rad() * astromath.R2H }

// LCTToUT converts local civil time to universal time.
func (c *Clock) LCTToUT(lct float64) float64 { return lct - c.utcOffsetHours/24 }

// UTToLCT converts universal time to local civil time.
func (c *Clock) UTToLCT(ut float64) float64 { return ut + c.utcOffsetHours/24 }

// GSTToLST converts Greenwich sidereal time to local sidereal time.
func (c *Clock) GSTToLST(gst float64) float64 { return gst + c.LonHours()/24 }

// LSTToGST converts local sidereal time to Greenwich sidereal time.
func (c *Clock) LSTToGST(lst float64) float64 { return lst - c.LonHours()/24 }

// LCTToGST converts local civil time to Greenwich sidereal time.
func (c *Clock) LCTToGST(lct float64) float64 { return UTToGST(c.LCTToUT(lct)) }

// LCTToLST converts local civil time to local sidereal time.
func (c *Clock) LCTToLST(lct float64) float64 { return c.GSTToLST(c.LCTToGST(lct)) }

// LSTToLCT converts local sidereal time back to local civil time. It
// inherits the GST→UT approximation; see GSTToUT.
func (c *Clock) LSTToLCT(lst float64) float64 {
	return c.UTToLCT(GSTToUT(c.LSTToGST(lst)))
}

// ApparentNoon returns the local civil hour of apparent (sundial) solar
// noon on the given date, in [0, 24). dstHours shifts the result for
// daylight saving.
func (c *Clock) ApparentNoon(year, month, day int, dstHours float64) float64 {
	noon := 12 + (c.utcOffsetHours - c.LonHours()) -
		EquationOfTimeMinutes(year, month, day)/60 + dstHours
	return astromath.Mod(noon, 24)
}

// ApparentMidnight returns the local civil hour of apparent solar
// midnight on the given date, in [0, 24).
func (c *Clock) ApparentMidnight(year, month, day int, dstHours float64) float64 {
	return astromath.Mod(c.ApparentNoon(year, month, day, dstHours)-12, 24)
}

// RingMode selects the reference hour used to align the planisphere's
// date ring.
type RingMode int

const (
	// RingMidnight aligns each date with local civil midnight. It is
	// also the fallback for unrecognized modes.
	RingMidnight RingMode = iota
	// RingLocalNoon aligns each date with local civil noon.
	RingLocalNoon
	// RingApparentNoon aligns each date with apparent solar noon.
	RingApparentNoon
	// RingApparentMidnight aligns each date with apparent solar midnight.
	RingApparentMidnight
	// RingEvening21 aligns each date with 21:00 local civil time, the
	// traditional planisphere evening setting.
	RingEvening21
)

func (m RingMode) String() string {
	switch m {
	case RingLocalNoon:
		return "noon"
	case RingApparentNoon:
		return "apparent-noon"
	case RingApparentMidnight:
		return "apparent-midnight"
	case RingEvening21:
		return "21h"
	default:
		return "midnight"
	}
}

// ParseRingMode parses a ring mode name. Unknown names fall back to
// RingMidnight, matching RingHour's fallback for out-of-range values.
func ParseRingMode(s string) RingMode {
	switch s {
	case "noon":
		return RingLocalNoon
	case "apparent-noon", "lasn":
		return RingApparentNoon
	case "apparent-midnight", "lamn":
		return RingApparentMidnight
	case "21h", "evening":
		return RingEvening21
	default:
		return RingMidnight
	}
}

// RingHour returns the local civil hour, in [0, 24), that the date ring
// associates with the given date under the given mode. Values of mode
// outside the defined set behave as RingMidnight.
func (c *Clock) RingHour(year, month, day int, mode RingMode, dstHours float64) float64 {
	switch mode {
	case RingLocalNoon:
		return astromath.Mod(12+dstHours, 24)
	case RingApparentNoon:
		return c.ApparentNoon(year, month, day, dstHours)
	case RingApparentMidnight:
		return c.ApparentMidnight(year, month, day, dstHours)
	case RingEvening21:
		return astromath.Mod(21+dstHours, 24)
	default:
		return astromath.Mod(dstHours, 24)
	}
}
