// Package chart assembles the renderable planisphere model: projected
// stars and constellation figures, the horizon mask, the date ring, and
// the disc rotation for one observer and moment.
package chart

import (
	"errors"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/timesys"
)

// Observer validation errors.
var (
	ErrLatitudeRange  = errors.New("chart: latitude must be within [-90, 90] degrees")
	ErrLatitudeTooLow = errors.New("chart: latitude too close to the equator for a stable disc")
	ErrLongitudeRange = errors.New("chart: longitude must be within [-180, 180] degrees")
)

// MinLatitudeDeg is the smallest latitude magnitude accepted. Below it
// the declination limit crowds the whole sky onto the disc and the
// sidereal-rotation geometry degrades.
const MinLatitudeDeg = 10.0

// Observer is a ground location with its civil-clock offset.
type Observer struct {
	Name           string  `json:"name,omitempty"`
	UTCOffsetHours float64 `json:"utc_offset_hours"`
	LonDeg         float64 `json:"longitude_deg"` // east positive
	LatDeg         float64 `json:"latitude_deg"`  // north positive
}

// Validate checks the observer against the ranges the disc math can
// handle. It reports the first violation found.
func (o Observer) Validate() error {
	if o.LatDeg < -90 || o.LatDeg > 90 {
		return ErrLatitudeRange
	}
	if o.LonDeg < -180 || o.LonDeg > 180 {
		return ErrLongitudeRange
	}
	if o.LatDeg > -MinLatitudeDeg && o.LatDeg < MinLatitudeDeg {
		return ErrLatitudeTooLow
	}
	return nil
}

// Southern reports whether the observer is in the southern hemisphere,
// which flips the projection pole.
func (o Observer) Southern() bool {
	return o.LatDeg < 0
}

// DeclLimit returns the declination at the disc rim, derived from
// latitude: the lowest declination that ever rises for a northern
// observer, the highest that ever rises for a southern one.
func (o Observer) DeclLimit() unit.Angle {
	if o.Southern() {
		return unit.AngleFromDeg(o.LatDeg + 90)
	}
	return unit.AngleFromDeg(o.LatDeg - 90)
}

// Clock returns the observer's time-system converter.
func (o Observer) Clock() *timesys.Clock {
	return timesys.NewClock(o.UTCOffsetHours, unit.AngleFromDeg(o.LonDeg), unit.AngleFromDeg(o.LatDeg))
}
