// Package projection maps equatorial coordinates onto the planisphere
// disc using an equidistant azimuthal projection: distance from the
// disc center is linear in angular distance from the celestial pole.
package projection

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
)

// Construction errors.
var (
	ErrRadius    = errors.New("projection: screen radius must be positive")
	ErrDeclLimit = errors.New("projection: declination limit must leave the projection pole inside the disc")
)

// ScreenPoint is a planar pixel offset from the disc center.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the distance from the disc center.
func (p ScreenPoint) Dist() float64 {
	return math.Hypot(p.X, p.Y)
}

// Planisphere is a projection context for one screen radius and
// declination limit. The radius scale is derived once at construction
// and must not be mutated afterwards; build a new Planisphere when the
// radius or limit changes.
type Planisphere struct {
	screenRadius float64
	declLimit    unit.Angle
	southern     bool
	scale        float64 // pixels per radian of polar distance
}

// New returns a Planisphere projecting onto a disc of screenRadius
// pixels, with the disc rim at declLimit. For southern observers the
// projection pole is the south celestial pole and declLimit is the
// highest declination shown. declLimit may cross the equator into the
// far hemisphere; it only must keep the projection pole strictly
// inside the disc.
func New(screenRadius float64, declLimit unit.Angle, southern bool) (*Planisphere, error) {
	if screenRadius <= 0 {
		return nil, ErrRadius
	}

	span := astromath.HalfPi - declLimit.Rad()
	if southern {
		span = astromath.HalfPi + declLimit.Rad()
	}
	if span <= 0 {
		return nil, ErrDeclLimit
	}

	return &Planisphere{
		screenRadius: screenRadius,
		declLimit:    declLimit,
		southern:     southern,
		scale:        screenRadius / span,
	}, nil
}

// ScreenRadius returns the configured disc radius in pixels.
func (p *Planisphere) ScreenRadius() float64 { return p.screenRadius }

// DeclLimit returns the declination at the disc rim.
func (p *Planisphere) DeclLimit() unit.Angle { return p.declLimit }

// Southern reports whether the projection pole is the south celestial
// pole.
func (p *Planisphere) Southern() bool { return p.southern }

// Project maps equatorial (ra, dec) to a screen point. Declination at
// the limit lands exactly on the rim; declinations beyond it project
// outside the disc and are left for the caller to cull (see Inside).
func (p *Planisphere) Project(ra unit.RA, dec unit.Angle) ScreenPoint {
	if p.southern {
		// South pole at center; right ascension runs mirrored so the
		// sky reads correctly when the disc is viewed from below the
		// celestial sphere.
		r := (astromath.HalfPi + dec.Rad()) * p.scale
		s, c := math.Sincos(-ra.Rad())
		return ScreenPoint{X: r * c, Y: r * s}
	}
	r := (astromath.HalfPi - dec.Rad()) * p.scale
	s, c := math.Sincos(ra.Rad())
	return ScreenPoint{X: r * c, Y: r * s}
}

// Inside reports whether a projected point lies on the disc.
func (p *Planisphere) Inside(pt ScreenPoint) bool {
	return pt.Dist() <= p.screenRadius+1e-9
}

// Rotation returns the whole-disc rotation that brings the meridian for
// the given sidereal time (as an angle) to the disc's reference
// direction, +y ("up"). The renderer applies this one angle as a group
// transform instead of re-projecting every point.
func (p *Planisphere) Rotation(st unit.Angle) unit.Angle {
	if p.southern {
		return unit.Angle(astromath.Mod(astromath.HalfPi+st.Rad(), astromath.TwoPi))
	}
	return unit.Angle(astromath.Mod(astromath.HalfPi-st.Rad(), astromath.TwoPi))
}
