package chart

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/catalog"
	"github.com/litescript/ls-planisphere/internal/frames"
	"github.com/litescript/ls-planisphere/internal/projection"
	"github.com/litescript/ls-planisphere/internal/timesys"
)

// Defaults for Options fields left zero.
const (
	DefaultRadius         = 300.0
	DefaultHorizonStepDeg = 0.6
	curveStepDeg          = 2.0 // ecliptic and galactic sampling
)

// Options tune a chart build. The zero value is usable.
type Options struct {
	Radius         float64
	RingMode       timesys.RingMode
	DSTHours       float64
	HorizonStepDeg float64
}

func (o Options) withDefaults() Options {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.HorizonStepDeg == 0 {
		o.HorizonStepDeg = DefaultHorizonStepDeg
	}
	return o
}

// ChartStar is a catalog star placed on the disc.
type ChartStar struct {
	Name     string                 `json:"name,omitempty"`
	Mag      float64                `json:"mag"`
	Spectral string                 `json:"spectral,omitempty"`
	Point    projection.ScreenPoint `json:"point"`
	Inside   bool                   `json:"inside"`
	AltDeg   float64                `json:"alt_deg"`
}

// FigureLine is one projected constellation stroke.
type FigureLine struct {
	A projection.ScreenPoint `json:"a"`
	B projection.ScreenPoint `json:"b"`
}

// ChartFigure is a constellation figure on the disc with a label
// anchor at the mean direction of its member stars.
type ChartFigure struct {
	Name   string                 `json:"name"`
	Lines  []FigureLine           `json:"lines"`
	Label  projection.ScreenPoint `json:"label"`
	Inside bool                   `json:"inside"`
}

// RingTick is one mark on the date ring. Month boundaries carry no
// label; the mid-month tick names the month.
type RingTick struct {
	Month    int     `json:"month"`
	Day      int     `json:"day"`
	AngleDeg float64 `json:"angle_deg"`
	Label    string  `json:"label,omitempty"`
}

// Chart is the fully computed planisphere for one observer and moment.
// Coordinates are disc-local: origin at the celestial pole, unrotated.
// RotationDeg is the rigid rotation the renderer applies to bring the
// sky to the moment's orientation.
type Chart struct {
	Observer     Observer                 `json:"observer"`
	Moment       Moment                   `json:"moment"`
	JD           float64                  `json:"jd"`
	LST          float64                  `json:"lst"`
	RotationDeg  float64                  `json:"rotation_deg"`
	Radius       float64                  `json:"radius"`
	DeclLimitDeg float64                  `json:"decl_limit_deg"`
	Southern     bool                     `json:"southern"`
	RingMode     string                   `json:"ring_mode"`
	Stars        []ChartStar              `json:"stars"`
	Figures      []ChartFigure            `json:"figures"`
	Horizon      []projection.ScreenPoint `json:"horizon"`
	Ecliptic     []projection.ScreenPoint `json:"ecliptic"`
	Galactic     []projection.ScreenPoint `json:"galactic"`
	Ring         []RingTick               `json:"ring"`
}

// Build computes the chart for an observer at a local civil moment.
func Build(obs Observer, m Moment, opt Options) (*Chart, error) {
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	opt = opt.withDefaults()

	disc, err := projection.New(opt.Radius, obs.DeclLimit(), obs.Southern())
	if err != nil {
		return nil, err
	}

	clock := obs.Clock()
	lct := m.JulianDay()
	ut := clock.LCTToUT(lct)
	lst := clock.LCTToLST(lct)
	st := timesys.SiderealAngle(lst)
	lat := clock.Latitude()

	c := &Chart{
		Observer:     obs,
		Moment:       m,
		JD:           ut,
		LST:          lst,
		RotationDeg:  disc.Rotation(st).Deg(),
		Radius:       opt.Radius,
		DeclLimitDeg: obs.DeclLimit().Deg(),
		Southern:     obs.Southern(),
		RingMode:     opt.RingMode.String(),
	}

	horM := frames.EquToHorMat(st, lat)

	for _, s := range catalog.Stars() {
		ra := raOf(s)
		dec := decOf(s)
		pt := disc.Project(ra, dec)
		alt := horM.MulVec(frames.Sphere(unit.Angle(ra), dec)).Lat()
		c.Stars = append(c.Stars, ChartStar{
			Name:     s.Name,
			Mag:      s.Mag,
			Spectral: s.Spectral,
			Point:    pt,
			Inside:   disc.Inside(pt),
			AltDeg:   alt.Deg(),
		})
	}

	for _, f := range catalog.Figures() {
		cf := ChartFigure{Name: f.Name}
		var sum frames.Vec3
		for _, seg := range f.Segments() {
			a := disc.Project(raOf(seg.A), decOf(seg.A))
			b := disc.Project(raOf(seg.B), decOf(seg.B))
			cf.Lines = append(cf.Lines, FigureLine{A: a, B: b})
			va := frames.Sphere(unit.Angle(raOf(seg.A)), decOf(seg.A))
			vb := frames.Sphere(unit.Angle(raOf(seg.B)), decOf(seg.B))
			sum = sum.Add(va).Add(vb)
		}
		if len(cf.Lines) == 0 {
			continue
		}
		cf.Label = disc.Project(unit.RA(sum.Lon()), sum.Lat())
		cf.Inside = disc.Inside(cf.Label)
		c.Figures = append(c.Figures, cf)
	}

	c.Horizon = horizonCurve(disc, st, lat, opt.HorizonStepDeg)
	c.Ecliptic = eclipticCurve(disc, ut)
	c.Galactic = galacticCurve(disc)
	c.Ring = dateRing(clock, disc, m.Year, opt.RingMode, opt.DSTHours)

	return c, nil
}

func raOf(s catalog.Star) unit.RA {
	return unit.RAFromHour(s.RAHours)
}

func decOf(s catalog.Star) unit.Angle {
	return unit.AngleFromDeg(s.DecDeg)
}

// horizonCurve samples the local horizon by pushing altitude-zero
// directions through the hor-to-equ rotation and projecting them.
func horizonCurve(disc *projection.Planisphere, st, lat unit.Angle, stepDeg float64) []projection.ScreenPoint {
	m := frames.HorToEquMat(st, lat)
	n := int(math.Round(360 / stepDeg))
	pts := make([]projection.ScreenPoint, 0, n)
	for i := 0; i < n; i++ {
		az := unit.AngleFromDeg(float64(i) * stepDeg)
		e := m.MulVec(frames.Sphere(az, 0))
		pts = append(pts, disc.Project(unit.RA(e.Lon()), e.Lat()))
	}
	return pts
}

// eclipticCurve projects the ecliptic great circle for the moment's
// obliquity.
func eclipticCurve(disc *projection.Planisphere, jd float64) []projection.ScreenPoint {
	m := frames.EclToEquMat(jd)
	n := int(360 / curveStepDeg)
	pts := make([]projection.ScreenPoint, 0, n)
	for i := 0; i < n; i++ {
		lam := unit.AngleFromDeg(float64(i) * curveStepDeg)
		e := m.MulVec(frames.Sphere(lam, 0))
		pts = append(pts, disc.Project(unit.RA(e.Lon()), e.Lat()))
	}
	return pts
}

// galacticCurve projects the galactic equator. The frame is fixed, so
// the curve depends only on the disc geometry.
func galacticCurve(disc *projection.Planisphere) []projection.ScreenPoint {
	m := frames.GalToEquMat()
	n := int(360 / curveStepDeg)
	pts := make([]projection.ScreenPoint, 0, n)
	for i := 0; i < n; i++ {
		l := unit.AngleFromDeg(float64(i) * curveStepDeg)
		e := m.MulVec(frames.Sphere(l, 0))
		pts = append(pts, disc.Project(unit.RA(e.Lon()), e.Lat()))
	}
	return pts
}

// dateRing places one tick per month boundary and one labeled tick at
// each mid-month, at the disc angle the sky holds at the ring hour of
// that date.
func dateRing(clock *timesys.Clock, disc *projection.Planisphere, year int, mode timesys.RingMode, dstHours float64) []RingTick {
	ticks := make([]RingTick, 0, 24)
	for month := 1; month <= 12; month++ {
		ticks = append(ticks, RingTick{
			Month:    month,
			Day:      1,
			AngleDeg: ringAngle(clock, disc, year, month, 1, mode, dstHours),
		})
		mid := timesys.MonthMidDay(year, month)
		ticks = append(ticks, RingTick{
			Month:    month,
			Day:      mid,
			AngleDeg: ringAngle(clock, disc, year, month, mid, mode, dstHours),
			Label:    time.Month(month).String()[:3],
		})
	}
	return ticks
}

func ringAngle(clock *timesys.Clock, disc *projection.Planisphere, year, month, day int, mode timesys.RingMode, dstHours float64) float64 {
	h := clock.RingHour(year, month, day, mode, dstHours)
	lct := timesys.JulianDay(year, month, day, 0, 0, 0) + h/24
	st := timesys.SiderealAngle(clock.LCTToLST(lct))
	return disc.Rotation(st).Deg()
}
