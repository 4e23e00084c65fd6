package projection

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
)

func TestNew_Errors(t *testing.T) {
	if _, err := New(0, unit.AngleFromDeg(-30), false); err != ErrRadius {
		t.Errorf("New with radius 0: err = %v, want ErrRadius", err)
	}
	if _, err := New(-5, unit.AngleFromDeg(-30), false); err != ErrRadius {
		t.Errorf("New with negative radius: err = %v, want ErrRadius", err)
	}
	if _, err := New(300, unit.AngleFromDeg(90), false); err != ErrDeclLimit {
		t.Errorf("New with limit at the pole: err = %v, want ErrDeclLimit", err)
	}
	if _, err := New(300, unit.AngleFromDeg(-90), true); err != ErrDeclLimit {
		t.Errorf("New southern with limit at the pole: err = %v, want ErrDeclLimit", err)
	}
	if _, err := New(300, unit.AngleFromDeg(-30), false); err != nil {
		t.Errorf("New with valid inputs: err = %v", err)
	}
}

func TestProject_LimitOnRim(t *testing.T) {
	p, err := New(300, unit.AngleFromDeg(-30), false)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		ra := unit.RA(float64(i) / 8 * astromath.TwoPi)
		pt := p.Project(ra, unit.AngleFromDeg(-30))
		if math.Abs(pt.Dist()-300) > 1e-6 {
			t.Errorf("rim distance at ra %v = %v, want 300", ra, pt.Dist())
		}
		if !p.Inside(pt) {
			t.Errorf("rim point should satisfy Inside")
		}
	}
}

func TestProject_PoleAtCenter(t *testing.T) {
	p, _ := New(300, unit.AngleFromDeg(-30), false)
	for _, raDeg := range []float64{0, 45, 123, 359} {
		pt := p.Project(unit.RA(raDeg*astromath.D2R), unit.AngleFromDeg(90))
		if math.Abs(pt.X) > 1e-9 || math.Abs(pt.Y) > 1e-9 {
			t.Errorf("pole at ra %v projects to (%v, %v), want origin", raDeg, pt.X, pt.Y)
		}
	}

	s, _ := New(300, unit.AngleFromDeg(30), true)
	pt := s.Project(unit.RA(1), unit.AngleFromDeg(-90))
	if math.Abs(pt.X) > 1e-9 || math.Abs(pt.Y) > 1e-9 {
		t.Errorf("south pole projects to (%v, %v), want origin", pt.X, pt.Y)
	}
}

func TestProject_EquidistantScaling(t *testing.T) {
	// Star at (ra=0h, dec=0) with limit -30 and radius 300:
	// r = 300 * (pi/2) / (pi/2 + pi/6) = 214.86 px.
	p, _ := New(300, unit.AngleFromDeg(-30), false)
	pt := p.Project(unit.RA(0), 0)
	want := 300 * (math.Pi / 2) / (math.Pi/2 + math.Pi/6)
	if math.Abs(pt.Dist()-want) > 1 {
		t.Errorf("equator distance = %v, want %v +- 1", pt.Dist(), want)
	}
	// ra=0 lies along +x.
	if math.Abs(pt.Y) > 1e-9 || pt.X <= 0 {
		t.Errorf("ra=0 should project along +x, got (%v, %v)", pt.X, pt.Y)
	}
}

func TestProject_LinearInPolarDistance(t *testing.T) {
	p, _ := New(200, unit.AngleFromDeg(-10), false)
	// Doubling the polar distance doubles the radius.
	d1 := p.Project(unit.RA(2), unit.AngleFromDeg(70)).Dist()
	d2 := p.Project(unit.RA(2), unit.AngleFromDeg(50)).Dist()
	if math.Abs(d2-2*d1) > 1e-9 {
		t.Errorf("equidistant property violated: %v vs 2*%v", d2, d1)
	}
}

func TestProject_BeyondLimitOutside(t *testing.T) {
	p, _ := New(300, unit.AngleFromDeg(-30), false)
	pt := p.Project(unit.RA(1), unit.AngleFromDeg(-45))
	if pt.Dist() <= 300 {
		t.Errorf("declination below the limit should project outside the rim, got %v", pt.Dist())
	}
	if p.Inside(pt) {
		t.Error("point beyond the rim should not satisfy Inside")
	}
}

func TestProject_Southern(t *testing.T) {
	s, _ := New(300, unit.AngleFromDeg(30), true)

	// Rim at the limit.
	pt := s.Project(unit.RA(0), unit.AngleFromDeg(30))
	if math.Abs(pt.Dist()-300) > 1e-6 {
		t.Errorf("southern rim distance = %v, want 300", pt.Dist())
	}

	// RA direction is mirrored: increasing RA runs clockwise.
	a := s.Project(unit.RA(0), 0)
	b := s.Project(unit.RA(0.1), 0)
	cross := a.X*b.Y - a.Y*b.X
	if cross >= 0 {
		t.Errorf("southern projection should mirror RA, cross = %v", cross)
	}

	n, _ := New(300, unit.AngleFromDeg(-30), false)
	a = n.Project(unit.RA(0), 0)
	b = n.Project(unit.RA(0.1), 0)
	if cross := a.X*b.Y - a.Y*b.X; cross <= 0 {
		t.Errorf("northern projection should run RA counterclockwise, cross = %v", cross)
	}
}

func TestRotation(t *testing.T) {
	n, _ := New(300, unit.AngleFromDeg(-30), false)

	// At st = 0 the reference meridian already needs a quarter turn to
	// reach +y.
	if got := n.Rotation(0).Rad(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Rotation(0) = %v, want pi/2", got)
	}
	// Advancing sidereal time turns the northern disc the opposite way.
	r0 := n.Rotation(unit.AngleFromDeg(10)).Rad()
	r1 := n.Rotation(unit.AngleFromDeg(20)).Rad()
	if diff := astromath.Normalize(r1-r0, -math.Pi, math.Pi); diff >= 0 {
		t.Errorf("northern rotation should decrease with st, diff = %v", diff)
	}

	s, _ := New(300, unit.AngleFromDeg(30), true)
	r0 = s.Rotation(unit.AngleFromDeg(10)).Rad()
	r1 = s.Rotation(unit.AngleFromDeg(20)).Rad()
	if diff := astromath.Normalize(r1-r0, -math.Pi, math.Pi); diff <= 0 {
		t.Errorf("southern rotation should increase with st, diff = %v", diff)
	}

	// Always normalized.
	for _, stDeg := range []float64{0, 90, 359, 720} {
		got := n.Rotation(unit.AngleFromDeg(stDeg)).Rad()
		if got < 0 || got >= astromath.TwoPi {
			t.Errorf("Rotation(%v deg) = %v, out of [0, 2pi)", stDeg, got)
		}
	}
}
