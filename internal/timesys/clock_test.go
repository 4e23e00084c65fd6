package timesys

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
)

// seoulClock returns a Clock for Seoul: UTC+9, 126.98E, 37.57N.
func seoulClock() *Clock {
	return NewClock(9, unit.AngleFromDeg(126.98), unit.AngleFromDeg(37.57))
}

func TestClock_LCTUT_RoundTrip(t *testing.T) {
	clocks := []*Clock{
		seoulClock(),
		NewClock(-8, unit.AngleFromDeg(-117.0), unit.AngleFromDeg(35.0)),
		NewClock(5.75, unit.AngleFromDeg(85.32), unit.AngleFromDeg(27.7)),
		NewClock(0, unit.AngleFromDeg(0), unit.AngleFromDeg(51.48)),
	}

	lct := JulianDay(2024, 6, 21, 12, 0, 0)
	for _, c := range clocks {
		back := c.UTToLCT(c.LCTToUT(lct))
		if math.Abs(back-lct) > 1e-9 {
			t.Errorf("LCT->UT->LCT offset %v: diff %v days", c.UTCOffsetHours(), back-lct)
		}
	}
}

func TestClock_LCTLST_RoundTrip(t *testing.T) {
	c := seoulClock()
	for _, h := range []int{0, 3, 9, 12, 15, 20} {
		lct := JulianDay(2024, 6, 21, h, 17, 3)
		back := c.LSTToLCT(c.LCTToLST(lct))
		// The rates are reciprocal to ~1e-11 so the round trip is far
		// tighter than the GST<->UT day-boundary bound.
		if math.Abs(back-lct) > 1e-9 {
			t.Errorf("LCT->LST->LCT at %02dh: diff %v days", h, back-lct)
		}
	}
}

func TestClock_GSTLST(t *testing.T) {
	c := seoulClock()
	gst := JulianDay(2024, 6, 21, 4, 0, 0)

	lst := c.GSTToLST(gst)
	wantShift := (126.98 / 15) / 24
	// gst is a full Julian Day near 2.46e6 whose ULP is ~5e-10, so the
	// shift cannot resolve below that. 1e-9 matches the round-trip bounds.
	if math.Abs((lst-gst)-wantShift) > 1e-9 {
		t.Errorf("GSTToLST shift = %v days, want %v", lst-gst, wantShift)
	}
	if back := c.LSTToGST(lst); math.Abs(back-gst) > 1e-9 {
		t.Errorf("LSTToGST(GSTToLST(gst)) diff %v", back-gst)
	}
}

func TestClock_ApparentNoon_Seoul(t *testing.T) {
	// Seoul sits west of its standard meridian (135E), so true noon is
	// later than 12:00 civil.
	c := seoulClock()
	noon := c.ApparentNoon(2024, 6, 21, 0)
	if noon < 12.0 || noon > 13.0 {
		t.Errorf("apparent noon in Seoul = %v, want within [12, 13]", noon)
	}
}

func TestClock_ApparentMidnight_OppositeNoon(t *testing.T) {
	c := seoulClock()
	noon := c.ApparentNoon(2024, 6, 21, 0)
	mid := c.ApparentMidnight(2024, 6, 21, 0)

	diff := astromath.Mod(noon-mid, 24)
	if math.Abs(diff-12) > 0.1 {
		t.Errorf("noon - midnight = %v hours mod 24, want 12", diff)
	}
}

func TestClock_RingHour(t *testing.T) {
	c := seoulClock()

	tests := []struct {
		name string
		mode RingMode
		dst  float64
		want float64
		tol  float64
	}{
		{"midnight", RingMidnight, 0, 0, 1e-12},
		{"midnight with dst", RingMidnight, 1, 1, 1e-12},
		{"local noon", RingLocalNoon, 0, 12, 1e-12},
		{"evening 21h", RingEvening21, 0, 21, 1e-12},
		{"apparent noon", RingApparentNoon, 0, 12.56, 0.1},
		{"apparent midnight", RingApparentMidnight, 0, 0.56, 0.1},
		{"unknown mode falls back to midnight", RingMode(99), 0, 0, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.RingHour(2024, 6, 21, tt.mode, tt.dst)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("RingHour(mode=%v) = %v, want %v", tt.mode, got, tt.want)
			}
			if got < 0 || got >= 24 {
				t.Errorf("RingHour out of [0, 24): %v", got)
			}
		})
	}
}

func TestParseRingMode(t *testing.T) {
	tests := []struct {
		in   string
		want RingMode
	}{
		{"midnight", RingMidnight},
		{"noon", RingLocalNoon},
		{"apparent-noon", RingApparentNoon},
		{"lasn", RingApparentNoon},
		{"apparent-midnight", RingApparentMidnight},
		{"lamn", RingApparentMidnight},
		{"21h", RingEvening21},
		{"evening", RingEvening21},
		{"bogus", RingMidnight},
		{"", RingMidnight},
	}

	for _, tt := range tests {
		if got := ParseRingMode(tt.in); got != tt.want {
			t.Errorf("ParseRingMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
