package catalog

import (
	"testing"
)

func TestStars_NonEmpty(t *testing.T) {
	stars := Stars()
	if len(stars) < 100 {
		t.Fatalf("expected at least 100 stars, got %d", len(stars))
	}
}

func TestStars_FieldRanges(t *testing.T) {
	valid := map[string]bool{"O": true, "B": true, "A": true, "F": true, "G": true, "K": true, "M": true}

	for _, s := range Stars() {
		if s.RAHours < 0 || s.RAHours >= 24 {
			t.Errorf("%s: RA %v hours out of [0, 24)", s.Name, s.RAHours)
		}
		if s.DecDeg < -90 || s.DecDeg > 90 {
			t.Errorf("%s: Dec %v out of [-90, 90]", s.Name, s.DecDeg)
		}
		if s.Mag < -2 || s.Mag > 6 {
			t.Errorf("%s: magnitude %v implausible", s.Name, s.Mag)
		}
		if !valid[s.Spectral] {
			t.Errorf("%s: spectral letter %q not in OBAFGKM", s.Name, s.Spectral)
		}
	}
}

func TestStars_KnownStars(t *testing.T) {
	tests := []struct {
		name           string
		minRA, maxRA   float64
		minDec, maxDec float64
		maxMag         float64
	}{
		{"Sirius", 6.7, 6.8, -17, -16, 0},
		{"Vega", 18.5, 18.7, 38, 40, 0.5},
		{"Polaris", 2.4, 2.7, 88, 90, 2.5},
		{"Canopus", 6.3, 6.5, -53, -52, 0},
		{"Antares", 16.4, 16.6, -27, -26, 1.5},
	}

	for _, tt := range tests {
		s, ok := Find(tt.name)
		if !ok {
			t.Errorf("star %s not in catalog", tt.name)
			continue
		}
		if s.RAHours < tt.minRA || s.RAHours > tt.maxRA {
			t.Errorf("%s RA = %v, want %v-%v hours", tt.name, s.RAHours, tt.minRA, tt.maxRA)
		}
		if s.DecDeg < tt.minDec || s.DecDeg > tt.maxDec {
			t.Errorf("%s Dec = %v, want %v-%v", tt.name, s.DecDeg, tt.minDec, tt.maxDec)
		}
		if s.Mag > tt.maxMag {
			t.Errorf("%s Mag = %v, want < %v", tt.name, s.Mag, tt.maxMag)
		}
	}
}

func TestFigures_Resolve(t *testing.T) {
	figures := Figures()
	if len(figures) < 15 {
		t.Fatalf("expected at least 15 figures, got %d", len(figures))
	}

	for _, f := range figures {
		segs := f.Segments()
		if len(segs) == 0 {
			t.Errorf("figure %s resolves to no segments", f.Name)
		}
		// Every named star should resolve; a dropped line means the
		// table and figure set drifted apart.
		if len(segs) != len(f.Lines) {
			t.Errorf("figure %s: %d of %d lines resolved", f.Name, len(segs), len(f.Lines))
		}
	}
}

func TestFigure_UnknownStarsDropped(t *testing.T) {
	f := Figure{Name: "test", Lines: [][2]string{{"Sirius", "NoSuchStar"}, {"Sirius", "Vega"}}}
	segs := f.Segments()
	if len(segs) != 1 {
		t.Fatalf("expected 1 resolved segment, got %d", len(segs))
	}
	if segs[0].A.Name != "Sirius" || segs[0].B.Name != "Vega" {
		t.Errorf("unexpected segment %v-%v", segs[0].A.Name, segs[0].B.Name)
	}
}
