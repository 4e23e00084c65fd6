package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-planisphere/internal/chart"
	"github.com/litescript/ls-planisphere/internal/projection"
	"github.com/litescript/ls-planisphere/internal/state"
)

func testSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	m := state.NewManager(state.Config{
		Observer: chart.Observer{Name: "Seoul", UTCOffsetHours: 9, LonDeg: 126.98, LatDeg: 37.57},
		Moment:   chart.Moment{Year: 2024, Month: 6, Day: 21, Hour: 22},
		View:     state.DefaultView(),
	})
	snap := m.Snapshot()
	if snap.Chart == nil {
		t.Fatal("test snapshot has no chart")
	}
	return snap
}

func TestCell_CenterMapsToCenter(t *testing.T) {
	c := &chart.Chart{Radius: 300}
	width, height := 100, 40

	x, y, ok := cell(projection.ScreenPoint{}, c, 0, width, height)
	if !ok {
		t.Fatal("disc center not visible")
	}
	if x != width/2 {
		t.Errorf("center x = %d, want %d", x, width/2)
	}
	if y != (height-1)/2 {
		t.Errorf("center y = %d, want %d", y, (height-1)/2)
	}
}

func TestCell_RotationMovesPoints(t *testing.T) {
	c := &chart.Chart{Radius: 300}
	width, height := 100, 40
	pt := projection.ScreenPoint{X: 200, Y: 0}

	x0, y0, ok0 := cell(pt, c, 0, width, height)
	x1, y1, ok1 := cell(pt, c, math.Pi/2, width, height)
	if !ok0 || !ok1 {
		t.Fatal("point left the canvas")
	}
	// A quarter turn carries +x onto +y, which is up on screen.
	if y1 >= y0 {
		t.Errorf("rotated point did not move up: y %d -> %d", y0, y1)
	}
	if x1 >= x0 {
		t.Errorf("rotated point should move toward center in x: %d -> %d", x0, x1)
	}
}

func TestCell_RimStaysInside(t *testing.T) {
	c := &chart.Chart{Radius: 300}
	width, height := 120, 40

	for i := 0; i < 24; i++ {
		a := float64(i) / 24 * 2 * math.Pi
		pt := projection.ScreenPoint{X: 300 * math.Cos(a), Y: 300 * math.Sin(a)}
		if _, _, ok := cell(pt, c, 0, width, height); !ok {
			t.Errorf("rim point at %.0f° fell off the canvas", a*180/math.Pi)
		}
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		mag  float64
		want rune
	}{
		{-1.46, glyphStarBright},
		{1.49, glyphStarBright},
		{1.5, glyphStarMedium},
		{2.9, glyphStarMedium},
		{3.5, glyphStarDim},
	}
	for _, tt := range tests {
		if got, _ := starGlyph(tt.mag); got != tt.want {
			t.Errorf("starGlyph(%v) = %q, want %q", tt.mag, got, tt.want)
		}
	}
}

func TestObserverLabel(t *testing.T) {
	tests := []struct {
		obs  chart.Observer
		want string
	}{
		{chart.Observer{Name: "Seoul"}, "Seoul"},
		{chart.Observer{LatDeg: 37.57, LonDeg: 126.98}, "37.57°N 126.98°E"},
		{chart.Observer{LatDeg: -37.81, LonDeg: -70.66}, "37.81°S 70.66°W"},
	}
	for _, tt := range tests {
		if got := observerLabel(tt.obs); got != tt.want {
			t.Errorf("observerLabel(%+v) = %q, want %q", tt.obs, got, tt.want)
		}
	}
}

func TestGradientColor_Format(t *testing.T) {
	for _, col := range []int{0, 10, 30, 69} {
		c := gradientColor(col, 2, 70, 6)
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("gradientColor(%d) = %q, want #RRGGBB", col, c)
		}
	}
}

func TestDiscView_TooSmall(t *testing.T) {
	m := NewDiscViewModel().SetSize(10, 5)
	out := m.View(testSnapshot(t))
	if !strings.Contains(out, "larger terminal") {
		t.Errorf("small view output = %q", out)
	}
}

func TestDiscView_Render(t *testing.T) {
	snap := testSnapshot(t)
	m := NewDiscViewModel().SetSize(120, 40)
	out := m.View(snap)

	if !strings.Contains(out, "Seoul") {
		t.Error("status line missing observer name")
	}
	if !strings.Contains(out, "LST") {
		t.Error("status line missing LST")
	}
	// Bright star glyphs must appear on a summer evening disc.
	if !strings.ContainsRune(out, glyphStarBright) {
		t.Error("no bright star glyph rendered")
	}
	// Month labels ride the date ring.
	if !strings.Contains(out, "Jun") && !strings.Contains(out, "Dec") {
		t.Error("no month label rendered")
	}
}

func TestDiscView_TogglesChangeOutput(t *testing.T) {
	snap := testSnapshot(t)
	m := NewDiscViewModel().SetSize(120, 40)

	withFigures := m.View(snap)
	snap.View.Figures = false
	snap.View.Names = false
	without := m.View(snap)

	if withFigures == without {
		t.Error("disabling figures and names did not change the render")
	}
}

func TestCountInside(t *testing.T) {
	stars := []chart.ChartStar{
		{Inside: true},
		{Inside: false},
		{Inside: true},
	}
	if got := countInside(stars); got != 2 {
		t.Errorf("countInside = %d, want 2", got)
	}
}
