package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
	"github.com/litescript/ls-planisphere/internal/chart"
	"github.com/litescript/ls-planisphere/internal/projection"
	"github.com/litescript/ls-planisphere/internal/state"
	"github.com/litescript/ls-planisphere/internal/timesys"
)

const (
	// Terminal cells are about twice as tall as wide; stretch x to
	// keep the disc round.
	cellAspect = 2.0

	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.5
	glyphStarMedium = '✸' // mag 1.5-3.0
	glyphStarDim    = '·' // mag > 3.0

	glyphRim      = '·'
	glyphHorizon  = '─'
	glyphEcliptic = '∙'
	glyphGalactic = '∙'
	glyphFigure   = '+'
	glyphPole     = '✛'

	// Colors (grayscale stars, tinted overlays)
	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
	colorRim        = "60"  // muted purple
	colorHorizon    = "108" // sage green
	colorEcliptic   = "179" // amber
	colorGalactic   = "67"  // steel blue
	colorFigure     = "61"  // indigo
	colorName       = "146" // lavender gray
	colorRingLabel  = "252"
)

// DiscViewModel renders the rotated planisphere disc.
type DiscViewModel struct {
	width  int
	height int
}

// NewDiscViewModel creates a disc view.
func NewDiscViewModel() DiscViewModel {
	return DiscViewModel{}
}

// SetSize updates the viewport size.
func (m DiscViewModel) SetSize(width, height int) DiscViewModel {
	m.width = width
	m.height = height
	return m
}

// View renders the disc for a state snapshot.
func (m DiscViewModel) View(snap state.Snapshot) string {
	if m.width < 30 || m.height < 14 {
		return "Disc view requires a larger terminal"
	}
	if snap.Chart == nil {
		return "No chart yet"
	}

	viewHeight := m.height - 3

	var b strings.Builder
	b.WriteString(m.renderCanvas(snap, m.width, viewHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(snap))
	return b.String()
}

// cell maps a disc-local point through the current rotation into
// canvas coordinates.
func cell(pt projection.ScreenPoint, c *chart.Chart, rotRad float64, width, height int) (int, int, bool) {
	sr, cr := math.Sincos(rotRad)
	x := pt.X*cr - pt.Y*sr
	y := pt.X*sr + pt.Y*cr

	// Disc radius in cells, leaving a margin for the date ring.
	rh := float64(height-1)/2 - 1
	rw := rh * cellAspect
	if rw > float64(width-1)/2-4 {
		rw = float64(width-1)/2 - 4
		rh = rw / cellAspect
	}

	cx := width / 2
	cy := (height - 1) / 2
	px := cx + int(math.Round(x/c.Radius*rw))
	py := cy - int(math.Round(y/c.Radius*rh))
	if px < 0 || px >= width || py < 0 || py >= height {
		return 0, 0, false
	}
	return px, py, true
}

func (m DiscViewModel) renderCanvas(snap state.Snapshot, width, height int) string {
	c := snap.Chart
	rot := c.RotationDeg * astromath.D2R

	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	plot := func(pt projection.ScreenPoint, r rune, col lipgloss.Color) {
		x, y, ok := cell(pt, c, rot, width, height)
		if ok {
			canvas[y][x] = r
			colors[y][x] = col
		}
	}

	// Rim circle in unrotated disc space; rotation is a no-op on it.
	rim := newRim(c.Radius)
	for _, pt := range rim {
		plot(pt, glyphRim, colorRim)
	}

	if snap.View.Galactic {
		drawCurve(c.Galactic, c, rot, width, height, canvas, colors, glyphGalactic, colorGalactic)
	}
	if snap.View.Ecliptic {
		drawCurve(c.Ecliptic, c, rot, width, height, canvas, colors, glyphEcliptic, colorEcliptic)
	}

	if snap.View.Figures {
		for _, f := range c.Figures {
			for _, ln := range f.Lines {
				drawLine(ln.A, ln.B, c, rot, width, height, canvas, colors)
			}
		}
	}

	for _, s := range c.Stars {
		if !s.Inside {
			continue
		}
		glyph, col := starGlyph(s.Mag)
		plot(s.Point, glyph, col)
	}

	if snap.View.Names {
		for _, s := range c.Stars {
			if s.Inside && s.Mag < 0.8 && s.Name != "" {
				drawLabel(s.Point, s.Name, c, rot, width, height, canvas, colors)
			}
		}
		for _, f := range c.Figures {
			if f.Inside {
				drawLabel(f.Label, f.Name, c, rot, width, height, canvas, colors)
			}
		}
	}

	if snap.View.Horizon {
		for _, pt := range c.Horizon {
			if pt.Dist() <= c.Radius {
				plot(pt, glyphHorizon, colorHorizon)
			}
		}
	}

	// Pole marker sits at the disc origin.
	plot(projection.ScreenPoint{}, glyphPole, colorRingLabel)

	// Date ring labels just outside the rim. Ring angles are already
	// rotation angles, so they go on unrotated.
	for _, tk := range c.Ring {
		if tk.Label == "" {
			continue
		}
		a := tk.AngleDeg * astromath.D2R
		pt := projection.ScreenPoint{
			X: 1.04 * c.Radius * math.Cos(a),
			Y: 1.04 * c.Radius * math.Sin(a),
		}
		drawLabel(pt, tk.Label, c, 0, width, height, canvas, colors)
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func newRim(radius float64) []projection.ScreenPoint {
	const n = 240
	pts := make([]projection.ScreenPoint, 0, n)
	for i := 0; i < n; i++ {
		a := float64(i) / n * 2 * math.Pi
		pts = append(pts, projection.ScreenPoint{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return pts
}

func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func drawCurve(pts []projection.ScreenPoint, c *chart.Chart, rot float64, width, height int, canvas [][]rune, colors [][]lipgloss.Color, glyph rune, col lipgloss.Color) {
	for _, pt := range pts {
		if pt.Dist() > c.Radius {
			continue
		}
		if x, y, ok := cell(pt, c, rot, width, height); ok {
			canvas[y][x] = glyph
			colors[y][x] = col
		}
	}
}

// drawLine rasterizes a figure stroke with Bresenham in cell space,
// skipping strokes that leave the disc.
func drawLine(a, b projection.ScreenPoint, c *chart.Chart, rot float64, width, height int, canvas [][]rune, colors [][]lipgloss.Color) {
	if a.Dist() > c.Radius || b.Dist() > c.Radius {
		return
	}
	x0, y0, ok0 := cell(a, c, rot, width, height)
	x1, y1, ok1 := cell(b, c, rot, width, height)
	if !ok0 || !ok1 {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if canvas[y0][x0] == ' ' || canvas[y0][x0] == glyphRim {
			canvas[y0][x0] = glyphFigure
			colors[y0][x0] = colorFigure
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawLabel(pt projection.ScreenPoint, text string, c *chart.Chart, rot float64, width, height int, canvas [][]rune, colors [][]lipgloss.Color) {
	x, y, ok := cell(pt, c, rot, width, height)
	if !ok {
		return
	}
	for i, r := range []rune(text) {
		px := x + 1 + i
		if px < 0 || px >= width {
			return
		}
		if canvas[y][px] != ' ' && canvas[y][px] != glyphRim {
			continue
		}
		canvas[y][px] = r
		colors[y][px] = colorName
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (m DiscViewModel) renderStatus(snap state.Snapshot) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	c := snap.Chart
	lst := unit.TimeFromHour(timesys.TimeOfDay(c.LST))

	mode := "step"
	if snap.Live {
		mode = "live"
	}

	line := fmt.Sprintf(">>> %s | %s | LST %v | rot %.1f° | ring: %s | %s",
		observerLabel(snap.Observer),
		snap.Moment,
		sexa.FmtTime(lst),
		c.RotationDeg,
		snap.RingMode,
		mode,
	)
	status := accent.Render(line)

	if snap.LastError != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
		status += "\n" + errStyle.Render("    "+snap.LastError.Error())
	} else {
		status += "\n" + dim.Render(fmt.Sprintf("    %d stars on disc, built in %s",
			countInside(c.Stars), snap.BuildDuration.Round(10*time.Microsecond)))
	}
	return status
}

func countInside(stars []chart.ChartStar) int {
	n := 0
	for _, s := range stars {
		if s.Inside {
			n++
		}
	}
	return n
}

func observerLabel(o chart.Observer) string {
	if o.Name != "" {
		return o.Name
	}
	ns, ew := "N", "E"
	lat, lon := o.LatDeg, o.LonDeg
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.2f°%s %.2f°%s", lat, ns, lon, ew)
}
