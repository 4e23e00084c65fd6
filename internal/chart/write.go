package chart

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-planisphere/internal/astromath"
	"github.com/litescript/ls-planisphere/internal/timesys"
)

// WriteSummary writes a plain-text overview of the chart: the moment,
// the disc geometry, and the brightest stars currently above the
// horizon.
func (c *Chart) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "Planisphere for %s @ %s (UTC%+g)\n",
		observerLabel(c.Observer), c.Moment, c.Observer.UTCOffsetHours)
	fmt.Fprintln(w, strings.Repeat("─", 72))

	lst := unit.TimeFromHour(timesys.TimeOfDay(c.LST))
	fmt.Fprintf(w, "LST %v   rotation %.2f°   rim declination %+.2f°\n",
		sexa.FmtTime(lst), c.RotationDeg, c.DeclLimitDeg)

	up := make([]ChartStar, 0, len(c.Stars))
	for _, s := range c.Stars {
		if s.AltDeg > 0 && s.Name != "" {
			up = append(up, s)
		}
	}
	sort.Slice(up, func(i, j int) bool { return up[i].Mag < up[j].Mag })
	if len(up) > 12 {
		up = up[:12]
	}

	fmt.Fprintf(w, "\n%-16s %6s %4s %9s\n", "Star", "Mag", "Sp", "Alt")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, s := range up {
		fmt.Fprintf(w, "%-16s %6.2f %4s %8.1f°\n", s.Name, s.Mag, s.Spectral, s.AltDeg)
	}
	fmt.Fprintf(w, "\n%d of %d catalog stars above the horizon\n", countUp(c.Stars), len(c.Stars))
}

func countUp(stars []ChartStar) int {
	n := 0
	for _, s := range stars {
		if s.AltDeg > 0 {
			n++
		}
	}
	return n
}

func observerLabel(o Observer) string {
	if o.Name != "" {
		return o.Name
	}
	return fmt.Sprintf("%.2f°%s %.2f°%s",
		abs(o.LatDeg), northSouth(o.LatDeg), abs(o.LonDeg), eastWest(o.LonDeg))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func northSouth(lat float64) string {
	if lat < 0 {
		return "S"
	}
	return "N"
}

func eastWest(lon float64) string {
	if lon < 0 {
		return "W"
	}
	return "E"
}

// WriteSolarTable writes a month-by-month table of the equation of
// time and the resulting apparent noon and midnight for the observer,
// evaluated at each mid-month day.
func WriteSolarTable(w io.Writer, obs Observer, year int, dstHours float64) {
	clock := obs.Clock()

	fmt.Fprintf(w, "Solar clock for %s, %d\n", observerLabel(obs), year)
	fmt.Fprintln(w, strings.Repeat("─", 56))
	fmt.Fprintf(w, "%-6s %4s %10s %14s %14s\n", "Month", "Day", "EoT", "App. noon", "App. midnight")
	fmt.Fprintln(w, strings.Repeat("─", 56))

	for month := 1; month <= 12; month++ {
		day := timesys.MonthMidDay(year, month)
		eot := timesys.EquationOfTimeMinutes(year, month, day)
		noon := clock.ApparentNoon(year, month, day, dstHours)
		mid := clock.ApparentMidnight(year, month, day, dstHours)
		fmt.Fprintf(w, "%-6s %4d %+9.2fm %14s %14s\n",
			time.Month(month).String()[:3], day, eot, fmtHours(noon), fmtHours(mid))
	}
}

// WriteASCII renders the rotated disc as plain text, suitable for
// piping. Width is in columns; rows are derived from the usual 2:1
// terminal cell aspect.
func (c *Chart) WriteASCII(w io.Writer, width int) {
	if width < 20 {
		width = 20
	}
	height := width/2 + 1
	rw := float64(width-1) / 2
	rh := rw / 2
	cx, cy := (width-1)/2, (height-1)/2
	rot := c.RotationDeg * astromath.D2R
	sr, cr := math.Sincos(rot)

	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = make([]byte, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	put := func(px, py float64, b byte) {
		// Rotate, then map disc units to cells.
		x := px*cr - py*sr
		y := px*sr + py*cr
		gx := cx + int(math.Round(x/c.Radius*rw))
		gy := cy - int(math.Round(y/c.Radius*rh))
		if gx >= 0 && gx < width && gy >= 0 && gy < height {
			grid[gy][gx] = b
		}
	}

	for i := 0; i < 180; i++ {
		a := float64(i) / 180 * 2 * math.Pi
		put(c.Radius*math.Cos(a), c.Radius*math.Sin(a), '.')
	}
	for _, s := range c.Stars {
		if !s.Inside {
			continue
		}
		b := byte('.')
		if s.Mag < 1.5 {
			b = '*'
		} else if s.Mag < 3.0 {
			b = '+'
		}
		put(s.Point.X, s.Point.Y, b)
	}
	for _, pt := range c.Horizon {
		if pt.Dist() <= c.Radius {
			put(pt.X, pt.Y, '-')
		}
	}
	put(0, 0, 'o')

	fmt.Fprintf(w, "%s | %s | rot %.1f°\n", observerLabel(c.Observer), c.Moment, c.RotationDeg)
	for _, row := range grid {
		w.Write(append(row, '\n'))
	}
}

func fmtHours(h float64) string {
	t := unit.TimeFromHour(astromath.Mod(h, 24))
	return fmt.Sprint(sexa.FmtTime(t))
}
