// Command ls-planisphere is a terminal planisphere: a rotating star
// disc for any observer, date and time.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-planisphere/internal/chart"
	"github.com/litescript/ls-planisphere/internal/logging"
	"github.com/litescript/ls-planisphere/internal/state"
	"github.com/litescript/ls-planisphere/internal/timesys"
	"github.com/litescript/ls-planisphere/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	chartMode     bool
	chartWidth    int
	sunMode       bool
	jsonPath      string
	watchInterval time.Duration
)

const timeLayout = "2006-01-02 15:04"

func main() {
	lat := flag.Float64("lat", 37.57, "Observer latitude in degrees, north positive")
	lon := flag.Float64("lon", 126.98, "Observer longitude in degrees, east positive")
	utc := flag.Float64("utc", 9, "UTC offset of the observer's clock in hours")
	name := flag.String("name", "", "Observer name for display")
	when := flag.String("time", "", "Local civil time as '2006-01-02 15:04' (default: now)")
	radius := flag.Float64("radius", chart.DefaultRadius, "Disc radius in chart units")
	ring := flag.String("ring", "midnight", "Date ring mode (midnight, noon, apparent-noon, apparent-midnight, 21h)")
	dst := flag.Float64("dst", 0, "Daylight saving offset in hours")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&chartMode, "chart", false, "Print plain-text disc chart")
	flag.IntVar(&chartWidth, "chart-width", 72, "Plain-text chart width in columns")
	flag.BoolVar(&sunMode, "sun", false, "Print equation-of-time table for the observer's year")
	flag.StringVar(&jsonPath, "json", "", "Export chart JSON to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	obs := chart.Observer{
		Name:           *name,
		UTCOffsetHours: *utc,
		LonDeg:         *lon,
		LatDeg:         *lat,
	}
	if err := obs.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	moment, live, err := parseMoment(*when, *utc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := chart.Options{
		Radius:   *radius,
		RingMode: timesys.ParseRingMode(*ring),
		DSTHours: *dst,
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	headless := summaryMode || chartMode || sunMode || jsonPath != "" || !isTTY
	if headless {
		runHeadless(obs, moment, opts, logger)
		return
	}

	stateMgr := state.NewManager(state.Config{
		Observer: obs,
		Moment:   moment,
		Options:  opts,
		Live:     live,
		View:     state.DefaultView(),
	})
	if !stateMgr.HasChart() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", stateMgr.Snapshot().LastError)
		os.Exit(1)
	}

	// Ctrl+C lands here if Bubble Tea hasn't taken the terminal yet.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(ui.New(stateMgr), tea.WithAltScreen())
	go func() {
		<-sigCh
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// parseMoment resolves the -time flag. An empty flag means the current
// wall clock in the observer's zone, and keeps the TUI ticking live.
func parseMoment(s string, utcOffsetHours float64) (chart.Moment, bool, error) {
	if s == "" {
		zone := time.FixedZone("", int(utcOffsetHours*3600))
		return chart.MomentFromTime(time.Now().In(zone)), true, nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return chart.Moment{}, false, fmt.Errorf("parse -time %q: %w", s, err)
	}
	return chart.MomentFromTime(t), false, nil
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(obs chart.Observer, moment chart.Moment, opts chart.Options, logger *logging.Logger) {
	outputOnce := func(m chart.Moment) error {
		start := time.Now()
		c, err := chart.Build(obs, m, opts)
		if err != nil {
			return err
		}
		logger.Debug("Chart built: %d stars, %d figures in %v",
			len(c.Stars), len(c.Figures), time.Since(start))

		if jsonPath != "" {
			if jsonPath == "-" {
				if err := c.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(jsonPath)
				if err != nil {
					return fmt.Errorf("create chart file: %w", err)
				}
				defer f.Close()
				if err := c.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if chartMode {
			c.WriteASCII(os.Stdout, chartWidth)
		}

		if sunMode {
			chart.WriteSolarTable(os.Stdout, obs, m.Year, opts.DSTHours)
		}

		if summaryMode || (jsonPath == "" && !sunMode && !chartMode) {
			c.WriteSummary(os.Stdout)
		}
		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(moment); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode tracks the wall clock from the starting moment.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if err := outputOnce(moment); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			return
		case <-ticker.C:
			moment = moment.Add(watchInterval, obs.UTCOffsetHours)
			fmt.Println()
			if err := outputOnce(moment); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
