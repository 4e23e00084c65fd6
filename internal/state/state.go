// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-planisphere/internal/chart"
	"github.com/litescript/ls-planisphere/internal/timesys"
)

// View holds the display toggles the UI flips at runtime.
type View struct {
	Figures  bool
	Names    bool
	Horizon  bool
	Ecliptic bool
	Galactic bool
}

// DefaultView enables the layers a first-time user expects.
func DefaultView() View {
	return View{Figures: true, Names: true, Horizon: true}
}

// Config holds configuration for the state manager.
type Config struct {
	Observer chart.Observer
	Moment   chart.Moment
	Options  chart.Options
	Live     bool
	View     View
}

// Manager handles all shared application state with thread-safe access.
// Every mutation rebuilds the chart so readers always see a model
// consistent with the inputs.
type Manager struct {
	mu sync.RWMutex

	observer chart.Observer
	moment   chart.Moment
	options  chart.Options
	view     View
	live     bool

	current       *chart.Chart
	lastBuild     time.Time
	lastError     error
	buildDuration time.Duration
}

// NewManager creates a manager and builds the initial chart.
func NewManager(cfg Config) *Manager {
	m := &Manager{
		observer: cfg.Observer,
		moment:   cfg.Moment,
		options:  cfg.Options,
		view:     cfg.View,
		live:     cfg.Live,
	}
	m.rebuild()
	return m
}

// rebuild recomputes the chart from current inputs. Callers must hold
// the write lock; NewManager calls it before the manager is shared.
func (m *Manager) rebuild() {
	start := time.Now()
	c, err := chart.Build(m.observer, m.moment, m.options)
	m.buildDuration = time.Since(start)
	m.lastBuild = time.Now()
	m.lastError = err
	if err == nil {
		m.current = c
	}
}

// SetObserver replaces the observer and rebuilds. An invalid observer
// leaves the previous chart in place and records the error.
func (m *Manager) SetObserver(obs chart.Observer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := obs.Validate(); err != nil {
		m.lastError = err
		return err
	}
	m.observer = obs
	m.rebuild()
	return m.lastError
}

// SetMoment jumps the clock to an absolute moment and rebuilds.
func (m *Manager) SetMoment(mom chart.Moment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moment = mom
	m.live = false
	m.rebuild()
}

// StepTime shifts the displayed moment by d and drops out of live
// mode, since the user is now steering the clock by hand.
func (m *Manager) StepTime(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moment = m.moment.Add(d, m.observer.UTCOffsetHours)
	m.live = false
	m.rebuild()
}

// SyncNow snaps the moment to the wall clock in the observer's zone
// and re-enters live mode.
func (m *Manager) SyncNow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moment = m.nowMoment()
	m.live = true
	m.rebuild()
}

// Tick advances a live manager to the current wall clock. It is a
// no-op when the user has taken manual control of the time.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live {
		return
	}
	m.moment = m.nowMoment()
	m.rebuild()
}

func (m *Manager) nowMoment() chart.Moment {
	zone := time.FixedZone("", int(m.observer.UTCOffsetHours*3600))
	return chart.MomentFromTime(time.Now().In(zone))
}

// SetRingMode switches the date-ring alignment and rebuilds.
func (m *Manager) SetRingMode(mode timesys.RingMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.options.RingMode = mode
	m.rebuild()
}

// CycleRingMode advances to the next ring mode and returns it.
func (m *Manager) CycleRingMode() timesys.RingMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.options.RingMode = (m.options.RingMode + 1) % (timesys.RingEvening21 + 1)
	m.rebuild()
	return m.options.RingMode
}

// ToggleFigures flips constellation line display.
func (m *Manager) ToggleFigures() { m.toggle(func(v *View) { v.Figures = !v.Figures }) }

// ToggleNames flips star and figure name display.
func (m *Manager) ToggleNames() { m.toggle(func(v *View) { v.Names = !v.Names }) }

// ToggleHorizon flips the horizon mask.
func (m *Manager) ToggleHorizon() { m.toggle(func(v *View) { v.Horizon = !v.Horizon }) }

// ToggleEcliptic flips the ecliptic curve.
func (m *Manager) ToggleEcliptic() { m.toggle(func(v *View) { v.Ecliptic = !v.Ecliptic }) }

// ToggleGalactic flips the galactic equator curve.
func (m *Manager) ToggleGalactic() { m.toggle(func(v *View) { v.Galactic = !v.Galactic }) }

func (m *Manager) toggle(f func(*View)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f(&m.view)
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Chart         *chart.Chart
	Observer      chart.Observer
	Moment        chart.Moment
	RingMode      timesys.RingMode
	View          View
	Live          bool
	LastBuild     time.Time
	LastError     error
	BuildDuration time.Duration
}

// Snapshot returns a consistent snapshot of current state. The chart
// pointer is shared but charts are never mutated after Build.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Chart:         m.current,
		Observer:      m.observer,
		Moment:        m.moment,
		RingMode:      m.options.RingMode,
		View:          m.view,
		Live:          m.live,
		LastBuild:     m.lastBuild,
		LastError:     m.lastError,
		BuildDuration: m.buildDuration,
	}
}

// HasChart reports whether at least one build has succeeded.
func (m *Manager) HasChart() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
