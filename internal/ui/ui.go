// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planisphere/internal/state"
	"github.com/litescript/ls-planisphere/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates and live-clock advance.
	TickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	width     int
	height    int
	ready     bool
	statusMsg string

	disc DiscViewModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:    stateMgr,
		disc:     NewDiscViewModel(),
		snapshot: stateMgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		// Logo takes ~8 lines, footer ~2 lines
		m.disc = m.disc.SetSize(msg.Width, msg.Height-10)

	case TickMsg:
		m.state.Tick()
		m.snapshot = m.state.Snapshot()
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "l", "right":
		m.state.StepTime(time.Hour)
	case "h", "left":
		m.state.StepTime(-time.Hour)
	case "L":
		m.state.StepTime(10 * time.Minute)
	case "H":
		m.state.StepTime(-10 * time.Minute)
	case "d", "j", "down":
		m.state.StepTime(24 * time.Hour)
	case "D", "k", "up":
		m.state.StepTime(-24 * time.Hour)

	case "t":
		m.state.SyncNow()
		m.statusMsg = "Synced to current time"

	case "r":
		mode := m.state.CycleRingMode()
		m.statusMsg = "Date ring: " + mode.String()

	case "c":
		m.state.ToggleFigures()
	case "n":
		m.state.ToggleNames()
	case "z":
		m.state.ToggleHorizon()
	case "e":
		m.state.ToggleEcliptic()
	case "g":
		m.state.ToggleGalactic()
	}

	m.snapshot = m.state.Snapshot()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.disc.View(m.snapshot) + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	logo := []string{
		`  ██╗     ███████╗      ██████╗ ██╗      █████╗ ███╗   ██╗██╗███████╗`,
		`  ██║     ██╔════╝      ██╔══██╗██║     ██╔══██╗████╗  ██║██║██╔════╝`,
		`  ██║     ███████╗█████╗██████╔╝██║     ███████║██╔██╗ ██║██║███████╗`,
		`  ██║     ╚════██║╚════╝██╔═══╝ ██║     ██╔══██║██║╚██╗██║██║╚════██║`,
		`  ███████╗███████║      ██║     ███████╗██║  ██║██║ ╚████║██║███████║`,
		`  ╚══════╝╚══════╝      ╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝╚══════╝`,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  Interactive Planisphere | (c) 2026 litescript.net | v%s", version.Version)))
	b.WriteString("\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the logo.
// Night-sky sweep: deep blue through violet to a warm star yellow.
func gradientColor(col, row, width, height int) string {
	x := float64(col) / float64(width)
	y := float64(row) / float64(height)

	var r, g, b float64
	if x < 0.5 {
		// Deep blue (#1E3A8A) to violet (#7C3AED)
		t := x / 0.5
		r = 30 + t*(124-30)
		g = 58 + t*(58-58)
		b = 138 + t*(237-138)
	} else {
		// Violet to star yellow (#FACC15)
		t := (x - 0.5) / 0.5
		r = 124 + t*(250-124)
		g = 58 + t*(204-58)
		b = 237 + t*(21-237)
	}

	// Dim toward the bottom rows.
	f := 1.0 - y*0.45
	return fmt.Sprintf("#%02X%02X%02X", clamp8(r*f), clamp8(g*f), clamp8(b*f))
}

func clamp8(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func (m Model) renderFooter() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	help := dim.Render("h/l: ±hour | H/L: ±10min | d/D: ±day | t: now | r: ring | c: lines | n: names | z: horizon | e: ecliptic | g: galaxy | q: quit")
	footer := "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + dim.Render(m.statusMsg)
	}
	return footer
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
