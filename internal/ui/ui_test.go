package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-planisphere/internal/chart"
	"github.com/litescript/ls-planisphere/internal/state"
)

func testModel(t *testing.T) Model {
	t.Helper()
	mgr := state.NewManager(state.Config{
		Observer: chart.Observer{Name: "Seoul", UTCOffsetHours: 9, LonDeg: 126.98, LatDeg: 37.57},
		Moment:   chart.Moment{Year: 2024, Month: 6, Day: 21, Hour: 22},
		View:     state.DefaultView(),
	})
	return New(mgr)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_QuitKeys(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q command = %v, want tea.Quit", msg)
	}
}

func TestModel_TimeKeys(t *testing.T) {
	m := testModel(t)
	before := m.snapshot.Moment

	next, _ := m.Update(keyMsg("l"))
	m = next.(Model)
	if m.snapshot.Moment.Hour != before.Hour+1 {
		t.Errorf("l stepped to hour %d, want %d", m.snapshot.Moment.Hour, before.Hour+1)
	}

	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	if m.snapshot.Moment.Day != before.Day+1 {
		t.Errorf("j stepped to day %d, want %d", m.snapshot.Moment.Day, before.Day+1)
	}
}

func TestModel_ToggleKeys(t *testing.T) {
	m := testModel(t)
	if !m.snapshot.View.Figures {
		t.Fatal("figures should start enabled")
	}
	next, _ := m.Update(keyMsg("c"))
	m = next.(Model)
	if m.snapshot.View.Figures {
		t.Error("c did not toggle figures off")
	}

	next, _ = m.Update(keyMsg("r"))
	m = next.(Model)
	if m.statusMsg == "" {
		t.Error("ring mode key left no status message")
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	m := testModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}
}

func TestModel_ViewAfterResize(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	out := m.View()
	if !strings.Contains(out, "Interactive Planisphere") {
		t.Error("header tagline missing")
	}
	if !strings.Contains(out, "q: quit") {
		t.Error("footer help missing")
	}
}
