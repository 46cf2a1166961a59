package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lifesim/internal/control"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/render"
)

func newModel(t *testing.T, opts control.Options) Model {
	t.Helper()
	g, err := life.New(8)
	if err != nil {
		t.Fatal(err)
	}
	ctrl := control.New(g, rand.New(rand.NewSource(1)), opts)
	return NewModel(ctrl, render.NewText(false), 60)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestKeysDriveController(t *testing.T) {
	m := newModel(t, control.Options{Divisor: 4})

	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.ctrl.Running() {
		t.Error("space should pause")
	}
	m, _ = update(m, runes("m"))
	if !m.ctrl.Chaos() {
		t.Error("m should enable chaos mode")
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.ctrl.Divisor() != 3 {
		t.Errorf("up should lower the divisor to 3, got %d", m.ctrl.Divisor())
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl.Divisor() != 5 {
		t.Errorf("down should raise the divisor to 5, got %d", m.ctrl.Divisor())
	}

	m, _ = update(m, runes("g"))
	if m.ctrl.Grid().Population() != 5 {
		t.Errorf("g should drop a glider, population %d", m.ctrl.Grid().Population())
	}
	m, _ = update(m, runes("c"))
	if m.ctrl.Grid().Population() != 0 {
		t.Errorf("c should clear, population %d", m.ctrl.Grid().Population())
	}
}

func TestStepWhilePaused(t *testing.T) {
	m := newModel(t, control.Options{Divisor: 1, Paused: true})

	m, cmd := update(m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.ctrl.Grid().Generation() != 0 {
		t.Fatal("paused model should not advance")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(m, TickMsg{})
	if m.ctrl.Grid().Generation() != 1 {
		t.Errorf("right then tick should advance one generation, got %d", m.ctrl.Grid().Generation())
	}
	if len(m.population) != 2 {
		t.Errorf("committed tick should record population, have %d samples", len(m.population))
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := update(newModel(t, control.Options{}), msg)
		if cmd == nil {
			t.Fatalf("%s should quit", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should return tea.Quit", msg)
		}
	}
}

func TestMouseToggles(t *testing.T) {
	m := newModel(t, control.Options{Paused: true})

	// Cell 3,2 starts at column gridPadX+3*2 on row gridPadY+2.
	m, _ = update(m, tea.MouseMsg{X: gridPadX + 7, Y: gridPadY + 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.ctrl.Grid().Alive(3, 2) {
		t.Error("left click should toggle cell 3,2")
	}

	m, _ = update(m, tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(m, tea.MouseMsg{X: gridPadX + 1, Y: gridPadY + 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	m, _ = update(m, tea.MouseMsg{X: gridPadX + 1, Y: gridPadY + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.ctrl.Grid().Population() != 1 {
		t.Errorf("only left presses on the grid should toggle, population %d", m.ctrl.Grid().Population())
	}
}

func TestPopulationHistoryCapped(t *testing.T) {
	m := newModel(t, control.Options{Divisor: 1})
	for i := 0; i < historyCapacity*2; i++ {
		m, _ = update(m, TickMsg{})
	}
	if len(m.population) != historyCapacity {
		t.Errorf("expected %d samples, got %d", historyCapacity, len(m.population))
	}
}

func TestView(t *testing.T) {
	m := newModel(t, control.Options{Paused: true})
	m.ctrl.Grid().Toggle(0, 0)
	v := m.View()
	for _, want := range []string{"PAUSED", "Generation", "Population", render.AliveGlyph} {
		if !strings.Contains(v, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
