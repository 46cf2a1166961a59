// Package tui is the interactive terminal front end, built on Bubble Tea.
//
// # Key Bindings
//
//	Space   - Pause/Resume
//	Right/N - Advance one generation
//	Up/Down - Faster/Slower
//	C       - Clear the grid
//	G       - Drop a glider
//	M       - Toggle chaos mode
//	Q/Esc   - Quit
//
// A left click on the grid toggles the cell under the pointer.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesim/internal/control"
	"github.com/san-kum/lifesim/internal/render"
)

const historyCapacity = 120

type TickMsg time.Time

var keyActions = map[string]control.Action{
	" ":     control.TogglePause,
	"space": control.TogglePause,
	"right": control.Step,
	"n":     control.Step,
	"up":    control.Faster,
	"+":     control.Faster,
	"down":  control.Slower,
	"-":     control.Slower,
	"c":     control.Clear,
	"g":     control.DropGlider,
	"m":     control.ToggleChaos,
}

type Model struct {
	ctrl       *control.Controller
	text       *render.Text
	layout     control.Layout
	interval   time.Duration
	population []float64
}

// NewModel wires a controller to the terminal. updatesPerSecond is the
// input-loop rate; the controller's divisor decides how many of those
// iterations commit a generation.
func NewModel(ctrl *control.Controller, text *render.Text, updatesPerSecond int) Model {
	g := ctrl.Grid()
	return Model{
		ctrl: ctrl,
		text: text,
		layout: control.Layout{
			OriginX: gridPadX,
			OriginY: gridPadY,
			CellW:   float64(len([]rune(render.AliveGlyph))),
			CellH:   1,
			Size:    g.Size(),
		},
		interval:   time.Second / time.Duration(max(updatesPerSecond, 1)),
		population: []float64{float64(g.Population())},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		default:
			if a, ok := keyActions[key]; ok {
				m.ctrl.Handle(a)
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.ctrl.Click(m.layout, float64(msg.X), float64(msg.Y))
		}
	case TickMsg:
		if m.ctrl.Update() {
			m.record()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record() {
	m.population = append(m.population, float64(m.ctrl.Grid().Population()))
	if len(m.population) > historyCapacity {
		m.population = m.population[1:]
	}
}

func (m Model) status() string {
	switch {
	case !m.ctrl.Running():
		return statusPaused.Render("PAUSED")
	case m.ctrl.Chaos():
		return statusChaos.Render("CHAOS")
	default:
		return statusRunning.Render("RUNNING")
	}
}

func (m Model) View() string {
	g := m.ctrl.Grid()
	gridView := gridStyle.Render(strings.TrimSuffix(m.text.Render(g), "\n"))

	var s strings.Builder
	s.WriteString(headerStyle.Render("CONWAY'S GAME OF LIFE") + "\n")
	s.WriteString(m.status() + "\n\n")
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", g.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", g.Population())) + "\n")
	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%d x %d", g.Size(), g.Size())) + "\n")
	s.WriteString(labelStyle.Render("Divisor") + valueStyle.Render(fmt.Sprintf("%d", m.ctrl.Divisor())) + "\n")
	if len(m.population) > 1 {
		chart := asciigraph.Plot(m.population, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause →:Step ↑↓:Speed\nC:Clear G:Glider M:Chaos\nClick:Toggle Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, gridView, panelStyle.Render(s.String()))
}

// Run blocks until the user quits.
func Run(ctrl *control.Controller, text *render.Text, updatesPerSecond int) error {
	p := tea.NewProgram(NewModel(ctrl, text, updatesPerSecond), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
