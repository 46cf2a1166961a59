// Package gui is the windowed front end, drawn with raylib.
package gui

import (
	"fmt"
	"time"

	"fortio.org/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/control"
)

const Title = "Conway's Game of Life"

var ErrWindow = errors.New("gui: could not create window")

var (
	ColBg    = rl.Gray
	ColAlive = rl.Red
	ColDead  = rl.White
	ColText  = rl.NewColor(30, 30, 30, 255)
)

// keyBindings maps pressed keys to controller actions. Escape is handled by
// raylib as the exit key.
var keyBindings = []struct {
	key    int32
	action control.Action
}{
	{rl.KeySpace, control.TogglePause},
	{rl.KeyRight, control.Step},
	{rl.KeyUp, control.Faster},
	{rl.KeyDown, control.Slower},
	{rl.KeyC, control.Clear},
	{rl.KeyG, control.DropGlider},
	{rl.KeyM, control.ToggleChaos},
}

type Options struct {
	Width, Height    int
	Inset            float64
	Gap              float64
	FramesPerSecond  int
	UpdatesPerSecond int
}

type App struct {
	ctrl   *control.Controller
	step   *control.FixedStep
	opts   Options
	layout control.Layout
}

func NewApp(ctrl *control.Controller, opts Options) *App {
	return &App{
		ctrl: ctrl,
		step: control.NewFixedStep(opts.UpdatesPerSecond, 10),
		opts: opts,
	}
}

// initWindow opens a resizable window with Escape as the exit key.
func initWindow(opts Options) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), Title)
	if !rl.IsWindowReady() {
		return errors.Wrapf(ErrWindow, "%dx%d", opts.Width, opts.Height)
	}
	rl.SetTargetFPS(int32(opts.FramesPerSecond))
	rl.SetExitKey(rl.KeyEscape)
	return nil
}

// Run opens the window and blocks until it is closed.
func Run(ctrl *control.Controller, opts Options) error {
	if err := initWindow(opts); err != nil {
		return err
	}
	defer rl.CloseWindow()
	log.Infof("gui: window %dx%d, %d updates/s", opts.Width, opts.Height, opts.UpdatesPerSecond)

	app := NewApp(ctrl, opts)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	// The cell size follows the current window size.
	a.layout = control.FitSquare(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), a.opts.Inset, a.ctrl.Grid().Size())

	for _, kb := range keyBindings {
		if rl.IsKeyPressed(kb.key) {
			a.ctrl.Handle(kb.action)
			log.Debugf("gui: %s", kb.action)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		a.ctrl.Click(a.layout, float64(pos.X), float64(pos.Y))
	}

	elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	for n := a.step.Advance(elapsed); n > 0; n-- {
		a.ctrl.Update()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(ColBg)

	g := a.ctrl.Grid()
	side := float32(a.layout.CellW - a.opts.Gap)
	if side <= 0 {
		side = float32(a.layout.CellW)
	}
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			px, py := a.layout.CellOrigin(x, y)
			col := ColDead
			if g.Alive(x, y) {
				col = ColAlive
			}
			rl.DrawRectangleRec(rl.Rectangle{X: float32(px), Y: float32(py), Width: side, Height: side}, col)
		}
	}

	a.drawStatus()
}

func (a *App) drawStatus() {
	g := a.ctrl.Grid()
	state := "running"
	if !a.ctrl.Running() {
		state = "paused"
	}
	if a.ctrl.Chaos() {
		state += " | chaos"
	}
	x := int32(a.layout.OriginX + a.layout.Width() + a.opts.Inset)
	y := int32(a.layout.OriginY)
	lines := []string{
		fmt.Sprintf("generation  %d", g.Generation()),
		fmt.Sprintf("population  %d", g.Population()),
		fmt.Sprintf("divisor     %d", a.ctrl.Divisor()),
		state,
		"",
		"SPACE pause   RIGHT step",
		"UP/DOWN speed   C clear",
		"G glider   M chaos   ESC quit",
	}
	for i, line := range lines {
		rl.DrawText(line, x, y+int32(i)*24, 20, ColText)
	}
}
