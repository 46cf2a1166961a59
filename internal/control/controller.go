package control

import (
	"fmt"

	"github.com/san-kum/lifesim/internal/life"
)

type Action int

const (
	TogglePause Action = iota
	Step
	Faster
	Slower
	Clear
	DropGlider
	ToggleChaos
)

var actionNames = map[Action]string{
	TogglePause: "pause",
	Step:        "step",
	Faster:      "faster",
	Slower:      "slower",
	Clear:       "clear",
	DropGlider:  "glider",
	ToggleChaos: "chaos",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

const MinDivisor = 1

type Options struct {
	// Divisor is the number of Update calls per committed tick while running.
	Divisor int
	// SpeedStep is how much Faster and Slower change the divisor.
	SpeedStep int
	Paused    bool
	Chaos     bool
}

type Controller struct {
	grid    *life.Grid
	rng     life.Source
	running bool
	chaos   bool
	divisor int
	step    int
	count   int
	forced  bool
}

func New(grid *life.Grid, rng life.Source, opts Options) *Controller {
	return &Controller{
		grid:    grid,
		rng:     rng,
		running: !opts.Paused,
		chaos:   opts.Chaos,
		divisor: max(opts.Divisor, MinDivisor),
		step:    max(opts.SpeedStep, 1),
	}
}

func (c *Controller) Grid() *life.Grid { return c.grid }
func (c *Controller) Running() bool    { return c.running }
func (c *Controller) Chaos() bool      { return c.chaos }
func (c *Controller) Divisor() int     { return c.divisor }

// Handle applies a single input action.
func (c *Controller) Handle(a Action) {
	switch a {
	case TogglePause:
		c.running = !c.running
	case Step:
		c.forced = true
	case Faster:
		c.divisor = max(c.divisor-c.step, MinDivisor)
	case Slower:
		c.divisor += c.step
	case Clear:
		c.grid.Clear()
	case DropGlider:
		c.grid.DropGlider(c.rng)
	case ToggleChaos:
		c.chaos = !c.chaos
	}
}

// Click toggles the cell under px, py. Clicks outside the layout are ignored.
func (c *Controller) Click(l Layout, px, py float64) bool {
	x, y, ok := l.CellAt(px, py)
	if !ok {
		return false
	}
	return c.grid.Toggle(x, y)
}

// Update is called once per input-loop iteration and reports whether a
// generation was committed. A pending Step always commits exactly one tick.
func (c *Controller) Update() bool {
	due := c.forced || (c.running && c.count >= c.divisor)
	c.forced = false
	if due {
		if c.chaos {
			c.grid.DropGlider(c.rng)
		}
		c.count = 0
		c.grid.Tick()
	}
	c.count++
	return due
}
