// Package term drives the plain terminal variant: a fixed-cadence loop that
// redraws the grid with ANSI cursor control and advances one generation per
// frame.
package term

import (
	"context"
	"io"
	"time"

	"fortio.org/log"
	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/render"
)

const (
	ClearScreen = "\x1B[2J"
	CursorHome  = "\x1B[1;1H"
)

type Options struct {
	// Delay is the pause between frames.
	Delay time.Duration
	// GliderEvery drops a glider every N generations; 0 disables it.
	GliderEvery int
	// MaxGenerations stops the loop after N generations; 0 runs until canceled.
	MaxGenerations int
}

type Runner struct {
	out  io.Writer
	grid *life.Grid
	text *render.Text
	rng  life.Source
	opts Options
}

func NewRunner(out io.Writer, grid *life.Grid, text *render.Text, rng life.Source, opts Options) *Runner {
	return &Runner{out: out, grid: grid, text: text, rng: rng, opts: opts}
}

// Run draws, sleeps and ticks until ctx is canceled or the generation limit
// is reached. Cancellation is a normal exit and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if _, err := io.WriteString(r.out, ClearScreen); err != nil {
		return errors.Wrap(err, "term: clear screen")
	}

	timer := time.NewTimer(r.opts.Delay)
	defer timer.Stop()

	for {
		if err := r.frame(); err != nil {
			return err
		}
		if r.opts.MaxGenerations > 0 && r.grid.Generation() >= r.opts.MaxGenerations {
			return nil
		}

		timer.Reset(r.opts.Delay)
		select {
		case <-ctx.Done():
			log.LogVf("term: stopped at generation %d", r.grid.Generation())
			return nil
		case <-timer.C:
		}

		r.advance()
	}
}

func (r *Runner) frame() error {
	if _, err := io.WriteString(r.out, CursorHome+r.text.Render(r.grid)); err != nil {
		return errors.Wrapf(err, "term: write generation %d", r.grid.Generation())
	}
	return nil
}

func (r *Runner) advance() {
	r.grid.Tick()
	if r.opts.GliderEvery > 0 && r.grid.Generation()%r.opts.GliderEvery == 0 {
		if at, ok := r.grid.DropGlider(r.rng); ok {
			log.Debugf("term: glider dropped at %d,%d", at.X, at.Y)
		}
	}
}
