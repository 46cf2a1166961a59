// Package bench runs simulations without a front end, for benchmarking and
// for population statistics.
package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Seed        int64
	Generations int
	// Population holds the live-cell count for generations 0..Generations.
	Population []float64
	Final      *life.Grid
	Elapsed    time.Duration
}

// GenerationsPerSecond reports the simulation throughput of the run.
func (r *Result) GenerationsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Generations) / r.Elapsed.Seconds()
}

// Peak returns the largest population seen during the run.
func (r *Result) Peak() int {
	peak := 0.0
	for _, p := range r.Population {
		peak = max(peak, p)
	}
	return int(peak)
}

// Run builds a grid from cfg and advances it the given number of generations.
func Run(ctx context.Context, cfg *config.Config, generations int) (*Result, error) {
	if generations < 0 {
		return nil, errors.Errorf("bench: negative generation count %d", generations)
	}
	seed := cfg.Seed
	rng := rand.New(rand.NewSource(seed))
	g, err := cfg.NewGrid(rng)
	if err != nil {
		return nil, errors.Wrap(err, "bench: build grid")
	}

	res := &Result{
		Seed:       seed,
		Population: make([]float64, 0, generations+1),
		Final:      g,
	}
	res.Population = append(res.Population, float64(g.Population()))

	start := time.Now()
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(start)
			return res, err
		}
		g.Tick()
		if cfg.GliderEvery > 0 && g.Generation()%cfg.GliderEvery == 0 {
			g.DropGlider(rng)
		}
		res.Population = append(res.Population, float64(g.Population()))
		res.Generations++
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// Parallel runs independent simulations concurrently, seeding run i with
// cfg.Seed+i. Every grid is owned by a single goroutine.
func Parallel(ctx context.Context, cfg *config.Config, runs, generations int) ([]*Result, error) {
	if runs < 1 {
		return nil, errors.Errorf("bench: need at least one run, got %d", runs)
	}
	results := make([]*Result, runs)
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < runs; i++ {
		i := i
		runCfg := *cfg
		runCfg.Seed = cfg.Seed + int64(i)
		eg.Go(func() error {
			res, err := Run(ctx, &runCfg, generations)
			if err != nil {
				return errors.Wrapf(err, "run %d", i)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
