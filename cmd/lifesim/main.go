package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"fortio.org/log"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/bench"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/control"
	"github.com/san-kum/lifesim/internal/gui"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/render"
	"github.com/san-kum/lifesim/internal/term"
	"github.com/san-kum/lifesim/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	logLevel   string
	gridSize   int
	tps        int
	ups        int
	pattern    string
	seed       int64
	chaos      bool
	paused     bool
	// term
	delay       time.Duration
	plain       bool
	gliderEvery int
	// run, bench
	runs int
	plot bool
	// config
	outFile string
)

// main registers the commands and opens the window when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:               "lifesim",
		Short:             "Conway's Game of Life",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
		RunE:              runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, verbose, info, warning, error)")
	pf.IntVar(&gridSize, "size", config.DefaultGridSize, "grid size (cells per side)")
	pf.IntVar(&tps, "tps", config.DefaultTicksPerSecond, "generations per second")
	pf.IntVar(&ups, "ups", config.DefaultUpdatesPerSecond, "input loop updates per second")
	pf.StringVar(&pattern, "pattern", "glider", "seed pattern (empty for none)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.BoolVar(&chaos, "chaos", false, "start in chaos mode")
	pf.BoolVar(&paused, "paused", false, "start paused")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the simulation window",
		RunE:  runGUI,
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "print generations to the terminal until interrupted",
		RunE:  runTerm,
	}
	termCmd.Flags().DurationVar(&delay, "delay", config.DefaultFrameDelay, "delay between frames")
	termCmd.Flags().BoolVar(&plain, "plain", false, "disable neighbor coloring")
	termCmd.Flags().IntVar(&gliderEvery, "glider-every", 0, "drop a glider every N generations (0 disables)")
	termCmd.Flags().Int("generations", 0, "stop after N generations (0 runs forever)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal UI",
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&plain, "plain", false, "disable neighbor coloring")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report population",
		RunE:  runHeadless,
	}
	runCmd.Flags().Int("generations", 200, "number of generations")
	runCmd.Flags().IntVar(&gliderEvery, "glider-every", 0, "drop a glider every N generations (0 disables)")
	runCmd.Flags().BoolVar(&plot, "plot", true, "plot population over time")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark independent runs in parallel",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 4, "number of parallel runs")
	benchCmd.Flags().Int("generations", 1000, "generations per run")
	benchCmd.Flags().IntVar(&gliderEvery, "glider-every", 0, "drop a glider every N generations (0 disables)")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range life.PatternNames() {
				p, err := life.Lookup(name)
				if err != nil {
					return err
				}
				w, h := p.Bounds()
				fmt.Printf("  %-12s %dx%d, %d cells\n", name, w, h, len(p.Cells))
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s size %d, %d tps, pattern %q\n", name, p.GridSize, p.TicksPerSecond, p.SeedPattern)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print or save the effective configuration",
		RunE:  dumpConfig,
	}
	configCmd.Flags().StringVar(&outFile, "out", "", "write to file instead of stdout")

	rootCmd.AddCommand(guiCmd, termCmd, tuiCmd, runCmd, benchCmd, patternsCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Errf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	lvl, err := log.ValidateLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLogLevel(lvl)
	return nil
}

// resolveConfig applies, in order: defaults, preset, config file, then any
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.GridSize = gridSize
	}
	if flags.Changed("tps") {
		cfg.TicksPerSecond = tps
	}
	if flags.Changed("ups") {
		cfg.UpdatesPerSecond = ups
	}
	if flags.Changed("pattern") {
		cfg.SeedPattern = pattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("chaos") {
		cfg.Chaos = chaos
	}
	if flags.Changed("delay") {
		cfg.FrameDelay = delay
	}
	if flags.Changed("plain") {
		cfg.Colored = !plain
	}
	if flags.Changed("glider-every") {
		cfg.GliderEvery = gliderEvery
	}
	cfg.Seed = cfg.SeedValue(time.Now().UnixNano())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.LogVf("config: size=%d tps=%d ups=%d pattern=%q seed=%d", cfg.GridSize, cfg.TicksPerSecond, cfg.UpdatesPerSecond, cfg.SeedPattern, cfg.Seed)
	return cfg, nil
}

// newController builds the seeded grid and the controller around it.
func newController(cfg *config.Config) (*control.Controller, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g, err := cfg.NewGrid(rng)
	if err != nil {
		return nil, err
	}
	return control.New(g, rng, control.Options{
		Divisor:   cfg.Divisor(),
		SpeedStep: cfg.SpeedStep,
		Paused:    paused,
		Chaos:     cfg.Chaos,
	}), nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	err = gui.Run(ctrl, gui.Options{
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		Inset:            cfg.Window.Inset,
		Gap:              cfg.Window.Gap,
		FramesPerSecond:  cfg.UpdatesPerSecond,
		UpdatesPerSecond: cfg.UpdatesPerSecond,
	})
	if errors.Is(err, gui.ErrWindow) {
		log.Fatalf("cannot start: %v", err)
	}
	return err
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	generations, _ := cmd.Flags().GetInt("generations")
	rng := rand.New(rand.NewSource(cfg.Seed))
	g, err := cfg.NewGrid(rng)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := term.NewRunner(os.Stdout, g, render.NewText(cfg.Colored), rng, term.Options{
		Delay:          cfg.FrameDelay,
		GliderEvery:    cfg.GliderEvery,
		MaxGenerations: generations,
	})
	return r.Run(ctx)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	return tui.Run(ctrl, render.NewText(cfg.Colored), cfg.UpdatesPerSecond)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	generations, _ := cmd.Flags().GetInt("generations")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("running %d generations on a %dx%d grid...\n", generations, cfg.GridSize, cfg.GridSize)
	res, err := bench.Run(ctx, cfg, generations)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", res.Elapsed.Round(time.Microsecond))
	fmt.Printf("seed: %d\n", res.Seed)
	fmt.Printf("final population: %d\n", res.Final.Population())
	fmt.Printf("peak population: %d\n", res.Peak())
	fmt.Printf("generations/s: %.0f\n", res.GenerationsPerSecond())

	if plot && len(res.Population) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(res.Population, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("population per generation")))
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	generations, _ := cmd.Flags().GetInt("generations")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := bench.Parallel(ctx, cfg, runs, generations)
	if err != nil {
		return err
	}
	log.Infof("bench: %d runs finished in %v", len(results), time.Since(start).Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tGENS\tFINAL\tPEAK\tGEN/S")
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.0f\n",
			res.Seed,
			res.Generations,
			res.Final.Population(),
			res.Peak(),
			res.GenerationsPerSecond(),
		)
	}
	return w.Flush()
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		log.Infof("config written to %s", outFile)
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
