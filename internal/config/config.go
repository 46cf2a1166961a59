package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/life"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGridSize         = 50
	DefaultTicksPerSecond   = 10
	DefaultUpdatesPerSecond = 60
	DefaultFrameDelay       = 16 * time.Millisecond
	DefaultSpeedStep        = 1
	DefaultWindowWidth      = 1900
	DefaultWindowHeight     = 1000
	DefaultWindowInset      = 20.0
	DefaultCellGap          = 2.0
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	GridSize         int           `yaml:"grid_size"`
	TicksPerSecond   int           `yaml:"ticks_per_second"`
	UpdatesPerSecond int           `yaml:"updates_per_second"`
	FrameDelay       time.Duration `yaml:"frame_delay"`
	SeedPattern      string        `yaml:"seed_pattern"`
	Seed             int64         `yaml:"seed"`
	GliderEvery      int           `yaml:"glider_every"`
	Colored          bool          `yaml:"colored"`
	Chaos            bool          `yaml:"chaos"`
	SpeedStep        int           `yaml:"speed_step"`
	Window           WindowConfig  `yaml:"window"`
}

type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Inset  float64 `yaml:"inset"`
	Gap    float64 `yaml:"gap"`
}

func DefaultConfig() *Config {
	return &Config{
		GridSize:         DefaultGridSize,
		TicksPerSecond:   DefaultTicksPerSecond,
		UpdatesPerSecond: DefaultUpdatesPerSecond,
		FrameDelay:       DefaultFrameDelay,
		SeedPattern:      "glider",
		Colored:          true,
		SpeedStep:        DefaultSpeedStep,
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Inset:  DefaultWindowInset,
			Gap:    DefaultCellGap,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "config: encode")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "config: write %s", path)
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.GridSize < 3:
		return errors.Wrapf(ErrInvalid, "grid_size must be at least 3, got %d", c.GridSize)
	case c.TicksPerSecond < 1:
		return errors.Wrapf(ErrInvalid, "ticks_per_second must be positive, got %d", c.TicksPerSecond)
	case c.UpdatesPerSecond < 1:
		return errors.Wrapf(ErrInvalid, "updates_per_second must be positive, got %d", c.UpdatesPerSecond)
	case c.FrameDelay < 0:
		return errors.Wrapf(ErrInvalid, "frame_delay must not be negative, got %v", c.FrameDelay)
	case c.GliderEvery < 0:
		return errors.Wrapf(ErrInvalid, "glider_every must not be negative, got %d", c.GliderEvery)
	case c.SpeedStep < 1:
		return errors.Wrapf(ErrInvalid, "speed_step must be positive, got %d", c.SpeedStep)
	case c.Window.Width < 1 || c.Window.Height < 1:
		return errors.Wrapf(ErrInvalid, "window must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.SeedPattern != "" {
		if _, err := life.Lookup(c.SeedPattern); err != nil {
			return errors.Wrap(err, "seed_pattern")
		}
	}
	return nil
}

// Divisor is the number of controller updates per generation.
func (c *Config) Divisor() int {
	if c.TicksPerSecond < 1 {
		return c.UpdatesPerSecond
	}
	return max(c.UpdatesPerSecond/c.TicksPerSecond, 1)
}

// NewGrid builds an empty grid and places the seed pattern at a random
// offset drawn from src.
func (c *Config) NewGrid(src life.Source) (*life.Grid, error) {
	g, err := life.New(c.GridSize)
	if err != nil {
		return nil, err
	}
	if c.SeedPattern == "" {
		return g, nil
	}
	p, err := life.Lookup(c.SeedPattern)
	if err != nil {
		return nil, err
	}
	if _, err := g.PlaceRandom(p, src); err != nil {
		return nil, err
	}
	return g, nil
}

// SeedValue returns the configured random seed, or fallback when none is set.
func (c *Config) SeedValue(fallback int64) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return fallback
}
