package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		GridSize: 50, TicksPerSecond: 10, SeedPattern: "glider",
	},
	"terminal": {
		GridSize: 30, TicksPerSecond: 60, SeedPattern: "glider",
	},
	"chaos": {
		GridSize: 80, TicksPerSecond: 20, SeedPattern: "glider", Chaos: true, GliderEvery: 10,
	},
	"methuselah": {
		GridSize: 100, TicksPerSecond: 30, SeedPattern: "r-pentomino",
	},
	"oscillators": {
		GridSize: 20, TicksPerSecond: 4, SeedPattern: "beacon",
	},
	"empty": {
		GridSize: 40, TicksPerSecond: 10,
	},
}

// GetPreset returns a copy of the default config with the preset applied,
// or nil for an unknown name.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.GridSize = p.GridSize
	cfg.TicksPerSecond = p.TicksPerSecond
	cfg.SeedPattern = p.SeedPattern
	cfg.Chaos = p.Chaos
	cfg.GliderEvery = p.GliderEvery
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
