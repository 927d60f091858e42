package config

import (
	"fmt"
	"sort"
	"time"
)

// Preset names.
const (
	PresetQuickTest         = "quick_test"
	PresetStandardBenchmark = "standard_benchmark"
	PresetIntensiveSearch   = "intensive_search"
)

var presets = map[string]func(*Config){
	PresetQuickTest: func(c *Config) {
		c.Exact.TimeLimit = 60 * time.Second
		c.Monitor.Mode = ModeSilent
		c.Heuristic.MaxIterations = 50
		c.Heuristic.TimeLimit = 30 * time.Second
	},
	PresetStandardBenchmark: func(c *Config) {
		c.Exact.TimeLimit = 1800 * time.Second
		c.Monitor.Mode = ModeLog
		c.Heuristic.MaxIterations = 500
		c.Heuristic.TimeLimit = 300 * time.Second
	},
	PresetIntensiveSearch: func(c *Config) {
		c.Exact.TimeLimit = 7200 * time.Second
		c.Monitor.Mode = ModeLog
		c.Heuristic.MaxIterations = 2000
		c.Heuristic.TimeLimit = 1800 * time.Second
	},
}

// Presets lists the registered preset names in order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ApplyPreset overwrites the preset-controlled fields of c and records the name.
func ApplyPreset(c *Config, name string) error {
	apply, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: %q (known: %v)", ErrUnknownPreset, name, Presets())
	}
	apply(c)
	c.Preset = name

	return nil
}

// FromPreset returns Default() with the named preset applied.
func FromPreset(name string) (Config, error) {
	c := Default()
	if err := ApplyPreset(&c, name); err != nil {
		return Config{}, err
	}

	return c, nil
}
