package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquesat/bnb"
	"github.com/katalvlaran/cliquesat/coloring"
	"github.com/katalvlaran/cliquesat/grasp"
	"github.com/katalvlaran/cliquesat/monitor"
	"github.com/katalvlaran/cliquesat/satclique"
)

var (
	// ErrInvalidConfig wraps parse and validation failures.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownPreset is returned for a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Monitor modes.
const (
	ModeLog     = "log"
	ModeSilent  = "silent"
	ModeMetrics = "metrics"
)

// Config is the root document.
type Config struct {
	Preset    string          `yaml:"preset" validate:"omitempty,oneof=quick_test standard_benchmark intensive_search"`
	Exact     ExactConfig     `yaml:"exact"`
	Heuristic HeuristicConfig `yaml:"heuristic"`
	Monitor   MonitorConfig   `yaml:"monitor"`
}

// ExactConfig configures the branch-and-bound solver.
type ExactConfig struct {
	TimeLimit        time.Duration `yaml:"time_limit" validate:"gte=0"`
	CheckEvery       int           `yaml:"check_every" validate:"gte=0"`
	SATBackend       string        `yaml:"sat_backend" validate:"omitempty,oneof=gini gophersat none"`
	SATMinCandidates int           `yaml:"sat_min_candidates" validate:"gte=0"`
	SATMaxCandidates int           `yaml:"sat_max_candidates" validate:"gtefield=SATMinCandidates"`
	SATQueryTimeout  time.Duration `yaml:"sat_query_timeout" validate:"gte=0"`
	Ordering         string        `yaml:"ordering" validate:"omitempty,oneof=degree colorsort degeneracy natural"`
	WarmStart        bool          `yaml:"warm_start"`
}

// HeuristicConfig configures GRASP, standalone or as warm start.
type HeuristicConfig struct {
	Alpha            float64       `yaml:"alpha" validate:"gte=0,lte=1"`
	MaxIterations    int           `yaml:"max_iterations" validate:"gte=1"`
	TimeLimit        time.Duration `yaml:"time_limit" validate:"gte=0"`
	Seed             int64         `yaml:"seed"`
	MaxNoImprovement int           `yaml:"max_no_improvement" validate:"gte=0"`
	SearchIntensity  int           `yaml:"search_intensity" validate:"gte=0"`
}

// MonitorConfig configures progress reporting.
type MonitorConfig struct {
	Mode        string        `yaml:"mode" validate:"omitempty,oneof=log silent metrics"`
	Every       int           `yaml:"every" validate:"gte=0"`
	Interval    time.Duration `yaml:"interval" validate:"gte=0"`
	MetricsAddr string        `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Exact: ExactConfig{
			TimeLimit:        bnb.DefaultTimeLimit,
			CheckEvery:       bnb.DefaultCheckEvery,
			SATBackend:       satclique.NameGini,
			SATMinCandidates: bnb.DefaultSATMinCandidates,
			SATMaxCandidates: bnb.DefaultSATMaxCandidates,
			SATQueryTimeout:  bnb.DefaultSATQueryTimeout,
			Ordering:         coloring.DegreeDesc.String(),
		},
		Heuristic: HeuristicConfig{
			Alpha:            grasp.DefaultAlpha,
			MaxIterations:    grasp.DefaultMaxIterations,
			TimeLimit:        grasp.DefaultTimeLimit,
			MaxNoImprovement: grasp.DefaultMaxNoImprovement,
			SearchIntensity:  grasp.DefaultSearchIntensity,
		},
		Monitor: MonitorConfig{
			Mode:     ModeLog,
			Every:    1000,
			Interval: 30 * time.Second,
		},
	}
}

var validate = validator.New()

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Parse resolves a YAML document against the defaults and its preset.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := Default()
	if head.Preset != "" {
		if err := ApplyPreset(&cfg, head.Preset); err != nil {
			return Config{}, err
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ExactOptions maps the exact section onto bnb.Options.
// With WarmStart set, the heuristic section drives the warm start.
func (c Config) ExactOptions() (bnb.Options, error) {
	backend, err := satclique.Lookup(c.Exact.SATBackend)
	if err != nil {
		return bnb.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	ord, err := coloring.ParseOrdering(c.Exact.Ordering)
	if err != nil {
		return bnb.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := bnb.Options{
		TimeLimit:        c.Exact.TimeLimit,
		CheckEvery:       c.Exact.CheckEvery,
		SAT:              backend,
		SATMinCandidates: c.Exact.SATMinCandidates,
		SATMaxCandidates: c.Exact.SATMaxCandidates,
		SATQueryTimeout:  c.Exact.SATQueryTimeout,
		Ordering:         ord,
	}
	if c.Exact.WarmStart {
		warm := c.HeuristicOptions()
		opts.WarmStart = &warm
	}

	return opts, nil
}

// HeuristicOptions maps the heuristic section onto grasp.Options.
func (c Config) HeuristicOptions() grasp.Options {
	return grasp.Options{
		Alpha:            c.Heuristic.Alpha,
		MaxIterations:    c.Heuristic.MaxIterations,
		TimeLimit:        c.Heuristic.TimeLimit,
		Seed:             c.Heuristic.Seed,
		MaxNoImprovement: c.Heuristic.MaxNoImprovement,
		SearchIntensity:  c.Heuristic.SearchIntensity,
	}
}

// MonitorConfig maps the monitor section onto the cadence settings.
func (c Config) MonitorConfig() monitor.Config {
	return monitor.Config{
		Every:    c.Monitor.Every,
		Interval: c.Monitor.Interval,
		Silent:   c.Monitor.Mode == ModeSilent,
	}
}
