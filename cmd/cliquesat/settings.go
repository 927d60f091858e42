package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/cliquesat/config"
)

// settings are the flags shared by the solve commands.
type settings struct {
	configPath  string
	preset      string
	timeLimit   time.Duration
	monitorMode string
	metricsAddr string
}

func (s *settings) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&s.preset, "preset", "", "named preset (quick_test, standard_benchmark, intensive_search)")
	fs.DurationVar(&s.timeLimit, "time-limit", 0, "wall-clock limit, 0 keeps the configured value")
	fs.StringVar(&s.monitorMode, "monitor", "", "progress reporting: log, silent or metrics")
	fs.StringVar(&s.metricsAddr, "metrics-addr", "", "listen address for /metrics in metrics mode")
}

// load resolves the configuration: file or defaults, then --preset, then
// the remaining explicit flags. The result is validated again.
func (s *settings) load(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if s.configPath != "" {
		var err error
		if cfg, err = config.Load(s.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if s.preset != "" {
		if err := config.ApplyPreset(&cfg, s.preset); err != nil {
			return config.Config{}, err
		}
	}
	if fs.Changed("monitor") {
		cfg.Monitor.Mode = s.monitorMode
	}
	if fs.Changed("metrics-addr") {
		cfg.Monitor.MetricsAddr = s.metricsAddr
	}
	if cfg.Monitor.Mode == config.ModeMetrics && cfg.Monitor.MetricsAddr == "" {
		return config.Config{}, fmt.Errorf("%w: metrics mode needs --metrics-addr", config.ErrInvalidConfig)
	}

	return cfg, nil
}
