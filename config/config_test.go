package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquesat/coloring"
	"github.com/katalvlaran/cliquesat/config"
	"github.com/katalvlaran/cliquesat/satclique"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 600*time.Second, cfg.Exact.TimeLimit)
	assert.Equal(t, 0.3, cfg.Heuristic.Alpha)
	assert.Equal(t, 1000, cfg.Heuristic.MaxIterations)
	assert.Equal(t, 180*time.Second, cfg.Heuristic.TimeLimit)
	assert.Equal(t, config.ModeLog, cfg.Monitor.Mode)
	assert.Equal(t, 1000, cfg.Monitor.Every)
	assert.Equal(t, 30*time.Second, cfg.Monitor.Interval)
}

func TestParse_EmptyDocumentIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_OverridesDefaults(t *testing.T) {
	doc := []byte(`
exact:
  time_limit: 90s
  sat_backend: gophersat
  ordering: degeneracy
  warm_start: true
heuristic:
  alpha: 0.5
  seed: 42
monitor:
  mode: metrics
  metrics_addr: ":9090"
`)
	cfg, err := config.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Exact.TimeLimit)
	assert.Equal(t, "gophersat", cfg.Exact.SATBackend)
	assert.Equal(t, 0.5, cfg.Heuristic.Alpha)
	assert.Equal(t, int64(42), cfg.Heuristic.Seed)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1000, cfg.Heuristic.MaxIterations)
	assert.Equal(t, ":9090", cfg.Monitor.MetricsAddr)

	opts, err := cfg.ExactOptions()
	require.NoError(t, err)
	assert.Equal(t, satclique.Gophersat{}, opts.SAT)
	assert.Equal(t, coloring.Degeneracy, opts.Ordering)
	require.NotNil(t, opts.WarmStart)
	assert.Equal(t, 0.5, opts.WarmStart.Alpha)
	assert.Equal(t, int64(42), opts.WarmStart.Seed)
}

func TestParse_PresetThenOverrides(t *testing.T) {
	cfg, err := config.Parse([]byte("preset: quick_test\nheuristic:\n  max_iterations: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, config.PresetQuickTest, cfg.Preset)
	assert.Equal(t, 60*time.Second, cfg.Exact.TimeLimit)
	assert.Equal(t, config.ModeSilent, cfg.Monitor.Mode)
	assert.Equal(t, 7, cfg.Heuristic.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Heuristic.TimeLimit)
	assert.True(t, cfg.MonitorConfig().Silent)
}

func TestPresets(t *testing.T) {
	cases := []struct {
		name       string
		exact      time.Duration
		iterations int
		heuristic  time.Duration
		mode       string
	}{
		{config.PresetQuickTest, 60 * time.Second, 50, 30 * time.Second, config.ModeSilent},
		{config.PresetStandardBenchmark, 1800 * time.Second, 500, 300 * time.Second, config.ModeLog},
		{config.PresetIntensiveSearch, 7200 * time.Second, 2000, 1800 * time.Second, config.ModeLog},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.FromPreset(tc.name)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			assert.Equal(t, tc.exact, cfg.Exact.TimeLimit)
			assert.Equal(t, tc.iterations, cfg.Heuristic.MaxIterations)
			assert.Equal(t, tc.heuristic, cfg.Heuristic.TimeLimit)
			assert.Equal(t, tc.mode, cfg.Monitor.Mode)
		})
	}
	assert.Equal(t, []string{"intensive_search", "quick_test", "standard_benchmark"}, config.Presets())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown preset":  {"preset: turbo\n", config.ErrUnknownPreset},
		"unknown key":     {"exact:\n  speed: 3\n", config.ErrInvalidConfig},
		"alpha too large": {"heuristic:\n  alpha: 1.5\n", config.ErrInvalidConfig},
		"negative limit":  {"exact:\n  time_limit: -1s\n", config.ErrInvalidConfig},
		"bad backend":     {"exact:\n  sat_backend: minisat\n", config.ErrInvalidConfig},
		"bad ordering":    {"exact:\n  ordering: random\n", config.ErrInvalidConfig},
		"bad mode":        {"monitor:\n  mode: loud\n", config.ErrInvalidConfig},
		"inverted window": {"exact:\n  sat_min_candidates: 50\n  sat_max_candidates: 10\n", config.ErrInvalidConfig},
		"not yaml":        {"exact: [\n", config.ErrInvalidConfig},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExactOptions_NoneDisablesSAT(t *testing.T) {
	cfg := config.Default()
	cfg.Exact.SATBackend = satclique.NameNone
	opts, err := cfg.ExactOptions()
	require.NoError(t, err)
	assert.Nil(t, opts.SAT)
	assert.Nil(t, opts.WarmStart)
	require.NoError(t, opts.Validate())
}

func TestHeuristicOptions_Valid(t *testing.T) {
	opts := config.Default().HeuristicOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 3, opts.SearchIntensity)
	assert.Equal(t, 100, opts.MaxNoImprovement)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: standard_benchmark\nexact:\n  check_every: 64\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Exact.CheckEvery)
	assert.Equal(t, 1800*time.Second, cfg.Exact.TimeLimit)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
