package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquesat/bnb"
	"github.com/katalvlaran/cliquesat/dimacs"
)

type exactFlags struct {
	settings
	satBackend string
	ordering   string
	warmStart  bool
}

type exactStats struct {
	Nodes             int64 `json:"nodes"`
	Prunes            int64 `json:"prunes"`
	SATQueries        int64 `json:"sat_queries"`
	SATSat            int64 `json:"sat_sat"`
	SATUnsat          int64 `json:"sat_unsat"`
	SATUnknown        int64 `json:"sat_unknown"`
	PreprocessRemoved int   `json:"preprocess_removed"`
	Discoveries       int   `json:"discoveries"`
	MaxDepth          int   `json:"max_depth"`
}

func newExactCmd(root *rootFlags) *cobra.Command {
	var flags exactFlags

	cmd := &cobra.Command{
		Use:   "exact FILE",
		Short: "Prove the maximum clique of a DIMACS graph",
		Long: `Runs branch-and-bound with greedy coloring bounds and SAT probes.
On time limit or interrupt the best clique found so far is reported
with status TIMEOUT and a projection of the remaining time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExact(cmd, root, &flags, args[0])
		},
	}
	fs := cmd.Flags()
	flags.register(fs)
	fs.StringVar(&flags.satBackend, "sat-backend", "", "SAT backend: gini, gophersat or none")
	fs.StringVar(&flags.ordering, "ordering", "", "initial ordering: degree, colorsort, degeneracy or natural")
	fs.BoolVar(&flags.warmStart, "warm-start", false, "seed the incumbent with a GRASP run")

	return cmd
}

func runExact(cmd *cobra.Command, root *rootFlags, flags *exactFlags, path string) error {
	logger, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	cfg, err := flags.load(fs)
	if err != nil {
		return err
	}
	if fs.Changed("time-limit") {
		cfg.Exact.TimeLimit = flags.timeLimit
	}
	if fs.Changed("sat-backend") {
		cfg.Exact.SATBackend = flags.satBackend
	}
	if fs.Changed("ordering") {
		cfg.Exact.Ordering = flags.ordering
	}
	if fs.Changed("warm-start") {
		cfg.Exact.WarmStart = flags.warmStart
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.ExactOptions()
	if err != nil {
		return err
	}

	g, hdr, err := dimacs.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "path", path, "vertices", g.Order(), "edges", g.Size(), "declared_edges", hdr.DeclaredEdges)

	prog, err := startProgress(cfg, logger)
	if err != nil {
		return err
	}
	opts.Monitor = prog.monitor
	opts.Logger = logger
	if opts.WarmStart != nil {
		opts.WarmStart.Logger = logger
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := bnb.Solve(ctx, g, opts)
	prog.Close()
	if err != nil {
		return err
	}

	rep := newReport(bnb.SolverName, path, g, prog.monitor)
	rep.Status = res.Status.String()
	rep.Stats = exactStats{
		Nodes:             res.Stats.Nodes,
		Prunes:            res.Stats.Prunes,
		SATQueries:        res.Stats.SATQueries,
		SATSat:            res.Stats.SATSat,
		SATUnsat:          res.Stats.SATUnsat,
		SATUnknown:        res.Stats.SATUnknown,
		PreprocessRemoved: res.Stats.PreprocessRemoved,
		Discoveries:       res.Stats.Discoveries,
		MaxDepth:          res.Stats.MaxDepth,
	}
	rep.finish(res.Clique, res.Stats.Elapsed, res.Estimate)

	return rep.write(cmd.OutOrStdout())
}

// cmdContext is cmd.Context or Background when Execute ran without one.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
