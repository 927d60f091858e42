package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	logFormat string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:          "cliquesat",
		Short:        "Maximum clique solver",
		Long:         `Exact branch-and-bound with coloring bounds and SAT probes, plus a GRASP heuristic.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newExactCmd(&flags),
		newGraspCmd(&flags),
		newGenerateCmd(),
	)

	return rootCmd
}

// logger builds the stderr logger described by the persistent flags.
func (f *rootFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(f.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format: unknown format %q", f.logFormat)
	}
}
