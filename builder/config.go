// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// config.go - resolved BuildGraph configuration and the relabeling pass.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cliquesat/core"
)

// builderConfig is handed to each constructor by value.
type builderConfig struct {
	rng     *rand.Rand // nil: deterministic constructors only
	shuffle bool       // relabel the frozen graph with rng
}

// newBuilderConfig starts from the zero config and applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// relabel returns g with vertex v renamed to perm[v] for a permutation drawn
// from cfg.rng. It is a no-op unless shuffling was requested.
//
// Complexity: O(n + m) plus the rebuild.
func (cfg builderConfig) relabel(g *core.Graph) (*core.Graph, error) {
	if !cfg.shuffle {
		return g, nil
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("WithShuffledLabels: %w", ErrNeedRandSource)
	}
	perm := cfg.rng.Perm(g.Order())
	edges := g.Edges()
	for i, e := range edges {
		edges[i] = [2]int{perm[e[0]], perm[e[1]]}
	}

	return core.NewGraph(g.Order(), edges)
}
