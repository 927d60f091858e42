// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order
//     on one core.Builder, then freezes the graph.
//   - Every constructor appends its own block of fresh vertices, so composing
//     constructors yields their disjoint union.
//   - Relabeling (WithShuffledLabels) runs once, after every constructor.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquesat/core"
)

// Constructor appends a deterministic block of vertices and edges to b using
// the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their vertices with b.AddVertices and touch no earlier block.
//   - Preserve determinism for the same config and call order.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the frozen graph.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor plus O(n²/64 + m) to freeze.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	var (
		b   = core.NewBuilder(0)
		cfg = newBuilderConfig(bopts...)
	)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	if g, err = cfg.relabel(g); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                     C_n, n ≥ 3, ω = 2 (3 for n = 3).
// Path(n)                      P_n, n ≥ 2, ω = 2.
// Star(n)                      center + n-1 leaves, ω = 2.
// Wheel(n)                     hub + C_{n-1}, ω = 3 (4 for n = 4).
// Complete(n)                  K_n, ω = n.
// Empty(n)                     n isolated vertices, ω = 1.
// CompleteMultipartite(parts…) Turán-style graph, ω = number of parts.
// Random(n, p)                 G(n,p), requires an RNG.
// PlantedClique(n, p, k)       G(n,p) plus a clique on k random vertices.
