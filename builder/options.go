// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// options.go - functional options accepted by BuildGraph.
//
// Contract:
//   • Options mutate builderConfig in call order; the last one wins.
//   • Option constructors panic on meaningless inputs, constructors never do.
//   • Every stochastic choice draws from the configured RNG, so a seed fixes
//     the graph and its labeling.

package builder

import "math/rand"

// BuilderOption adjusts the configuration shared by all constructors of one
// BuildGraph call.
type BuilderOption func(*builderConfig)

// WithRand installs r as the random source. r must not be nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShuffledLabels renames the vertices of the finished graph by a random
// permutation, so composed blocks (a planted clique, a K_n next to a sparse
// part) no longer sit on contiguous ids. Solvers break ties by lowest id;
// shuffling keeps fixtures from favoring them. Requires an RNG.
func WithShuffledLabels() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}
