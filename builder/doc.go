// Package builder provides deterministic, composable graph fixtures for the
// clique solvers, their tests and the generate command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG for stochastic constructors.
//     – WithShuffledLabels: random relabeling of the finished graph.
//   - Topology constructors (each appends a fresh vertex block):
//     – Complete, Empty, Path, Cycle, Star, Wheel.
//     – CompleteMultipartite: ω equals the number of parts.
//     – Random:             Erdős–Rényi G(n,p).
//     – PlantedClique:      G(n,p) with a hidden k-clique.
//   - Validation helpers:
//     – validateMin, validateParts, validateProbability.
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes, MinCompleteNodes.
//     – MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, … tokens for error context.
//
// Composition:
//
//	// Two disjoint triangles (ω = 3).
//	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3))
//
//	// Dense random graph, reproducible.
//	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Random(200, 0.9))
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with the
//     constructor name for context.
//   - Identical graphs for identical seeds and constructor order.
package builder
