// Package cliquesat finds maximum cliques in simple undirected graphs,
// exactly and heuristically.
//
// What is in the box?
//
//	core/      - immutable bitset Graph, Builder, clique validation helpers
//	builder/   - deterministic constructors: K_n, paths, cycles, G(n,p), planted cliques
//	dimacs/    - DIMACS edge-format reader/writer (.clq, .col, .gz) and benchmark catalog
//	reduce/    - degree-based vertex elimination against an incumbent
//	coloring/  - greedy coloring upper bound and initial orderings
//	satclique/ - "clique of size ≥ k" SAT encoding on gini or gophersat
//	bnb/       - exact branch-and-bound driving coloring bounds and SAT probes
//	grasp/     - randomized greedy construction plus tabu plateau local search
//	monitor/   - progress snapshots, log and Prometheus sinks, time-to-finish estimates
//	config/    - YAML configuration with presets and validation
//	cmd/       - the cliquesat command
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Complete(4), builder.Complete(3))
//	res, _ := bnb.Solve(ctx, g, bnb.DefaultOptions())
//	fmt.Println(res.Status, res.Size, res.Clique) // OPTIMAL 4 [0 1 2 3]
//
// Every clique returned by a solver passes core.ValidateClique. The exact
// solver reports OPTIMAL or, on time limit, TIMEOUT with the best clique
// found and a projection of the remaining work.
//
//	go get github.com/katalvlaran/cliquesat
package cliquesat
