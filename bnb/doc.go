// Package bnb is the exact Maximum Clique solver: a coloring-bounded
// branch-and-bound search that hands small subproblems to a SAT backend.
//
// Each search node is a pair (R, P): R is the clique built on the current
// path, P the candidates adjacent to every vertex of R. A node moves through
// the phases
//
//	INIT → PREPROCESS → BOUND → {PRUNE | EXPAND | SAT_PROBE} → DONE
//
// BOUND colors P greedily; the number of colors U bounds the clique that P
// can still contribute. Nodes with |R|+U ≤ |best| are pruned. When P is
// inside the SAT window the node asks the backend for a clique of size
// |best|-|R|+1 and climbs while the answer is SAT; UNSAT closes the node and
// UNKNOWN (probe budget spent) falls back to EXPAND. EXPAND branches on the
// vertices of P from the highest color down, pruning each branch with its
// own color.
//
// Before the search the incumbent is seeded with a greedy clique (and
// optionally a GRASP warm start) and P is peeled by degree against it. When
// the incumbent grows during a root branch, the remaining root candidates
// are peeled again and the root is re-entered.
//
// The deadline and ctx are polled every Options.CheckEvery nodes, at every
// discovery and before every SAT probe. A run that stops early returns the
// best clique seen with Status Timeout; this is not an error.
//
// The solver is single-threaded. One Solve call owns all of its state.
package bnb
