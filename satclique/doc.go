// Package satclique turns "does this candidate set contain a clique of size
// at least k?" into a SAT query and answers it with an external solver.
//
// Encoding: one boolean variable x_i per candidate (local index order), a
// binary clause ¬x_i ∨ ¬x_j for every non-adjacent pair, and a cardinality
// constraint Σx_i ≥ k. The pairwise clauses are computed once per candidate
// set by Encode and reused by every probe on that set.
//
// Backends:
//
//   - Gini (default): incremental. Pairwise clauses and a sorting network
//     over the x_i are built once; each probe emits only the network gates it
//     has not emitted yet and assumes the Geq(k) output, so learned clauses
//     carry over from one k to the next.
//   - Gophersat: rebuilds a pseudo-boolean problem per probe
//     (AtLeast(k) plus the reused pairwise clauses).
//
// Outcomes are Sat (with a validated model), Unsat, or Unknown when the
// probe budget carried by ctx ran out. Unknown is not an error.
//
// A Query belongs to one search node and is not goroutine-safe.
package satclique
