// Package coloring is the upper-bound oracle of the exact clique search.
//
// Rationale:
//  1. In a proper coloring every color class is an independent set, so a
//     clique takes at most one vertex per class; the number of colors K used
//     on a candidate set S is therefore ≥ ω(S).
//  2. Greedy sequential coloring processes S in the given order and assigns
//     each vertex the smallest color not used by an already-colored neighbor
//     (lowest color id on ties). Color classes are kept as bitsets, so the
//     test "does v have a neighbor in class c" is a word-wise intersection.
//  3. The same assignment drives branching: vertices sorted by color give a
//     per-position bound (a vertex of color c cannot extend the current
//     clique by more than c), which the search uses to prune the tail early.
//
// Orderings (InitialOrder):
//   - DegreeDesc: degree descending, ties lowest id (Welsh–Powell).
//   - ColorSort:  degree descending, then neighborhood density descending,
//     then lowest id.
//   - Degeneracy: smallest-last; vertices of the densest core come first.
//   - Natural:    input order.
//
// Complexity:
//   - Greedy: O(|S|·K·n/64) time, O(K·n/64) scratch (reused by a Colorer).
//   - BranchOrder: O(|S| log |S|).
//
// The oracle has no failure mode; in the worst case K = |S|.
package coloring
