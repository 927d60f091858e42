// Package grasp implements a Greedy Randomized Adaptive Search Procedure for
// Maximum Clique.
//
// Each iteration runs two stages:
//
//  1. Construction. Start from the empty clique with every vertex as a
//     candidate. Rank candidates by degree inside the candidate set
//     (descending, ties lowest id), keep the top rclSize = 1+⌊α·(len-1)⌋ as
//     the restricted candidate list, pick one uniformly, and intersect the
//     candidates with its neighborhood. Stop when no candidate is left.
//  2. Local search. Deterministic moves that never shrink the clique:
//     ADD (a vertex adjacent to every member), (1,2)-swap (drop one member,
//     add two mutually adjacent vertices), and a plateau 1-swap guarded by a
//     short tabu list. At most Options.LocalSearchMoves moves per iteration.
//
// The best clique over all iterations is returned. The run stops on the
// iteration limit, the time limit, context cancellation, stagnation
// (MaxNoImprovement iterations without a strictly larger clique), or when
// a clique of MaxDegree+1 vertices is found, which no clique can exceed.
//
// Determinism: the only randomness is the RCL pick, drawn from a math/rand
// stream seeded with Options.Seed. α = 0 never draws and is seed-invariant.
//
// Complexity per iteration: construction O(ω·n·n/64), local search
// O(moves·n) with incremental miss counters.
package grasp
