// Package dimacs reads and writes undirected graphs in the DIMACS edge
// format used by the second DIMACS implementation challenge (.clq, .col).
//
// Format:
//
//	c free-form comment
//	p edge <n> <m>          (also "p col" and "p clq")
//	e <u> <v>               1-based endpoints
//	n <v> <w>               vertex descriptor, accepted and ignored
//
// Semantics:
//
//   - Exactly one problem line, before the first edge line.
//   - Endpoints are translated to 0-based ids; out-of-range endpoints and
//     self-loops are rejected with line context (core sentinels survive %w).
//   - Duplicate edges are accepted; many benchmark files list both directions.
//   - The declared edge count m is informational (Header.DeclaredEdges).
//   - ReadFile transparently decompresses files ending in ".gz".
//
// The package also carries a small catalog of classic benchmark instances
// with their known (or best known) clique numbers.
package dimacs
