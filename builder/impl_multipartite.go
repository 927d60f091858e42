// SPDX-License-Identifier: MIT
// Package: cliquesat/builder
//
// impl_multipartite.go - implementation of CompleteMultipartite(parts...).
//
// Contract:
//   • At least one part; every part size ≥ MinPartition (else ErrTooFewVertices).
//   • Vertices are laid out part by part; two vertices are adjacent iff they
//     belong to different parts.
//   • The maximum clique picks one vertex per part, so ω = len(parts).
//     With all parts of size 1 this is K_n; with two parts it is K_{a,b}.
//
// Complexity: O(Σparts) vertices + O((Σparts)²) edges.

package builder

import "github.com/katalvlaran/cliquesat/core"

// CompleteMultipartite returns a Constructor for the complete multipartite
// graph K_{parts[0],...,parts[r-1]}.
func CompleteMultipartite(parts ...int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateParts(MethodCompleteMultipartite, parts); err != nil {
			return err
		}
		var (
			total int
			owner []int
			p, i  int
		)
		for _, p = range parts {
			total += p
		}
		owner = make([]int, 0, total)
		for p = range parts {
			for i = 0; i < parts[p]; i++ {
				owner = append(owner, p)
			}
		}

		first := b.AddVertices(total)
		for i = 0; i < total; i++ {
			for j := i + 1; j < total; j++ {
				if owner[i] == owner[j] {
					continue
				}
				if err := addEdge(MethodCompleteMultipartite, b, first+i, first+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
