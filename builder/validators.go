// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a method-prefixed error wrapping a sentinel
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateParts checks that every part size is ≥ MinPartition and that
// there is at least one part.
//
// Complexity: O(len(parts)).
func validateParts(method string, parts []int) error {
	if len(parts) == 0 {
		return fmt.Errorf("%s: no parts: %w", method, ErrTooFewVertices)
	}
	for i, p := range parts {
		if p < MinPartition {
			return fmt.Errorf("%s: part #%d size=%d < min=%d: %w", method, i, p, MinPartition, ErrTooFewVertices)
		}
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
