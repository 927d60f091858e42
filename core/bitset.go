// File: bitset.go
// Role: fixed-width bit sets over vertex ids, used for adjacency rows and
// for the candidate sets of the coloring oracle, the reducer and GRASP.
// Determinism:
//   - ForEach and AppendTo visit members in ascending order.

package core

import "math/bits"

// Bitset is a fixed-width set of small non-negative integers.
// Rows returned by Graph.Row alias graph storage and must not be mutated.
type Bitset []uint64

// wordsFor returns the number of 64-bit words needed for n bits.
func wordsFor(n int) int { return (n + 63) >> 6 }

// NewBitset returns an empty set able to hold 0..n-1.
func NewBitset(n int) Bitset { return make(Bitset, wordsFor(n)) }

// BitsetOf returns a set of width n holding vs. Out-of-range members are ignored.
func BitsetOf(n int, vs []int) Bitset {
	s := NewBitset(n)
	for _, v := range vs {
		if v >= 0 && v < n {
			s.Add(v)
		}
	}

	return s
}

// Add inserts v.
func (s Bitset) Add(v int) { s[v>>6] |= 1 << (uint(v) & 63) }

// Remove deletes v.
func (s Bitset) Remove(v int) { s[v>>6] &^= 1 << (uint(v) & 63) }

// Has reports whether v is a member.
func (s Bitset) Has(v int) bool { return s[v>>6]&(1<<(uint(v)&63)) != 0 }

// Clear empties the set in place.
func (s Bitset) Clear() {
	for i := range s {
		s[i] = 0
	}
}

// Count returns the number of members.
//
// Complexity: O(words).
func (s Bitset) Count() int {
	var c int
	for _, w := range s {
		c += bits.OnesCount64(w)
	}

	return c
}

// Empty reports whether the set has no members.
func (s Bitset) Empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (s Bitset) Clone() Bitset {
	out := make(Bitset, len(s))
	copy(out, s)

	return out
}

// CopyFrom overwrites s with o; both must have the same width.
func (s Bitset) CopyFrom(o Bitset) { copy(s, o) }

// And keeps only members of s that are also in o.
func (s Bitset) And(o Bitset) {
	for i := range s {
		s[i] &= o[i]
	}
}

// AndNot removes members of o from s.
func (s Bitset) AndNot(o Bitset) {
	for i := range s {
		s[i] &^= o[i]
	}
}

// Intersects reports whether s and o share a member.
func (s Bitset) Intersects(o Bitset) bool {
	for i := range s {
		if s[i]&o[i] != 0 {
			return true
		}
	}

	return false
}

// AndCount returns |s ∩ o| without allocating.
func (s Bitset) AndCount(o Bitset) int {
	var c int
	for i := range s {
		c += bits.OnesCount64(s[i] & o[i])
	}

	return c
}

// ForEach calls fn for every member in ascending order.
func (s Bitset) ForEach(fn func(v int)) {
	var (
		i int
		w uint64
	)
	for i, w = range s {
		for w != 0 {
			fn(i<<6 + bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
}

// AppendTo appends the members in ascending order to dst.
func (s Bitset) AppendTo(dst []int) []int {
	s.ForEach(func(v int) { dst = append(dst, v) })

	return dst
}
