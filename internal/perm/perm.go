// Package perm implements the permutation operators shared by the search
// engines. Every operator returns a valid permutation of 0..n-1 when its
// inputs are valid permutations of the same length; only Swap works in place.
package perm

import "permSearch/internal/rng"

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Random returns a uniformly shuffled permutation of 0..n-1.
func Random(n int, src rng.Source) []int {
	p := Identity(n)
	rng.Shuffle(src, p)
	return p
}

// Clone returns an independent copy of p.
func Clone(p []int) []int {
	out := make([]int, len(p))
	copy(out, p)
	return out
}

// Swap exchanges two distinct, uniformly chosen positions of p in place.
// Permutations shorter than 2 are left untouched.
func Swap(p []int, src rng.Source) {
	if len(p) < 2 {
		return
	}
	i, j := rng.Pair(src, len(p))
	p[i], p[j] = p[j], p[i]
}
