// Package rng holds the random source threaded through every search run.
//
// A run owns exactly one Source, built from an explicit seed at the driver
// boundary, so a seed fully determines the run. *rand.Rand satisfies Source;
// it is not safe for concurrent use and must not be shared between runs.
package rng

import "math/rand"

// Source is the subset of *rand.Rand the search engines consume.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// New returns a deterministic generator for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a draw in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Shuffle permutes p in place (Fisher–Yates).
func Shuffle(src Source, p []int) {
	for i := len(p) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// Sample returns k distinct indices drawn uniformly from [0, n), in draw order.
// It panics unless 0 <= k <= n.
func Sample(src Source, n, k int) []int {
	if k < 0 || k > n {
		panic("rng: sample size out of range")
	}
	// Partial Fisher–Yates over a lazily materialized identity.
	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		out[i] = at(j)
		swapped[j] = at(i)
	}
	return out
}

// Pair returns two distinct uniform indices in [0, n). It panics if n < 2.
func Pair(src Source, n int) (int, int) {
	if n < 2 {
		panic("rng: pair needs n >= 2")
	}
	i := src.Intn(n)
	j := src.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
