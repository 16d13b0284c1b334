package problem

import "errors"

var (
	// ErrInvalidInput reports an empty or malformed instance: n < 2, a
	// non-square matrix, or a negative duration/distance.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPermutation reports a sequence that is not a bijection on 0..n-1.
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrDegenerateFitness reports a zero cost where fitness is 1/cost.
	ErrDegenerateFitness = errors.New("degenerate fitness: zero cost")
)
