package problem

import "fmt"

// ValidatePermutation checks that perm holds every index of 0..n-1 exactly once.
// Errors match ErrInvalidPermutation.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: length must be %d (got %d)", ErrInvalidPermutation, n, len(perm))
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: perm[%d]=%d out of range [0,%d)", ErrInvalidPermutation, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate index %d", ErrInvalidPermutation, v)
		}
		seen[v] = true
	}
	return nil
}

// checkOrder is ValidatePermutation for the cost models: the error also
// matches ErrInvalidInput, since a bad order is bad input to a cost function.
func checkOrder(order []int, n int) error {
	if err := ValidatePermutation(order, n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
