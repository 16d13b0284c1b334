package problem

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any scalar usable as a duration or a distance.
type Number interface {
	constraints.Integer | constraints.Float
}

// CumulativeFlowTime returns the sum of completion times of the tasks
// processed on a single machine in the given order.
func CumulativeFlowTime[T Number](durations []T, order []int) (T, error) {
	if err := validateDurations(durations); err != nil {
		return 0, err
	}
	if err := checkOrder(order, len(durations)); err != nil {
		return 0, err
	}
	return flowTime(durations, order), nil
}

// TourDistance returns the length of the closed tour visiting the cities in
// order and returning from the last one to the first. The matrix may be asymmetric.
func TourDistance[T Number](matrix [][]T, order []int) (T, error) {
	if err := validateMatrix(matrix); err != nil {
		return 0, err
	}
	if err := checkOrder(order, len(matrix)); err != nil {
		return 0, err
	}
	return tourLength(matrix, order), nil
}

func flowTime[T Number](durations []T, order []int) T {
	var total, cumul T
	for _, task := range order {
		cumul += durations[task]
		total += cumul
	}
	return total
}

func tourLength[T Number](matrix [][]T, order []int) T {
	var total T
	n := len(order)
	for i, from := range order {
		total += matrix[from][order[(i+1)%n]]
	}
	return total
}

func validateDurations[T Number](durations []T) error {
	if len(durations) == 0 {
		return fmt.Errorf("%w: no durations", ErrInvalidInput)
	}
	for i, d := range durations {
		if d < 0 || !isFinite(d) {
			return fmt.Errorf("%w: durations[%d]=%v must be finite and >= 0", ErrInvalidInput, i, d)
		}
	}
	return nil
}

func validateMatrix[T Number](matrix [][]T) error {
	n := len(matrix)
	if n == 0 {
		return fmt.Errorf("%w: empty distance matrix", ErrInvalidInput)
	}
	for i, row := range matrix {
		if len(row) != n {
			return fmt.Errorf("%w: matrix must be square, row %d has %d columns (want %d)", ErrInvalidInput, i, len(row), n)
		}
		for j, d := range row {
			if i == j {
				continue
			}
			if d < 0 || !isFinite(d) {
				return fmt.Errorf("%w: distance[%d][%d]=%v must be finite and >= 0", ErrInvalidInput, i, j, d)
			}
		}
	}
	return nil
}

func isFinite[T Number](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
