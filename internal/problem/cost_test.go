package problem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"permSearch/internal/perm"
	"permSearch/internal/problem"
	"permSearch/internal/rng"
)

func TestTourDistance_IdentityExample(t *testing.T) {
	d, err := problem.TourDistance(problem.ExampleMatrix4, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2+6+8+6, d)
}

func TestTourDistance_Asymmetric(t *testing.T) {
	// Reversed direction uses the transposed entries: 10 + 12 + 7 + 1.
	d, err := problem.TourDistance(problem.ExampleMatrix4, []int{0, 3, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 30, d)
}

func TestTourDistance_RotationInvariant(t *testing.T) {
	a, err := problem.TourDistance(problem.ExampleMatrix4, []int{0, 2, 3, 1})
	require.NoError(t, err)
	b, err := problem.TourDistance(problem.ExampleMatrix4, []int{3, 1, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 21, a)
	require.Equal(t, a, b)
}

func TestCumulativeFlowTime_Example(t *testing.T) {
	// Completion times 4, 10, 12, 19, 22.
	c, err := problem.CumulativeFlowTime(problem.ExampleDurations5, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 67, c)
}

func TestCumulativeFlowTime_MatchesPositionWeights(t *testing.T) {
	src := rng.New(42)
	durations := problem.ExampleDurations12
	n := len(durations)
	for trial := 0; trial < 200; trial++ {
		order := perm.Random(n, src)
		got, err := problem.CumulativeFlowTime(durations, order)
		require.NoError(t, err)

		want := 0
		for i, task := range order {
			want += (n - i) * durations[task]
		}
		require.Equal(t, want, got, "order %v", order)
	}
}

func TestCostModels_Deterministic(t *testing.T) {
	order := []int{3, 1, 0, 2}
	for i := 0; i < 3; i++ {
		d, err := problem.TourDistance(problem.ExampleMatrix4, order)
		require.NoError(t, err)
		require.Equal(t, 3+1+9+8, d)

		c, err := problem.CumulativeFlowTime([]float64{1.5, 2, 0.5, 4}, order)
		require.NoError(t, err)
		require.InDelta(t, 4+6+7.5+8, c, 1e-12)
	}
	// Inputs are not modified.
	require.Equal(t, []int{3, 1, 0, 2}, order)
}

func TestCostModels_InvalidOrder(t *testing.T) {
	orders := map[string][]int{
		"short":        {0, 1, 2},
		"long":         {0, 1, 2, 3, 4},
		"duplicate":    {0, 1, 1, 3},
		"out of range": {0, 1, 2, 4},
		"negative":     {0, -1, 2, 3},
		"empty":        {},
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			_, err := problem.TourDistance(problem.ExampleMatrix4, order)
			require.ErrorIs(t, err, problem.ErrInvalidInput)
			require.ErrorIs(t, err, problem.ErrInvalidPermutation)

			_, err = problem.CumulativeFlowTime([]int{1, 2, 3, 4}, order)
			require.ErrorIs(t, err, problem.ErrInvalidInput)
			require.ErrorIs(t, err, problem.ErrInvalidPermutation)
		})
	}
}

func TestCostModels_InvalidInstance(t *testing.T) {
	_, err := problem.CumulativeFlowTime([]int{}, []int{})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.CumulativeFlowTime([]int{3, -1}, []int{0, 1})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.CumulativeFlowTime([]float64{3, math.NaN()}, []int{0, 1})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.CumulativeFlowTime([]float64{math.Inf(1), 2}, []int{0, 1})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.TourDistance([][]float64{{0, math.Inf(1)}, {1, 0}}, []int{0, 1})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.NewJobs([]float64{1, math.Inf(1), 3})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.TourDistance([][]int{}, []int{})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.TourDistance([][]int{{0, 1}, {1}}, []int{0, 1})
	require.ErrorIs(t, err, problem.ErrInvalidInput)

	_, err = problem.TourDistance([][]int{{0, 1}, {-2, 0}}, []int{0, 1})
	require.ErrorIs(t, err, problem.ErrInvalidInput)
	require.NotErrorIs(t, err, problem.ErrInvalidPermutation)
}

func TestTourDistance_DiagonalIgnored(t *testing.T) {
	d, err := problem.TourDistance([][]float64{{-5, 1}, {2, math.NaN()}}, []int{1, 0})
	require.NoError(t, err)
	require.Equal(t, 3.0, d)
}
