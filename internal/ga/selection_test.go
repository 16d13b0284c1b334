package ga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"permSearch/internal/perm"
	"permSearch/internal/problem"
	"permSearch/internal/rng"
)

// fixedDraw returns the same uniform value on every call.
type fixedDraw float64

func (f fixedDraw) Float64() float64 { return float64(f) }
func (f fixedDraw) Intn(n int) int   { return 0 }

func identicalPopulation(size int) (Population, []float64) {
	p := []int{2, 0, 1, 3}
	pop := make(Population, size)
	fit := make([]float64, size)
	for i := range pop {
		pop[i] = Individual{Perm: perm.Clone(p), Cost: 10}
		fit[i] = 0.1
	}
	return pop, fit
}

func TestSpin(t *testing.T) {
	w := []float64{1, 2, 3}
	require.Equal(t, 0, spin(w, 0))
	require.Equal(t, 0, spin(w, 1))
	require.Equal(t, 1, spin(w, 1.0001))
	require.Equal(t, 2, spin(w, 6))
}

func TestSpin_OvershootFallsBackToLast(t *testing.T) {
	require.Equal(t, 2, spin([]float64{1, 2, 3}, 6.0000001))
	require.Equal(t, 3, spin([]float64{0.1, 0.2, 0.3, 0.4}, 2))
}

func TestRoulette_OvershootReturnsLast(t *testing.T) {
	pop, _ := identicalPopulation(4)
	fit := []float64{0.5, 0.1, 0.3, 0.2}
	// A draw past the total makes the cumulative walk select nothing.
	require.Equal(t, 3, Roulette{}.Select(pop, fit, fixedDraw(1.5)))
	require.Equal(t, 0, Roulette{}.Select(pop, fit, fixedDraw(0)))
}

func TestRank_OvershootReturnsBest(t *testing.T) {
	pop, _ := identicalPopulation(3)
	fit := []float64{0.1, 0.5, 0.2}
	require.Equal(t, 1, Rank{}.Select(pop, fit, fixedDraw(1.5)))
	// The lowest draw lands on the worst individual (rank 1).
	require.Equal(t, 0, Rank{}.Select(pop, fit, fixedDraw(0)))
}

func TestAverageRanks(t *testing.T) {
	order, ranks := averageRanks([]float64{0.2, 0.1, 0.2, 0.3})
	require.Equal(t, []int{1, 0, 2, 3}, order)
	require.Equal(t, []float64{1, 2.5, 2.5, 4}, ranks)

	_, ranks = averageRanks([]float64{0.4, 0.4, 0.4})
	require.Equal(t, []float64{2, 2, 2}, ranks)

	order, ranks = averageRanks([]float64{3, 1, 2})
	require.Equal(t, []int{1, 2, 0}, order)
	require.Equal(t, []float64{1, 2, 3}, ranks)
}

// TestIdenticalPopulationSelectsUniformly checks both fitness-based selectors.
func TestIdenticalPopulationSelectsUniformly(t *testing.T) {
	const (
		size  = 5
		draws = 50_000
	)
	for _, sel := range []Selector{Roulette{}, Rank{}} {
		pop, fit := identicalPopulation(size)
		src := rng.New(7)
		counts := make([]int, size)
		for i := 0; i < draws; i++ {
			counts[sel.Select(pop, fit, src)]++
		}
		expected := float64(draws) / size
		for i, c := range counts {
			require.InDelta(t, expected, float64(c), expected*0.1, "%T index %d counts %v", sel, i, counts)
		}
	}
}

func TestRank_PrefersFitter(t *testing.T) {
	pop, _ := identicalPopulation(3)
	fit := []float64{1, 2, 3}
	src := rng.New(3)
	counts := make([]int, 3)
	for i := 0; i < 30_000; i++ {
		counts[Rank{}.Select(pop, fit, src)]++
	}
	// Ranks 1:2:3 give probabilities 1/6, 2/6, 3/6.
	require.InDelta(t, 5_000, counts[0], 500)
	require.InDelta(t, 10_000, counts[1], 700)
	require.InDelta(t, 15_000, counts[2], 700)
}

func TestTournament_PicksLowestCost(t *testing.T) {
	pop := Population{{Cost: 9}, {Cost: 3}, {Cost: 7}}
	src := rng.New(1)
	for i := 0; i < 20; i++ {
		require.Equal(t, 1, Tournament{Size: 64}.Select(pop, nil, src))
	}
}

func TestFitness(t *testing.T) {
	f, err := fitness(4, 0)
	require.NoError(t, err)
	require.Equal(t, 0.25, f)

	_, err = fitness(0, 0)
	require.ErrorIs(t, err, problem.ErrDegenerateFitness)

	f, err = fitness(0, 0.5)
	require.NoError(t, err)
	require.Equal(t, 2.0, f)
}

func TestPopulationBest(t *testing.T) {
	pop := Population{{Cost: 5}, {Cost: 2}, {Cost: 2}, {Cost: 8}}
	require.Equal(t, 1, pop.Best())
	require.InDelta(t, 4.25, pop.MeanCost(), 1e-12)
}
