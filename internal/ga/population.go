package ga

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"permSearch/internal/problem"
)

// Individual — перестановка и её стоимость, вычисленная задачей.
type Individual struct {
	Perm []int
	Cost float64
}

type Population []Individual

// Best возвращает индекс особи с минимальной стоимостью (первой при равенстве).
func (p Population) Best() int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i].Cost < p[best].Cost {
			best = i
		}
	}
	return best
}

func (p Population) MeanCost() float64 {
	costs := make([]float64, len(p))
	for i, ind := range p {
		costs[i] = ind.Cost
	}
	return stat.Mean(costs, nil)
}

// fitness = 1/cost. При eps > 0 используется 1/(cost+eps), иначе нулевая
// стоимость — ошибка problem.ErrDegenerateFitness.
func fitness(cost, eps float64) (float64, error) {
	if eps > 0 {
		return 1 / (cost + eps), nil
	}
	if cost <= 0 {
		return 0, fmt.Errorf("%w: стоимость %v", problem.ErrDegenerateFitness, cost)
	}
	return 1 / cost, nil
}

func fitnessInto(dst []float64, pop Population, eps float64) error {
	for i, ind := range pop {
		f, err := fitness(ind.Cost, eps)
		if err != nil {
			return err
		}
		dst[i] = f
	}
	return nil
}
