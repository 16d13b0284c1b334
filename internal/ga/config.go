package ga

import (
	"fmt"
	"math"
)

type Config struct {
	Population    int
	Generations   int
	Elite         int
	CrossoverRate float64
	MutationRate  float64

	Selection Selection
	Crossover CrossoverMethod
	// TournamentSize используется только при SelectionTournament.
	TournamentSize int

	// FitnessEpsilon - сдвиг в fitness = 1/(cost+eps).
	// При 0 нулевая стоимость считается ошибкой (problem.ErrDegenerateFitness).
	FitnessEpsilon float64
}

func (c Config) Validate() error {
	if c.Population <= 1 {
		return fmt.Errorf(
			"размер популяции должен быть > 1 (получено %d)",
			c.Population,
		)
	}
	if c.Generations <= 0 {
		return fmt.Errorf(
			"количество поколений должно быть > 0 (получено %d)",
			c.Generations,
		)
	}
	if c.Elite < 1 || c.Elite >= c.Population {
		return fmt.Errorf(
			"число элитных особей должно быть в диапазоне [1, population) (получено %d)",
			c.Elite,
		)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf(
			"вероятность кроссовера должна быть в диапазоне [0,1] (получено %f)",
			c.CrossoverRate,
		)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf(
			"вероятность мутации должна быть в диапазоне [0,1] (получено %f)",
			c.MutationRate,
		)
	}
	if !c.Selection.valid() {
		return fmt.Errorf("неизвестный метод отбора %d", int(c.Selection))
	}
	if !c.Crossover.valid() {
		return fmt.Errorf("неизвестный оператор кроссовера %d", int(c.Crossover))
	}
	if c.Selection == SelectionTournament && c.TournamentSize <= 0 {
		return fmt.Errorf(
			"размер турнира должен быть > 0 (получено %d)",
			c.TournamentSize,
		)
	}
	if c.FitnessEpsilon < 0 || math.IsNaN(c.FitnessEpsilon) || math.IsInf(c.FitnessEpsilon, 0) {
		return fmt.Errorf(
			"FitnessEpsilon должно быть конечным и >= 0 (получено %f)",
			c.FitnessEpsilon,
		)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Population:     50,
		Generations:    200,
		Elite:          1,
		CrossoverRate:  0.80,
		MutationRate:   0.05,
		Selection:      SelectionRoulette,
		Crossover:      CrossoverTwoPoint,
		TournamentSize: 3,
	}
}
