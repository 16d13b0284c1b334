package ga

import (
	"fmt"
	"strings"

	"permSearch/internal/perm"
	"permSearch/internal/rng"
)

// CrossoverMethod - оператор кроссовера.
type CrossoverMethod int

const (
	CrossoverSinglePoint CrossoverMethod = iota
	CrossoverTwoPoint
	CrossoverUniform
	CrossoverOrder
)

var crossoverNames = map[CrossoverMethod]string{
	CrossoverSinglePoint: "single-point",
	CrossoverTwoPoint:    "two-point",
	CrossoverUniform:     "uniform",
	CrossoverOrder:       "order",
}

func (m CrossoverMethod) String() string {
	if s, ok := crossoverNames[m]; ok {
		return s
	}
	return fmt.Sprintf("crossover(%d)", int(m))
}

func (m CrossoverMethod) valid() bool {
	_, ok := crossoverNames[m]
	return ok
}

// ParseCrossover принимает имена из String() и короткие формы "1point", "2points", "uniforme", "ox".
func ParseCrossover(s string) (CrossoverMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single-point", "1point", "one-point":
		return CrossoverSinglePoint, nil
	case "two-point", "2points", "2point":
		return CrossoverTwoPoint, nil
	case "uniform", "uniforme":
		return CrossoverUniform, nil
	case "order", "ox":
		return CrossoverOrder, nil
	}
	return 0, fmt.Errorf("неизвестный оператор кроссовера %q", s)
}

// Crossover объединяет двух родителей в одного потомка.
// Результат всегда является корректной перестановкой.
type Crossover interface {
	Cross(p1, p2 []int, src rng.Source) []int
}

// CrossoverFunc адаптирует функцию к интерфейсу Crossover.
type CrossoverFunc func(p1, p2 []int, src rng.Source) []int

func (f CrossoverFunc) Cross(p1, p2 []int, src rng.Source) []int { return f(p1, p2, src) }

// NewCrossover возвращает стратегию для выбранного оператора.
func NewCrossover(m CrossoverMethod) (Crossover, error) {
	switch m {
	case CrossoverSinglePoint:
		return CrossoverFunc(perm.SinglePoint), nil
	case CrossoverTwoPoint:
		return CrossoverFunc(perm.TwoPoint), nil
	case CrossoverUniform:
		return CrossoverFunc(perm.Uniform), nil
	case CrossoverOrder:
		return CrossoverFunc(perm.Order), nil
	}
	return nil, fmt.Errorf("неизвестный оператор кроссовера %d", int(m))
}
