package ga

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"permSearch/internal/rng"
)

// Selection - метод отбора родителей.
type Selection int

const (
	SelectionRoulette Selection = iota
	SelectionRank
	SelectionTournament
)

var selectionNames = map[Selection]string{
	SelectionRoulette:   "roulette",
	SelectionRank:       "rank",
	SelectionTournament: "tournament",
}

func (s Selection) String() string {
	if name, ok := selectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("selection(%d)", int(s))
}

func (s Selection) valid() bool {
	_, ok := selectionNames[s]
	return ok
}

// usesFitness сообщает, читает ли метод отбора значения приспособленности.
func (s Selection) usesFitness() bool {
	return s == SelectionRoulette || s == SelectionRank
}

// ParseSelection принимает имена из String() и форму "rang".
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roulette":
		return SelectionRoulette, nil
	case "rank", "rang":
		return SelectionRank, nil
	case "tournament":
		return SelectionTournament, nil
	}
	return 0, fmt.Errorf("неизвестный метод отбора %q", s)
}

// Selector выбирает индекс родителя в популяции.
// fitness[i] — приспособленность pop[i] (больше — лучше).
type Selector interface {
	Select(pop Population, fitness []float64, src rng.Source) int
}

// NewSelector возвращает стратегию отбора из конфигурации.
func NewSelector(cfg Config) (Selector, error) {
	switch cfg.Selection {
	case SelectionRoulette:
		return Roulette{}, nil
	case SelectionRank:
		return Rank{}, nil
	case SelectionTournament:
		return Tournament{Size: cfg.TournamentSize}, nil
	}
	return nil, fmt.Errorf("неизвестный метод отбора %d", int(cfg.Selection))
}

// Roulette — отбор, пропорциональный приспособленности.
type Roulette struct{}

func (Roulette) Select(_ Population, fitness []float64, src rng.Source) int {
	return spin(fitness, rng.Uniform(src, 0, floats.Sum(fitness)))
}

// Rank — отбор, пропорциональный рангу: худшая особь получает ранг 1,
// лучшая — P. Равные значения приспособленности делят средний ранг,
// поэтому популяция одинаковых особей отбирается равномерно.
type Rank struct{}

func (Rank) Select(_ Population, fitness []float64, src rng.Source) int {
	order, ranks := averageRanks(fitness)
	k := spin(ranks, rng.Uniform(src, 0, floats.Sum(ranks)))
	return order[k]
}

// Tournament — турнирный отбор: лучшая (минимальная стоимость) из Size случайных особей.
type Tournament struct {
	Size int
}

func (t Tournament) Select(pop Population, _ []float64, src rng.Source) int {
	best := src.Intn(len(pop))
	bestCost := pop[best].Cost
	for i := 1; i < t.Size; i++ {
		cand := src.Intn(len(pop))
		if pop[cand].Cost < bestCost {
			best = cand
			bestCost = pop[cand].Cost
		}
	}
	return best
}

// spin проходит накопленную сумму весов и возвращает первый индекс,
// на котором сумма достигает draw. Если из-за округления ни один индекс
// не подошёл, возвращается последний.
func spin(weights []float64, draw float64) int {
	var cum float64
	for i, w := range weights {
		cum += w
		if cum >= draw {
			return i
		}
	}
	return len(weights) - 1
}

// averageRanks сортирует индексы по возрастанию приспособленности и
// возвращает ранги в этом порядке (1..P, средний ранг для равных значений).
func averageRanks(fitness []float64) (order []int, ranks []float64) {
	n := len(fitness)
	order = make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fitness[order[a]] < fitness[order[b]]
	})

	ranks = make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && fitness[order[j+1]] == fitness[order[i]] {
			j++
		}
		// Позиции i..j получают среднее рангов i+1..j+1
		r := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[k] = r
		}
		i = j + 1
	}
	return order, ranks
}
