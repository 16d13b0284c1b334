package ga

import (
	"context"
	"fmt"
	"sort"
	"time"

	"permSearch/internal/opt"
	"permSearch/internal/perm"
	"permSearch/internal/problem"
	"permSearch/internal/rng"
)

// Solver — реализация генетического алгоритма для перестановочных задач.
type Solver struct {
	Cfg Config
	Rng rng.Source

	// Observer вызывается один раз за поколение (необязательный).
	Observer opt.Observer
}

// New возвращает новый GA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, src rng.Source) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: src}, nil
}

// Solve — реализация эвристики.
func (s *Solver) Solve(ctx context.Context, p problem.Problem) (opt.Result, error) {
	start := time.Now()

	// Проверка корректности входных данных и конфигурации
	if p == nil {
		return opt.Result{}, fmt.Errorf("%w: задача не задана (nil)", problem.ErrInvalidInput)
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	selector, err := NewSelector(s.Cfg)
	if err != nil {
		return opt.Result{}, err
	}
	crossover, err := NewCrossover(s.Cfg.Crossover)
	if err != nil {
		return opt.Result{}, err
	}

	n := p.Size()
	if n < 2 {
		return opt.Result{}, fmt.Errorf("%w: размер задачи должен быть >= 2 (получено %d)", problem.ErrInvalidInput, n)
	}
	popSize := s.Cfg.Population

	// Инициализация начальной популяции
	pop := make(Population, popSize)
	for i := range pop {
		ind, err := evaluate(p, perm.Random(n, s.Rng))
		if err != nil {
			return opt.Result{}, err
		}
		pop[i] = ind
	}
	evaluations := popSize
	initialCost := pop[pop.Best()].Cost

	history := make([]float64, 0, s.Cfg.Generations)
	var fit []float64
	if s.Cfg.Selection.usesFitness() {
		fit = make([]float64, popSize)
	}

	// Индексы для сортировки популяции по стоимости
	idxs := perm.Identity(popSize)

	for gen := 0; gen < s.Cfg.Generations; gen++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			b := pop.Best()
			res := opt.NewResult(pop[b].Perm, pop[b].Cost, initialCost, history, evaluations, gen,
				map[string]any{"stopped": "context"})
			res.Duration = time.Since(start)
			return res, err
		}

		// Турнирный отбор сравнивает стоимости и приспособленность не читает
		if fit != nil {
			if err := fitnessInto(fit, pop, s.Cfg.FitnessEpsilon); err != nil {
				return opt.Result{}, fmt.Errorf("поколение %d: %w", gen, err)
			}
		}

		// Сортировка индексов по возрастанию значения целевой функции
		sort.SliceStable(idxs, func(i, j int) bool {
			return pop[idxs[i]].Cost < pop[idxs[j]].Cost
		})

		next := make(Population, 0, popSize)

		// Элитизм (переносим лучших особей без изменений)
		for e := 0; e < s.Cfg.Elite; e++ {
			elite := pop[idxs[e]]
			next = append(next, Individual{Perm: perm.Clone(elite.Perm), Cost: elite.Cost})
		}
		bestCost := pop[idxs[0]].Cost
		history = append(history, bestCost)

		// Генерация остальных особей нового поколения
		for len(next) < popSize {
			p1 := pop[selector.Select(pop, fit, s.Rng)].Perm
			p2 := pop[selector.Select(pop, fit, s.Rng)].Perm

			// Кроссовер
			var child []int
			if s.Rng.Float64() < s.Cfg.CrossoverRate {
				child = crossover.Cross(p1, p2, s.Rng)
			} else {
				child = perm.Clone(p1)
			}

			// Мутация
			if s.Rng.Float64() < s.Cfg.MutationRate {
				perm.Swap(child, s.Rng)
			}

			// Оценка потомка; некорректная перестановка здесь — ошибка оператора
			ind, err := evaluate(p, child)
			if err != nil {
				return opt.Result{}, fmt.Errorf("поколение %d: %w", gen, err)
			}
			evaluations++
			next = append(next, ind)
		}

		s.Observer.Notify(opt.Progress{
			Iteration:      gen,
			BestCost:       bestCost,
			MeanCost:       pop.MeanCost(),
			PopulationSize: len(pop),
		})

		// Смена поколений
		pop = next
	}

	b := pop.Best()
	res := opt.NewResult(pop[b].Perm, pop[b].Cost, initialCost, history, evaluations, s.Cfg.Generations,
		map[string]any{
			"population":  s.Cfg.Population,
			"generations": s.Cfg.Generations,
			"elite":       s.Cfg.Elite,
			"selection":   s.Cfg.Selection.String(),
			"crossover":   s.Cfg.Crossover.String(),
		})
	res.Duration = time.Since(start)
	return res, nil
}

func evaluate(p problem.Problem, order []int) (Individual, error) {
	cost, err := p.Cost(order)
	if err != nil {
		return Individual{}, err
	}
	return Individual{Perm: order, Cost: cost}, nil
}
