package sa

import (
	"context"
	"fmt"
	"math"
	"time"

	"permSearch/internal/opt"
	"permSearch/internal/perm"
	"permSearch/internal/problem"
	"permSearch/internal/rng"
)

// maxHistoryPrealloc ограничивает начальную ёмкость истории; длинные расписания растят её через append.
const maxHistoryPrealloc = 1 << 16

// Solver - структура реализации алгоритма имитации отжига
type Solver struct {
	Cfg Config
	Rng rng.Source

	// Observer вызывается после каждой итерации (необязательный).
	Observer opt.Observer
}

// New возвращает новый SA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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

	if p == nil {
		return opt.Result{}, fmt.Errorf("%w: задача не задана (nil)", problem.ErrInvalidInput)
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	n := p.Size()
	if n < 2 {
		return opt.Result{}, fmt.Errorf("%w: размер задачи должен быть >= 2 (получено %d)", problem.ErrInvalidInput, n)
	}

	// Текущее решение и лучшее найденное (инкумбент)
	curr := perm.Random(n, s.Rng)
	currCost, err := p.Cost(curr)
	if err != nil {
		return opt.Result{}, err
	}
	best := perm.Clone(curr)
	bestCost := currCost
	initialCost := currCost

	history := make([]float64, 0, min(s.Cfg.PlannedIterations(), maxHistoryPrealloc))
	evals := 1
	iter := 0
	T := s.Cfg.InitialTemp

	// Кандидатное решение переиспользуется между итерациями
	cand := make([]int, n)

	for T > s.Cfg.FinalTemp {
		if s.Cfg.MaxIterations > 0 && iter >= s.Cfg.MaxIterations {
			break
		}

		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			res := opt.NewResult(best, bestCost, initialCost, history, evals, iter,
				map[string]any{"stopped": "context", "T": T})
			res.Duration = time.Since(start)
			return res, err
		}

		// Окрестность на основе обмена двух элементов
		copy(cand, curr)
		perm.Swap(cand, s.Rng)

		candCost, err := p.Cost(cand)
		if err != nil {
			return opt.Result{}, err
		}
		evals++

		if accept(candCost-currCost, T, s.Rng) {
			// Обмен ролей текущего и кандидатного решений
			curr, cand = cand, curr
			currCost = candCost

			// Инкумбент обновляется только при строгом улучшении
			if currCost < bestCost {
				bestCost = currCost
				copy(best, curr)
			}
		}

		history = append(history, bestCost)
		s.Observer.Notify(opt.Progress{
			Iteration:   iter,
			Temperature: T,
			CurrentCost: currCost,
			BestCost:    bestCost,
		})

		// Охлаждение температуры
		T *= s.Cfg.Alpha
		iter++
	}

	res := opt.NewResult(best, bestCost, initialCost, history, evals, iter,
		map[string]any{
			"initial_temp": s.Cfg.InitialTemp,
			"final_temp":   s.Cfg.FinalTemp,
			"alpha":        s.Cfg.Alpha,
			"last_temp":    T,
		})
	res.Duration = time.Since(start)
	return res, nil
}

// accept - критерий Метрополиса: улучшение принимается всегда,
// ухудшение на delta — с вероятностью exp(-delta/T).
func accept(delta, T float64, src rng.Source) bool {
	if delta < 0 {
		return true
	}
	return src.Float64() < math.Exp(-delta/T)
}
