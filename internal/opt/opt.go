package opt

import (
	"context"
	"time"

	"permSearch/internal/problem"
)

type Optimizer interface {
	Solve(ctx context.Context, p problem.Problem) (Result, error)
}

type Result struct {
	Permutation []int
	Cost        float64
	// InitialCost is the best cost before the first iteration or generation.
	InitialCost float64
	// History is the best cost after each iteration (annealing) or at the
	// start of each generation (genetic). It is never read by the engines.
	History     []float64
	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}

// Progress is one observation emitted by an engine. Fields that do not
// apply to an engine are left zero.
type Progress struct {
	Iteration      int
	Temperature    float64
	CurrentCost    float64
	BestCost       float64
	MeanCost       float64
	PopulationSize int
}

// Observer receives progress synchronously from the search loop.
type Observer func(Progress)

// Notify calls o if it is set.
func (o Observer) Notify(p Progress) {
	if o != nil {
		o(p)
	}
}

// NewResult copies perm and history so the result does not alias engine buffers.
func NewResult(perm []int, cost, initial float64, history []float64, evals, iters int, meta map[string]any) Result {
	permCopy := make([]int, len(perm))
	copy(permCopy, perm)
	histCopy := make([]float64, len(history))
	copy(histCopy, history)
	return Result{
		Permutation: permCopy,
		Cost:        cost,
		InitialCost: initial,
		History:     histCopy,
		Evaluations: evals,
		Iterations:  iters,
		Meta:        meta,
	}
}
