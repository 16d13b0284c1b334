package report

import (
	"fmt"
	"io"

	"permSearch/internal/opt"
)

// WriteSummary prints the best permutation and its cost.
func WriteSummary(w io.Writer, engine string, res opt.Result) error {
	_, err := fmt.Fprintf(w,
		"%s: best order %v\n  initial cost: %g\n  best cost:    %g\n  evaluations:  %d, iterations: %d, time: %s\n",
		engine, res.Permutation, res.InitialCost, res.Cost,
		res.Evaluations, res.Iterations, res.Duration,
	)
	return err
}
