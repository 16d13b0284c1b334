package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"permSearch/internal/opt"
	"permSearch/internal/problem"
	"permSearch/internal/rng"
)

type Algorithm struct {
	Name    string
	Factory func(seed int64) (opt.Optimizer, error)
}

// Kind selects the random instance family of a Case.
type Kind string

const (
	KindJobs Kind = "jobs"
	KindTour Kind = "tour"
)

type Case struct {
	Kind         Kind
	Size         int
	InstanceSeed int64
}

// Instance generates the case's problem deterministically from InstanceSeed.
func (c Case) Instance() (problem.Problem, error) {
	if c.Size < 2 {
		return nil, fmt.Errorf("%w: case size must be >= 2 (got %d)", problem.ErrInvalidInput, c.Size)
	}
	src := rng.New(c.InstanceSeed)
	switch c.Kind {
	case KindJobs:
		return problem.RandomJobs(c.Size, 1, 99, src), nil
	case KindTour:
		return problem.RandomTour(c.Size, 100, src), nil
	}
	return nil, fmt.Errorf("unknown case kind %q", c.Kind)
}

type Record struct {
	RunID string
	Algo  string
	Kind  Kind
	Size  int
	Runs  int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	CostBest float64
	CostMean float64
	CostStd  float64

	Host string
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
	// Workers bounds how many independent runs execute at once (<= 1: sequential).
	// Each run owns its generator, so results do not depend on Workers.
	Workers int
	Host    Host
}

type runOutcome struct {
	index  int
	cost   float64
	timeMs float64
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	if r.Runs <= 0 {
		return Record{}, fmt.Errorf("runs must be > 0 (got %d)", r.Runs)
	}
	inst, err := c.Instance()
	if err != nil {
		return Record{}, err
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	p := pool.NewWithResults[runOutcome]().
		WithContext(ctx).
		WithMaxGoroutines(workers).
		WithCancelOnError()

	for i := 0; i < r.Runs; i++ {
		p.Go(func(ctx context.Context) (runOutcome, error) {
			return r.runOnce(ctx, inst, algo, i)
		})
	}
	outcomes, err := p.Wait()
	if err != nil {
		return Record{}, err
	}
	sort.Slice(outcomes, func(a, b int) bool { return outcomes[a].index < outcomes[b].index })

	costs := make([]float64, len(outcomes))
	timesMs := make([]float64, len(outcomes))
	for i, o := range outcomes {
		costs[i] = o.cost
		timesMs[i] = o.timeMs
	}

	cStats := CalcStats(costs)
	tStats := CalcStats(timesMs)

	return Record{
		RunID: uuid.New().String(),
		Algo:  algo.Name,
		Kind:  c.Kind,
		Size:  c.Size,
		Runs:  r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		CostBest: cStats.Best,
		CostMean: cStats.Mean,
		CostStd:  cStats.Std,

		Host: r.Host.String(),
	}, nil
}

func (r Runner) runOnce(ctx context.Context, inst problem.Problem, algo Algorithm, i int) (runOutcome, error) {
	runSeed := r.BaseSeed + int64(i)

	op, err := algo.Factory(runSeed)
	if err != nil {
		return runOutcome{}, fmt.Errorf("run %d: build optimizer: %w", i, err)
	}

	runCtx := ctx
	cancel := func() {}
	if r.PerRunTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
	}
	start := time.Now()
	res, err := op.Solve(runCtx, inst)
	dur := time.Since(start)
	cancel()

	if err != nil && runCtx.Err() != nil {
		return runOutcome{}, fmt.Errorf("run %d: cancelled/timeout: %w", i, err)
	}
	if err != nil {
		return runOutcome{}, fmt.Errorf("run %d: solve error: %w", i, err)
	}
	if err := problem.ValidatePermutation(res.Permutation, inst.Size()); err != nil {
		return runOutcome{}, fmt.Errorf("run %d: %w", i, err)
	}

	return runOutcome{
		index:  i,
		cost:   res.Cost,
		timeMs: float64(dur.Microseconds()) / 1000.0,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if dir := dirOf(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"run_id", "algo", "problem", "size", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"cost_best", "cost_mean", "cost_std",
		"host",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.RunID,
			r.Algo,
			string(r.Kind),
			itoa(r.Size),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.CostBest),
			ftoa(r.CostMean),
			ftoa(r.CostStd),

			r.Host,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
