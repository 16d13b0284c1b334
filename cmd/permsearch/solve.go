package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"permSearch/internal/config"
	"permSearch/internal/driver"
	"permSearch/internal/problem"
	"permSearch/internal/report"
)

func runAnneal(c *cli.Context) error {
	file, err := config.Load(c.String("config"))
	if err != nil {
		return configError("%v", err)
	}
	if c.IsSet("t0") {
		file.Annealing.InitialTemp = c.Float64("t0")
	}
	if c.IsSet("tmin") {
		file.Annealing.FinalTemp = c.Float64("tmin")
	}
	if c.IsSet("alpha") {
		file.Annealing.Alpha = c.Float64("alpha")
	}
	if c.IsSet("max-iter") {
		file.Annealing.MaxIterations = c.Int("max-iter")
	}

	d := driver.New(driver.EngineAnnealing, seedFrom(c, file))
	d.Annealing = file.AnnealingConfig()
	if err := d.Annealing.Validate(); err != nil {
		return configError("алгоритм имитации отжига: %v", err)
	}
	return solve(c, d, problem.ExampleDurations5, "Iteration")
}

func runGenetic(c *cli.Context) error {
	file, err := config.Load(c.String("config"))
	if err != nil {
		return configError("%v", err)
	}
	g := &file.Genetic
	if c.IsSet("pop") {
		g.Population = c.Int("pop")
	}
	if c.IsSet("gen") {
		g.Generations = c.Int("gen")
	}
	if c.IsSet("elite") {
		g.Elite = c.Int("elite")
	}
	if c.IsSet("cx") {
		g.CrossoverRate = c.Float64("cx")
	}
	if c.IsSet("mut") {
		g.MutationRate = c.Float64("mut")
	}
	if c.IsSet("selection") {
		g.Selection = c.String("selection")
	}
	if c.IsSet("crossover") {
		g.Crossover = c.String("crossover")
	}
	if c.IsSet("tournament") {
		g.TournamentSize = c.Int("tournament")
	}
	if c.IsSet("eps") {
		g.FitnessEpsilon = c.Float64("eps")
	}

	d := driver.New(driver.EngineGenetic, seedFrom(c, file))
	d.Genetic, err = file.GeneticConfig()
	if err != nil {
		return configError("генетический алгоритм: %v", err)
	}
	if err := d.Genetic.Validate(); err != nil {
		return configError("генетический алгоритм: %v", err)
	}
	return solve(c, d, problem.ExampleDurations12, "Generation")
}

func solve(c *cli.Context, d driver.Driver, defaultDurations []int, xLabel string) error {
	logger := newLogger(c)

	p, err := loadProblem(c, defaultDurations)
	if err != nil {
		return configError("%v", err)
	}
	d.Observer = report.LogObserver(logger, d.Engine.String(), c.Int("log-every"))

	ctx := context.Background()
	if t := c.Duration("timeout"); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	logger.Info("search started",
		"engine", d.Engine.String(), "problem", p.Name(), "size", p.Size(), "seed", d.Seed)

	res, err := d.Run(ctx, p)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logger.Warn("search stopped early, reporting best so far", "err", err, "iterations", res.Iterations)
	case err != nil:
		return err
	}

	if err := report.WriteSummary(os.Stdout, d.Engine.String(), res); err != nil {
		return err
	}

	if path := c.String("plot"); path != "" {
		title := fmt.Sprintf("%s on %s (n=%d)", d.Engine, p.Name(), p.Size())
		if err := report.PlotHistory(res.History, title, xLabel, path); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		logger.Info("cost history saved", "path", path)
	}
	return nil
}

func seedFrom(c *cli.Context, file config.File) int64 {
	if c.IsSet("seed") {
		return c.Int64("seed")
	}
	return file.Seed
}

func loadProblem(c *cli.Context, defaultDurations []int) (problem.Problem, error) {
	switch kind := c.String("problem"); kind {
	case "jobs":
		if s := c.String("durations"); s != "" {
			d, err := parseFloats(s)
			if err != nil {
				return nil, err
			}
			return asProblem(problem.NewJobs(d))
		}
		return asProblem(problem.NewJobs(defaultDurations))
	case "tour":
		if path := c.String("matrix"); path != "" {
			m, err := config.LoadMatrix(path)
			if err != nil {
				return nil, err
			}
			return asProblem(problem.NewTour(m))
		}
		return asProblem(problem.NewTour(problem.ExampleMatrix4))
	default:
		return nil, fmt.Errorf("неизвестный тип задачи %q (jobs | tour)", kind)
	}
}

// asProblem keeps a failed constructor from producing a non-nil interface around a nil pointer.
func asProblem[P problem.Problem](p P, err error) (problem.Problem, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("длительность %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
