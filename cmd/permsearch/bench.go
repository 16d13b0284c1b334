package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli"

	"permSearch/internal/bench"
	"permSearch/internal/config"
	"permSearch/internal/driver"
)

func runBench(c *cli.Context) error {
	logger := newLogger(c)

	file, err := config.Load(c.String("config"))
	if err != nil {
		return configError("%v", err)
	}
	b := &file.Bench
	if c.IsSet("runs") {
		b.Runs = c.Int("runs")
	}
	if c.IsSet("seed") {
		b.BaseSeed = c.Int64("seed")
	}
	if c.IsSet("instance-seed") {
		b.InstanceSeed = c.Int64("instance-seed")
	}
	if c.IsSet("workers") {
		b.Workers = c.Int("workers")
	}
	if c.IsSet("per-run-timeout") {
		b.PerRunTimeout = c.Duration("per-run-timeout")
	}
	if c.IsSet("cases") {
		b.Cases = splitCSV(c.String("cases"))
	}
	if c.IsSet("algos") {
		b.Algos = splitCSV(c.String("algos"))
	}
	if c.IsSet("out") {
		b.Out = c.String("out")
	}
	if b.Runs <= 0 {
		return configError("runs должно быть > 0 (получено %d)", b.Runs)
	}

	cases, err := file.BenchCases()
	if err != nil {
		return configError("%v", err)
	}

	saDriver := driver.New(driver.EngineAnnealing, 0)
	saDriver.Annealing = file.AnnealingConfig()
	if err := saDriver.Annealing.Validate(); err != nil {
		return configError("алгоритм имитации отжига: %v", err)
	}
	gaDriver := driver.New(driver.EngineGenetic, 0)
	if gaDriver.Genetic, err = file.GeneticConfig(); err != nil {
		return configError("генетический алгоритм: %v", err)
	}
	if err := gaDriver.Genetic.Validate(); err != nil {
		return configError("генетический алгоритм: %v", err)
	}

	available := map[string]bench.Algorithm{
		"SA": {Name: "SA", Factory: saDriver.Factory()},
		"GA": {Name: "GA", Factory: gaDriver.Factory()},
	}

	var selected []bench.Algorithm
	for _, a := range b.Algos {
		al, ok := available[strings.ToUpper(a)]
		if !ok {
			return configError("алгоритм %q не предоставлен в программе; доступные: %v", a, keys(available))
		}
		selected = append(selected, al)
	}

	host := bench.DetectHost()
	logger.Info("benchmark host", "host", host.String())

	runner := bench.Runner{
		Runs:          b.Runs,
		BaseSeed:      b.BaseSeed,
		PerRunTimeout: b.PerRunTimeout,
		Workers:       b.Workers,
		Host:          host,
	}

	ctx := context.Background()
	var records []bench.Record
	for _, cs := range cases {
		for _, a := range selected {
			logger.Info("running", "algo", a.Name, "problem", string(cs.Kind), "size", cs.Size, "runs", runner.Runs)

			rec, err := runner.RunCase(ctx, cs, a)
			if err != nil {
				return err
			}
			records = append(records, rec)

			fmt.Printf("%s %s n=%d: стоимость лучшая=%.2f средняя=%.2f ст. откл.=%.2f | время среднее=%.2fms ст. откл.=%.2fms\n",
				a.Name, cs.Kind, cs.Size,
				rec.CostBest, rec.CostMean, rec.CostStd,
				rec.TimeMeanMs, rec.TimeStdMs,
			)
		}
	}

	if err := bench.WriteCSV(b.Out, records); err != nil {
		return fmt.Errorf("запись CSV: %w", err)
	}
	logger.Info("results saved", "path", b.Out)
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func keys(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
