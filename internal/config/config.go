// Package config loads run settings from a YAML file layered over the
// engine defaults. Absent keys keep their default values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"permSearch/internal/bench"
	"permSearch/internal/ga"
	"permSearch/internal/sa"
)

type File struct {
	Seed      int64     `yaml:"seed"`
	Annealing Annealing `yaml:"annealing"`
	Genetic   Genetic   `yaml:"genetic"`
	Bench     Bench     `yaml:"bench"`
}

type Annealing struct {
	InitialTemp   float64 `yaml:"initial_temp"`
	FinalTemp     float64 `yaml:"final_temp"`
	Alpha         float64 `yaml:"alpha"`
	MaxIterations int     `yaml:"max_iterations"`
}

type Genetic struct {
	Population     int     `yaml:"population"`
	Generations    int     `yaml:"generations"`
	Elite          int     `yaml:"elite"`
	CrossoverRate  float64 `yaml:"crossover_rate"`
	MutationRate   float64 `yaml:"mutation_rate"`
	Selection      string  `yaml:"selection"`
	Crossover      string  `yaml:"crossover"`
	TournamentSize int     `yaml:"tournament_size"`
	FitnessEpsilon float64 `yaml:"fitness_epsilon"`
}

type Bench struct {
	Runs          int           `yaml:"runs"`
	BaseSeed      int64         `yaml:"base_seed"`
	InstanceSeed  int64         `yaml:"instance_seed"`
	Workers       int           `yaml:"workers"`
	PerRunTimeout time.Duration `yaml:"per_run_timeout"`
	// Cases are "kind:size" pairs, e.g. "jobs:20" or "tour:30".
	Cases []string `yaml:"cases"`
	Algos []string `yaml:"algos"`
	Out   string   `yaml:"out"`
}

// Default mirrors sa.DefaultConfig and ga.DefaultConfig.
func Default() File {
	sc := sa.DefaultConfig()
	gc := ga.DefaultConfig()
	return File{
		Seed: 1,
		Annealing: Annealing{
			InitialTemp:   sc.InitialTemp,
			FinalTemp:     sc.FinalTemp,
			Alpha:         sc.Alpha,
			MaxIterations: sc.MaxIterations,
		},
		Genetic: Genetic{
			Population:     gc.Population,
			Generations:    gc.Generations,
			Elite:          gc.Elite,
			CrossoverRate:  gc.CrossoverRate,
			MutationRate:   gc.MutationRate,
			Selection:      gc.Selection.String(),
			Crossover:      gc.Crossover.String(),
			TournamentSize: gc.TournamentSize,
			FitnessEpsilon: gc.FitnessEpsilon,
		},
		Bench: Bench{
			Runs:         10,
			BaseSeed:     1000,
			InstanceSeed: 777,
			Workers:      1,
			Cases:        []string{"jobs:20", "jobs:50", "tour:20"},
			Algos:        []string{"SA", "GA"},
			Out:          "artifacts/results.csv",
		},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	if err := f.decode(data); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

func (f *File) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (f File) AnnealingConfig() sa.Config {
	return sa.Config{
		InitialTemp:   f.Annealing.InitialTemp,
		FinalTemp:     f.Annealing.FinalTemp,
		Alpha:         f.Annealing.Alpha,
		MaxIterations: f.Annealing.MaxIterations,
	}
}

func (f File) GeneticConfig() (ga.Config, error) {
	sel, err := ga.ParseSelection(f.Genetic.Selection)
	if err != nil {
		return ga.Config{}, err
	}
	cx, err := ga.ParseCrossover(f.Genetic.Crossover)
	if err != nil {
		return ga.Config{}, err
	}
	return ga.Config{
		Population:     f.Genetic.Population,
		Generations:    f.Genetic.Generations,
		Elite:          f.Genetic.Elite,
		CrossoverRate:  f.Genetic.CrossoverRate,
		MutationRate:   f.Genetic.MutationRate,
		Selection:      sel,
		Crossover:      cx,
		TournamentSize: f.Genetic.TournamentSize,
		FitnessEpsilon: f.Genetic.FitnessEpsilon,
	}, nil
}

// BenchCases parses Bench.Cases; instance seeds are derived from
// Bench.InstanceSeed so each case gets a fixed, distinct instance.
func (f File) BenchCases() ([]bench.Case, error) {
	cases := make([]bench.Case, 0, len(f.Bench.Cases))
	for i, s := range f.Bench.Cases {
		kind, size, ok := strings.Cut(strings.TrimSpace(s), ":")
		if !ok {
			return nil, fmt.Errorf("case %q: want kind:size, e.g. jobs:20", s)
		}
		n, err := strconv.Atoi(strings.TrimSpace(size))
		if err != nil {
			return nil, fmt.Errorf("case %q: size: %w", s, err)
		}
		k := bench.Kind(strings.ToLower(strings.TrimSpace(kind)))
		if k != bench.KindJobs && k != bench.KindTour {
			return nil, fmt.Errorf("case %q: unknown kind %q (jobs | tour)", s, kind)
		}
		if n < 2 {
			return nil, fmt.Errorf("case %q: size must be >= 2", s)
		}
		seed := f.Bench.InstanceSeed + int64(i)*10_000 + int64(n)
		cases = append(cases, bench.Case{Kind: k, Size: n, InstanceSeed: seed})
	}
	return cases, nil
}

// LoadMatrix reads a distance matrix written as a YAML (or JSON) list of rows.
func LoadMatrix(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m [][]float64
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("matrix %s: %w", path, err)
	}
	return m, nil
}
