// Package driver wires an engine, its configuration and a seeded random
// source together. It makes no search decisions of its own.
package driver

import (
	"context"
	"fmt"
	"strings"

	"permSearch/internal/ga"
	"permSearch/internal/opt"
	"permSearch/internal/problem"
	"permSearch/internal/rng"
	"permSearch/internal/sa"
)

type Engine int

const (
	EngineAnnealing Engine = iota
	EngineGenetic
)

func (e Engine) String() string {
	switch e {
	case EngineAnnealing:
		return "annealing"
	case EngineGenetic:
		return "genetic"
	}
	return fmt.Sprintf("engine(%d)", int(e))
}

// ParseEngine accepts "annealing"/"sa" and "genetic"/"ga".
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annealing", "sa":
		return EngineAnnealing, nil
	case "genetic", "ga":
		return EngineGenetic, nil
	}
	return 0, fmt.Errorf("unknown engine %q", s)
}

type Driver struct {
	Engine    Engine
	Annealing sa.Config
	Genetic   ga.Config
	Seed      int64
	Observer  opt.Observer
}

// New returns a driver for engine with default engine configurations.
func New(engine Engine, seed int64) Driver {
	return Driver{
		Engine:    engine,
		Annealing: sa.DefaultConfig(),
		Genetic:   ga.DefaultConfig(),
		Seed:      seed,
	}
}

// Optimizer builds the configured engine over a generator seeded with seed.
func (d Driver) Optimizer(seed int64) (opt.Optimizer, error) {
	src := rng.New(seed)
	switch d.Engine {
	case EngineAnnealing:
		s, err := sa.New(d.Annealing, src)
		if err != nil {
			return nil, err
		}
		s.Observer = d.Observer
		return s, nil
	case EngineGenetic:
		s, err := ga.New(d.Genetic, src)
		if err != nil {
			return nil, err
		}
		s.Observer = d.Observer
		return s, nil
	}
	return nil, fmt.Errorf("unknown engine %d", int(d.Engine))
}

// Factory returns a constructor of independent optimizers, one per seed.
func (d Driver) Factory() func(seed int64) (opt.Optimizer, error) {
	return d.Optimizer
}

// Run solves p once with d.Seed.
func (d Driver) Run(ctx context.Context, p problem.Problem) (opt.Result, error) {
	o, err := d.Optimizer(d.Seed)
	if err != nil {
		return opt.Result{}, err
	}
	return o.Solve(ctx, p)
}
