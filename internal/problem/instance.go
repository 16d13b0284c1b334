package problem

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Problem is a permutation problem: a fixed instance and a cost to minimize.
type Problem interface {
	Name() string
	// Size is the number of tasks or cities, i.e. the permutation length.
	Size() int
	// Cost evaluates a permutation. Errors match ErrInvalidPermutation.
	Cost(perm []int) (float64, error)
}

// Jobs is a single-machine sequencing instance scored by cumulative flow time.
type Jobs struct {
	Durations []float64
}

// NewJobs copies durations into a validated instance.
func NewJobs[T Number](durations []T) (*Jobs, error) {
	d := make([]float64, len(durations))
	for i, v := range durations {
		d[i] = float64(v)
	}
	j := &Jobs{Durations: d}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Jobs) Validate() error {
	if j == nil {
		return errors.New("jobs instance is nil")
	}
	if err := validateDurations(j.Durations); err != nil {
		return err
	}
	if len(j.Durations) < 2 {
		return fmt.Errorf("%w: need at least 2 jobs (got %d)", ErrInvalidInput, len(j.Durations))
	}
	return nil
}

func (j *Jobs) Name() string { return "jobs" }

func (j *Jobs) Size() int { return len(j.Durations) }

func (j *Jobs) Cost(perm []int) (float64, error) {
	if err := ValidatePermutation(perm, len(j.Durations)); err != nil {
		return 0, err
	}
	return flowTime(j.Durations, perm), nil
}

// Tour is a travelling-salesman instance over a square distance matrix.
// Distances may be asymmetric; the diagonal is never read.
type Tour struct {
	Dist [][]float64
}

// NewTour copies matrix into a validated instance.
func NewTour[T Number](matrix [][]T) (*Tour, error) {
	dist := make([][]float64, len(matrix))
	for i, row := range matrix {
		dist[i] = make([]float64, len(row))
		for k, v := range row {
			dist[i][k] = float64(v)
		}
	}
	t := &Tour{Dist: dist}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tour) Validate() error {
	if t == nil {
		return errors.New("tour instance is nil")
	}
	if err := validateMatrix(t.Dist); err != nil {
		return err
	}
	if len(t.Dist) < 2 {
		return fmt.Errorf("%w: need at least 2 cities (got %d)", ErrInvalidInput, len(t.Dist))
	}
	return nil
}

func (t *Tour) Name() string { return "tour" }

func (t *Tour) Size() int { return len(t.Dist) }

func (t *Tour) Cost(perm []int) (float64, error) {
	if err := ValidatePermutation(perm, len(t.Dist)); err != nil {
		return 0, err
	}
	return tourLength(t.Dist, perm), nil
}

// RandomJobs draws n integer durations uniformly from [minTime, maxTime].
func RandomJobs(n, minTime, maxTime int, rng *rand.Rand) *Jobs {
	if rng == nil {
		panic("random source is nil")
	}
	if minTime < 0 || maxTime < minTime {
		panic("invalid time bounds")
	}
	d := make([]int, n)
	for i := range d {
		d[i] = uniformInt(minTime, maxTime, rng)
	}
	inst, err := NewJobs(d)
	if err != nil {
		panic(err)
	}
	return inst
}

// RandomTour places n cities uniformly on a side×side grid and returns the
// rounded euclidean distance matrix.
func RandomTour(n, side int, rng *rand.Rand) *Tour {
	if rng == nil {
		panic("random source is nil")
	}
	if side <= 0 {
		panic("invalid grid side")
	}
	xs := make([]int, n)
	ys := make([]int, n)
	for i := 0; i < n; i++ {
		xs[i] = uniformInt(0, side, rng)
		ys[i] = uniformInt(0, side, rng)
	}
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for k := range m[i] {
			m[i][k] = euclid(xs[i]-xs[k], ys[i]-ys[k])
		}
	}
	inst, err := NewTour(m)
	if err != nil {
		panic(err)
	}
	return inst
}

func uniformInt(lo, hi int, rng *rand.Rand) int {
	v := lo
	if span := hi - lo + 1; span > 1 {
		v += rng.Intn(span)
	}
	return v
}

func euclid(dx, dy int) int {
	return int(math.Round(math.Hypot(float64(dx), float64(dy))))
}
