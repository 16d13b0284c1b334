package perm_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"permSearch/internal/perm"
	"permSearch/internal/problem"
	"permSearch/internal/rng"
)

// scripted replays fixed draws so operator outputs can be checked exactly.
type scripted struct {
	ints   []int
	floats []float64
}

func (s *scripted) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic(fmt.Sprintf("scripted draw %d out of range [0,%d)", v, n))
	}
	return v
}

func (s *scripted) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

type operator struct {
	name string
	fn   func(p1, p2 []int, src rng.Source) []int
}

var crossovers = []operator{
	{"single-point", perm.SinglePoint},
	{"two-point", perm.TwoPoint},
	{"uniform", perm.Uniform},
	{"order", perm.Order},
}

type OperatorSuite struct {
	suite.Suite
	src rng.Source
}

func (s *OperatorSuite) SetupTest() {
	s.src = rng.New(2024)
}

// TestCrossoversYieldPermutations checks every operator on many random parent pairs.
func (s *OperatorSuite) TestCrossoversYieldPermutations() {
	for _, op := range crossovers {
		for n := 2; n <= 13; n++ {
			for trial := 0; trial < 60; trial++ {
				p1 := perm.Random(n, s.src)
				p2 := perm.Random(n, s.src)
				child := op.fn(p1, p2, s.src)
				require.NoError(s.T(), problem.ValidatePermutation(child, n), "%s n=%d p1=%v p2=%v child=%v", op.name, n, p1, p2, child)
			}
		}
	}
}

// TestCrossoversKeepParents verifies parents are never modified.
func (s *OperatorSuite) TestCrossoversKeepParents() {
	for _, op := range crossovers {
		p1 := perm.Random(9, s.src)
		p2 := perm.Random(9, s.src)
		c1, c2 := perm.Clone(p1), perm.Clone(p2)
		_ = op.fn(p1, p2, s.src)
		require.Equal(s.T(), c1, p1, op.name)
		require.Equal(s.T(), c2, p2, op.name)
	}
}

// TestIdenticalParents: crossing a permutation with itself reproduces it.
func (s *OperatorSuite) TestIdenticalParents() {
	for _, op := range crossovers {
		p := perm.Random(10, s.src)
		require.Equal(s.T(), p, op.fn(p, perm.Clone(p), s.src), op.name)
	}
}

func (s *OperatorSuite) TestSwapChangesExactlyTwoPositions() {
	for n := 2; n <= 10; n++ {
		p := perm.Random(n, s.src)
		before := perm.Clone(p)
		perm.Swap(p, s.src)
		require.NoError(s.T(), problem.ValidatePermutation(p, n))

		diff := 0
		for i := range p {
			if p[i] != before[i] {
				diff++
			}
		}
		require.Equal(s.T(), 2, diff)
	}
}

func (s *OperatorSuite) TestRandomAndIdentity() {
	require.Equal(s.T(), []int{0, 1, 2, 3}, perm.Identity(4))
	for n := 1; n < 20; n++ {
		require.NoError(s.T(), problem.ValidatePermutation(perm.Random(n, s.src), n))
	}
	p := perm.Random(6, s.src)
	c := perm.Clone(p)
	c[0] = -1
	require.NotEqual(s.T(), -1, p[0])
}

func TestOperatorSuite(t *testing.T) {
	suite.Run(t, new(OperatorSuite))
}

func TestSinglePoint_Scripted(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{5, 4, 3, 2, 1, 0}
	// Intn(4) = 2 gives cut = 3.
	child := perm.SinglePoint(p1, p2, &scripted{ints: []int{2}})
	require.Equal(t, []int{0, 1, 2, 5, 4, 3}, child)
}

func TestSinglePoint_TwoElements(t *testing.T) {
	child := perm.SinglePoint([]int{1, 0}, []int{0, 1}, &scripted{})
	require.Equal(t, []int{1, 0}, child)
}

func TestTwoPoint_Scripted(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{5, 4, 3, 2, 1, 0}
	// Sample(6, 2) draws positions 1 and 1+3 = 4: segment p1[1:4].
	child := perm.TwoPoint(p1, p2, &scripted{ints: []int{1, 3}})
	require.Equal(t, []int{5, 1, 2, 3, 4, 0}, child)
}

func TestUniform_Scripted(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{1, 0, 3, 2, 5, 4}
	// Mask 1,0,1,0,1,0 gives 0,0,2,2,4,4; repair keeps 0,2,4 and appends 1,3,5.
	child := perm.Uniform(p1, p2, &scripted{ints: []int{1, 0, 1, 0, 1, 0}})
	require.Equal(t, []int{0, 2, 4, 1, 3, 5}, child)
}

func TestOrder_Scripted(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{5, 4, 3, 2, 1, 0}
	// Segment [1, 3) keeps 1, 2; positions 3, 4, 5, 0 take 0, 5, 4, 3 from p2 read cyclically from 3.
	child := perm.Order(p1, p2, &scripted{ints: []int{1, 3}})
	require.Equal(t, []int{3, 1, 2, 0, 5, 4}, child)
}
