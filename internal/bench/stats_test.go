package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcStats(t *testing.T) {
	s := CalcStats([]float64{4, 2, 1, 3})
	require.Equal(t, 4, s.N)
	require.Equal(t, 1.0, s.Best)
	require.InDelta(t, 2.5, s.Mean, 1e-12)
	require.InDelta(t, 1.2909944487, s.Std, 1e-9)
}

func TestCalcStats_Small(t *testing.T) {
	s := CalcStats([]float64{7})
	require.Equal(t, Stats{N: 1, Best: 7, Mean: 7}, s)

	require.Equal(t, Stats{}, CalcStats(nil))
}

func TestDirOf(t *testing.T) {
	require.Equal(t, "", dirOf("results.csv"))
	require.Equal(t, "out/a", dirOf("out/a/results.csv"))
}
