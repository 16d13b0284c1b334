package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFloats(t *testing.T) {
	got, err := parseFloats("4, 6,2.5,,7")
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6, 2.5, 7}, got)

	_, err = parseFloats("4,x")
	require.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	require.Equal(t, []string{"jobs:20", "tour:8"}, splitCSV(" jobs:20 , ,tour:8"))
	require.Nil(t, splitCSV(""))
}
