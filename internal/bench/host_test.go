package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"permSearch/internal/bench"
)

func TestHostString(t *testing.T) {
	require.Equal(t, "unknown", bench.Host{}.String())
	require.Equal(t, "linux, Xeon, 16 GB", bench.Host{Platform: "linux", CPU: "Xeon", Memory: "16 GB"}.String())
	require.Equal(t, "linux, unknown, unknown", bench.Host{Platform: "linux"}.String())

	h := bench.DetectHost()
	require.NotEmpty(t, h.String())
}
