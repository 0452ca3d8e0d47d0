package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpattern/fixture"
	"github.com/katalvlaran/lvpattern/matrix"
	"github.com/katalvlaran/lvpattern/subgraph"
)

// benchInputs builds a fixed source/pattern pair outside the timer.
func benchInputs(b *testing.B, n, k int) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	gen := fixture.New(fixture.WithSeed(2024))
	src, err := gen.Matrix(fixture.MatrixSpec{MinSize: n, MaxSize: n, MinValue: 1, MaxValue: 3, Density: 0.4})
	require.NoError(b, err)
	pat, err := gen.Matrix(fixture.MatrixSpec{MinSize: k, MaxSize: k, MinValue: 1, MaxValue: 3, Density: 0.4})
	require.NoError(b, err)

	return src, pat
}

func BenchmarkFast_n12k4_Soft(b *testing.B) {
	src, pat := benchInputs(b, 12, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = subgraph.Walk(src, pat, nil)
	}
}

func BenchmarkFast_n12k4_Hard(b *testing.B) {
	src, pat := benchInputs(b, 12, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = subgraph.Walk(src, pat, nil, subgraph.WithHardCheck(true))
	}
}

func BenchmarkBruteForce_n8k3_Soft(b *testing.B) {
	src, pat := benchInputs(b, 8, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = subgraph.Walk(src, pat, nil, subgraph.WithAlgorithm(subgraph.BruteForce))
	}
}
