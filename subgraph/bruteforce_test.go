package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
	"github.com/katalvlaran/lvpattern/subgraph"
)

func TestFindIsomorphicPermutations_Cycle(t *testing.T) {
	perms, err := subgraph.FindIsomorphicPermutations(cycle3(), cycle3(), true)
	require.NoError(t, err)
	assert.Equal(t, []combinatorics.Sequence{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}, perms.Sorted())
}

func TestFindIsomorphicPermutations_WildcardTarget(t *testing.T) {
	perms, err := subgraph.FindIsomorphicPermutations(cycle3(), zeros(t, 3), false)
	require.NoError(t, err)
	assert.Equal(t, 6, perms.Len(), "an all-zero target accepts every permutation")

	perms, err = subgraph.FindIsomorphicPermutations(cycle3(), zeros(t, 3), true)
	require.NoError(t, err)
	assert.Zero(t, perms.Len())
}

// TestFindIsomorphicPermutations_Direction checks that p maps target vertex i
// onto source vertex p[i].
func TestFindIsomorphicPermutations_Direction(t *testing.T) {
	source := matrix.MustDense([][]int{
		{0, 0, 0},
		{0, 0, 5},
		{0, 0, 0},
	})
	target := matrix.MustDense([][]int{
		{0, 5, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	perms, err := subgraph.FindIsomorphicPermutations(source, target, true)
	require.NoError(t, err)
	// target edge 0→1 must land on source edge 1→2, so p[0]=1 and p[1]=2.
	assert.Equal(t, []combinatorics.Sequence{{1, 2, 0}}, perms.Sorted())
}

func TestFindIsomorphicPermutations_Errors(t *testing.T) {
	_, err := subgraph.FindIsomorphicPermutations(cycle3(), zeros(t, 2), false)
	assert.ErrorIs(t, err, subgraph.ErrDimensionMismatch)

	_, err = subgraph.FindIsomorphicPermutations(nil, zeros(t, 2), false)
	assert.ErrorIs(t, err, subgraph.ErrNilMatrix)
}

// TestBruteForce_ScatterThroughInverse pins the translation from sub-matrix
// permutations back to source vertices on a case where p != Invert(p).
func TestBruteForce_ScatterThroughInverse(t *testing.T) {
	// Path 1→3→0 labeled 7 then 8; vertex 2 is isolated. The subset {0,1,3}
	// hosts the pattern under the cyclic p = [1 2 0].
	source := matrix.MustDense([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 7},
		{0, 0, 0, 0},
		{8, 0, 0, 0},
	})
	pattern := matrix.MustDense([][]int{
		{0, 7, 0},
		{0, 0, 8},
		{0, 0, 0},
	})
	want := []combinatorics.Sequence{{1, 3, 0}}

	for _, hard := range []bool{false, true} {
		oracle, err := subgraph.BruteForceEmbeddings(source, pattern, hard)
		require.NoError(t, err)
		assert.Equal(t, want, oracle.Sorted())

		fast, err := subgraph.FindAllEmbeddings(source, pattern, hard)
		require.NoError(t, err)
		assert.Equal(t, want, fast.Sorted())
	}
}
