package combinatorics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpattern/combinatorics"
)

func TestPermutations_InvalidArgument(t *testing.T) {
	_, err := combinatorics.Permutations(0)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)

	_, err = combinatorics.Permutations(-2)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)
}

func TestPermutations_ExchangeOrder(t *testing.T) {
	seq, err := combinatorics.Permutations(3)
	require.NoError(t, err)

	want := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 1, 0}, {2, 0, 1}}
	assert.Equal(t, want, collect(t, seq))
}

func TestPermutations_SingleElement(t *testing.T) {
	seq, err := combinatorics.Permutations(1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, collect(t, seq))
}

// TestPermutations_Completeness checks m! distinct bijections for small m.
func TestPermutations_Completeness(t *testing.T) {
	for m := 1; m <= 7; m++ {
		seq, err := combinatorics.Permutations(m)
		require.NoError(t, err)

		seen := combinatorics.NewSet()
		for p := range seq {
			require.NoError(t, combinatorics.ValidatePermutation(p))
			require.True(t, seen.Add(p), "duplicate permutation %v", p)
		}
		assert.Equalf(t, combinatorics.Factorial(m), seen.Len(), "%d!", m)
	}
}

// TestPermutations_EarlyStopRestoresBuffer restarts after a break and still sees all items.
func TestPermutations_EarlyStopRestoresBuffer(t *testing.T) {
	seq, err := combinatorics.Permutations(4)
	require.NoError(t, err)

	for p := range seq {
		if p[0] == 2 {
			break
		}
	}
	assert.Len(t, collect(t, seq), 24)
}

func TestFactorialIdentity(t *testing.T) {
	assert.Equal(t, 1, combinatorics.Factorial(0))
	assert.Equal(t, 1, combinatorics.Factorial(1))
	assert.Equal(t, 720, combinatorics.Factorial(6))
	assert.Equal(t, []int{0, 1, 2, 3}, combinatorics.Identity(4))
	assert.Empty(t, combinatorics.Identity(-1))
}
