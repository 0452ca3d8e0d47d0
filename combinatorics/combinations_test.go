package combinatorics_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpattern/combinatorics"
)

// collect materializes an enumerator, cloning the shared buffer at every step.
func collect(t *testing.T, seq func(func([]int) bool)) [][]int {
	t.Helper()
	var out [][]int
	for v := range seq {
		out = append(out, slices.Clone(v))
	}

	return out
}

func TestCombinations_InvalidArgument(t *testing.T) {
	_, err := combinatorics.Combinations(3, 4)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)

	_, err = combinatorics.Combinations(-1, 0)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)

	_, err = combinatorics.Combinations(3, -1)
	assert.ErrorIs(t, err, combinatorics.ErrInvalidArgument)
}

func TestCombinations_LexicographicOrder(t *testing.T) {
	seq, err := combinatorics.Combinations(4, 2)
	require.NoError(t, err)

	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, collect(t, seq))
}

func TestCombinations_EdgeSizes(t *testing.T) {
	seq, err := combinatorics.Combinations(3, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}}, collect(t, seq), "k=0 yields exactly one empty subset")

	seq, err = combinatorics.Combinations(3, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(t, seq))

	seq, err = combinatorics.Combinations(0, 0)
	require.NoError(t, err)
	assert.Len(t, collect(t, seq), 1)
}

// TestCombinations_Completeness checks count, strict monotonicity and uniqueness.
func TestCombinations_Completeness(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for k := 0; k <= n; k++ {
			seq, err := combinatorics.Combinations(n, k)
			require.NoError(t, err)

			all := collect(t, seq)
			require.Lenf(t, all, combinatorics.Binomial(n, k), "C(%d,%d)", n, k)

			seen := combinatorics.NewSet()
			for _, c := range all {
				require.Len(t, c, k)
				for i := 1; i < len(c); i++ {
					require.Less(t, c[i-1], c[i], "strictly increasing")
				}
				if k > 0 {
					require.GreaterOrEqual(t, c[0], 0)
					require.Less(t, c[k-1], n)
				}
				require.True(t, seen.Add(c), "duplicate subset %v", c)
			}
		}
	}
}

// TestCombinations_Restartable ranges twice over the same value.
func TestCombinations_Restartable(t *testing.T) {
	seq, err := combinatorics.Combinations(5, 3)
	require.NoError(t, err)
	assert.Equal(t, collect(t, seq), collect(t, seq))
}

// TestCombinations_EarlyStop ensures break is honored.
func TestCombinations_EarlyStop(t *testing.T) {
	seq, err := combinatorics.Combinations(10, 3)
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 4 {
			break
		}
	}
	assert.Equal(t, 4, count)
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1, combinatorics.Binomial(0, 0))
	assert.Equal(t, 10, combinatorics.Binomial(5, 2))
	assert.Equal(t, 10, combinatorics.Binomial(5, 3))
	assert.Equal(t, 184756, combinatorics.Binomial(20, 10))
	assert.Equal(t, 0, combinatorics.Binomial(3, 4))
	assert.Equal(t, 0, combinatorics.Binomial(3, -1))
}
