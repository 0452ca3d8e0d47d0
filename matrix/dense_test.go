// Package matrix_test contains unit tests for the Dense adjacency matrix.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpattern/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive sizes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows covers the happy path and both shape sentinels.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int{{0, 1}, {2, 0}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]int{{0, 1, 2}, {0, 1, 2}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewDenseFromRows([][]int{{0, 1}, {0}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestNewDenseFromRowsDoesNotAlias verifies the input grid is copied.
func TestNewDenseFromRowsDoesNotAlias(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m := matrix.MustDense(rows)
	rows[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At(), including a self-loop.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -7))
	require.NoError(t, m.Set(2, 2, 4))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, -7, v)

	v, err = m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 0, v, "matrix is directed; the reverse cell stays empty")

	v, err = m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

// TestCloneEqual checks deep-copy independence and structural equality.
func TestCloneEqual(t *testing.T) {
	a := matrix.MustDense([][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 0, 3))
	assert.False(t, a.Equal(b), "mutating the clone must not affect the original")

	var nilA, nilB *matrix.Dense
	assert.True(t, nilA.Equal(nilB))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(matrix.MustDense([][]int{{0}})))
}

// TestRowsFlatRoundTrip verifies the exported views reproduce the matrix.
func TestRowsFlatRoundTrip(t *testing.T) {
	rows := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	m := matrix.MustDense(rows)

	assert.Equal(t, rows, m.Rows())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Flat())

	flat := m.Flat()
	flat[0] = 100
	v, _ := m.At(0, 0)
	assert.Equal(t, 1, v, "Flat must return a copy")
}

// TestInduced covers ordering, duplicates and both sentinels.
func TestInduced(t *testing.T) {
	m := matrix.MustDense([][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})

	sub, err := m.Induced([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{8, 6}, {2, 0}}, sub.Rows())

	dup, err := m.Induced([]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, 4}, {4, 4}}, dup.Rows())

	_, err = m.Induced(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = m.Induced([]int{0, 3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	m := matrix.MustDense([][]int{{0, -1}, {2, 0}})
	assert.Equal(t, "[0, -1]\n[2, 0]\n", m.String())
}
