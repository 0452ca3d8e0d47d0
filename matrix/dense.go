// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed i→j loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone/Equal/Flat: O(n²); Induced: O(k²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxInduced = "Induced" // method tag used in error wrappers
	ctxRows    = "NewDenseFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and call-site indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of integer edge labels.
//   - n holds the number of vertices (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int   // vertex count (> 0)
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix (a graph with n isolated vertices).
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int) (*Dense, error) {
	// Validate shape; a 0×0 graph has no vertices to match against.
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills deterministically.
	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// NewDenseFromRows copies a [][]int grid into a new Dense.
//
// Implementation:
//   - Stage 1: validate the grid via ValidateRows (non-empty, every row of length n).
//   - Stage 2: allocate and copy row by row.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid.
//   - ErrNonSquare when some row length differs from the row count.
//
// Complexity:
//   - Time O(n²), Space O(n²). The input is never aliased.
func NewDenseFromRows(rows [][]int) (*Dense, error) {
	// Stage 1: shape validation is centralized.
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}

	// Stage 2: copy row by row into the flat buffer.
	n := len(rows)
	m := &Dense{n: n, data: make([]int, n*n)}
	var i int
	for i = 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// MustDense is like NewDenseFromRows but panics on malformed input.
// Intended for literals in tests and examples only.
func MustDense(rows [][]int) *Dense {
	m, err := NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Size returns the vertex count n. Complexity: O(1).
func (m *Dense) Size() int { return m.n }

// indexOf maps (row, col) to the flat offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the label of edge row→col or ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores the label v on edge row→col or returns ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // write into flat buffer

	return nil
}

// Clone returns a deep copy (new buffer, same size).
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data)) // allocate same length
	copy(cp, m.data)               // deep copy

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and other have the same size and identical labels.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(n²) worst case, early exit on the first difference.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	var i int
	for i = range m.data { // flat comparison, row-major
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Flat returns a row-major copy of the labels (len == n*n, offset = i*n + j).
// Search engines prefetch this once to keep hot loops free of bounds-checked calls.
// Complexity: O(n²).
func (m *Dense) Flat() []int {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return cp
}

// Rows exports the labels as a freshly allocated [][]int grid.
// Complexity: O(n²).
func (m *Dense) Rows() [][]int {
	out := make([][]int, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = make([]int, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Induced materializes the sub-matrix selected by vertices:
//
//	sub[i][j] = m[vertices[i]][vertices[j]]
//
// Implementation:
//   - Stage 1: reject an empty selection (ErrInvalidDimensions).
//   - Stage 2: bounds-check every index, then copy with direct offset math.
//
// Behavior highlights:
//   - The selection order defines the vertex order of the result.
//   - Duplicates are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrInvalidDimensions, ErrOutOfRange.
//
// Complexity:
//   - Time O(k²), Space O(k²) where k = len(vertices).
func (m *Dense) Induced(vertices []int) (*Dense, error) {
	k := len(vertices)
	if k == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduced, ErrInvalidDimensions)
	}

	// Validate every index once so the copy loop stays branch-free.
	var v int
	for _, v = range vertices {
		if v < 0 || v >= m.n {
			return nil, fmt.Errorf("Dense.%s: vertex %d: %w", ctxInduced, v, ErrOutOfRange)
		}
	}

	res := &Dense{n: k, data: make([]int, k*k)}
	var i, j, base int
	for i = 0; i < k; i++ {
		base = vertices[i] * m.n // row offset in the base matrix
		for j = 0; j < k; j++ {
			res.data[i*k+j] = m.data[base+vertices[j]]
		}
	}

	return res, nil
}

// String renders one bracketed row per line for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.Itoa(m.data[i*m.n+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
