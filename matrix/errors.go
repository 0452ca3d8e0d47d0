// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels (possibly
// wrapped with a call-site tag), and tests match them via errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested size is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row/column/vertex index is outside [0, n).
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that input rows do not form a square grid.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates that two operands must share a size but do not.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
