// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep resolvers and embedders minimal by delegating nil/size/index checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize is the composite NotNil(a) → NotNil(b) → a.n == b.n.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameSize(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows checks that a [][]int grid is non-empty and square.
//
// Errors: ErrInvalidDimensions (no rows), ErrNonSquare (ragged or rectangular).
// Complexity: O(n).
func ValidateRows(rows [][]int) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrNonSquare)
		}
	}

	return nil
}

// ValidateVertices checks that every entry of vertices lies in [0, n) and,
// when distinct is true, that no entry repeats.
//
// Errors: ErrOutOfRange, ErrDimensionMismatch (repeated vertex).
// Complexity: O(len(vertices)) time; O(n) extra space when distinct is true.
func ValidateVertices(vertices []int, n int, distinct bool) error {
	var seen []bool
	if distinct {
		seen = make([]bool, n)
	}
	var v int
	for _, v = range vertices {
		if v < 0 || v >= n {
			return validatorErrorf(fmt.Sprintf("ValidateVertices: vertex %d", v), ErrOutOfRange)
		}
		if distinct {
			if seen[v] {
				return validatorErrorf(fmt.Sprintf("ValidateVertices: vertex %d repeated", v), ErrDimensionMismatch)
			}
			seen[v] = true
		}
	}

	return nil
}
