package combinatorics

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/matrix"
)

// ValidatePermutation checks that p is a bijection on {0..len(p)-1}.
//
// Errors:
//   - ErrInvalidPermutation for out-of-range or repeated images.
//
// Complexity: O(m) time, O(m) extra space.
func ValidatePermutation(p []int) error {
	seen := make([]bool, len(p))
	var i, v int
	for i, v = range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("p[%d]=%d out of range: %w", i, v, ErrInvalidPermutation)
		}
		if seen[v] {
			return fmt.Errorf("p[%d]=%d repeated: %w", i, v, ErrInvalidPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Invert returns q with q[p[i]] = i for every i. Invert(Invert(p)) equals p.
//
// Errors:
//   - ErrInvalidPermutation when p is not a bijection.
//
// Complexity: O(m).
func Invert(p []int) ([]int, error) {
	if err := ValidatePermutation(p); err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	inv := make([]int, len(p))
	var i int
	for i = range p {
		inv[p[i]] = i
	}

	return inv, nil
}

// ApplyToVector scatters values through p: out[p[i]] = values[i].
//
// The direction matters: the brute-force resolver finds p in sub-matrix index
// space and relies on ApplyToVector(c, Invert(p)) to obtain out[j] = c[p[j]],
// the source vertex bound to pattern vertex j.
//
// Errors:
//   - ErrInvalidPermutation when p is not a bijection or len(p) != len(values).
//
// Complexity: O(m).
func ApplyToVector(values, p []int) ([]int, error) {
	if len(values) != len(p) {
		return nil, fmt.Errorf("ApplyToVector: len(values)=%d len(p)=%d: %w",
			len(values), len(p), ErrInvalidPermutation)
	}
	if err := ValidatePermutation(p); err != nil {
		return nil, fmt.Errorf("ApplyToVector: %w", err)
	}
	out := make([]int, len(values))
	var i int
	for i = range values {
		out[p[i]] = values[i]
	}

	return out, nil
}

// ApplyToMatrix reindexes m by gathering through p: out[i][j] = m[p[i]][p[j]].
// ApplyToMatrix(ApplyToMatrix(m, p), Invert(p)) equals m.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrInvalidPermutation when p is not a bijection of size m.Size().
//
// Complexity: O(n²).
func ApplyToMatrix(m *matrix.Dense, p []int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ApplyToMatrix: %w", err)
	}
	if len(p) != m.Size() {
		return nil, fmt.Errorf("ApplyToMatrix: len(p)=%d size=%d: %w", len(p), m.Size(), ErrInvalidPermutation)
	}
	if err := ValidatePermutation(p); err != nil {
		return nil, fmt.Errorf("ApplyToMatrix: %w", err)
	}

	// Induced with a bijective selection is exactly the gather.
	return m.Induced(p)
}
