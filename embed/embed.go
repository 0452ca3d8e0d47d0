package embed

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/matrix"
)

// EmbedPattern writes pattern into target at assignment, where pattern vertex
// i lands on target vertex assignment[i]:
//
//	target[a[i]][a[j]] = pattern[i][j] for all i, j
//
// Implementation:
//   - Stage 1 (validation): if any cell (a[i], a[j]) is already marked in
//     overlay and its current value differs from pattern[i][j], return false.
//     Nothing is written.
//   - Stage 2 (commit): write every cell and mark it in overlay.
//
// A false result is a conflict, not an error.
//
// Errors:
//   - ErrNilMatrix for a nil target or pattern; ErrInvalidArgument for a nil
//     overlay, overlay.Size() != target.Size(), len(assignment) !=
//     pattern.Size(), or an assignment entry that is out of range or repeated.
//
// Complexity: O(k²) time, O(k²) extra space for the prefetched pattern.
func EmbedPattern(target *matrix.Dense, overlay *Overlay, pattern *matrix.Dense, assignment []int) (bool, error) {
	if err := validateEmbed(target, overlay, pattern, assignment); err != nil {
		return false, fmt.Errorf("EmbedPattern: %w", err)
	}

	var (
		k      = pattern.Size()
		n      = target.Size()
		pat    = pattern.Flat()
		i, j   int
		ai, aj int
		cur    int
		err    error
	)

	// Stage 1: validation pass.
	for i = 0; i < k; i++ {
		ai = assignment[i]
		for j = 0; j < k; j++ {
			aj = assignment[j]
			if !overlay.marked[ai*n+aj] {
				continue
			}
			if cur, err = target.At(ai, aj); err != nil {
				return false, fmt.Errorf("EmbedPattern: %w", err)
			}
			if cur != pat[i*k+j] {
				return false, nil // conflict with an earlier planting
			}
		}
	}

	// Stage 2: commit pass.
	for i = 0; i < k; i++ {
		ai = assignment[i]
		for j = 0; j < k; j++ {
			aj = assignment[j]
			if err = target.Set(ai, aj, pat[i*k+j]); err != nil {
				return false, fmt.Errorf("EmbedPattern: %w", err)
			}
			overlay.marked[ai*n+aj] = true
		}
	}

	return true, nil
}

// validateEmbed checks every precondition of EmbedPattern before any read.
func validateEmbed(target *matrix.Dense, overlay *Overlay, pattern *matrix.Dense, assignment []int) error {
	if err := matrix.ValidateNotNil(target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if err := matrix.ValidateNotNil(pattern); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	if overlay == nil {
		return fmt.Errorf("nil overlay: %w", ErrInvalidArgument)
	}
	if overlay.Size() != target.Size() {
		return fmt.Errorf("overlay size %d != target size %d: %w", overlay.Size(), target.Size(), ErrInvalidArgument)
	}
	if len(assignment) != pattern.Size() {
		return fmt.Errorf("len(assignment)=%d != pattern size %d: %w", len(assignment), pattern.Size(), ErrInvalidArgument)
	}
	if err := matrix.ValidateVertices(assignment, target.Size(), true); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return nil
}
