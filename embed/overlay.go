package embed

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpattern/matrix"
)

var (
	// ErrInvalidArgument is returned for size mismatches between the target,
	// overlay, pattern and assignment, and for out-of-range or repeated
	// assignment entries.
	ErrInvalidArgument = errors.New("embed: invalid argument")

	// ErrNilMatrix is returned for a nil target or pattern.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// Overlay is an n×n grid of flags, row-major like matrix.Dense.
// A set flag means the cell was written by an accepted planting.
type Overlay struct {
	n      int
	marked []bool
}

// NewOverlay returns an unmarked overlay for an n-vertex target.
//
// Errors: ErrInvalidArgument when n <= 0.
func NewOverlay(n int) (*Overlay, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewOverlay(%d): %w", n, ErrInvalidArgument)
	}

	return &Overlay{n: n, marked: make([]bool, n*n)}, nil
}

// Size returns n.
func (o *Overlay) Size() int { return o.n }

// Marked reports whether cell (i, j) is fixed.
//
// Errors: matrix.ErrOutOfRange for indices outside [0, n).
func (o *Overlay) Marked(i, j int) (bool, error) {
	if i < 0 || i >= o.n || j < 0 || j >= o.n {
		return false, fmt.Errorf("Overlay.Marked(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}

	return o.marked[i*o.n+j], nil
}

// Count returns the number of fixed cells.
func (o *Overlay) Count() int {
	c := 0
	for _, m := range o.marked {
		if m {
			c++
		}
	}

	return c
}

// Clone returns a deep copy.
func (o *Overlay) Clone() *Overlay {
	cp := make([]bool, len(o.marked))
	copy(cp, o.marked)

	return &Overlay{n: o.n, marked: cp}
}

// Equal reports whether both overlays have the same size and flags.
func (o *Overlay) Equal(other *Overlay) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.n != other.n {
		return false
	}
	for i := range o.marked {
		if o.marked[i] != other.marked[i] {
			return false
		}
	}

	return true
}

// String renders one row per line, "x" for fixed and "." for free cells.
func (o *Overlay) String() string {
	b := make([]byte, 0, o.n*(o.n+1))
	var i, j int
	for i = 0; i < o.n; i++ {
		for j = 0; j < o.n; j++ {
			if o.marked[i*o.n+j] {
				b = append(b, 'x')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}

	return string(b)
}
