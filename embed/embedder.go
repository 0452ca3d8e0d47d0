package embed

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

// Embedder owns a target matrix and its overlay across many plantings.
// It is not safe for concurrent use.
type Embedder struct {
	target  *matrix.Dense
	overlay *Overlay
	planted []combinatorics.Sequence
}

// NewEmbedder takes ownership of target; callers must not mutate it afterwards.
// Use Target to read the current state.
//
// Errors: ErrNilMatrix.
func NewEmbedder(target *matrix.Dense) (*Embedder, error) {
	if err := matrix.ValidateNotNil(target); err != nil {
		return nil, fmt.Errorf("NewEmbedder: %w", err)
	}
	ov, err := NewOverlay(target.Size())
	if err != nil {
		return nil, fmt.Errorf("NewEmbedder: %w", err)
	}

	return &Embedder{target: target, overlay: ov}, nil
}

// Embed plants pattern at assignment via EmbedPattern and records the
// assignment when accepted.
func (e *Embedder) Embed(pattern *matrix.Dense, assignment []int) (bool, error) {
	ok, err := EmbedPattern(e.target, e.overlay, pattern, assignment)
	if err != nil || !ok {
		return ok, err
	}
	e.planted = append(e.planted, combinatorics.Sequence(assignment).Clone())

	return true, nil
}

// Size returns the vertex count of the target.
func (e *Embedder) Size() int { return e.target.Size() }

// Target returns a copy of the current target matrix.
func (e *Embedder) Target() *matrix.Dense { return e.target.Clone() }

// Overlay returns a copy of the current overlay.
func (e *Embedder) Overlay() *Overlay { return e.overlay.Clone() }

// Planted returns copies of the accepted assignments in acceptance order.
func (e *Embedder) Planted() []combinatorics.Sequence {
	out := make([]combinatorics.Sequence, len(e.planted))
	for i, a := range e.planted {
		out[i] = a.Clone()
	}

	return out
}
