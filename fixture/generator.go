package fixture

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

// MatrixSpec describes a family of random matrices. Both ranges are inclusive.
type MatrixSpec struct {
	MinSize  int     `toml:"min_size" json:"min_size" yaml:"min_size"`
	MaxSize  int     `toml:"max_size" json:"max_size" yaml:"max_size"`
	MinValue int     `toml:"min_value" json:"min_value" yaml:"min_value"`
	MaxValue int     `toml:"max_value" json:"max_value" yaml:"max_value"`
	Density  float64 `toml:"density" json:"density" yaml:"density"` // probability that a cell carries an edge
}

// Validate checks the spec.
//
// Errors: ErrInvalidSpec when MinSize < 1, MaxSize < MinSize,
// MaxValue < MinValue, the value range is {0}, or Density is outside [0, 1].
func (s MatrixSpec) Validate() error {
	switch {
	case s.MinSize < 1:
		return fmt.Errorf("MinSize=%d: %w", s.MinSize, ErrInvalidSpec)
	case s.MaxSize < s.MinSize:
		return fmt.Errorf("MaxSize=%d < MinSize=%d: %w", s.MaxSize, s.MinSize, ErrInvalidSpec)
	case s.MaxValue < s.MinValue:
		return fmt.Errorf("MaxValue=%d < MinValue=%d: %w", s.MaxValue, s.MinValue, ErrInvalidSpec)
	case s.MinValue == 0 && s.MaxValue == 0:
		return fmt.Errorf("value range holds no nonzero label: %w", ErrInvalidSpec)
	case s.Density < 0 || s.Density > 1:
		return fmt.Errorf("Density=%g: %w", s.Density, ErrInvalidSpec)
	}

	return nil
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator; seed 0 maps to a fixed default.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rngFromSeed(seed)
	}
}

// WithRand installs a caller-owned source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// Generator draws fixtures from one deterministic stream.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with the default seed unless an option says otherwise.
// Options apply in order; later ones win.
func New(opts ...Option) *Generator {
	g := &Generator{rng: rngFromSeed(0)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Derive returns an independent Generator for the given stream id.
// Derivation advances g once, so call it during setup, not per draw.
func (g *Generator) Derive(stream uint64) *Generator {
	return &Generator{rng: deriveRNG(g.rng, stream)}
}

// Intn exposes the underlying stream for callers that need an extra draw.
func (g *Generator) Intn(n int) int { return g.rng.Intn(n) }

// Matrix draws a random square matrix: the size is uniform on
// [MinSize, MaxSize]; each cell independently carries an edge with
// probability Density, labeled uniformly from the nonzero values in
// [MinValue, MaxValue]. Self loops are allowed.
//
// Errors: ErrInvalidSpec (see MatrixSpec.Validate).
//
// Complexity: O(n²).
func (g *Generator) Matrix(spec MatrixSpec) (*matrix.Dense, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}

	n := spec.MinSize + g.rng.Intn(spec.MaxSize-spec.MinSize+1)
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}

	// Nonzero labels in [MinValue, MaxValue]; zero is skipped by shifting.
	span := spec.MaxValue - spec.MinValue + 1
	hasZero := spec.MinValue <= 0 && spec.MaxValue >= 0
	if hasZero {
		span--
	}

	var i, j, v int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.rng.Float64() >= spec.Density {
				continue
			}
			v = spec.MinValue + g.rng.Intn(span)
			if hasZero && v >= 0 {
				v++
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Matrix: %w", err)
			}
		}
	}

	return m, nil
}

// Combination draws k distinct vertices of {0..n-1} in random order, ready
// to be used as an assignment.
//
// Errors: ErrInvalidSpec when k < 0, n < 0 or k > n.
//
// Complexity: O(n).
func (g *Generator) Combination(n, k int) (combinatorics.Sequence, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("Combination(%d,%d): %w", n, k, ErrInvalidSpec)
	}
	all := combinatorics.Identity(n)
	shuffle(all, g.rng)

	return combinatorics.Sequence(all[:k]).Clone(), nil
}

// Permutation draws a uniform random permutation of {0..size-1}.
//
// Errors: ErrInvalidSpec when size < 1.
func (g *Generator) Permutation(size int) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("Permutation(%d): %w", size, ErrInvalidSpec)
	}
	p := combinatorics.Identity(size)
	shuffle(p, g.rng)

	return p, nil
}

// Permute relabels the vertices of m by a random permutation p and returns
// the result together with p, so that out[i][j] = m[p[i]][p[j]].
//
// Errors: matrix.ErrNilMatrix for a nil m.
func (g *Generator) Permute(m *matrix.Dense) (*matrix.Dense, []int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("Permute: %w", err)
	}
	p, err := g.Permutation(m.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("Permute: %w", err)
	}
	out, err := combinatorics.ApplyToMatrix(m, p)
	if err != nil {
		return nil, nil, fmt.Errorf("Permute: %w", err)
	}

	return out, p, nil
}
