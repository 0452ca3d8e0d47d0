package codec

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

// Document is the on-disk form of a search fixture.
type Document struct {
	Source    [][]int `json:"source" yaml:"source,flow" toml:"source"`
	Pattern   [][]int `json:"pattern" yaml:"pattern,flow" toml:"pattern"`
	HardCheck bool    `json:"hard_check" yaml:"hard_check" toml:"hard_check"`
	Planted   [][]int `json:"planted,omitempty" yaml:"planted,omitempty,flow" toml:"planted,omitempty"`
	Matches   [][]int `json:"matches,omitempty" yaml:"matches,omitempty,flow" toml:"matches,omitempty"`
}

// NewDocument captures source and pattern. Both are copied.
func NewDocument(source, pattern *matrix.Dense, hardCheck bool) (*Document, error) {
	if err := matrix.ValidateNotNil(source); err != nil {
		return nil, fmt.Errorf("NewDocument: source: %w", err)
	}
	if err := matrix.ValidateNotNil(pattern); err != nil {
		return nil, fmt.Errorf("NewDocument: pattern: %w", err)
	}

	return &Document{
		Source:    source.Rows(),
		Pattern:   pattern.Rows(),
		HardCheck: hardCheck,
	}, nil
}

// Validate checks that both matrices are non-empty squares and that every
// recorded assignment has one entry per pattern vertex, each a distinct
// source vertex.
func (d *Document) Validate() error {
	if err := matrix.ValidateRows(d.Source); err != nil {
		return fmt.Errorf("source: %w: %w", ErrInvalidDocument, err)
	}
	if err := matrix.ValidateRows(d.Pattern); err != nil {
		return fmt.Errorf("pattern: %w: %w", ErrInvalidDocument, err)
	}
	if err := validateAssignments("planted", d.Planted, len(d.Pattern), len(d.Source)); err != nil {
		return err
	}

	return validateAssignments("matches", d.Matches, len(d.Pattern), len(d.Source))
}

func validateAssignments(field string, rows [][]int, k, n int) error {
	for i, a := range rows {
		if len(a) != k {
			return fmt.Errorf("%s[%d]: len %d != pattern size %d: %w", field, i, len(a), k, ErrInvalidDocument)
		}
		if err := matrix.ValidateVertices(a, n, true); err != nil {
			return fmt.Errorf("%s[%d]: %w: %w", field, i, ErrInvalidDocument, err)
		}
	}

	return nil
}

// Matrices builds the source and pattern matrices.
//
// Errors: ErrInvalidDocument wrapping the matrix validation error.
func (d *Document) Matrices() (*matrix.Dense, *matrix.Dense, error) {
	src, err := matrix.NewDenseFromRows(d.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("source: %w: %w", ErrInvalidDocument, err)
	}
	pat, err := matrix.NewDenseFromRows(d.Pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("pattern: %w: %w", ErrInvalidDocument, err)
	}

	return src, pat, nil
}

// PlantedAssignments returns Planted as sequences.
func (d *Document) PlantedAssignments() []combinatorics.Sequence { return toSequences(d.Planted) }

// SetPlanted records planted assignments.
func (d *Document) SetPlanted(seqs []combinatorics.Sequence) { d.Planted = toRows(seqs) }

// SetMatches records found assignments in lexicographic order.
func (d *Document) SetMatches(set *combinatorics.Set) { d.Matches = toRows(set.Sorted()) }

func toRows(seqs []combinatorics.Sequence) [][]int {
	if len(seqs) == 0 {
		return nil
	}
	out := make([][]int, len(seqs))
	for i, s := range seqs {
		out[i] = s.Clone()
	}

	return out
}

func toSequences(rows [][]int) []combinatorics.Sequence {
	out := make([]combinatorics.Sequence, len(rows))
	for i, r := range rows {
		out[i] = combinatorics.Sequence(r).Clone()
	}

	return out
}
