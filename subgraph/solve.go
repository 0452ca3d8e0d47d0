// Package subgraph: dispatcher.
//
// Entry points:
//   - Walk: stream every match to a callback as it is discovered.
//   - Find: materialize the matches into a combinatorics.Set with Stats.
//   - FindAllEmbeddings / BruteForceEmbeddings: fixed-algorithm shorthands.
//   - IsEmbedding: check a single assignment without searching.
//
// All entry points validate first and return before any search work on bad
// input. No logging, no panics on user input.

package subgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

// Walk searches source for embeddings of pattern and calls visit once per
// distinct match, in unspecified order. The Assignment passed to visit is an
// independent copy the callee may keep.
//
// visit may return ErrStopSearch to end the search without error. Any other
// error aborts the search and is returned wrapped, together with the Stats
// gathered so far. Options.OnMatch is ignored by Walk.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidArgument (pattern larger than source, bad option),
//     ErrUnknownAlgorithm.
//   - The context error when Options.Ctx is cancelled mid-search.
func Walk(source, pattern *matrix.Dense, visit func(Assignment) error, opts ...Option) (Stats, error) {
	// Stage 1: inputs and options.
	if _, _, err := validateInputs(source, pattern); err != nil {
		return Stats{}, fmt.Errorf("Walk: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return Stats{}, fmt.Errorf("Walk: %w", err)
	}
	if err := o.Ctx.Err(); err != nil {
		return Stats{}, fmt.Errorf("Walk: %w", err)
	}

	// Stage 2: route by algorithm.
	em := newEmitter(o, visit)
	switch o.Algo {
	case Fast:
		eng, err := newFastEngine(source, pattern, o.HardCheck, em)
		if err != nil {
			return Stats{}, fmt.Errorf("Walk: %w", err)
		}
		eng.run()
	case BruteForce:
		if err := newBruteEngine(source, pattern, o.HardCheck, em).run(); err != nil {
			return em.stats, fmt.Errorf("Walk: %w", err)
		}
	}
	if em.err != nil {
		return em.stats, fmt.Errorf("Walk(%s): %w", o.Algo, em.err)
	}

	return em.stats, nil
}

// Find collects every match into a Result. Options.OnMatch, when set, sees
// each match before it is stored; returning ErrStopSearch keeps the matches
// gathered so far and ends the search.
//
// Errors: as Walk. On error the Result is empty.
func Find(source, pattern *matrix.Dense, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	matches := combinatorics.NewSet()
	visit := func(a Assignment) error {
		if o.OnMatch != nil {
			if err := o.OnMatch(a); err != nil {
				if errors.Is(err, ErrStopSearch) {
					matches.Add(a)
				}
				return err
			}
		}
		matches.Add(a)
		return nil
	}

	stats, err := Walk(source, pattern, visit, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Find: %w", err)
	}

	return Result{Matches: matches, Stats: stats}, nil
}

// FindAllEmbeddings returns every assignment of pattern vertices to distinct
// source vertices under which the induced sub-matrix matches pattern, using
// the fast resolver.
//
// Errors: ErrNilMatrix; ErrInvalidArgument when pattern.Size() > source.Size().
func FindAllEmbeddings(source, pattern *matrix.Dense, hardCheck bool) (*combinatorics.Set, error) {
	res, err := Find(source, pattern, WithHardCheck(hardCheck), WithAlgorithm(Fast))
	if err != nil {
		return nil, err
	}

	return res.Matches, nil
}

// BruteForceEmbeddings is FindAllEmbeddings computed by the exhaustive oracle.
// Both return identical sets for every valid input.
func BruteForceEmbeddings(source, pattern *matrix.Dense, hardCheck bool) (*combinatorics.Set, error) {
	res, err := Find(source, pattern, WithHardCheck(hardCheck), WithAlgorithm(BruteForce))
	if err != nil {
		return nil, err
	}

	return res.Matches, nil
}

// IsEmbedding reports whether a binds pattern into source under the chosen
// check. It does not search.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidArgument (size), matrix.ErrOutOfRange for an
//     entry outside the source, ErrDimensionMismatch for a repeated entry or
//     len(a) != pattern.Size().
//
// Complexity: O(k²).
func IsEmbedding(source, pattern *matrix.Dense, a Assignment, hardCheck bool) (bool, error) {
	n, k, err := validateInputs(source, pattern)
	if err != nil {
		return false, fmt.Errorf("IsEmbedding: %w", err)
	}
	if len(a) != k {
		return false, fmt.Errorf("IsEmbedding: len(a)=%d k=%d: %w", len(a), k, ErrDimensionMismatch)
	}
	if err = matrix.ValidateVertices(a, n, true); err != nil {
		return false, fmt.Errorf("IsEmbedding: %w", err)
	}

	sub, err := source.Induced(a)
	if err != nil {
		return false, fmt.Errorf("IsEmbedding: %w", err)
	}
	chk, err := newIsoChecker(sub, pattern, hardCheck)
	if err != nil {
		return false, fmt.Errorf("IsEmbedding: %w", err)
	}
	var stats Stats

	return chk.accepts(combinatorics.Identity(k), &stats), nil
}
