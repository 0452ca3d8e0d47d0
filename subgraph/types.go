package subgraph

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

var (
	// ErrInvalidArgument is returned when the pattern is larger than the source,
	// or when an option value is outside its domain (negative MaxMatches).
	ErrInvalidArgument = errors.New("subgraph: invalid argument")

	// ErrDimensionMismatch is returned by FindIsomorphicPermutations for operands
	// of different sizes. It aliases the matrix sentinel so errors.Is works on both.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix is returned when a nil source or pattern is passed.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the defined set.
	ErrUnknownAlgorithm = errors.New("subgraph: unknown algorithm")

	// ErrStopSearch may be returned by a visit callback or OnMatch hook to end
	// the search early. It is never returned to the caller.
	ErrStopSearch = errors.New("subgraph: stop search")
)

// Assignment binds pattern vertex i to source vertex a[i].
type Assignment = combinatorics.Sequence

// Algorithm selects the resolver used by Walk and Find.
type Algorithm int

const (
	// Fast is the incremental backtracking resolver (default).
	Fast Algorithm = iota
	// BruteForce is the exhaustive combination × permutation oracle.
	BruteForce
)

// String returns the canonical flag spelling of a.
func (a Algorithm) String() string {
	switch a {
	case Fast:
		return "fast"
	case BruteForce:
		return "brute"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a user-facing name to an Algorithm.
// Accepted (case-insensitive): "fast", "brute", "bruteforce", "brute-force", "oracle".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast", "":
		return Fast, nil
	case "brute", "bruteforce", "brute-force", "oracle":
		return BruteForce, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
}

// Stats reports how much work a search performed.
type Stats struct {
	// Steps counts recursion steps (Fast) or permutation tests (BruteForce).
	Steps int
	// Subsets counts vertex combinations examined (BruteForce only).
	Subsets int
	// BoundaryRejects counts partial assignments cut by the incremental boundary check.
	BoundaryRejects int
	// DegreePrunes counts candidates skipped by the hard-check degree filter.
	DegreePrunes int
	// Matches counts emitted assignments.
	Matches int
}

// Result is the materialized outcome of Find.
type Result struct {
	// Matches holds every distinct assignment found.
	Matches *combinatorics.Set
	// Stats describes the search that produced Matches.
	Stats Stats
}

// Option configures Walk and Find.
type Option func(*Options)

// Options holds the search policy.
type Options struct {
	// HardCheck demands exact equality on every pattern cell. When false, zero
	// pattern cells are wildcards. Default false.
	HardCheck bool

	// Algo selects the resolver. Default Fast.
	Algo Algorithm

	// Ctx allows cancellation; it is polled every 4096 steps. Defaults to
	// context.Background().
	Ctx context.Context

	// MaxMatches stops the search after that many matches. 0 means no limit.
	MaxMatches int

	// OnMatch, if non-nil, is invoked by Find for every match before it is
	// stored. Returning ErrStopSearch ends the search; any other error aborts it.
	OnMatch func(a Assignment) error
}

// DefaultOptions returns soft matching with the Fast resolver, a background
// context, no match limit and no hook.
func DefaultOptions() Options {
	return Options{
		HardCheck:  false,
		Algo:       Fast,
		Ctx:        context.Background(),
		MaxMatches: 0,
		OnMatch:    nil,
	}
}

// WithHardCheck toggles exact matching.
func WithHardCheck(hard bool) Option {
	return func(o *Options) {
		o.HardCheck = hard
	}
}

// WithAlgorithm selects the resolver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxMatches caps the number of matches; 0 disables the cap.
func WithMaxMatches(limit int) Option {
	return func(o *Options) {
		o.MaxMatches = limit
	}
}

// WithOnMatch installs a per-match hook for Find.
func WithOnMatch(fn func(a Assignment) error) Option {
	return func(o *Options) {
		o.OnMatch = fn
	}
}
