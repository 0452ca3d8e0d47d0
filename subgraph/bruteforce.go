// Package subgraph: brute-force oracle.
//
// The oracle makes no attempt at being clever. For every increasing k-subset
// c of source vertices it materializes sub = source.Induced(c) and tests all
// k! permutations p of the sub-matrix against the pattern. A permutation found
// in sub-matrix index space is translated back to source vertices by
// scattering c through Invert(p), which yields a[j] = c[p[j]].
//
// It exists to cross-check the fast resolver on small inputs.
//
// Complexity: O(C(n,k) · k! · k²).

package subgraph

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

// isoChecker tests whether a permutation of source reproduces target.
type isoChecker struct {
	m              int
	hard           bool
	src, tgt       []int
	srcDeg, tgtDeg []int
}

func newIsoChecker(source, target *matrix.Dense, hard bool) (*isoChecker, error) {
	srcDeg, err := matrix.Degrees(source)
	if err != nil {
		return nil, err
	}
	tgtDeg, err := matrix.Degrees(target)
	if err != nil {
		return nil, err
	}

	return &isoChecker{
		m:      source.Size(),
		hard:   hard,
		src:    source.Flat(),
		tgt:    target.Flat(),
		srcDeg: srcDeg,
		tgtDeg: tgtDeg,
	}, nil
}

// accepts reports whether target[i][j] ~ source[p[i]][p[j]] for every cell.
// Under hard check a degree shortfall rejects p before the cell scan and is
// counted in stats.DegreePrunes.
func (c *isoChecker) accepts(p []int, stats *Stats) bool {
	var i, j, t int
	if c.hard {
		for i = 0; i < c.m; i++ {
			if c.srcDeg[p[i]] < c.tgtDeg[i] {
				stats.DegreePrunes++
				return false
			}
		}
	}
	for i = 0; i < c.m; i++ {
		for j = 0; j < c.m; j++ {
			t = c.tgt[i*c.m+j]
			if !c.hard && t == 0 {
				continue
			}
			if t != c.src[p[i]*c.m+p[j]] {
				return false
			}
		}
	}

	return true
}

// FindIsomorphicPermutations returns every permutation p of {0..m-1} such that
// source reindexed by p matches target:
//
//	hard: target[i][j] == source[p[i]][p[j]] for all i, j
//	soft: the same, only where target[i][j] != 0
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when the sizes differ.
//
// Complexity: O(m! · m²).
func FindIsomorphicPermutations(source, target *matrix.Dense, hardCheck bool) (*combinatorics.Set, error) {
	if err := matrix.ValidateSameSize(source, target); err != nil {
		return nil, fmt.Errorf("FindIsomorphicPermutations: %w", err)
	}
	chk, err := newIsoChecker(source, target, hardCheck)
	if err != nil {
		return nil, fmt.Errorf("FindIsomorphicPermutations: %w", err)
	}
	perms, err := combinatorics.Permutations(source.Size())
	if err != nil {
		return nil, fmt.Errorf("FindIsomorphicPermutations: %w", err)
	}

	var stats Stats
	out := combinatorics.NewSet()
	for p := range perms {
		if chk.accepts(p, &stats) {
			out.Add(p) // Add stores a copy
		}
	}

	return out, nil
}

// bruteEngine drives the oracle through an emitter.
type bruteEngine struct {
	source, pattern *matrix.Dense
	n, k            int
	hard            bool
	em              *emitter
	seen            *combinatorics.Set
}

func newBruteEngine(source, pattern *matrix.Dense, hard bool, em *emitter) *bruteEngine {
	return &bruteEngine{
		source:  source,
		pattern: pattern,
		n:       source.Size(),
		k:       pattern.Size(),
		hard:    hard,
		em:      em,
		seen:    combinatorics.NewSet(),
	}
}

// run enumerates subsets and permutations until exhausted or stopped.
func (b *bruteEngine) run() error {
	subsets, err := combinatorics.Combinations(b.n, b.k)
	if err != nil {
		return err
	}
	for c := range subsets {
		b.em.stats.Subsets++
		if !b.subset(c) {
			return nil
		}
	}

	return nil
}

// subset tests one vertex combination. It returns false once the emitter stopped.
func (b *bruteEngine) subset(c []int) bool {
	sub, err := b.source.Induced(c)
	if err != nil {
		b.em.abort(fmt.Errorf("induced %v: %w", c, err))
		return false
	}
	chk, err := newIsoChecker(sub, b.pattern, b.hard)
	if err != nil {
		b.em.abort(err)
		return false
	}
	perms, err := combinatorics.Permutations(b.k)
	if err != nil {
		b.em.abort(err)
		return false
	}
	for p := range perms {
		if !b.em.tick() {
			return false
		}
		if !chk.accepts(p, &b.em.stats) {
			continue
		}
		inv, err := combinatorics.Invert(p)
		if err != nil {
			b.em.abort(err)
			return false
		}
		a, err := combinatorics.ApplyToVector(c, inv)
		if err != nil {
			b.em.abort(err)
			return false
		}
		if !b.seen.Add(a) {
			continue
		}
		if !b.em.emit(a) {
			return false
		}
	}

	return true
}
