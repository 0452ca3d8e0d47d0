// Package subgraph: fast backtracking resolver.
//
// The engine grows one ordered assignment at a time. Depth count binds
// pattern vertex count; before descending it checks only the row and column
// introduced by the previous binding, so every cell of the growing sub-matrix
// is verified exactly once along a branch:
//
//	for i in [0, count):
//	  pattern[i][count-1] ~ source[a[i]][a[count-1]]
//	  pattern[count-1][i] ~ source[a[count-1]][a[i]]
//
// where ~ is equality (hard) or equality-unless-the-pattern-cell-is-zero (soft).
//
// Pruning:
//   - Boundary check: O(count) per extension instead of O(count²).
//   - Degree filter (hard check only): source vertex v is a candidate for
//     pattern vertex j only if deg(source)[v] ≥ deg(pattern)[j]. Exact equality
//     of the induced sub-matrix implies this, so the filter is admissible.
//     Soft matching never applies it: a wildcard cell may sit on a lower
//     degree source vertex.
//
// Complexity:
//   - Worst case O(n!/(n-k)! · k) time; O(k + n) search state plus O(n² + k²)
//     prefetched buffers.

package subgraph

import "github.com/katalvlaran/lvpattern/matrix"

// fastEngine holds the prefetched inputs and the push/pop search state of one call.
type fastEngine struct {
	n, k int
	hard bool

	// Dense buffers: src[u*n+v], pat[i*k+j].
	src, pat []int

	srcDeg, patDeg []int

	// Search state, restored on every return path.
	used       []bool // source vertex already bound on the current branch
	assignment []int  // assignment[0:count] is the current partial binding

	em *emitter
}

func newFastEngine(source, pattern *matrix.Dense, hard bool, em *emitter) (*fastEngine, error) {
	srcDeg, err := matrix.Degrees(source)
	if err != nil {
		return nil, err
	}
	patDeg, err := matrix.Degrees(pattern)
	if err != nil {
		return nil, err
	}
	n, k := source.Size(), pattern.Size()

	return &fastEngine{
		n:          n,
		k:          k,
		hard:       hard,
		src:        source.Flat(),
		pat:        pattern.Flat(),
		srcDeg:     srcDeg,
		patDeg:     patDeg,
		used:       make([]bool, n),
		assignment: make([]int, k),
		em:         em,
	}, nil
}

// cellHolds compares one pattern cell with its source image.
func (e *fastEngine) cellHolds(p, s int) bool {
	if !e.hard && p == 0 {
		return true // wildcard
	}

	return p == s
}

// boundaryHolds checks the row and column of pattern vertex count-1 against
// every vertex bound before it, including itself (self loop cell).
func (e *fastEngine) boundaryHolds(count int) bool {
	last := count - 1
	a := e.assignment[last]
	var i, ai int
	for i = 0; i < count; i++ {
		ai = e.assignment[i]
		if !e.cellHolds(e.pat[i*e.k+last], e.src[ai*e.n+a]) {
			return false
		}
		if !e.cellHolds(e.pat[last*e.k+i], e.src[a*e.n+ai]) {
			return false
		}
	}

	return true
}

// step extends the assignment at depth count. It returns false once the
// emitter asked to stop.
func (e *fastEngine) step(count int) bool {
	if !e.em.tick() {
		return false
	}
	if count > 0 && !e.boundaryHolds(count) {
		e.em.stats.BoundaryRejects++
		return true
	}
	if count == e.k {
		return e.em.emit(e.assignment)
	}

	var v int
	for v = 0; v < e.n; v++ {
		if e.used[v] {
			continue
		}
		if e.hard && e.srcDeg[v] < e.patDeg[count] {
			e.em.stats.DegreePrunes++
			continue
		}
		e.used[v] = true
		e.assignment[count] = v
		ok := e.step(count + 1)
		e.used[v] = false // unconditional undo
		if !ok {
			return false
		}
	}

	return true
}

// run performs the whole search from an empty assignment.
func (e *fastEngine) run() {
	e.step(0)
}
