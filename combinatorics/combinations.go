package combinatorics

import (
	"fmt"
	"iter"
)

// Combinations returns a lazy sequence of all strictly increasing k-subsets of
// {0..n-1}, in lexicographic order. Exactly Binomial(n, k) items are produced;
// k == 0 produces a single empty subset.
//
// The yielded slice is a shared buffer, valid until the next step.
//
// Errors:
//   - ErrInvalidArgument when n < 0, k < 0 or k > n.
//
// Complexity:
//   - O(C(n,k)·k) total, O(k) memory, recursion depth ≤ n.
func Combinations(n, k int) (iter.Seq[[]int], error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("Combinations(%d,%d): %w", n, k, ErrInvalidArgument)
	}

	return func(yield func([]int) bool) {
		combineStep(make([]int, k), 0, n-1, 0, yield)
	}, nil
}

// combineStep fills combination[pos:] from the range [lo, hi].
// At each level it either fixes combination[pos] = lo and advances pos, or
// skips lo; a leaf is reached when pos == len(combination).
// It returns false once the consumer asked to stop.
func combineStep(combination []int, lo, hi, pos int, yield func([]int) bool) bool {
	if pos == len(combination) {
		return yield(combination)
	}
	// Not enough values left in [lo, hi] to fill the remaining slots.
	if hi-lo+1 < len(combination)-pos {
		return true
	}

	// Take lo.
	combination[pos] = lo
	if !combineStep(combination, lo+1, hi, pos+1, yield) {
		return false
	}

	// Skip lo.
	return combineStep(combination, lo+1, hi, pos, yield)
}

// Binomial returns C(n, k), or 0 when k is outside [0, n].
// Intermediate products stay exact because C(n, i) is integral at each step.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	var i int
	for i = 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}

	return res
}
