package combinatorics

import (
	"fmt"
	"iter"
)

// Permutations returns a lazy sequence of all size! permutations of
// {0..size-1}. Generation is swap based: at depth pos every remaining
// element is exchanged into position pos, the tail is expanded, and the swap
// is undone. A permutation is emitted when pos reaches the last position.
//
// The yielded slice is a shared buffer, valid until the next step. Mutating it
// inside the loop body corrupts the enumeration.
//
// Errors:
//   - ErrInvalidArgument when size < 1.
//
// Complexity:
//   - O(size!·size) total, O(size) memory, recursion depth size.
func Permutations(size int) (iter.Seq[[]int], error) {
	if size < 1 {
		return nil, fmt.Errorf("Permutations(%d): %w", size, ErrInvalidArgument)
	}

	return func(yield func([]int) bool) {
		permuteStep(Identity(size), 0, yield)
	}, nil
}

// permuteStep expands every arrangement of p[pos:], keeping p[:pos] fixed.
func permuteStep(p []int, pos int, yield func([]int) bool) bool {
	if pos == len(p)-1 {
		return yield(p)
	}

	var i int
	for i = pos; i < len(p); i++ {
		p[pos], p[i] = p[i], p[pos]
		ok := permuteStep(p, pos+1, yield)
		p[pos], p[i] = p[i], p[pos] // undo even when stopping, the buffer is shared
		if !ok {
			return false
		}
	}

	return true
}

// Identity returns the identity permutation [0, 1, ..., n-1].
// For n <= 0 it returns an empty slice.
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Factorial returns n!, with Factorial(n) == 1 for n <= 1.
// 21! overflows int64; callers enumerate far smaller sizes.
func Factorial(n int) int {
	res := 1
	var i int
	for i = 2; i <= n; i++ {
		res *= i
	}

	return res
}
