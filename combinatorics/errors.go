package combinatorics

import "errors"

var (
	// ErrInvalidArgument is returned for enumerator arguments outside their domain
	// (k > n, negative sizes, size < 1 for permutations).
	ErrInvalidArgument = errors.New("combinatorics: invalid argument")

	// ErrInvalidPermutation is returned when a slice is not a bijection on {0..m-1}
	// or its length does not match the operand it is applied to.
	ErrInvalidPermutation = errors.New("combinatorics: invalid permutation")
)
