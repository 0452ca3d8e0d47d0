// SPDX-License-Identifier: MIT

package matrix

// Degrees returns the total degree of every vertex:
//
//	deg[v] = |{j : m[v][j] != 0}| + |{j : m[j][v] != 0}|
//
// A self-loop contributes to both counts, so it is counted twice.
// The result is used as an admissible pruning bound by the resolvers, never
// as a sufficient matching condition.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity:
//   - Time O(n²), Space O(n).
func Degrees(m *Dense) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("Degrees", err)
	}

	deg := make([]int, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if m.data[i*m.n+j] != 0 {
				deg[i]++ // out-edge i→j
				deg[j]++ // in-edge of j
			}
		}
	}

	return deg, nil
}
