// Package combinatorics provides the enumeration primitives shared by the
// embedding resolvers.
//
//   - Combinations(n, k): every strictly increasing k-subset of {0..n-1},
//     lexicographic order, each exactly once.
//   - Permutations(size): every bijection on {0..size-1}, exchange order,
//     each exactly once.
//   - Invert / ApplyToVector / ApplyToMatrix: permutation algebra. ApplyToVector
//     scatters (out[p[i]] = v[i]); ApplyToMatrix gathers (out[i][j] = m[p[i]][p[j]]).
//   - Sequence / Set: int sequences compared by content, with set semantics.
//
// Enumerators are lazy iter.Seq values and can be ranged over any number of
// times. For speed they yield one shared buffer: the slice handed to the loop
// body is only valid until the next iteration. Clone it (slices.Clone or
// Sequence.Clone) to keep it.
//
//	seq, err := combinatorics.Combinations(4, 2)
//	if err != nil {
//		return err
//	}
//	for c := range seq {
//		fmt.Println(c) // [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//	}
package combinatorics
