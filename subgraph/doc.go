// Package subgraph finds every embedding of a small labeled directed pattern
// graph inside a larger source graph. Both graphs are square integer
// adjacency matrices (matrix.Dense); 0 means "no edge", any other value is an
// edge label.
//
// An embedding is an ordered Assignment a of distinct source vertices, one per
// pattern vertex, such that
//
//	hard check: pattern[i][j] == source[a[i]][a[j]]  for all i, j
//	soft check: the same, except where pattern[i][j] == 0 (wildcard)
//
// Soft matching is therefore monomorphic: an all-zero pattern row constrains
// nothing but vertex distinctness.
//
// Two resolvers share one contract and produce identical sets:
//
//   - Fast (default): one depth-first backtracking search over ordered
//     assignments with an incremental boundary check and, under hard check,
//     a vertex degree filter.
//   - BruteForce: every k-subset × every k! permutation, each tested against
//     the materialized induced sub-matrix. Use it as an oracle on small input.
//
// Results are exposed as a stream (Walk) or a materialized set (Find and the
// FindAllEmbeddings / BruteForceEmbeddings shorthands). Emission order is
// unspecified; no assignment is ever emitted twice.
//
// Every call owns its search buffers, so distinct calls may run concurrently.
// A single call is sequential.
package subgraph
