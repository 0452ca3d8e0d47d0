// SPDX-License-Identifier: MIT

// Package matrix provides the square integer adjacency matrix used by the
// pattern search packages.
//
// A Dense of size n stores n×n integer labels in a flat row-major buffer:
// entry (i, j) is the label of the directed edge i→j and 0 means "no edge".
// Matrices may be asymmetric and may carry self-loops on the diagonal.
//
// The package provides:
//
//   - Dense with bounds-checked At/Set (no panics on user input), Clone, Equal,
//     row import/export and a flat snapshot for hot loops.
//   - Induced(vertices) materializing the sub-matrix selected by a vertex list.
//   - Degrees(m), the total (in + out) degree of every vertex; a self-loop
//     is counted twice.
//   - Centralized validators returning sentinel errors that callers match via
//     errors.Is.
//
// Matrices are values for the duration of a search: resolvers take a flat
// snapshot once and never observe later mutations.
package matrix
