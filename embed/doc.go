// Package embed plants pattern graphs into a mutable target matrix.
//
// An Overlay marks every target cell already fixed by an earlier successful
// planting. EmbedPattern is atomic: it validates the whole assignment against
// the overlay first and writes only if no fixed cell would change value, so a
// rejected planting leaves target and overlay untouched.
//
// Every assignment accepted here is, afterwards, an embedding of its pattern
// in the target under both soft and hard checks. Later plantings can only
// touch cells outside the earlier ones or rewrite them with the same value.
//
// Embedder bundles a target with its overlay and records accepted
// assignments; the fixture package drives it to build ground truth for the
// resolvers in subgraph.
package embed
