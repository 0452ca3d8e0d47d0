// Package fixture generates reproducible random inputs for the resolvers:
// matrices, vertex combinations, permutations, and sources with planted
// patterns whose embeddings are known in advance.
//
// Every Generator owns an explicit *rand.Rand. The same seed produces the same
// fixtures on every platform; there is no global or time-based randomness.
// A Generator is not safe for concurrent use. Give each goroutine its own
// stream via Derive.
//
//	gen := fixture.New(fixture.WithSeed(42))
//	src, _ := gen.Matrix(fixture.MatrixSpec{MinSize: 8, MaxSize: 10, MinValue: -3, MaxValue: 3, Density: 0.4})
//	pat, _ := gen.Matrix(fixture.MatrixSpec{MinSize: 3, MaxSize: 3, MinValue: -3, MaxValue: 3, Density: 0.6})
//	emb, _ := embed.NewEmbedder(src)
//	planted, _ := fixture.Plant(gen, emb, pat, 4, 1000)
package fixture
