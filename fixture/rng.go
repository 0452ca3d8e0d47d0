package fixture

import "math/rand"

// defaultSeed replaces a zero seed so that the zero value still means
// "reproducible" rather than "random".
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed with a stream id (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent stream from base. base.Int63 is consumed
// once so two derivations with the same id still differ.
// A nil base uses defaultSeed as the parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffle performs an in-place Fisher–Yates shuffle of a.
func shuffle(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
