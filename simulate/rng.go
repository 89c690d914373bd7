package simulate

import "math/rand"

// defaultSeed replaces a zero seed so the zero Options still replay a
// reproducible sample.
const defaultSeed int64 = 1

// golden is the SplitMix64 increment (2^64 / φ, odd).
const golden uint64 = 0x9e3779b97f4a7c15

// baseSeed applies the zero-seed policy.
func baseSeed(seed int64) uint64 {
	if seed == 0 {
		seed = defaultSeed
	}

	return uint64(seed)
}

// mix64 is the SplitMix64 output function: a bijection on uint64 with full
// avalanche.
func mix64(z uint64) uint64 {
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb

	return z ^ z>>31
}

// streamSeed returns the seed of chunk stream number stream: the
// (stream+1)-th SplitMix64 output of a generator started at the base seed.
// Complexity: O(1).
func streamSeed(base int64, stream uint64) int64 {
	return int64(mix64(baseSeed(base) + (stream+1)*golden))
}

// newStream returns the RNG of one chunk. A *rand.Rand is not safe for
// concurrent use; each chunk owns its stream.
func newStream(base int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(streamSeed(base, stream)))
}
