package calculation

import "math/rand/v2"

// NormalSource produces standard normal variates (mean 0, variance 1).
// *rand.Rand from math/rand/v2 satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// NewSeededSource returns a deterministic NormalSource for reproducible runs.
func NewSeededSource(seed uint64) NormalSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// freshSource returns a source seeded from the runtime's random state.
// Each call yields an independent stream.
func freshSource() NormalSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
