package generator

import "math/rand"

// Rand is the random source every synthesizer draws from. Keeping it an
// interface lets tests swap a scripted source, and a fixed seed makes a whole
// generation run reproducible.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Perm returns a random permutation of [0, n).
	Perm(n int) []int
}

// NewSeededRand returns a Rand backed by math/rand with the given seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
