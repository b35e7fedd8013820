package sorting

import "math/rand"

// defaultRNGSeed is the seed used when callers pass seed==0 or no seed at
// all, so that Quick is reproducible by default.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; every sort call owns its own stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// randomIndex returns a uniformly distributed index in [lo, hi].
// Requires lo <= hi.
func randomIndex(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
