// Package fourrow - deterministic RNG policy.
//
// Same seed ⇒ same move shuffles and rollouts; no time-based sources.
package fourrow

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleMoves performs an in-place Fisher–Yates shuffle.
//
// Complexity: O(n).
func shuffleMoves(moves []Move, rng *rand.Rand) {
	var i, j int
	for i = len(moves) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		moves[i], moves[j] = moves[j], moves[i]
	}
}
