package residue

import "math/rand"

// MathRandRNG wraps math/rand.Rand to satisfy the RNG contract for
// non-cryptographic use such as tests and benchmarks. Production sampling should supply an RNG backed by a cryptographic or
// at least a keyed, reproducible generator (see Blake2bRNG); seeding and
// reseeding policy are left to the caller.
type MathRandRNG struct {
	r *rand.Rand
}

// NewMathRandRNG returns an RNG seeded deterministically from seed.
func NewMathRandRNG(seed int64) *MathRandRNG {
	return &MathRandRNG{r: rand.New(rand.NewSource(seed))}
}

// Uint64 returns a value uniform over [0, 2^64).
func (g *MathRandRNG) Uint64() uint64 {
	return g.r.Uint64()
}

// Uint64Range returns a value uniform over [lo, hi) via rejection sampling
// against the smallest mask covering the range.
func (g *MathRandRNG) Uint64Range(lo, hi uint64) uint64 {
	if hi <= lo {
		return lo
	}
	span := hi - lo
	mask := maskFor(span)
	for {
		v := g.r.Uint64() & mask
		if v < span {
			return lo + v
		}
	}
}
