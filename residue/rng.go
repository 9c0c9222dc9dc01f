package residue

import (
	"encoding/binary"

	"github.com/lattice384/ringq/bigint"
	"golang.org/x/crypto/blake2b"
)

// RNG is the capability residue.SampleUniform needs from its caller.
// Seeding, reseeding and the choice of underlying generator are all left
// to the caller — randomness here is an injected capability, never a
// globally borrowed resource.
type RNG interface {
	// Uint64 returns a value uniform over [0, 2^64).
	Uint64() uint64
	// Uint64Range returns a value uniform over [lo, hi).
	Uint64Range(lo, hi uint64) uint64
}

// SampleUniform draws an element of [0, q). The low limb is drawn with
// Uint64Range(0, q_low) and the remaining five limbs with Uint64(). Since
// q's five high limbs are all ones, every draw is below q. Elements whose
// low limb is at or above q_low are never drawn; they make up about 2^-44
// of the field, so the result is close to but not exactly uniform.
func SampleUniform(rng RNG) Residue {
	var v bigint.U384
	v[0] = rng.Uint64Range(0, modulus[0])
	for i := 1; i < 6; i++ {
		v[i] = rng.Uint64()
	}
	return Residue{v: v}
}

// Blake2bRNG is a deterministic RNG seeded from a fixed key, squeezing
// 64-bit words from a running BLAKE2b hash state. It plays the role a
// keyed PRNG built on blake2b plays for reproducible, seedable sampling,
// adapted here to the simpler Uint64/Uint64Range capability this
// package's RNG contract requires instead of a byte-buffer Clock() API.
type Blake2bRNG struct {
	h    blake2b.XOF
	seed []byte
}

// NewBlake2bRNG creates a Blake2bRNG keyed on seed. A nil or empty seed is
// permitted; blake2b.NewXOF treats it as unkeyed.
func NewBlake2bRNG(seed []byte) (*Blake2bRNG, error) {
	h, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed)
	if err != nil {
		return nil, err
	}
	return &Blake2bRNG{h: h, seed: seed}, nil
}

// Uint64 returns the next 8 bytes of XOF output as a big-endian uint64.
func (g *Blake2bRNG) Uint64() uint64 {
	var buf [8]byte
	if _, err := g.h.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(buf[:])
}

// Uint64Range returns a value uniform over [lo, hi) via rejection sampling
// against the smallest mask covering the range.
func (g *Blake2bRNG) Uint64Range(lo, hi uint64) uint64 {
	if hi <= lo {
		return lo
	}
	span := hi - lo
	mask := maskFor(span)
	for {
		v := g.Uint64() & mask
		if v < span {
			return lo + v
		}
	}
}

func maskFor(span uint64) uint64 {
	if span == 0 {
		return 0
	}
	mask := span - 1
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32
	return mask
}
