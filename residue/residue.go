// Package residue implements arithmetic in the 384-bit prime field F_q,
// q = 2^384 - 1,081,343. Every exported operation takes and returns values
// canonical in [0, q); the wider bigint.U448/U768 types are used only as
// scratch space for intermediate sums and products so that no addition or
// multiplication can overflow before its final reduction, the same
// discipline single-word Montgomery and Barrett reduction apply, scaled
// up to 384 bits.
package residue

import (
	"fmt"

	"github.com/lattice384/ringq/bigint"
)

// modulus is q = 2^384 - 1,081,343, the field prime. It is a compile-time
// constant: there is no lazy init and no way to construct a Residue field
// with a different modulus.
var modulus = bigint.U384{
	0xFFFFFFFFFFEF8001,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
}

var modulus448 = bigint.WidenTo448(modulus)
var modulus768 = bigint.WidenTo768From384(modulus)

// Residue is an element of F_q, stored as its canonical representative in
// [0, q). Residues are plain copyable values with no identity beyond their
// numeric value.
type Residue struct {
	v bigint.U384
}

// Zero returns the additive identity.
func Zero() Residue { return Residue{} }

// One returns the multiplicative identity.
func One() Residue { return Residue{v: bigint.U384{1, 0, 0, 0, 0, 0}} }

// FromLimbs builds a Residue directly from a little-endian limb array.
// The caller must supply a value already in [0, q); this is how package
// params installs the fixed field constants (zeta, zeta^-1, ...).
func FromLimbs(limbs bigint.U384) Residue {
	return Residue{v: limbs}
}

// Limbs returns the canonical little-endian limb representation.
func (r Residue) Limbs() bigint.U384 { return r.v }

// FromU64 returns the canonical representative of k mod q.
func FromU64(k uint64) Residue {
	return Residue{v: bigint.U384{k, 0, 0, 0, 0, 0}}
}

// FromI64 returns the canonical representative of k mod q.
func FromI64(k int64) Residue {
	if k >= 0 {
		return FromU64(uint64(k))
	}
	return Neg(FromU64(uint64(-k)))
}

// Equal reports whether a and b have the same canonical value.
func Equal(a, b Residue) bool {
	return a.v == b.v
}

// String renders the residue in hex, most-significant limb first.
func (r Residue) String() string {
	return fmt.Sprintf("%016x%016x%016x%016x%016x%016x",
		r.v[5], r.v[4], r.v[3], r.v[2], r.v[1], r.v[0])
}

// Add returns (a+b) mod q, reducing through a 448-bit intermediate.
func Add(a, b Residue) Residue {
	sum := bigint.Add448(bigint.WidenTo448(a.v), bigint.WidenTo448(b.v))
	_, rem := bigint.DivMod448(sum, modulus448)
	out, err := bigint.NarrowTo384From448(rem)
	if err != nil {
		panic(err)
	}
	return Residue{v: out}
}

// Sub returns (q+a-b) mod q: q is pre-added so the 448-bit subtraction
// never underflows.
func Sub(a, b Residue) Residue {
	lhs := bigint.Add448(modulus448, bigint.WidenTo448(a.v))
	diff := bigint.Sub448(lhs, bigint.WidenTo448(b.v))
	_, rem := bigint.DivMod448(diff, modulus448)
	out, err := bigint.NarrowTo384From448(rem)
	if err != nil {
		panic(err)
	}
	return Residue{v: out}
}

// Neg returns q-a for a != 0, and 0 for a == 0. The zero special-case is
// required because q-0 must not be allowed to "wrap around" to q itself.
func Neg(a Residue) Residue {
	if a.v.IsZero() {
		return Residue{}
	}
	return Residue{v: bigint.Sub384(modulus, a.v)}
}

// Mul returns (a*b) mod q, reducing through a 768-bit intermediate.
func Mul(a, b Residue) Residue {
	prod := bigint.Mul384To768(a.v, b.v)
	_, rem := bigint.DivMod768(prod, modulus768)
	out, err := bigint.NarrowTo384From768(rem)
	if err != nil {
		panic(err)
	}
	return Residue{v: out}
}

// MulScalarU64 returns (a*k) mod q for k in [0, 2^64).
func MulScalarU64(a Residue, k uint64) Residue {
	prod := bigint.Mul384ByU64To448(a.v, k)
	_, rem := bigint.DivMod448(prod, modulus448)
	out, err := bigint.NarrowTo384From448(rem)
	if err != nil {
		panic(err)
	}
	return Residue{v: out}
}

// MulScalarI64 returns (a*k) mod q for signed k: when k < 0, it computes
// ((q-a)*(-k)) mod q instead of negating the product after the fact.
func MulScalarI64(a Residue, k int64) Residue {
	if k >= 0 {
		return MulScalarU64(a, uint64(k))
	}
	return MulScalarU64(Neg(a), uint64(-k))
}

// Pow returns a^e mod q using right-to-left binary exponentiation: square
// and conditionally multiply, one bit of e at a time.
func Pow(a Residue, e uint32) Residue {
	result := One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		e >>= 1
	}
	return result
}
