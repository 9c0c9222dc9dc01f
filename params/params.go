// Package params holds the compile-time constants of the ring
// R_q = Z_q[X]/Φ_m(X) and a self-check that verifies the root-of-unity
// identities they must satisfy. There is no lazy initialization and no
// singleton: the values below exist for the life of the process, the
// same way a static NTT prime table would.
package params

import (
	"fmt"

	"github.com/lattice384/ringq/bigint"
	"github.com/lattice384/ringq/residue"
)

const (
	// M is the cyclotomic index, m = 2^15.
	M = 1 << 15
	// N is the ring dimension, n = φ(m) = 2^14.
	N = 1 << 14
	// P is the prime base of m (m = P^K).
	P = 2
	// K is the exponent such that m = P^K.
	K = 15
)

// Zeta is the fixed primitive m-th root of unity mod Q used as the
// transform's twiddle factor.
var Zeta = residue.FromLimbs(bigint.U384{
	0x8B920FE192219BC6,
	0x2EAD8FAB0E03F940,
	0x48A6ED3BD1CE1FED,
	0xC44BDF28785B143E,
	0xF00C11D52318CE5E,
	0x26800B9F714DEF1A,
})

// ZetaInv is the multiplicative inverse of Zeta mod Q.
var ZetaInv = residue.FromLimbs(bigint.U384{
	0xFA5C1BF4100A3C02,
	0xB394929677D5B719,
	0x75CE594E7D1FAF75,
	0x653D6DE6B1538F2D,
	0x0156C13D4D702DD5,
	0x794FD45A9B907908,
})

// ZetaMinusOneInv is the multiplicative inverse of (Zeta - 1) mod Q, kept
// alongside Zeta/ZetaInv as a standing root-of-unity identity check. It is
// not consumed by the transform package directly: InvDFT/InvCRT normalize
// by a power of TwoInv instead (see transform.go), since the radix-2
// butterfly this package implements is self-inverse up to a factor of 2
// at every level rather than requiring a (zeta-1)-based kernel.
var ZetaMinusOneInv = residue.FromLimbs(bigint.U384{
	0x75DDB5F7F287A07B,
	0xFDBDDAB69765205E,
	0xCB01B7990A806EF1,
	0x8ABD30E23BF0AB8C,
	0xB1268DC54AC1996E,
	0xE6BB10F0DB19DC2A,
})

// TwoInv is the multiplicative inverse of 2 mod Q, i.e. (Q+1)/2. The
// inverse transform scales by TwoInv^e to undo the factor of 2 the
// forward butterfly introduces at each of its e levels.
var TwoInv = residue.FromLimbs(bigint.U384{
	0xFFFFFFFFFFF7C001,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0x7FFFFFFFFFFFFFFF,
})

// Verify checks the five identities this package's constants must satisfy
// (four root-of-unity identities plus 2*TwoInv = 1), returning an error naming the first one that fails. It is
// not run from an init() function: constant verification is a step the
// caller invokes explicitly, rather than hidden process-wide magic.
func Verify() error {
	one := residue.One()
	negOne := residue.Neg(one)

	if got := residue.Pow(Zeta, N); !residue.Equal(got, negOne) {
		return fmt.Errorf("params: zeta^n != -1 (got %v)", got)
	}
	if got := residue.Pow(Zeta, 2*N); !residue.Equal(got, one) {
		return fmt.Errorf("params: zeta^2n != 1 (got %v)", got)
	}
	if got := residue.Mul(Zeta, ZetaInv); !residue.Equal(got, one) {
		return fmt.Errorf("params: zeta*zeta^-1 != 1 (got %v)", got)
	}
	zm1 := residue.Sub(Zeta, one)
	if got := residue.Mul(zm1, ZetaMinusOneInv); !residue.Equal(got, one) {
		return fmt.Errorf("params: (zeta-1)*(zeta-1)^-1 != 1 (got %v)", got)
	}
	two := residue.Add(one, one)
	if got := residue.Mul(two, TwoInv); !residue.Equal(got, one) {
		return fmt.Errorf("params: 2*2^-1 != 1 (got %v)", got)
	}
	return nil
}

// MustVerify panics if Verify reports a failure. Intended for use by
// callers at process start: malformed, compile-time-fixed cryptographic
// parameters are a programming error worth failing loudly on.
func MustVerify() {
	if err := Verify(); err != nil {
		panic(err)
	}
}
