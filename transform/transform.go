// Package transform implements the radix-p mixed-basis CRT/DFT that links
// the ring's coefficient form to its slot (evaluation) form. The only
// instantiation exercised by package ring is p=2, m=2^15: a Cooley-Tukey
// decimation that, at each level, splits a length-m sequence into a
// "sum" and a "difference" half-length block, twiddles the difference
// block by a power of the level's root of unity, recurses on each half,
// and reassembles the two recursed blocks with Transpose.
//
// Every entry point takes a data buffer and a same-length scratch buffer,
// following the convention of passing an explicit scratch slice to
// in-place transforms rather than allocating internally: the final result
// always lands in data, and scratch is left in an unspecified state.
package transform

import (
	"fmt"

	"github.com/lattice384/ringq/params"
	"github.com/lattice384/ringq/residue"
)

// ErrPrecondition reports a violated length, index-range or parameter
// precondition, the transform layer's only error kind. BigInt narrowing
// is the only other fallible boundary in this module, see bigint.ErrOverflow.
var ErrPrecondition = fmt.Errorf("transform: precondition violation")

// DFT computes the length-2^e discrete transform of data in place, using
// Zeta as the order-2^params.K root of unity. e must be in [0, params.K].
func DFT(e int, data, scratch []residue.Residue) error {
	if err := checkLen(e, data, scratch); err != nil {
		return err
	}
	dft(e, data, scratch, params.Zeta)
	return nil
}

// InvDFT inverts DFT: InvDFT(e, DFT(e, x, _), _) reproduces x.
func InvDFT(e int, data, scratch []residue.Residue) error {
	if err := checkLen(e, data, scratch); err != nil {
		return err
	}
	dft(e, data, scratch, params.ZetaInv)
	scale := residue.Pow(params.TwoInv, uint32(e))
	for i := range data {
		data[i] = residue.Mul(data[i], scale)
	}
	return nil
}

// CRT computes the ring's forward transform: given the N coefficients of
// an element of R_q = Z_q[X]/(X^N+1), it produces the N slot values, the
// evaluations of the coefficient polynomial at the N primitive
// (2N)-th roots of unity ζ^1, ζ^3, ..., ζ^(2N-1). It is implemented as a
// "twist" by powers of Zeta followed by a length-N DFT with root Zeta^2,
// the standard negacyclic-NTT reduction (Longa & Naehrig); spelling it
// out as a twist keeps this package's only recursive primitive to the
// one dft routine.
func CRT(data, scratch []residue.Residue) error {
	if err := checkLen(params.K-1, data, scratch); err != nil {
		return err
	}
	twist(data, params.Zeta)
	dft(params.K-1, data, scratch, params.Zeta)
	return nil
}

// InvCRT inverts CRT: InvCRT(CRT(c, _), _) reproduces c.
func InvCRT(data, scratch []residue.Residue) error {
	if err := checkLen(params.K-1, data, scratch); err != nil {
		return err
	}
	dft(params.K-1, data, scratch, params.ZetaInv)
	scale := residue.Pow(params.TwoInv, uint32(params.K-1))
	for i := range data {
		data[i] = residue.Mul(data[i], scale)
	}
	twist(data, params.ZetaInv)
	return nil
}

// twist multiplies data[i] by root^i in place, the ψ-power pre/post
// multiplication step of the negacyclic NTT.
func twist(data []residue.Residue, root residue.Residue) {
	pow := residue.One()
	for i := range data {
		data[i] = residue.Mul(data[i], pow)
		pow = residue.Mul(pow, root)
	}
}

// dft is the shared recursive kernel behind DFT, InvDFT, CRT and InvCRT.
// At level e (length m = 2^e) it writes the sum block data[j]+data[j+m/2]
// and the twiddled difference block into scratch, recurses into each
// half with data and scratch's roles swapped, then reassembles the two
// recursed halves into data with Transpose. The base case e == 0 is a
// length-1 identity: data[0] is already the answer.
func dft(e int, data, scratch []residue.Residue, root residue.Residue) {
	m := 1 << e
	if m == 1 {
		return
	}
	mh := m >> 1
	zm := levelRoot(root, e)

	for j1 := 0; j1 < mh; j1++ {
		a, b := data[j1], data[mh+j1]
		scratch[j1] = residue.Add(a, b)
		diff := residue.Sub(a, b)
		scratch[mh+j1] = residue.Mul(residue.Pow(zm, uint32(j1)), diff)
	}

	dft(e-1, scratch[:mh], data[:mh], root)
	dft(e-1, scratch[mh:m], data[mh:m], root)

	transposeInto(2, mh, scratch, data)
}

// levelRoot returns the primitive 2^e-th root of unity derived from root
// (itself of order 2^params.K), i.e. root^(2^(params.K-e)).
func levelRoot(root residue.Residue, e int) residue.Residue {
	return residue.Pow(root, uint32(1)<<uint(params.K-e))
}

func checkLen(e int, data, scratch []residue.Residue) error {
	if e < 0 || e > params.K {
		return fmt.Errorf("%w: level %d out of range [0, %d]", ErrPrecondition, e, params.K)
	}
	want := 1 << e
	if len(data) != want || len(scratch) != want {
		return fmt.Errorf("%w: want len %d, got data=%d scratch=%d", ErrPrecondition, want, len(data), len(scratch))
	}
	return nil
}
