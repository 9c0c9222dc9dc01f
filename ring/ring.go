package ring

import (
	"fmt"

	"github.com/lattice384/ringq/params"
	"github.com/lattice384/ringq/residue"
	"github.com/lattice384/ringq/transform"
)

// Forward converts a ring element from coefficient form to slot form via
// transform.CRT, using scratch drawn from pool.
func Forward(c *CoefficientPoly, pool *BufferPool) (*SlotPoly, error) {
	if c.N() != params.N {
		return nil, fmt.Errorf("ring: forward: want %d coefficients, got %d", params.N, c.N())
	}
	data := make([]residue.Residue, params.N)
	copy(data, c.Coeffs)
	scratch := pool.Get()
	defer pool.Put(scratch)

	if err := transform.CRT(data, *scratch); err != nil {
		return nil, err
	}
	return &SlotPoly{Slots: data}, nil
}

// Inverse converts a ring element from slot form back to coefficient
// form via transform.InvCRT.
func Inverse(s *SlotPoly, pool *BufferPool) (*CoefficientPoly, error) {
	if s.N() != params.N {
		return nil, fmt.Errorf("ring: inverse: want %d slots, got %d", params.N, s.N())
	}
	data := make([]residue.Residue, params.N)
	copy(data, s.Slots)
	scratch := pool.Get()
	defer pool.Put(scratch)

	if err := transform.InvCRT(data, *scratch); err != nil {
		return nil, err
	}
	return &CoefficientPoly{Coeffs: data}, nil
}

// AddCoeffs returns a+b in coefficient form.
func AddCoeffs(a, b *CoefficientPoly) *CoefficientPoly {
	out := NewCoefficientPoly(a.N())
	for i := range out.Coeffs {
		out.Coeffs[i] = residue.Add(a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// SubCoeffs returns a-b in coefficient form.
func SubCoeffs(a, b *CoefficientPoly) *CoefficientPoly {
	out := NewCoefficientPoly(a.N())
	for i := range out.Coeffs {
		out.Coeffs[i] = residue.Sub(a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// NegCoeffs returns -a in coefficient form.
func NegCoeffs(a *CoefficientPoly) *CoefficientPoly {
	out := NewCoefficientPoly(a.N())
	for i := range out.Coeffs {
		out.Coeffs[i] = residue.Neg(a.Coeffs[i])
	}
	return out
}

// AddSlots returns a+b in slot form.
func AddSlots(a, b *SlotPoly) *SlotPoly {
	out := NewSlotPoly(a.N())
	for i := range out.Slots {
		out.Slots[i] = residue.Add(a.Slots[i], b.Slots[i])
	}
	return out
}

// SubSlots returns a-b in slot form.
func SubSlots(a, b *SlotPoly) *SlotPoly {
	out := NewSlotPoly(a.N())
	for i := range out.Slots {
		out.Slots[i] = residue.Sub(a.Slots[i], b.Slots[i])
	}
	return out
}

// NegSlots returns -a in slot form.
func NegSlots(a *SlotPoly) *SlotPoly {
	out := NewSlotPoly(a.N())
	for i := range out.Slots {
		out.Slots[i] = residue.Neg(a.Slots[i])
	}
	return out
}

// MulSlots returns the pointwise product of a and b in slot form. Since
// the slot representation is the CRT image of R_q, this is exactly ring
// multiplication, computed in O(n) rather than the O(n^2) schoolbook pass
// CoefficientPoly.MulNaive needs.
func MulSlots(a, b *SlotPoly) *SlotPoly {
	out := NewSlotPoly(a.N())
	for i := range out.Slots {
		out.Slots[i] = residue.Mul(a.Slots[i], b.Slots[i])
	}
	return out
}

// MulNaive computes a*b mod (X^n+1) by schoolbook convolution, reducing
// each term X^(n+k) to -X^k. It exists purely as a slow, obviously
// correct independent oracle for cross-checking the transform-based
// multiplication, never on the hot path — the same role a brute-force
// reference implementation plays alongside an NTT-based fast path.
func (p *CoefficientPoly) MulNaive(other *CoefficientPoly) *CoefficientPoly {
	n := p.N()
	acc := make([]residue.Residue, n)
	for i := range acc {
		acc[i] = residue.Zero()
	}
	for i, ai := range p.Coeffs {
		if ai.Limbs().IsZero() {
			continue
		}
		for j, bj := range other.Coeffs {
			term := residue.Mul(ai, bj)
			k := i + j
			if k >= n {
				k -= n
				term = residue.Neg(term)
			}
			acc[k] = residue.Add(acc[k], term)
		}
	}
	return &CoefficientPoly{Coeffs: acc}
}

// Eval evaluates p at x by Horner's method, generalized from a single
// 64-bit modulus to the full 384-bit residue field.
func (p *CoefficientPoly) Eval(x residue.Residue) residue.Residue {
	n := p.N()
	y := p.Coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		y = residue.Add(residue.Mul(y, x), p.Coeffs[i])
	}
	return y
}
