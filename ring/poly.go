// Package ring implements R_q = Z_q[X]/(X^N+1), the ring whose elements
// are linked to their slot (evaluation) form by package transform. This
// engine has exactly one modulus rather than an RNS stack of several, so
// CoefficientPoly/SlotPoly each own a single flat []residue.Residue
// buffer of length params.N instead of one row per modulus.
package ring

import "github.com/lattice384/ringq/residue"

// CoefficientPoly holds the N coefficients of a ring element in
// coefficient form: Coeffs[i] is the coefficient of X^i.
type CoefficientPoly struct {
	Coeffs []residue.Residue
}

// SlotPoly holds the N evaluations of a ring element in slot form:
// Slots[i] is the value at the i-th primitive (2N)-th root of unity in
// the ordering transform.CRT produces.
type SlotPoly struct {
	Slots []residue.Residue
}

// NewCoefficientPoly returns a zero element of length n.
func NewCoefficientPoly(n int) *CoefficientPoly {
	return &CoefficientPoly{Coeffs: make([]residue.Residue, n)}
}

// NewSlotPoly returns a zero slot vector of length n.
func NewSlotPoly(n int) *SlotPoly {
	return &SlotPoly{Slots: make([]residue.Residue, n)}
}

// N returns the number of coefficients.
func (p *CoefficientPoly) N() int { return len(p.Coeffs) }

// N returns the number of slots.
func (p *SlotPoly) N() int { return len(p.Slots) }

// Zero sets every coefficient to 0.
func (p *CoefficientPoly) Zero() {
	for i := range p.Coeffs {
		p.Coeffs[i] = residue.Zero()
	}
}

// Zero sets every slot to 0.
func (p *SlotPoly) Zero() {
	for i := range p.Slots {
		p.Slots[i] = residue.Zero()
	}
}

// CopyNew returns an independent copy of p.
func (p *CoefficientPoly) CopyNew() *CoefficientPoly {
	out := NewCoefficientPoly(p.N())
	copy(out.Coeffs, p.Coeffs)
	return out
}

// CopyNew returns an independent copy of p.
func (p *SlotPoly) CopyNew() *SlotPoly {
	out := NewSlotPoly(p.N())
	copy(out.Slots, p.Slots)
	return out
}

// CopyValues copies other's coefficients onto p. The two must have equal
// length.
func (p *CoefficientPoly) CopyValues(other *CoefficientPoly) {
	if p != other {
		copy(p.Coeffs, other.Coeffs)
	}
}

// CopyValues copies other's slots onto p. The two must have equal length.
func (p *SlotPoly) CopyValues(other *SlotPoly) {
	if p != other {
		copy(p.Slots, other.Slots)
	}
}

// Equal reports whether p and other hold identical coefficients.
func (p *CoefficientPoly) Equal(other *CoefficientPoly) bool {
	if p == other {
		return true
	}
	if other == nil || len(p.Coeffs) != len(other.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if !residue.Equal(p.Coeffs[i], other.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether p and other hold identical slots.
func (p *SlotPoly) Equal(other *SlotPoly) bool {
	if p == other {
		return true
	}
	if other == nil || len(p.Slots) != len(other.Slots) {
		return false
	}
	for i := range p.Slots {
		if !residue.Equal(p.Slots[i], other.Slots[i]) {
			return false
		}
	}
	return true
}
