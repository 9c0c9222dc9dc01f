// Package bigint implements fixed-width unsigned multi-precision integers
// of 384, 448 and 768 bits, stored as little-endian arrays of 64-bit limbs.
//
// The three widths exist to let the residue layer (see package residue)
// carry out 384-bit modular arithmetic without ever needing an
// arbitrary-precision type: two values below a 384-bit modulus always sum
// to something that fits in 448 bits, and always multiply to something
// that fits in 768 bits. Every add, sub and mul routine here is a fixed,
// branch-light carry/borrow chain over math/bits (division is a bit-serial
// long-division loop instead, see DivMod448), the same style used for single-word
// modular reduction (math/bits.Mul64-based Montgomery/Barrett reduction)
// scaled up to many limbs.
package bigint

import "math/bits"

// U384 is a 384-bit unsigned integer, 6 little-endian 64-bit limbs.
type U384 [6]uint64

// U448 is a 448-bit unsigned integer, 7 little-endian 64-bit limbs.
type U448 [7]uint64

// U768 is a 768-bit unsigned integer, 12 little-endian 64-bit limbs.
type U768 [12]uint64

// IsZero reports whether x is the zero value.
func (x U384) IsZero() bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// Cmp compares x and y, returning -1, 0 or +1.
func (x U384) Cmp(y U384) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add384 computes x+y wrapping at 2^384.
func Add384(x, y U384) (z U384) {
	var c uint64
	for i := 0; i < 6; i++ {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return
}

// Sub384 computes x-y wrapping at 2^384. The caller must ensure x >= y,
// or that the wraparound is accounted for (see the residue layer's
// pre-add-the-modulus convention).
func Sub384(x, y U384) (z U384) {
	var b uint64
	for i := 0; i < 6; i++ {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return
}

// Add448 computes x+y wrapping at 2^448.
func Add448(x, y U448) (z U448) {
	var c uint64
	for i := 0; i < 7; i++ {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return
}

// Sub448 computes x-y wrapping at 2^448.
func Sub448(x, y U448) (z U448) {
	var b uint64
	for i := 0; i < 7; i++ {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return
}

// Mul384To768 computes the full 768-bit product of two 384-bit values.
func Mul384To768(x, y U384) (z U768) {
	for i := 0; i < 6; i++ {
		if x[i] == 0 {
			continue
		}
		var c uint64
		for j := 0; j < 6; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c0 uint64
			z[i+j], c0 = bits.Add64(z[i+j], lo, 0)
			hi, c0 = bits.Add64(hi, 0, c0)
			z[i+j+1], c = bits.Add64(z[i+j+1], hi, c)
			// propagate any remaining carry above i+j+1
			k := i + j + 2
			for c != 0 && k < 12 {
				z[k], c = bits.Add64(z[k], 0, c)
				k++
			}
		}
	}
	return
}

// Mul384ByU64To448 computes the 448-bit product of a 384-bit value and a
// 64-bit scalar.
func Mul384ByU64To448(x U384, k uint64) (z U448) {
	var c uint64
	for i := 0; i < 6; i++ {
		hi, lo := bits.Mul64(x[i], k)
		var c0 uint64
		z[i], c0 = bits.Add64(z[i], lo, c)
		z[i+1] = hi + c0
		c = 0
	}
	return
}

// DivMod448 computes (quot, rem) = x divmod y for x and y both 448-bit
// values, y > 0, returning both as U448. Implemented as schoolbook binary
// long division: the divisor's bit length is runtime-variable, so unlike
// the add/sub/mul routines above this cannot be expressed as a fixed
// unrolled carry chain.
func DivMod448(x, y U448) (quot, rem U448) {
	if isZero448(y) {
		panic("bigint: division by zero")
	}
	for bit := 447; bit >= 0; bit-- {
		rem = shl1_448(rem)
		if bitAt448(x, bit) {
			rem[0] |= 1
		}
		if cmp448(rem, y) >= 0 {
			rem = Sub448(rem, y)
			setBit448(&quot, bit)
		}
	}
	return
}

func isZero448(x U448) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

func cmp448(x, y U448) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func bitAt448(x U448, bit int) bool {
	return (x[bit/64]>>(uint(bit)%64))&1 == 1
}

func setBit448(x *U448, bit int) {
	x[bit/64] |= 1 << (uint(bit) % 64)
}

func shl1_448(x U448) (z U448) {
	var carry uint64
	for i := 0; i < 7; i++ {
		z[i] = (x[i] << 1) | carry
		carry = x[i] >> 63
	}
	return
}

// DivMod768 computes (quot, rem) = x divmod y for x a 768-bit value and
// y > 0, returning rem as U768. Used to reduce a 768-bit product modulo a
// 384-bit prime during residue multiplication.
func DivMod768(x, y U768) (quot, rem U768) {
	if isZero768(y) {
		panic("bigint: division by zero")
	}
	for bit := 767; bit >= 0; bit-- {
		rem = shl1_768(rem)
		if bitAt768(x, bit) {
			rem[0] |= 1
		}
		if cmp768(rem, y) >= 0 {
			rem = sub768(rem, y)
			setBit768(&quot, bit)
		}
	}
	return
}

func isZero768(x U768) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

func cmp768(x, y U768) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func sub768(x, y U768) (z U768) {
	var b uint64
	for i := 0; i < 12; i++ {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return
}

func bitAt768(x U768, bit int) bool {
	return (x[bit/64]>>(uint(bit)%64))&1 == 1
}

func setBit768(x *U768, bit int) {
	x[bit/64] |= 1 << (uint(bit) % 64)
}

func shl1_768(x U768) (z U768) {
	var carry uint64
	for i := 0; i < 12; i++ {
		z[i] = (x[i] << 1) | carry
		carry = x[i] >> 63
	}
	return
}
