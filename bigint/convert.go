package bigint

import "fmt"

// ErrOverflow is returned by the checked narrowing conversions when the
// source value does not fit the destination width, i.e. some high limb is
// non-zero. This indicates a programming error: every narrowing performed
// internally by package residue follows a reduction mod q and therefore
// always succeeds by construction.
var ErrOverflow = fmt.Errorf("bigint: overflow during narrowing conversion")

// WidenTo448 zero-extends a 384-bit value into 448 bits.
func WidenTo448(x U384) (z U448) {
	copy(z[:6], x[:])
	return
}

// WidenTo768From384 zero-extends a 384-bit value into 768 bits.
func WidenTo768From384(x U384) (z U768) {
	copy(z[:6], x[:])
	return
}

// WidenTo768From448 zero-extends a 448-bit value into 768 bits.
func WidenTo768From448(x U448) (z U768) {
	copy(z[:7], x[:])
	return
}

// NarrowTo384From448 narrows a 448-bit value to 384 bits, failing with
// ErrOverflow if limb 6 is non-zero.
func NarrowTo384From448(x U448) (z U384, err error) {
	if x[6] != 0 {
		return U384{}, fmt.Errorf("%w: U448 -> U384", ErrOverflow)
	}
	copy(z[:], x[:6])
	return z, nil
}

// NarrowTo384From768 narrows a 768-bit value to 384 bits, failing with
// ErrOverflow if any of limbs 6..11 is non-zero.
func NarrowTo384From768(x U768) (z U384, err error) {
	for _, w := range x[6:] {
		if w != 0 {
			return U384{}, fmt.Errorf("%w: U768 -> U384", ErrOverflow)
		}
	}
	copy(z[:], x[:6])
	return z, nil
}

// NarrowTo448From768 narrows a 768-bit value to 448 bits, failing with
// ErrOverflow if any of limbs 7..11 is non-zero.
func NarrowTo448From768(x U768) (z U448, err error) {
	for _, w := range x[7:] {
		if w != 0 {
			return U448{}, fmt.Errorf("%w: U768 -> U448", ErrOverflow)
		}
	}
	copy(z[:], x[:7])
	return z, nil
}
