package residue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFieldLaws(t *testing.T) {
	zero := Zero()
	one := One()

	rng, err := NewBlake2bRNG([]byte("residue-test-seed"))
	require.NoError(t, err)

	elems := []Residue{zero, one}
	for i := 0; i < 100; i++ {
		elems = append(elems, SampleUniform(rng))
	}

	for _, a := range elems {
		require.True(t, Equal(Add(a, zero), a))
		require.True(t, Equal(Mul(a, one), a))
		require.True(t, Equal(Add(a, Neg(a)), zero))
	}

	for i, a := range elems {
		for _, b := range elems[i:] {
			require.True(t, Equal(Add(a, b), Add(b, a)))
			require.True(t, Equal(Mul(a, b), Mul(b, a)))
		}
	}
}

func TestNegZero(t *testing.T) {
	require.True(t, Equal(Neg(Zero()), Zero()))
}

func TestMulScalarI64Negative(t *testing.T) {
	a := FromU64(5)
	got := MulScalarI64(a, -3)
	want := Neg(FromU64(15))
	if diff := cmp.Diff(want.Limbs(), got.Limbs()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDoublingSeed(t *testing.T) {
	// Starting from 2*1, square nine times.
	r := Add(One(), One())
	for i := 0; i < 9; i++ {
		r = Mul(r, r)
	}
	want := FromLimbs([6]uint64{0, 0, 0x107fff, 0, 0, 0})
	require.True(t, Equal(r, want), "got %v want %v", r, want)
}

func TestPowSquareOfSquare(t *testing.T) {
	a := FromU64(12345)
	// a^(q-1) == 1 for a != 0; we only check a smaller exponent identity
	// that stays within uint32 range: a^4 == (a^2)^2.
	a2 := Pow(a, 2)
	a4 := Pow(a, 4)
	require.True(t, Equal(Mul(a2, a2), a4))
}
