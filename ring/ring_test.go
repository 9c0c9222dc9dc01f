package ring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice384/ringq/params"
	"github.com/lattice384/ringq/residue"
)

func randomCoeffs(t *testing.T, seed string) *CoefficientPoly {
	t.Helper()
	rng, err := residue.NewBlake2bRNG([]byte(seed))
	require.NoError(t, err)
	p := NewCoefficientPoly(params.N)
	for i := range p.Coeffs {
		p.Coeffs[i] = residue.SampleUniform(rng)
	}
	return p
}

func TestForwardInverseRoundTrip(t *testing.T) {
	pool := NewBufferPool()
	c := randomCoeffs(t, "ring-roundtrip")

	s, err := Forward(c, pool)
	require.NoError(t, err)
	back, err := Inverse(s, pool)
	require.NoError(t, err)

	require.True(t, c.Equal(back))
}

func TestForwardIsRingHomomorphism(t *testing.T) {
	pool := NewBufferPool()
	a := randomCoeffs(t, "ring-hom-a")
	b := randomCoeffs(t, "ring-hom-b")

	sa, err := Forward(a, pool)
	require.NoError(t, err)
	sb, err := Forward(b, pool)
	require.NoError(t, err)

	sum := AddCoeffs(a, b)
	sSum, err := Forward(sum, pool)
	require.NoError(t, err)

	require.True(t, sSum.Equal(AddSlots(sa, sb)))
}

func TestMulSlotsMatchesNaiveMultiply(t *testing.T) {
	pool := NewBufferPool()
	a := randomCoeffs(t, "ring-mul-a")
	b := randomCoeffs(t, "ring-mul-b")

	sa, err := Forward(a, pool)
	require.NoError(t, err)
	sb, err := Forward(b, pool)
	require.NoError(t, err)

	prodSlots := MulSlots(sa, sb)
	prodCoeffs, err := Inverse(prodSlots, pool)
	require.NoError(t, err)

	want := a.MulNaive(b)
	require.True(t, want.Equal(prodCoeffs))
}

func TestSquaringInSlots(t *testing.T) {
	pool := NewBufferPool()
	a := randomCoeffs(t, "ring-square")

	sa, err := Forward(a, pool)
	require.NoError(t, err)

	sq := MulSlots(sa, sa)
	got, err := Inverse(sq, pool)
	require.NoError(t, err)

	want := a.MulNaive(a)
	require.True(t, want.Equal(got))
}

func TestHornerEval(t *testing.T) {
	// Coefficients (1,2,3) evaluated at x=10 give 1 + 2*10 + 3*100 = 321.
	p := NewCoefficientPoly(3)
	p.Coeffs[0] = residue.FromU64(1)
	p.Coeffs[1] = residue.FromU64(2)
	p.Coeffs[2] = residue.FromU64(3)

	got := p.Eval(residue.FromU64(10))
	require.True(t, residue.Equal(got, residue.FromU64(321)))
}

func TestCoefficientPolyEqualAndCopy(t *testing.T) {
	a := randomCoeffs(t, "ring-copy")
	b := a.CopyNew()
	require.True(t, a.Equal(b))

	b.Coeffs[0] = residue.Add(b.Coeffs[0], residue.One())
	require.False(t, a.Equal(b))
}

func TestAddSubNegCoeffs(t *testing.T) {
	a := randomCoeffs(t, "ring-addsub-a")
	b := randomCoeffs(t, "ring-addsub-b")

	sum := AddCoeffs(a, b)
	back := SubCoeffs(sum, b)
	require.True(t, a.Equal(back))

	negA := NegCoeffs(a)
	zero := AddCoeffs(a, negA)
	for _, c := range zero.Coeffs {
		require.True(t, residue.Equal(c, residue.Zero()))
	}
}
