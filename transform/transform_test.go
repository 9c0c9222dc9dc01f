package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice384/ringq/params"
	"github.com/lattice384/ringq/residue"
)

func randomVec(t *testing.T, seed string, n int) []residue.Residue {
	t.Helper()
	rng, err := residue.NewBlake2bRNG([]byte(seed))
	require.NoError(t, err)
	out := make([]residue.Residue, n)
	for i := range out {
		out[i] = residue.SampleUniform(rng)
	}
	return out
}

func requireEqualVecs(t *testing.T, want, got []residue.Residue) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		require.Truef(t, residue.Equal(want[i], got[i]), "index %d: want %v got %v", i, want[i], got[i])
	}
}

func TestDFTRoundTrip(t *testing.T) {
	for _, e := range []int{0, 1, 2, 3, 5, 8} {
		n := 1 << e
		orig := randomVec(t, "dft-roundtrip", n)
		data := append([]residue.Residue(nil), orig...)
		scratch := make([]residue.Residue, n)

		require.NoError(t, DFT(e, data, scratch))
		require.NoError(t, InvDFT(e, data, scratch))

		requireEqualVecs(t, orig, data)
	}
}

func TestDFTBadLength(t *testing.T) {
	data := make([]residue.Residue, 3)
	scratch := make([]residue.Residue, 3)
	err := DFT(2, data, scratch)
	require.ErrorIs(t, err, ErrPrecondition)
}

func TestCRTRoundTrip(t *testing.T) {
	n := params.N
	orig := randomVec(t, "crt-roundtrip", n)
	data := append([]residue.Residue(nil), orig...)
	scratch := make([]residue.Residue, n)

	require.NoError(t, CRT(data, scratch))
	require.NoError(t, InvCRT(data, scratch))

	requireEqualVecs(t, orig, data)
}

func TestCRTConstantIsUniform(t *testing.T) {
	n := params.N
	a := residue.FromU64(42)
	data := make([]residue.Residue, n)
	data[0] = a
	scratch := make([]residue.Residue, n)

	require.NoError(t, CRT(data, scratch))

	for i, s := range data {
		require.Truef(t, residue.Equal(s, a), "slot %d: want %v got %v", i, a, s)
	}
}

func TestCRTMonomialPower(t *testing.T) {
	n := params.N
	data1 := make([]residue.Residue, n)
	data1[1] = residue.One()
	scratch1 := make([]residue.Residue, n)
	require.NoError(t, CRT(data1, scratch1))

	const k = 5
	ek := make([]residue.Residue, n)
	ek[k] = residue.One()
	scratch := make([]residue.Residue, n)
	require.NoError(t, CRT(ek, scratch))

	for i := range data1 {
		want := residue.Pow(data1[i], k)
		require.Truef(t, residue.Equal(ek[i], want), "slot %d: want omega_i^%d = %v, got %v", i, k, want, ek[i])
	}
}

func TestCRTLinearity(t *testing.T) {
	n := params.N
	a := randomVec(t, "crt-lin-a", n)
	b := randomVec(t, "crt-lin-b", n)

	sum := make([]residue.Residue, n)
	for i := range sum {
		sum[i] = residue.Add(a[i], b[i])
	}

	sa := append([]residue.Residue(nil), a...)
	sb := append([]residue.Residue(nil), b...)
	ssum := append([]residue.Residue(nil), sum...)
	scratch := make([]residue.Residue, n)

	require.NoError(t, CRT(sa, scratch))
	require.NoError(t, CRT(sb, scratch))
	require.NoError(t, CRT(ssum, scratch))

	for i := range ssum {
		want := residue.Add(sa[i], sb[i])
		require.Truef(t, residue.Equal(ssum[i], want), "slot %d mismatch", i)
	}
}

func TestTransposeSmall(t *testing.T) {
	// 2x3 -> 3x2
	src := []residue.Residue{
		residue.FromU64(1), residue.FromU64(2), residue.FromU64(3),
		residue.FromU64(4), residue.FromU64(5), residue.FromU64(6),
	}
	dst := make([]residue.Residue, 6)
	require.NoError(t, Transpose(2, 3, src, dst))

	want := []residue.Residue{
		residue.FromU64(1), residue.FromU64(4),
		residue.FromU64(2), residue.FromU64(5),
		residue.FromU64(3), residue.FromU64(6),
	}
	requireEqualVecs(t, want, dst)
}

func TestTransposeLargerThanThreshold(t *testing.T) {
	majors, minors := 17, 19
	n := majors * minors
	src := make([]residue.Residue, n)
	for i := range src {
		src[i] = residue.FromU64(uint64(i))
	}
	dst := make([]residue.Residue, n)
	require.NoError(t, Transpose(majors, minors, src, dst))

	for r := 0; r < majors; r++ {
		for c := 0; c < minors; c++ {
			require.Truef(t, residue.Equal(dst[c*majors+r], src[r*minors+c]),
				"r=%d c=%d", r, c)
		}
	}
}
