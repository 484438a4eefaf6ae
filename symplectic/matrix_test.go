package symplectic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrixXZYIdentity(t *testing.T) {
	m := NewVector(3)
	m.Set(0, 0, 1) // X on qubit 0
	m.Set(0, 1+3, 1) // Z on qubit 1
	m.Set(0, 2, 1)
	m.Set(0, 2+3, 1) // Y on qubit 2

	require.True(t, m.IsX(0, 0))
	require.False(t, m.IsI(0, 1))
	require.True(t, m.IsZ(0, 1))
	require.True(t, m.IsY(0, 2))
}

func TestRowCommutes(t *testing.T) {
	x := NewVector(1)
	x.Set(0, 0, 1)
	z := NewVector(1)
	z.Set(0, 1, 1)

	require.EqualValues(t, 1, x.RowCommutes(0, z, 0), "X and Z on the same qubit anticommute")
	require.EqualValues(t, 0, x.RowCommutes(0, x, 0), "X commutes with itself")
}

func TestToIntFromIntRoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		size := uint64(1) << uint(2*n)
		for v := uint64(0); v < size; v++ {
			m := FromInt(n, v)
			got, err := m.ToInt(0)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}

func TestPartialAddRejectsBadTargets(t *testing.T) {
	dst := NewVector(4)
	src := NewVector(2)
	src.Set(0, 0, 1)

	err := dst.PartialAdd(0, src, 0, []int{0, 0})
	require.Error(t, err)

	err = dst.PartialAdd(0, src, 0, []int{0, 5})
	require.Error(t, err)

	err = dst.PartialAdd(0, src, 0, []int{1, 3})
	require.NoError(t, err)
	require.True(t, dst.IsX(0, 1))
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	m := NewMatrix(3, 5)
	for i := 0; i < 3; i++ {
		m.Set(i, i, 1)
		m.Set(i, i+5, 1)
	}

	b, err := m.MarshalBinary()
	require.NoError(t, err)

	out := &Matrix{}
	require.NoError(t, out.UnmarshalBinary(b))
	require.Equal(t, m.Rows(), out.Rows())
	require.Equal(t, m.N(), out.N())
	for i := 0; i < 3; i++ {
		require.True(t, out.RowEqual(i, m, i))
	}
}

func TestSyndromeIsRowCommutes(t *testing.T) {
	code := NewMatrix(2, 3)
	code.Set(0, 0, 1) // X on qubit 0
	code.Set(1, 1+3, 1) // Z on qubit 1

	err := NewVector(3)
	err.Set(0, 0, 1) // X on qubit 0: commutes with code row 0, commutes with code row 1

	syn := code.Syndrome(err, 0)
	require.EqualValues(t, 0, syn.Get(0, 0))
	require.EqualValues(t, 0, syn.Get(0, 1))

	err2 := NewVector(3)
	err2.Set(0, 1, 1) // X on qubit 1: anticommutes with code row 1 (Z on qubit 1)
	syn2 := code.Syndrome(err2, 0)
	require.EqualValues(t, 0, syn2.Get(0, 0))
	require.EqualValues(t, 1, syn2.Get(0, 1))
}
