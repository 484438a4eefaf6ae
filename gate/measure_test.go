package gate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

func TestExtractZReadsXComponent(t *testing.T) {
	v := symplectic.NewVector(2)
	v.Set(0, 0, 1) // X on qubit 0
	bits := ExtractZ(v, 0, []int{0, 1})
	require.Equal(t, []byte{1, 0}, bits)
}

func TestExtractXReadsZComponent(t *testing.T) {
	v := symplectic.NewVector(2)
	v.Set(0, 1+2, 1) // Z on qubit 1
	bits := ExtractX(v, 0, []int{0, 1})
	require.Equal(t, []byte{0, 1}, bits)
}

func TestPrepareZSetsEigenstate(t *testing.T) {
	in := symplectic.NewVector(1)
	in.Set(0, 0, 1)
	out := outcomeVec(t, PrepareZ(1), in, []int{0})
	require.True(t, out.IsZ(0, 0))
}

func TestMeasureZIsIdentity(t *testing.T) {
	in := symplectic.NewVector(1)
	in.Set(0, 0, 1)
	out := outcomeVec(t, MeasureZ(1), in, []int{0})
	require.True(t, out.RowEqual(0, in, 0))
}
