package ft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

func threeQubitBitFlip() *symplectic.Matrix {
	code := symplectic.NewMatrix(2, 3)
	code.Set(0, 0+3, 1)
	code.Set(0, 1+3, 1)
	code.Set(1, 1+3, 1)
	code.Set(1, 2+3, 1)
	return code
}

func TestBuildSyndromeMeasurementQubitLayout(t *testing.T) {
	code := threeQubitBitFlip()
	c, ancillas, err := BuildSyndromeMeasurement(code)
	require.NoError(t, err)
	require.Equal(t, 5, c.NQubits) // 3 data + 2 ancillas
	require.Equal(t, []int{3, 4}, ancillas)
}

func TestNewSyndromeMeasurementRunProducesDataOnlyTable(t *testing.T) {
	code := threeQubitBitFlip()
	sm, err := NewSyndromeMeasurement(code)
	require.NoError(t, err)

	in := zeroTable(t, 3)
	out, err := sm.Run(nil, in, defaultCfg())
	require.NoError(t, err)
	require.Equal(t, 3, out.N())
	require.Len(t, sm.Syndrome, 2)
}
