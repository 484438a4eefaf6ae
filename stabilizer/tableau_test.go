package stabilizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
)

func TestNewTableauBuildsDestabilizersAndStabilizerBlock(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	tab, err := NewTableau(code, logicals)
	require.NoError(t, err)
	require.Equal(t, 3, tab.N)
	require.Equal(t, 3, tab.Stab.Rows())
	require.Equal(t, 3, tab.Destab.Rows())
}

func TestEncodingCircuitProducesStabilizingState(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	tab, err := NewTableau(code, logicals)
	require.NoError(t, err)

	enc, err := tab.EncodingCircuit()
	require.NoError(t, err)
	require.Equal(t, 3, enc.NQubits)

	in, err := noise.Identity(3)
	require.NoError(t, err)
	_, err = enc.Run(in, qecutils.Default())
	require.NoError(t, err)
}

func TestTableauCNOTUpdateFollowsConjugationRule(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	tab, err := NewTableau(code, logicals)
	require.NoError(t, err)

	before := tab.Stab.Clone()
	tab.applyCNOT(0, 1)

	for r := 0; r < before.Rows(); r++ {
		wantX1 := before.X(r, 1) ^ before.X(r, 0)
		wantZ0 := before.Z(r, 0) ^ before.Z(r, 1)
		require.Equal(t, wantX1, tab.Stab.X(r, 1))
		require.Equal(t, wantZ0, tab.Stab.Z(r, 0))
	}
}
