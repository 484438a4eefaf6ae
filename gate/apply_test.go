package gate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
)

func TestApplyRejectsWrongTargetCount(t *testing.T) {
	in, err := noise.Identity(2)
	require.NoError(t, err)
	_, err = Apply(CNOT(), []int{0}, in, qecutils.Default())
	require.ErrorIs(t, err, qecutils.ErrInvalidTarget)
}

func TestApplyRejectsDuplicateTargets(t *testing.T) {
	in, err := noise.Identity(2)
	require.NoError(t, err)
	_, err = Apply(CNOT(), []int{0, 0}, in, qecutils.Default())
	require.ErrorIs(t, err, qecutils.ErrInvalidTarget)
}

func TestApplyHadamardOnIdentityStaysIdentity(t *testing.T) {
	in, err := noise.Identity(1)
	require.NoError(t, err)
	out, err := Apply(Hadamard(), []int{0}, in, qecutils.Default())
	require.NoError(t, err)
	require.InDelta(t, 1.0, out.Get(0), 1e-12)
}

func TestApplyWireNoiseConservesProbability(t *testing.T) {
	in, err := noise.Identity(1)
	require.NoError(t, err)
	model := noise.NewIID(1, 0.3)
	out, err := Apply(WireNoise(model), []int{0}, in, qecutils.Default())
	require.NoError(t, err)
	require.InDelta(t, 1.0, out.Sum(), 1e-9)
}
