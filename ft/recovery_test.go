package ft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/decoder"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/stabilizer"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

func TestRecoveryRunCorrectsWeightOneError(t *testing.T) {
	code := threeQubitBitFlip()
	logicals := symplectic.NewMatrix(2, 3)
	logicals.Set(0, 0, 1)
	logicals.Set(0, 1, 1)
	logicals.Set(0, 2, 1)
	logicals.Set(1, 0+3, 1)

	dstab, err := stabilizer.ExhaustiveDestabilizers(code, logicals)
	require.NoError(t, err)
	dec := decoder.NewDestabilizerDecoder(stabilizer.NewDestabilizer(dstab))
	r := NewRecovery(code, dec)

	in, err := noise.Zeros(3)
	require.NoError(t, err)
	errVec := symplectic.NewVector(3)
	errVec.Set(0, 1, 1) // X on qubit 1
	idx, err := errVec.ToInt(0)
	require.NoError(t, err)
	in.Set(idx, 1.0)

	out, err := r.Run(nil, in, defaultCfg())
	require.NoError(t, err)
	require.InDelta(t, 1.0, out.Get(0), 1e-9, "recovery should cancel the weight-one X error back to identity")
}

func TestRecoveryRunDecoderMissPassesThroughUncorrected(t *testing.T) {
	code := threeQubitBitFlip()
	dec := decoder.NewLookupDecoder(3) // empty: every syndrome misses

	r := NewRecovery(code, dec)

	in, err := noise.Zeros(3)
	require.NoError(t, err)
	errVec := symplectic.NewVector(3)
	errVec.Set(0, 1, 1) // X on qubit 1
	idx, err := errVec.ToInt(0)
	require.NoError(t, err)
	in.Set(idx, 1.0)

	out, err := r.Run(nil, in, defaultCfg())
	require.NoError(t, err)
	require.InDelta(t, 1.0, out.Get(idx), 1e-9, "a decoder miss must default to an identity correction, passing the branch's mass through unchanged rather than dropping it")
}
