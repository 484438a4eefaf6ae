package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/stabilizer"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

func threeQubitBitFlip() (*symplectic.Matrix, *symplectic.Matrix) {
	code := symplectic.NewMatrix(2, 3)
	code.Set(0, 0+3, 1)
	code.Set(0, 1+3, 1)
	code.Set(1, 1+3, 1)
	code.Set(1, 2+3, 1)

	logicals := symplectic.NewMatrix(2, 3)
	logicals.Set(0, 0, 1)
	logicals.Set(0, 1, 1)
	logicals.Set(0, 2, 1)
	logicals.Set(1, 0+3, 1)

	return code, logicals
}

func TestDestabilizerDecoderZeroSyndromeIsIdentity(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	dstab, err := stabilizer.ExhaustiveDestabilizers(code, logicals)
	require.NoError(t, err)
	d := NewDestabilizerDecoder(stabilizer.NewDestabilizer(dstab))

	rec, err := d.Decode([]byte{0, 0})
	require.NoError(t, err)
	for q := 0; q < 3; q++ {
		require.True(t, rec.IsI(0, q))
	}
}

func TestTailoredDecoderCorrectsSingleXError(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	model := noise.NewWeightOne(3, 0.05)
	d, err := BuildTailored(code, logicals, model)
	require.NoError(t, err)

	err1 := symplectic.NewVector(3)
	err1.Set(0, 1, 1) // X on qubit 1
	syn := code.Syndrome(err1, 0)
	bits := []byte{syn.Get(0, 0), syn.Get(0, 1)}

	rec, err := d.Decode(bits)
	require.NoError(t, err)

	residual := err1.Clone()
	residual.RowXor(0, rec, 0)
	logSyn := logicals.Multiply(residual, 0)
	require.EqualValues(t, 0, logSyn.Get(0, 0))
	require.EqualValues(t, 0, logSyn.Get(0, 1))
}

func TestBuildTailoredMemoisesOnIdenticalCodeLogicalsModel(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	model := noise.NewIID(3, 0.05)

	first, err := BuildTailored(code, logicals, model)
	require.NoError(t, err)
	second, err := BuildTailored(code, logicals, model)
	require.NoError(t, err)
	require.Same(t, first, second, "BuildTailored must return the cached decoder for an unchanged (code, logicals, model) triple")

	diffModel := noise.NewIID(3, 0.1)
	third, err := BuildTailored(code, logicals, diffModel)
	require.NoError(t, err)
	require.NotSame(t, first, third, "a different model must miss the cache and build a fresh decoder")
}

func TestBuildTailoredMemoisesLookupModelByTableFingerprint(t *testing.T) {
	code, logicals := threeQubitBitFlip()

	tbl, err := noise.Identity(3)
	require.NoError(t, err)
	model := noise.NewLookup(tbl)

	first, err := BuildTailored(code, logicals, model)
	require.NoError(t, err)
	second, err := BuildTailored(code, logicals, model)
	require.NoError(t, err)
	require.Same(t, first, second)

	tbl2, err := noise.Identity(3)
	require.NoError(t, err)
	tbl2.Set(1, 0.5)
	diffModel := noise.NewLookup(tbl2)
	third, err := BuildTailored(code, logicals, diffModel)
	require.NoError(t, err)
	require.NotSame(t, first, third, "a Lookup model over a different table must miss the cache")
}

func TestLookupDecoderMissReturnsIdentityAndError(t *testing.T) {
	d := NewLookupDecoder(3)
	rec, err := d.Decode([]byte{1, 1})
	require.Error(t, err)
	for q := 0; q < 3; q++ {
		require.True(t, rec.IsI(0, q))
	}
}

func TestLookupDecoderInsertThenHit(t *testing.T) {
	d := NewLookupDecoder(3)
	recovery := symplectic.NewVector(3)
	recovery.Set(0, 1, 1)
	d.Insert([]byte{1, 1}, recovery)

	got, err := d.Decode([]byte{1, 1})
	require.NoError(t, err)
	require.True(t, got.RowEqual(0, recovery, 0))
	require.Equal(t, 1, d.Len())
}
