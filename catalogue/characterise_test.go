package catalogue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/decoder"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// pureBitFlipModel builds an n-qubit Lookup model over a channel that only
// ever applies X errors, each qubit flipping independently with probability
// p: P(e) = p^wt * (1-p)^(n-wt) for the weight-wt all-X string e, zero on
// every string carrying a Y or Z. This is the classical bit-flip channel
// spec.md §8's three-qubit scenario is stated against -- distinct from
// noise.NewIID's X/Y/Z-symmetric depolarising channel.
func pureBitFlipModel(t *testing.T, n int, p float64) noise.Model {
	t.Helper()
	tbl, err := noise.Zeros(n)
	require.NoError(t, err)

	for mask := 0; mask < (1 << uint(n)); mask++ {
		v := symplectic.NewVector(n)
		wt := 0
		for q := 0; q < n; q++ {
			if mask&(1<<uint(q)) != 0 {
				v.Set(0, q, 1) // X component at qubit q, Z left at 0.
				wt++
			}
		}
		idx, err := v.ToInt(0)
		require.NoError(t, err)
		tbl.Set(idx, math.Pow(p, float64(wt))*math.Pow(1-p, float64(n-wt)))
	}
	return noise.NewLookup(tbl)
}

// TestCharacteriseThreeQubitBitFlipMatchesClosedForm is spec.md §8's
// smallest concrete end-to-end scenario: the [[3,1,1]] repetition code
// under a pure bit-flip channel at p=0.05 decodes correctly unless two or
// three of the qubits flip, matching the classical majority-vote formula
// (1-p)^2*(1+2p) = 1 - (3p^2(1-p) + p^3) = 0.992750.
func TestCharacteriseThreeQubitBitFlipMatchesClosedForm(t *testing.T) {
	c := ThreeQubitBitFlip()
	p := 0.05
	model := pureBitFlipModel(t, 3, p)

	dec, err := decoder.BuildTailored(c.Stabilizers, c.Logicals, model)
	require.NoError(t, err)

	dist, err := Characterise(c.Stabilizers, c.Logicals, model, dec)
	require.NoError(t, err)
	require.Len(t, dist, 4)

	want := math.Pow(1-p, 2) * (1 + 2*p)
	require.InDelta(t, 0.992750, want, 1e-6)
	require.InDelta(t, want, dist[0], 1e-9)
}

// TestCharacteriseFiveQubitWeightOneAlwaysCorrects exercises spec.md §8's
// "any single-qubit error is correctable" property for the [[5,1,3]]
// perfect code: under noise.NewWeightOne (all mass on weight <=1 strings),
// the distance-3 code resolves every weight-1 syndrome unambiguously, so
// the logical success mass is exactly 1.
func TestCharacteriseFiveQubitWeightOneAlwaysCorrects(t *testing.T) {
	c := FiveQubit()
	model := noise.NewWeightOne(5, 0.01)

	dec, err := decoder.BuildTailored(c.Stabilizers, c.Logicals, model)
	require.NoError(t, err)

	dist, err := Characterise(c.Stabilizers, c.Logicals, model, dec)
	require.NoError(t, err)
	require.Len(t, dist, 4)
	require.InDelta(t, 1.0, dist[0], 1e-9)
}

// TestCharacteriseFiveQubitIIDHighSuccess exercises the same code against
// the full depolarising noise.NewIID channel at p=0.01, spec.md §8's other
// concrete scenario: logical failure is driven by weight>=2 errors, so the
// success mass stays close to 1 but strictly below the weight-one case's
// exact 1.0 above.
func TestCharacteriseFiveQubitIIDHighSuccess(t *testing.T) {
	c := FiveQubit()
	model := noise.NewIID(5, 0.01)

	dec, err := decoder.BuildTailored(c.Stabilizers, c.Logicals, model)
	require.NoError(t, err)

	dist, err := Characterise(c.Stabilizers, c.Logicals, model, dec)
	require.NoError(t, err)
	require.Len(t, dist, 4)
	require.Greater(t, dist[0], 0.995)
	require.Less(t, dist[0], 1.0)
}
