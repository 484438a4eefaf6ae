package catalogue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func assertValidCode(t *testing.T, c Code) {
	t.Helper()
	h := c.Stabilizers.Rows()
	for i := 0; i < h; i++ {
		for j := 0; j < h; j++ {
			if i == j {
				continue
			}
			require.EqualValues(t, 0, c.Stabilizers.RowCommutes(i, c.Stabilizers, j),
				"%s: stabiliser %d and %d must commute", c.Name, i, j)
		}
		for l := 0; l < c.Logicals.Rows(); l++ {
			require.EqualValues(t, 0, c.Stabilizers.RowCommutes(i, c.Logicals, l),
				"%s: stabiliser %d must commute with logical %d", c.Name, i, l)
		}
	}
}

func TestThreeQubitBitFlipIsValid(t *testing.T) {
	assertValidCode(t, ThreeQubitBitFlip())
}

func TestFiveQubitIsValid(t *testing.T) {
	assertValidCode(t, FiveQubit())
}

func TestSteaneIsValid(t *testing.T) {
	assertValidCode(t, Steane())
}

func TestShorIsValid(t *testing.T) {
	assertValidCode(t, Shor())
}

func TestAllContainsEveryFixture(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	require.Contains(t, all, "steane")
	require.Contains(t, all, "five_qubit")
}
