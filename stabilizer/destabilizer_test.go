package stabilizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

func threeQubitBitFlip() (*symplectic.Matrix, *symplectic.Matrix) {
	code := symplectic.NewMatrix(2, 3)
	code.Set(0, 0+3, 1) // Z on 0
	code.Set(0, 1+3, 1) // Z on 1  -> ZZI
	code.Set(1, 1+3, 1) // Z on 1
	code.Set(1, 2+3, 1) // Z on 2  -> IZZ

	logicals := symplectic.NewMatrix(2, 3)
	logicals.Set(0, 0, 1)
	logicals.Set(0, 1, 1)
	logicals.Set(0, 2, 1) // X_L = XXX
	logicals.Set(1, 0+3, 1) // Z_L = ZII

	return code, logicals
}

func TestExhaustiveDestabilizersSatisfyInvariants(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	destab, err := ExhaustiveDestabilizers(code, logicals)
	require.NoError(t, err)
	require.Equal(t, code.Rows(), destab.Rows())

	for i := 0; i < destab.Rows(); i++ {
		require.EqualValues(t, 1, destab.RowCommutes(i, code, i), "D_%d must anticommute with S_%d", i, i)
		for j := 0; j < code.Rows(); j++ {
			if j == i {
				continue
			}
			require.EqualValues(t, 0, destab.RowCommutes(i, code, j), "D_%d must commute with S_%d", i, j)
		}
		for l := 0; l < logicals.Rows(); l++ {
			require.EqualValues(t, 0, destab.RowCommutes(i, logicals, l), "D_%d must commute with logical %d", i, l)
		}
	}
}

// setPauliRow writes a Pauli string like "IXXIIXX" into row of m, one
// letter per qubit.
func setPauliRow(m *symplectic.Matrix, row int, pauli string) {
	for q, c := range pauli {
		switch c {
		case 'X':
			m.Set(row, q, 1)
		case 'Z':
			m.Set(row, q+m.N(), 1)
		case 'Y':
			m.Set(row, q, 1)
			m.Set(row, q+m.N(), 1)
		case 'I':
		default:
			panic("stabilizer: setPauliRow: unknown Pauli letter " + string(c))
		}
	}
}

func steane() (*symplectic.Matrix, *symplectic.Matrix) {
	stabilizers := []string{
		"IIIXXXX",
		"IXXIIXX",
		"XIXIXIX",
		"IIIZZZZ",
		"IZZIIZZ",
		"ZIZIZIZ",
	}
	code := symplectic.NewMatrix(len(stabilizers), 7)
	for i, s := range stabilizers {
		setPauliRow(code, i, s)
	}

	logicals := symplectic.NewMatrix(2, 7)
	setPauliRow(logicals, 0, "XXXXXXX")
	setPauliRow(logicals, 1, "ZZZZZZZ")

	return code, logicals
}

func shor() (*symplectic.Matrix, *symplectic.Matrix) {
	stabilizers := []string{
		"ZZIIIIIII",
		"IZZIIIIII",
		"IIIZZIIII",
		"IIIIZZIII",
		"IIIIIIZZI",
		"IIIIIIIZZ",
		"XXXXXXIII",
		"IIIXXXXXX",
	}
	code := symplectic.NewMatrix(len(stabilizers), 9)
	for i, s := range stabilizers {
		setPauliRow(code, i, s)
	}

	logicals := symplectic.NewMatrix(2, 9)
	setPauliRow(logicals, 0, "XXXXXXXXX")
	setPauliRow(logicals, 1, "ZIIZIIZII")

	return code, logicals
}

// checkDestabilizerInvariants verifies spec.md §4.G's four conditions for
// every row of destab against code and logicals.
func checkDestabilizerInvariants(t *testing.T, code, logicals, destab *symplectic.Matrix) {
	t.Helper()
	require.Equal(t, code.Rows(), destab.Rows())
	for i := 0; i < destab.Rows(); i++ {
		require.EqualValues(t, 1, destab.RowCommutes(i, code, i), "D_%d must anticommute with S_%d", i, i)
		for j := 0; j < code.Rows(); j++ {
			if j == i {
				continue
			}
			require.EqualValues(t, 0, destab.RowCommutes(i, code, j), "D_%d must commute with S_%d", i, j)
		}
		for l := 0; l < logicals.Rows(); l++ {
			require.EqualValues(t, 0, destab.RowCommutes(i, logicals, l), "D_%d must commute with logical %d", i, l)
		}
		for j := 0; j < i; j++ {
			require.EqualValues(t, 0, destab.RowCommutes(i, destab, j), "D_%d must commute with D_%d", i, j)
		}
	}
}

func TestExhaustiveDestabilizersSteane(t *testing.T) {
	code, logicals := steane()
	destab, err := ExhaustiveDestabilizers(code, logicals)
	require.NoError(t, err)
	checkDestabilizerInvariants(t, code, logicals, destab)
}

func TestExhaustiveDestabilizersShor(t *testing.T) {
	code, logicals := shor()
	destab, err := ExhaustiveDestabilizers(code, logicals)
	require.NoError(t, err)
	checkDestabilizerInvariants(t, code, logicals, destab)
}

func TestDestabilizerRecoveryMatchesSyndrome(t *testing.T) {
	code, logicals := threeQubitBitFlip()
	destab, err := ExhaustiveDestabilizers(code, logicals)
	require.NoError(t, err)
	d := NewDestabilizer(destab)

	err1 := symplectic.NewVector(3)
	err1.Set(0, 1, 1) // X on qubit 1

	syn := code.Syndrome(err1, 0)
	bits := []byte{syn.Get(0, 0), syn.Get(0, 1)}
	recovery := d.Recovery(bits)

	residual := err1.Clone()
	residual.RowXor(0, recovery, 0)
	residualSyn := code.Syndrome(residual, 0)
	require.EqualValues(t, 0, residualSyn.Get(0, 0))
	require.EqualValues(t, 0, residualSyn.Get(0, 1))
}
