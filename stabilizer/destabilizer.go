// Package stabilizer implements the destabiliser construction and the
// Cleve-Gottesman encoding-circuit synthesis of spec.md §4.G-§4.H.
package stabilizer

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// LogicalConvention fixes how a (2k x 2n) logicals matrix is laid out:
// rows [0,k) are the X-type logical operators X_L1..X_Lk and rows [k,2k)
// are the matching Z-type logical operators Z_L1..Z_Lk, Z_Li anticommuting
// with X_Li and commuting with every other logical (spec.md §9's Open
// Questions note several such ordering choices are left to the source's
// memory layout; this module fixes the convention explicitly here).
//
// XLogicals and ZLogicals split a logicals matrix according to that
// convention.
func XLogicals(logicals *symplectic.Matrix) *symplectic.Matrix {
	k := logicals.Rows() / 2
	return subRows(logicals, 0, k)
}

func ZLogicals(logicals *symplectic.Matrix) *symplectic.Matrix {
	k := logicals.Rows() / 2
	return subRows(logicals, k, 2*k)
}

func subRows(m *symplectic.Matrix, from, to int) *symplectic.Matrix {
	out := symplectic.NewMatrix(to-from, m.N())
	for i := from; i < to; i++ {
		out.RowCopy(i-from, m, i)
	}
	return out
}

// ExhaustiveDestabilizers finds, for an (h x 2n) stabiliser code and its
// (2k x 2n) logicals, destabilisers D_0..D_{h-1} satisfying spec.md §4.G's
// four conditions, by exhaustive backtracking search over the Pauli
// iterator in ascending weight order (spec.md §4.G method (a)): row i
// keeps the first candidate satisfying all four constraints and recurses
// into row i+1, but if no choice completes every later row, it backtracks
// and tries row i's next candidate instead of failing outright.
//
//   - D_i commutes with every logical operator
//   - D_i commutes with S_j for every j != i
//   - D_i anticommutes with S_i
//   - D_i commutes with every destabiliser already chosen
func ExhaustiveDestabilizers(code, logicals *symplectic.Matrix) (*symplectic.Matrix, error) {
	h := code.Rows()
	n := code.N()
	if logicals.N() != n {
		return nil, fmt.Errorf("stabilizer: ExhaustiveDestabilizers: %w", qecutils.ErrDimensionMismatch)
	}

	destab := symplectic.NewMatrix(h, n)
	if !fillDestabilizerRow(code, logicals, destab, h, n, 0) {
		return nil, fmt.Errorf("stabilizer: ExhaustiveDestabilizers: %w", qecutils.ErrNoDestabilisersFound)
	}

	return destab, nil
}

// fillDestabilizerRow tries every candidate for row i in ascending-weight
// order; for each that satisfies row i's own four constraints, it commits
// the candidate and recurses into row i+1. If no choice for a later row
// can be completed, the recursion returns false and this function backs
// off to the next candidate for row i, undoing the commit -- the
// backtracking spec.md §4.G's method (a) calls for, needed because an
// earlier row's candidate is chosen without knowledge of whether it will
// leave a later row with no valid candidate at all.
func fillDestabilizerRow(code, logicals, destab *symplectic.Matrix, h, n, i int) bool {
	if i == h {
		return true
	}

	it := symplectic.NewIterator(n, 0, 2*n)
	for {
		v, ok := it.NextInt()
		if !ok {
			return false
		}
		cand := symplectic.FromInt(n, v)

		if !commutesWithAll(cand, logicals) {
			continue
		}
		if !commutesWithAllExcept(cand, code, i) {
			continue
		}
		if cand.RowCommutes(0, code, i) != 1 {
			continue
		}
		if i > 0 && !commutesWithAllRows(cand, destab, i) {
			continue
		}

		destab.RowCopy(i, cand, 0)
		if fillDestabilizerRow(code, logicals, destab, h, n, i+1) {
			return true
		}
	}
}

func commutesWithAll(cand *symplectic.Matrix, rows *symplectic.Matrix) bool {
	for r := 0; r < rows.Rows(); r++ {
		if cand.RowCommutes(0, rows, r) != 0 {
			return false
		}
	}
	return true
}

// commutesWithAllRows checks against only the first `upTo` rows of rows,
// used while a destabiliser matrix is still being filled in row-by-row.
func commutesWithAllRows(cand *symplectic.Matrix, rows *symplectic.Matrix, upTo int) bool {
	for r := 0; r < upTo; r++ {
		if cand.RowCommutes(0, rows, r) != 0 {
			return false
		}
	}
	return true
}

func commutesWithAllExcept(cand *symplectic.Matrix, rows *symplectic.Matrix, except int) bool {
	for r := 0; r < rows.Rows(); r++ {
		if r == except {
			continue
		}
		if cand.RowCommutes(0, rows, r) != 0 {
			return false
		}
	}
	return true
}

// Destabilizer is the decoder-facing view of a computed destabiliser set.
type Destabilizer struct {
	Rows *symplectic.Matrix
}

// NewDestabilizer wraps a precomputed destabiliser matrix.
func NewDestabilizer(rows *symplectic.Matrix) Destabilizer { return Destabilizer{Rows: rows} }

// Recovery computes the destabiliser-decoder recovery Pauli for the given
// syndrome bits (spec.md §4.I): recovery = XOR of destabiliser row i for
// every syndrome bit i that is set.
func (d Destabilizer) Recovery(syndrome []byte) *symplectic.Matrix {
	n := d.Rows.N()
	out := symplectic.NewVector(n)
	for i, bit := range syndrome {
		if bit != 0 {
			out.RowXor(0, d.Rows, i)
		}
	}
	return out
}
