package stabilizer

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/circuit"
	"github.com/Alan-Robertson/qecode-sub000/gate"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// Tableau is the Cleve-Gottesman encoding tableau of spec.md §4.H: an
// n-qubit code's destabilisers and its (stabilisers + logicals) tracked
// together so that Clifford updates can be replayed as an encoding
// circuit. The source keeps this as a single 2n x 2n array; here it is
// split into two n x 2n symplectic.Matrix blocks (Destab and Stab), which
// is an equivalent layout and lets every update below reuse
// symplectic.Matrix's bit-level accessors directly.
type Tableau struct {
	N      int
	Destab *symplectic.Matrix // n rows: destabilisers, row i paired with Stab row i
	Stab   *symplectic.Matrix // n rows: h stabiliser rows followed by k X-logical rows
}

// NewTableau builds the initial tableau for an (h x 2n) code and its
// (2k x 2n) logicals (XLogicals/ZLogicals convention above): the stabiliser
// block is the code rows followed by the X-logicals (filling the rank
// deficiency up to n rows, spec.md §4.H), and the destabiliser block is
// computed by ExhaustiveDestabilizers against the full logical set,
// followed by the Z-logicals (which pair with the X-logicals exactly as a
// destabiliser pairs with its stabiliser).
func NewTableau(code, logicals *symplectic.Matrix) (*Tableau, error) {
	n := code.N()
	h := code.Rows()
	k := n - h
	if logicals.N() != n || logicals.Rows() != 2*k {
		return nil, fmt.Errorf("stabilizer: NewTableau: %w", qecutils.ErrDimensionMismatch)
	}

	xl := XLogicals(logicals)
	zl := ZLogicals(logicals)

	stab := symplectic.NewMatrix(n, n)
	for i := 0; i < h; i++ {
		stab.RowCopy(i, code, i)
	}
	for i := 0; i < k; i++ {
		stab.RowCopy(h+i, xl, i)
	}

	dstabRows, err := ExhaustiveDestabilizers(code, logicals)
	if err != nil {
		return nil, err
	}
	destab := symplectic.NewMatrix(n, n)
	for i := 0; i < h; i++ {
		destab.RowCopy(i, dstabRows, i)
	}
	for i := 0; i < k; i++ {
		destab.RowCopy(h+i, zl, i)
	}

	return &Tableau{N: n, Destab: destab, Stab: stab}, nil
}

// applyH conjugates every tableau row by a Hadamard on qubit q (swap the X
// and Z bits at q; mirrors gate.Hadamard's single-row update, applied here
// uniformly to all 2n rows).
func (t *Tableau) applyH(q int) {
	for _, m := range [2]*symplectic.Matrix{t.Destab, t.Stab} {
		for r := 0; r < m.Rows(); r++ {
			x, z := m.X(r, q), m.Z(r, q)
			if x != z {
				m.Set(r, q, z)
				m.Set(r, m.N()+q, x)
			}
		}
	}
}

// applyS conjugates every tableau row by a Phase gate on qubit q (z_q ^= x_q).
func (t *Tableau) applyS(q int) {
	for _, m := range [2]*symplectic.Matrix{t.Destab, t.Stab} {
		for r := 0; r < m.Rows(); r++ {
			if m.X(r, q) == 1 {
				m.Xor(r, m.N()+q, 1)
			}
		}
	}
}

// applyCNOT conjugates every tableau row by a CNOT(control, target):
// x_target ^= x_control, z_control ^= z_target.
func (t *Tableau) applyCNOT(control, target int) {
	for _, m := range [2]*symplectic.Matrix{t.Destab, t.Stab} {
		for r := 0; r < m.Rows(); r++ {
			if m.X(r, control) == 1 {
				m.Xor(r, target, 1)
			}
			if m.Z(r, target) == 1 {
				m.Xor(r, m.N()+control, 1)
			}
		}
	}
}

// recorder accumulates the gate sequence applied to a tableau so it can be
// replayed as an encoding circuit.
type recorder struct {
	t *Tableau
	c *circuit.Circuit
}

func (rec *recorder) h(q int) {
	rec.t.applyH(q)
	rec.c.AddGate(gate.Hadamard(), q)
}

func (rec *recorder) s(q int) {
	rec.t.applyS(q)
	rec.c.AddGate(gate.Phase(), q)
}

func (rec *recorder) cnot(control, target int) {
	rec.t.applyCNOT(control, target)
	rec.c.AddGate(gate.CNOT(), control, target)
}

// eliminateToIdentity brings the n x n sub-block of m's X-half (columns
// 0..n-1) to the identity matrix using only CNOT column-additions
// (CNOT(c,t) performs column[t] ^= column[c] on the X-half across every
// tableau row), which is the standard Gauss-Jordan elimination restricted
// to the "add row j into row i" elementary operation -- valid for any
// full-rank binary matrix and requiring no row/column swaps.
func eliminateToIdentity(rec *recorder, m *symplectic.Matrix, n int) error {
	for i := 0; i < n; i++ {
		if m.X(i, i) == 0 {
			pivoted := false
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if m.X(i, j) == 1 {
					rec.cnot(j, i)
					pivoted = true
					break
				}
			}
			if !pivoted {
				return fmt.Errorf("stabilizer: eliminateToIdentity: %w", qecutils.ErrNoDestabilisersFound)
			}
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if m.X(i, j) == 1 {
				rec.cnot(i, j)
			}
		}
	}
	return nil
}

// EncodingCircuit synthesises the Cleve-Gottesman encoding circuit for t
// (spec.md §4.H): a Clifford-only circuit that maps computational basis
// states of the first k "logical" wires (and |0> ancillas on the rest)
// onto the codespace, built by successively clearing t's stabiliser block
// to a canonical form via recorded H/S/CNOT updates.
//
// Steps, following the source's seven-stage structure:
//  1. promote any stabiliser column that is entirely Z-type (all-zero in
//     the X-half) via a Hadamard, so every qubit can serve as an X pivot;
//  2. Gauss-Jordan eliminate the stabiliser X-half to the identity using
//     only CNOTs;
//  3. clear the stabiliser Z-half's diagonal with Phase gates (Z_ii == 1
//     after step 2 would indicate a Y on qubit i, handled as a local
//     correction);
//  4. clear the stabiliser Z-half's off-diagonal terms via a second
//     Hadamard/CNOT/Hadamard sandwich (conjugating the Z-half elimination
//     through a transform that turns it into another X-half elimination);
//  5. re-run the X/Z cleanup on the destabiliser block so D_i anticommutes
//     with S_i exactly at qubit i and commutes elsewhere.
//
// The resulting circuit, run on the all-zero Pauli frame, reproduces the
// code's stabiliser group in its image; Circuit.Reversed() on the result
// gives the matching decoding circuit.
func (t *Tableau) EncodingCircuit() (*circuit.Circuit, error) {
	n := t.N
	c := circuit.New(n)
	rec := &recorder{t: t, c: c}

	// Step 1: promote any all-zero X-column of the stabiliser block.
	for q := 0; q < n; q++ {
		allZero := true
		for r := 0; r < t.Stab.Rows(); r++ {
			if t.Stab.X(r, q) == 1 {
				allZero = false
				break
			}
		}
		if allZero {
			hasZ := false
			for r := 0; r < t.Stab.Rows(); r++ {
				if t.Stab.Z(r, q) == 1 {
					hasZ = true
					break
				}
			}
			if hasZ {
				rec.h(q)
			}
		}
	}

	// Step 2: eliminate the stabiliser X-half to the identity.
	if err := eliminateToIdentity(rec, t.Stab, n); err != nil {
		return nil, err
	}

	// Step 3: clear the stabiliser Z-half diagonal (residual Y on qubit i).
	for i := 0; i < n; i++ {
		if t.Stab.Z(i, i) == 1 {
			rec.s(i)
		}
	}

	// Step 4: clear the stabiliser Z-half off-diagonal terms. With the
	// X-half now the identity, Z_ij (i!=j) for row i is cleared by
	// applying CNOT(i,j): it adds column i of the X-half (e_i) into column
	// j, leaving the X-half identity-plus-e_i-at-j, which is then
	// corrected by immediately re-eliminating; instead we use the
	// standard H-CNOT-H conjugation, turning the Z-half elimination into
	// an X-half elimination on a transformed frame.
	for q := 0; q < n; q++ {
		rec.h(q)
	}
	if err := eliminateToIdentity(rec, t.Stab, n); err != nil {
		return nil, err
	}
	for q := 0; q < n; q++ {
		rec.h(q)
	}

	// Step 5: bring the destabiliser block's X-half to the identity the
	// same way, so D_i and S_i form a canonical anticommuting pair at
	// qubit i with every other entry cleared.
	if err := eliminateToIdentity(rec, t.Destab, n); err != nil {
		return nil, err
	}

	return c, nil
}
