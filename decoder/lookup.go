package decoder

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// LookupDecoder is a sparse, explicitly populated syndrome table (spec.md
// §4.J): callers Insert known-good (syndrome, recovery) pairs, typically
// harvested from a characterisation run or hand-derived for a small code.
// An absent syndrome decodes to the identity, matching the source's
// behaviour of returning a cleared Pauli on a lookup miss; the identity is
// returned together with a wrapped qecutils.ErrUnknownSyndrome, which
// callers may treat as recoverable.
type LookupDecoder struct {
	n     int
	table map[uint64]*symplectic.Matrix
}

// NewLookupDecoder returns an empty lookup decoder over n qubits.
func NewLookupDecoder(n int) *LookupDecoder {
	return &LookupDecoder{n: n, table: make(map[uint64]*symplectic.Matrix)}
}

// Insert records the recovery Pauli for a given syndrome.
func (d *LookupDecoder) Insert(syndrome []byte, recovery *symplectic.Matrix) {
	d.table[syndromeIndex(syndrome)] = recovery.Clone()
}

// Len returns the number of syndromes currently recorded.
func (d *LookupDecoder) Len() int { return len(d.table) }

func (d *LookupDecoder) Decode(syndrome []byte) (*symplectic.Matrix, error) {
	if rec, ok := d.table[syndromeIndex(syndrome)]; ok {
		return rec, nil
	}
	return symplectic.NewVector(d.n), fmt.Errorf("decoder: LookupDecoder.Decode: %w", qecutils.ErrUnknownSyndrome)
}
