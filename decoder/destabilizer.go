package decoder

import (
	"github.com/Alan-Robertson/qecode-sub000/stabilizer"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// DestabilizerDecoder implements spec.md §4.I: the recovery for a syndrome
// is the XOR of the destabiliser rows corresponding to each set syndrome
// bit. It never fails to produce a Pauli, though it is not
// maximum-likelihood (it ignores the relative probabilities of the
// syndrome's coset members).
type DestabilizerDecoder struct {
	D stabilizer.Destabilizer
}

// NewDestabilizerDecoder wraps a computed destabiliser set as a Decoder.
func NewDestabilizerDecoder(d stabilizer.Destabilizer) DestabilizerDecoder {
	return DestabilizerDecoder{D: d}
}

func (d DestabilizerDecoder) Decode(syndrome []byte) (*symplectic.Matrix, error) {
	return d.D.Recovery(syndrome), nil
}
