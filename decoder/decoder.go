// Package decoder implements the three syndrome decoders of spec.md §4.J:
// a destabiliser decoder, a tailored (maximum-likelihood) decoder and a
// sparse lookup decoder, all satisfying the same Decoder contract so a
// Circuit's recovery step (package ft) can be built against any of them.
package decoder

import "github.com/Alan-Robertson/qecode-sub000/symplectic"

// Decoder maps a measured syndrome (one byte per stabiliser generator, 0
// or 1) to the Pauli correction that should be applied to the data block.
type Decoder interface {
	Decode(syndrome []byte) (*symplectic.Matrix, error)
}

// syndromeIndex packs a syndrome bit vector into an integer for use as a
// map/array key.
func syndromeIndex(syndrome []byte) uint64 {
	var v uint64
	for _, b := range syndrome {
		v = (v << 1) | uint64(b&1)
	}
	return v
}
