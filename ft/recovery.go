package ft

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/circuit"
	"github.com/Alan-Robertson/qecode-sub000/decoder"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// Recovery is the circuit.Runner of spec.md §4.N: for every nonzero entry
// of an n-qubit data-only input table it computes that branch's syndrome
// directly from Code (Code.Syndrome), decodes it, and applies the resulting
// correction to that branch -- since each branch may carry a different
// error and therefore a different syndrome, the syndrome and decode happen
// per nonzero table entry rather than once for the whole table. It does
// not run a syndrome-measurement circuit and does not read ancilla qubits.
type Recovery struct {
	Code    *symplectic.Matrix
	Decoder decoder.Decoder
}

// NewRecovery builds a Recovery runner for the given code and decoder.
func NewRecovery(code *symplectic.Matrix, d decoder.Decoder) *Recovery {
	return &Recovery{Code: code, Decoder: d}
}

func (r *Recovery) Run(_ *circuit.Circuit, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	n := r.Code.N()
	h := r.Code.Rows()
	if input.N() != n {
		return nil, fmt.Errorf("ft: Recovery.Run: %w", qecutils.ErrDimensionMismatch)
	}

	out, err := noise.Zeros(n)
	if err != nil {
		return nil, err
	}

	for w := 0; w < input.Len(); w++ {
		p := input.Get(uint64(w))
		if p == 0 {
			continue
		}
		e := input.ToVector(uint64(w))
		syn := r.Code.Syndrome(e, 0)
		bits := make([]byte, h)
		for i := 0; i < h; i++ {
			bits[i] = syn.Get(0, i)
		}

		// A decoder miss (qecutils.ErrUnknownSyndrome) defaults to an
		// identity correction -- the branch's mass passes through
		// uncorrected rather than being silently dropped (spec.md §4.N).
		rec, err := r.Decoder.Decode(bits)
		if err != nil {
			rec = symplectic.NewVector(n)
		}

		corrected := e.Clone()
		corrected.RowXor(0, rec, 0)
		idx, err := corrected.ToInt(0)
		if err != nil {
			continue
		}
		out.Add(idx, p)
	}

	return out, nil
}
