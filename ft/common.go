// Package ft implements the syndrome-measurement circuitry of spec.md
// §4.L-§4.N: the standard ancilla-based syndrome-measurement circuit, the
// flag-qubit fault-tolerant variant, and the recovery circuit that ties a
// decoder to a Circuit's execution. These live above both circuit and
// decoder (hence their own package, avoiding the import cycle noted in
// circuit.Runner's doc comment).
package ft

import (
	"github.com/Alan-Robertson/qecode-sub000/circuit"
	"github.com/Alan-Robertson/qecode-sub000/gate"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
)

// applyElements runs a plain gate sequence against input with no idle-noise
// step, the same inner loop circuit.Default/Noiseless use, duplicated here
// (rather than exported from package circuit) since this package's
// dispatchers interleave extraction and decoding around it instead of just
// delegating wholesale to Circuit.Run.
func applyElements(elements []circuit.Element, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	cur := input
	for _, el := range elements {
		next, err := gate.Apply(el.Gate, el.Target, cur, cfg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
