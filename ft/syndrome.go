package ft

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/circuit"
	"github.com/Alan-Robertson/qecode-sub000/gate"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// BuildSyndromeMeasurement assembles the standard (non-flagged) ancilla
// syndrome-extraction circuit of spec.md §4.L for an (h x 2n) code: one
// fresh ancilla per stabiliser generator, a CNOT fan-in per generator
// inside a single ancilla Hadamard pair (one H before and one after each
// generator's fan-in; each Z or Y data qubit still gets its own H...H or
// S H...H S^-1 basis change around its CNOT), and a final measurement of
// every ancilla.
//
// The returned circuit acts on n+h qubits: qubits [0,n) are the data block
// and [n,n+h) are the ancillas, one per stabiliser row in order.
func BuildSyndromeMeasurement(code *symplectic.Matrix) (*circuit.Circuit, []int, error) {
	n := code.N()
	h := code.Rows()
	c := circuit.New(n + h)

	ancillas := make([]int, h)
	for i := 0; i < h; i++ {
		ancillas[i] = n + i
	}

	for i := 0; i < h; i++ {
		a := ancillas[i]
		c.AddGate(gate.PrepareZ(0), a)
		c.AddGate(gate.Hadamard(), a) // open the ancilla's X-basis window once

		for q := 0; q < n; q++ {
			switch {
			case code.IsX(i, q):
				c.AddGate(gate.CNOT(), a, q)
			case code.IsZ(i, q):
				c.AddGate(gate.Hadamard(), q)
				c.AddGate(gate.CNOT(), a, q)
				c.AddGate(gate.Hadamard(), q)
			case code.IsY(i, q):
				c.AddGate(gate.Phase(), q)
				c.AddGate(gate.Hadamard(), q)
				c.AddGate(gate.CNOT(), a, q)
				c.AddGate(gate.Hadamard(), q)
				c.AddGate(gate.PhaseInverse(), q)
			}
		}

		c.AddGate(gate.Hadamard(), a) // close the window: one H per generator, not per qubit
		c.AddGate(gate.MeasureZ(1), a)
	}

	return c, ancillas, nil
}

// SyndromeMeasurement is the circuit.Runner for a standard
// syndrome-measurement circuit (spec.md §4.L): it runs the ancilla circuit
// built by BuildSyndromeMeasurement, reads off the syndrome from the
// ancilla block, and steps the distribution back down to the data block's
// n qubits, discarding the traced-out ancillas (spec.md §4.N's step-down).
//
// Syndrome is populated with the measured bits after Run returns; callers
// inspecting a single deterministic run (rather than the full
// distribution) read it from there.
type SyndromeMeasurement struct {
	Code     *symplectic.Matrix
	circuit  *circuit.Circuit
	ancillas []int
	Syndrome []byte
}

// NewSyndromeMeasurement builds the ancilla circuit once for reuse across
// many Run calls against the same code.
func NewSyndromeMeasurement(code *symplectic.Matrix) (*SyndromeMeasurement, error) {
	c, ancillas, err := BuildSyndromeMeasurement(code)
	if err != nil {
		return nil, err
	}
	return &SyndromeMeasurement{Code: code, circuit: c, ancillas: ancillas}, nil
}

func (s *SyndromeMeasurement) Run(_ *circuit.Circuit, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	n := s.Code.N()
	h := s.Code.Rows()
	if input.N() != n {
		return nil, fmt.Errorf("ft: SyndromeMeasurement.Run: %w", qecutils.ErrDimensionMismatch)
	}

	lifted, err := input.StepUp(h)
	if err != nil {
		return nil, err
	}

	out, err := applyElements(s.circuit.Elements, lifted, cfg)
	if err != nil {
		return nil, err
	}

	syndrome := make([]byte, h)
	for w := 0; w < out.Len(); w++ {
		p := out.Get(uint64(w))
		if p == 0 {
			continue
		}
		vec := out.ToVector(uint64(w))
		bits := gate.ExtractZ(vec, 0, s.ancillas)
		for i, b := range bits {
			if b != 0 {
				syndrome[i] = 1
			}
		}
	}
	s.Syndrome = syndrome

	return out.StepDown(h)
}
