// Package circuit implements the ordered gate list of spec.md §4.F: a
// Circuit composes Gate invocations with target-qubit bindings and
// executes them against a distribution through one of several pluggable
// run dispatchers.
package circuit

import (
	"github.com/Alan-Robertson/qecode-sub000/gate"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
)

// Element is a single (gate, target qubits) circuit entry. Circuits store
// Elements as a plain slice rather than the source's linked list (spec.md
// §9's "pointer-heavy linked structures" redesign flag): iteration stays
// linear but is cache-friendly and needs no per-node allocation.
type Element struct {
	Gate   gate.Gate
	Target []int
}

// Runner is the strategy a Circuit dispatches Run through. This is the
// spec.md §9 redesign of the source's manual per-circuit dispatch vtable:
// an ordinary Go interface stands in for the function-pointer table, so
// there is no identity-comparison-of-function-pointers pattern to
// reproduce. circuit.Default and circuit.Noiseless are this package's two
// dispatchers; package ft supplies Recovery, SyndromeMeasurement and
// FlagFT, which need the decoder/flag-propagation machinery layered on
// top of a Circuit and so cannot live here without an import cycle.
type Runner interface {
	Run(c *Circuit, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error)
}

// Circuit is the spec.md §3/§4.F ordered list of gate invocations plus a
// qubit count and a run dispatcher. IdleNoise, if set, is the per-qubit
// wire noise model the Default dispatcher applies to every qubit a step's
// gate does not target (spec.md §4.E's "wire noise"/"IID noise gate").
type Circuit struct {
	NQubits  int
	Elements []Element
	Runner   Runner
	IdleNoise *noise.Model
}

// New returns an empty circuit over nQubits qubits using the Default
// dispatcher.
func New(nQubits int) *Circuit {
	return &Circuit{NQubits: nQubits, Runner: Default{}}
}

// AddGate appends g acting on target to the circuit (spec.md §4.F's
// normal, append-order composition).
func (c *Circuit) AddGate(g gate.Gate, target ...int) {
	c.Elements = append(c.Elements, Element{Gate: g, Target: append([]int(nil), target...)})
}

// AddGateStart prepends g, used when assembling a circuit's inverse
// (spec.md §4.F: "circuit_add_gate_start prepends to the list (used when
// reversing a circuit into its inverse)").
func (c *Circuit) AddGateStart(g gate.Gate, target ...int) {
	el := Element{Gate: g, Target: append([]int(nil), target...)}
	c.Elements = append([]Element{el}, c.Elements...)
}

// Reversed returns a new circuit with c's gates in reverse order: given a
// Clifford-only circuit, this produces its decoding/inverse circuit, since
// every generator spec.md provides is self-inverse or appears in
// self-cancelling triples (spec.md §4.F).
func (c *Circuit) Reversed() *Circuit {
	out := New(c.NQubits)
	out.IdleNoise = c.IdleNoise
	for i := len(c.Elements) - 1; i >= 0; i-- {
		out.Elements = append(out.Elements, c.Elements[i])
	}
	return out
}

// Run executes the circuit against input using c.Runner (Default if unset).
func (c *Circuit) Run(input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	r := c.Runner
	if r == nil {
		r = Default{}
	}
	return r.Run(c, input, cfg)
}
