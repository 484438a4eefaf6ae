package ft

import (
	"fmt"
	"math/bits"

	"github.com/Alan-Robertson/qecode-sub000/circuit"
	"github.com/Alan-Robertson/qecode-sub000/decoder"
	"github.com/Alan-Robertson/qecode-sub000/gate"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// flagCount returns the number of flag qubits spec.md §4.M requires for a
// stabiliser of the given weight: the smallest k with 2^k >= weight-1,
// since a single CNOT-location fault in the ancilla fan-in can propagate
// to at most weight-1 of the data qubits and k flag qubits distinguish
// 2^k fan-in segments.
func flagCount(maxStabWeight int) int {
	if maxStabWeight <= 1 {
		return 0
	}
	need := maxStabWeight - 1
	return bits.Len(uint(need - 1))
}

// flagPositions picks, for a generator acting on `weight` data qubits,
// before which CNOT indices (0-based, within that generator's fan-in) a flag
// CNOT is interleaved: evenly spaced so any single weight-2
// fault spanning a flag boundary is caught by at least one flag.
func flagPositions(weight, flags int) []int {
	if flags == 0 || weight <= 1 {
		return nil
	}
	out := make([]int, 0, flags)
	step := weight / (flags + 1)
	if step == 0 {
		step = 1
	}
	for i := 1; i <= flags && i*step < weight; i++ {
		out = append(out, i*step)
	}
	return out
}

// BuildFlagFT assembles the flag-qubit fault-tolerant syndrome-measurement
// circuit of spec.md §4.M: one ancilla and a shared pool of flag qubits per
// stabiliser generator, with flag CNOTs interleaved into the generator's
// fan-in at flagPositions. It also builds, via propagateFaults, a
// LookupDecoder keyed by the combined (ancilla-syndrome, flag-outcome)
// pattern of every single-location CNOT fault, mapping to the data-qubit
// error that propagateFaults records for that fault.
//
// The returned circuit acts on n+h+f qubits: [0,n) data, [n,n+h) one
// ancilla per generator, [n+h,n+h+f) the shared flag-qubit pool (f the
// maximum flagCount needed by any single generator, reused generator to
// generator since flags are read out and reset between generators).
func BuildFlagFT(code *symplectic.Matrix) (*circuit.Circuit, *FlagFTLayout, error) {
	n := code.N()
	h := code.Rows()

	maxWeight := 0
	for i := 0; i < h; i++ {
		if w := code.Weight(i); w > maxWeight {
			maxWeight = w
		}
	}
	f := flagCount(maxWeight)

	c := circuit.New(n + h + f)
	layout := &FlagFTLayout{
		Code:     code,
		Ancillas: make([]int, h),
		Flags:    make([]int, f),
		Decoder:  decoder.NewLookupDecoder(n),
	}
	for i := 0; i < h; i++ {
		layout.Ancillas[i] = n + i
	}
	for i := 0; i < f; i++ {
		layout.Flags[i] = n + h + i
	}

	for i := 0; i < h; i++ {
		a := layout.Ancillas[i]
		targets := nonIdentityQubits(code, i)
		flagsAt := flagPositions(len(targets), f)

		c.AddGate(gate.PrepareZ(0), a)
		c.AddGate(gate.Hadamard(), a)

		flagIdx := 0
		for step, q := range targets {
			if containsInt(flagsAt, step) && flagIdx < f {
				fq := layout.Flags[flagIdx]
				c.AddGate(gate.PrepareZ(0), fq)
				c.AddGate(gate.CNOT(), a, fq)
				flagIdx++
			}
			emitControlledPauli(c, code, i, a, q)
		}
		for j := 0; j < flagIdx; j++ {
			c.AddGate(gate.MeasureZ(1), layout.Flags[j])
		}

		c.AddGate(gate.Hadamard(), a)
		c.AddGate(gate.MeasureZ(1), a)
	}

	propagateFaults(code, layout)

	return c, layout, nil
}

// FlagFTLayout records the qubit assignment BuildFlagFT chose and the
// resulting flag-recovery decoder, needed by FlagFT.Run to interpret the
// circuit's ancilla/flag measurement outcomes.
type FlagFTLayout struct {
	Code     *symplectic.Matrix
	Ancillas []int
	Flags    []int
	Decoder  *decoder.LookupDecoder
}

func nonIdentityQubits(code *symplectic.Matrix, row int) []int {
	var out []int
	for q := 0; q < code.N(); q++ {
		if !code.IsI(row, q) {
			out = append(out, q)
		}
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func emitControlledPauli(c *circuit.Circuit, code *symplectic.Matrix, row, ancilla, q int) {
	switch {
	case code.IsX(row, q):
		c.AddGate(gate.CNOT(), ancilla, q)
	case code.IsZ(row, q):
		c.AddGate(gate.Hadamard(), q)
		c.AddGate(gate.CNOT(), ancilla, q)
		c.AddGate(gate.Hadamard(), q)
	case code.IsY(row, q):
		c.AddGate(gate.Phase(), q)
		c.AddGate(gate.Hadamard(), q)
		c.AddGate(gate.CNOT(), ancilla, q)
		c.AddGate(gate.Hadamard(), q)
		c.AddGate(gate.PhaseInverse(), q)
	}
}

// propagateFaults populates layout.Decoder with single-fault entries: for
// every generator and every CNOT within its fan-in, it injects an X or a Z
// fault at that CNOT. The data-qubit error recorded is that single X or Z
// on the CNOT's own data qubit; it is not carried through the generator's
// later CNOTs, so no other data qubit is touched. An X fault marks every
// flag whose flag CNOT comes after the fault site; a Z fault marks none.
// Each (syndrome of that data error, flag pattern) combination is inserted
// into layout.Decoder, mapping to that data error as the correction.
func propagateFaults(code *symplectic.Matrix, layout *FlagFTLayout) {
	n := code.N()
	h := code.Rows()
	f := len(layout.Flags)

	for i := 0; i < h; i++ {
		targets := nonIdentityQubits(code, i)
		flagsAt := flagPositions(len(targets), f)

		for faultStep := range targets {
			for _, faultKind := range []uint8{1, 2} { // 1=X, 2=Z fault after the CNOT
				dataErr := symplectic.NewVector(n)
				flagsHit := make([]bool, f)
				flagIdx := 0
				for step, q := range targets {
					if containsInt(flagsAt, step) {
						if step > faultStep && faultKind == 1 {
							// an X fault on the ancilla line propagates
							// through a later flag-CNOT (control=ancilla),
							// flipping that flag's X component.
							flagsHit[flagIdx] = true
						}
						flagIdx++
					}
					if step == faultStep {
						if faultKind == 1 {
							dataErr.Xor(0, q, 1)
						} else {
							dataErr.Xor(0, q+n, 1)
						}
					}
				}

				syn := code.Syndrome(dataErr, 0)
				synBytes := make([]byte, h)
				for r := 0; r < h; r++ {
					synBytes[r] = syn.Get(0, r)
				}
				key := append(append([]byte(nil), synBytes...), flagBytes(flagsHit)...)
				layout.Decoder.Insert(key, dataErr)
			}
		}
	}
}

func flagBytes(flags []bool) []byte {
	out := make([]byte, len(flags))
	for i, b := range flags {
		if b {
			out[i] = 1
		}
	}
	return out
}

// FlagFT is the circuit.Runner for the flag-qubit fault-tolerant
// syndrome-measurement circuit (spec.md §4.M). Run executes the flagged
// circuit and reads each branch's ancilla and flag outcomes. A branch on
// which a flag fired gets the flag-recovery decoder's correction for its
// (syndrome, flag pattern) XORed into its data qubits (a lookup miss leaves
// it unchanged) and is set aside; if no branch flagged, the data-only table
// is returned as is. Otherwise the flagged branches go through a second,
// plain syndrome-measurement pass and the result is summed with the
// unflagged branches. Run does not consult Decoder.
type FlagFT struct {
	Layout  *FlagFTLayout
	builtC  *circuit.Circuit
	plain   *SyndromeMeasurement
	Decoder decoder.Decoder
}

// NewFlagFT builds the flagged circuit plus a plain fallback
// syndrome-measurement circuit for the second (remeasurement) pass.
func NewFlagFT(code *symplectic.Matrix, final decoder.Decoder) (*FlagFT, error) {
	c, layout, err := BuildFlagFT(code)
	if err != nil {
		return nil, err
	}
	plain, err := NewSyndromeMeasurement(code)
	if err != nil {
		return nil, err
	}
	return &FlagFT{Layout: layout, builtC: c, plain: plain, Decoder: final}, nil
}

func (ft *FlagFT) Run(_ *circuit.Circuit, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	n := ft.Layout.Code.N()
	h := len(ft.Layout.Ancillas)
	fq := len(ft.Layout.Flags)
	if input.N() != n {
		return nil, fmt.Errorf("ft: FlagFT.Run: %w", qecutils.ErrDimensionMismatch)
	}

	lifted, err := input.StepUp(h + fq)
	if err != nil {
		return nil, err
	}
	out, err := applyElements(ft.builtC.Elements, lifted, cfg)
	if err != nil {
		return nil, err
	}

	// Per spec.md §4.M step 5: each branch of the distribution may carry a
	// different ancilla/flag outcome, so the flag-triggered correction is
	// decided and applied per branch rather than once for the whole table.
	clean, err := noise.Zeros(n)
	if err != nil {
		return nil, err
	}
	flaggedDist, err := noise.Zeros(n)
	if err != nil {
		return nil, err
	}
	anyFlagged := false

	for w := 0; w < out.Len(); w++ {
		p := out.Get(uint64(w))
		if p == 0 {
			continue
		}
		vec := out.ToVector(uint64(w))

		flagBits := gate.ExtractZ(vec, 0, ft.Layout.Flags)
		flagged := false
		for _, b := range flagBits {
			if b != 0 {
				flagged = true
			}
		}

		syndromeBits := gate.ExtractZ(vec, 0, ft.Layout.Ancillas)

		data := symplectic.NewVector(n)
		for q := 0; q < n; q++ {
			data.Set(0, q, vec.X(0, q))
			data.Set(0, q+n, vec.Z(0, q))
		}

		if flagged {
			anyFlagged = true
			key := append(append([]byte(nil), syndromeBits...), flagBits...)
			if corr, err := ft.Layout.Decoder.Decode(key); err == nil {
				data.RowXor(0, corr, 0)
			}
		}

		idx, err := data.ToInt(0)
		if err != nil {
			continue
		}
		if flagged {
			flaggedDist.Add(idx, p)
		} else {
			clean.Add(idx, p)
		}
	}

	if !anyFlagged {
		return clean, nil
	}

	// A flag fired on at least one branch: remeasure the flagged branches
	// with the plain syndrome-measurement circuit, per spec.md §4.M step 5,
	// and sum the result with the unflagged branches.
	remeasured, err := ft.plain.Run(nil, flaggedDist, cfg)
	if err != nil {
		return nil, err
	}
	for i, v := range remeasured.Values() {
		clean.Add(uint64(i), v)
	}
	return clean, nil
}
