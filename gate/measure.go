package gate

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// MeasureZ returns the Z-basis measurement gate on k qubits. Per spec.md
// §4.E, its classical outcome bit i equals the X-component of target i (an
// anticommuting X/Y error flips the outcome away from the noiseless
// expectation). In this distribution-propagation simulator the Pauli
// frame itself is unaffected by measurement — the classical outcome is a
// read of existing state, not a state update — so the gate's Operation is
// the identity; ExtractZ performs the read for callers (the
// syndrome-measurement and recovery circuits in package ft).
func MeasureZ(k int) Gate {
	return Gate{NQubits: k, Operation: identityOperation}
}

// MeasureX returns the X-basis measurement gate on k qubits; outcome bit i
// equals the Z-component of target i. See MeasureZ's documentation for why
// Operation is the identity.
func MeasureX(k int) Gate {
	return Gate{NQubits: k, Operation: identityOperation}
}

// ExtractZ reads the Z-basis measurement outcome a MeasureZ(len(targets))
// gate would report for row srcRow of src: bit i is the X-component of
// target i.
func ExtractZ(src *symplectic.Matrix, srcRow int, targets []int) []byte {
	out := make([]byte, len(targets))
	for i, t := range targets {
		out[i] = src.X(srcRow, t)
	}
	return out
}

// ExtractX reads the X-basis measurement outcome a MeasureX(len(targets))
// gate would report for row srcRow of src: bit i is the Z-component of
// target i.
func ExtractX(src *symplectic.Matrix, srcRow int, targets []int) []byte {
	out := make([]byte, len(targets))
	for i, t := range targets {
		out[i] = src.Z(srcRow, t)
	}
	return out
}

// PrepareZ returns the gate that resets a single qubit and overwrites its
// tracked Pauli frame to the Z-basis eigenstate indicator v: (x,z) = (0,v).
func PrepareZ(v uint8) Gate {
	return prepareGate(func(out *symplectic.Matrix, t int) {
		out.Set(0, t, 0)
		out.Set(0, t+out.N(), v)
	})
}

// PrepareX returns the gate that resets a single qubit and overwrites its
// tracked Pauli frame to the X-basis eigenstate indicator v: (x,z) = (v,0).
func PrepareX(v uint8) Gate {
	return prepareGate(func(out *symplectic.Matrix, t int) {
		out.Set(0, t, v)
		out.Set(0, t+out.N(), 0)
	})
}

// PrepareY returns the gate that resets a single qubit and overwrites its
// tracked Pauli frame to the Y-basis eigenstate indicator v: (x,z) = (v,v).
func PrepareY(v uint8) Gate {
	return prepareGate(func(out *symplectic.Matrix, t int) {
		out.Set(0, t, v)
		out.Set(0, t+out.N(), v)
	})
}

func prepareGate(set func(out *symplectic.Matrix, t int)) Gate {
	return Gate{
		NQubits: 1,
		Operation: func(in *symplectic.Matrix, inRow int, target []int) []Outcome {
			if len(target) != 1 {
				panic(fmt.Errorf("gate: Prepare: expected 1 target, got %d", len(target)))
			}
			return permute(in, inRow, func(out *symplectic.Matrix) {
				set(out, target[0])
			})
		},
	}
}
