// Package gate implements the Clifford-permutation-plus-noise-channel
// probability-distribution transformer of spec.md §4.E: a gate acts on a
// distribution over n-qubit Pauli strings by composing a deterministic
// push-forward (a Clifford permutation) with an optional error
// convolution.
package gate

import (
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// Outcome pairs a resulting Pauli string with its pushforward coefficient.
// Vec is a single-row Matrix over the same qubit count as the gate's
// input register.
type Outcome struct {
	Vec   *symplectic.Matrix
	Coeff float64
}

// OperationFunc is a deterministic Clifford pushforward: given the current
// n-qubit Pauli (row inRow of in) and the gate's target qubits, it returns
// the (resulting Pauli, coefficient) pairs the source Pauli maps to. Every
// concrete gate in this package returns exactly one outcome at coefficient
// 1 (a pure permutation of Pauli strings, per spec.md §4.E); OperationFunc
// returns a slice so a branching (non-permutation) Clifford push-forward
// could still be expressed without changing the Gate contract.
type OperationFunc func(in *symplectic.Matrix, inRow int, target []int) []Outcome

// Gate is the spec.md §3/§4.E tuple (n_qubits, operation?, error_model?).
// Operation nil means the gate is pure noise (identity pushforward);
// ErrorModel nil means the gate is noiseless. NQubits is the number of
// qubits Operation consumes from the target list (2 for CNOT, 1 for
// H/S/X/Z/preparation gates, k for the k-qubit measurement and Identity
// gates).
type Gate struct {
	NQubits    int
	Operation  OperationFunc
	ErrorModel *noise.Model
}

// identityOperation is used when Operation is nil: the input Pauli passes
// through unchanged (spec.md §4.E "If operation is None ... output equals
// the input").
func identityOperation(in *symplectic.Matrix, inRow int, target []int) []Outcome {
	return []Outcome{{Vec: rowVector(in, inRow), Coeff: 1}}
}

func rowVector(in *symplectic.Matrix, inRow int) *symplectic.Matrix {
	out := symplectic.NewVector(in.N())
	out.RowCopy(0, in, inRow)
	return out
}

// apply returns g's deterministic pushforward of the Pauli at row inRow of
// in, defaulting to the identity when g.Operation is nil.
func (g Gate) apply(in *symplectic.Matrix, inRow int, target []int) []Outcome {
	if g.Operation == nil {
		return identityOperation(in, inRow, target)
	}
	return g.Operation(in, inRow, target)
}
