package gate

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// permute builds a single-outcome, coefficient-1 Outcome slice from a
// mutator applied to a clone of row inRow of in, the shape every
// deterministic Clifford gate below shares.
func permute(in *symplectic.Matrix, inRow int, mutate func(out *symplectic.Matrix)) []Outcome {
	out := rowVector(in, inRow)
	mutate(out)
	return []Outcome{{Vec: out, Coeff: 1}}
}

// CNOT returns the controlled-NOT gate: x_t <- x_t xor x_c; z_c <- z_c xor
// z_t (spec.md §4.E). target must be [control, target].
func CNOT() Gate {
	return Gate{
		NQubits: 2,
		Operation: func(in *symplectic.Matrix, inRow int, target []int) []Outcome {
			if len(target) != 2 {
				panic(fmt.Errorf("gate: CNOT: expected 2 targets, got %d", len(target)))
			}
			c, t := target[0], target[1]
			return permute(in, inRow, func(out *symplectic.Matrix) {
				n := out.N()
				xc := out.Get(0, c)
				zt := out.Get(0, t+n)
				out.Xor(0, t, xc)
				out.Xor(0, c+n, zt)
			})
		},
	}
}

// Hadamard returns the single-qubit Hadamard gate: swap x_t <-> z_t.
func Hadamard() Gate {
	return Gate{
		NQubits: 1,
		Operation: func(in *symplectic.Matrix, inRow int, target []int) []Outcome {
			if len(target) != 1 {
				panic(fmt.Errorf("gate: Hadamard: expected 1 target, got %d", len(target)))
			}
			t := target[0]
			return permute(in, inRow, func(out *symplectic.Matrix) {
				n := out.N()
				x := out.Get(0, t)
				z := out.Get(0, t+n)
				out.Set(0, t, z)
				out.Set(0, t+n, x)
			})
		},
	}
}

// Phase returns the single-qubit S (phase) gate: z_t <- z_t xor x_t.
func Phase() Gate {
	return Gate{
		NQubits: 1,
		Operation: func(in *symplectic.Matrix, inRow int, target []int) []Outcome {
			if len(target) != 1 {
				panic(fmt.Errorf("gate: Phase: expected 1 target, got %d", len(target)))
			}
			t := target[0]
			return permute(in, inRow, func(out *symplectic.Matrix) {
				n := out.N()
				out.Xor(0, t+n, out.Get(0, t))
			})
		},
	}
}

// PhaseInverse applies S three times (S^3 = S^-1 up to the global phases
// this simulator discards), used by the syndrome-measurement circuit's
// Y-basis change (spec.md §4.L).
func PhaseInverse() Gate {
	s := Phase()
	return Gate{
		NQubits: 1,
		Operation: func(in *symplectic.Matrix, inRow int, target []int) []Outcome {
			cur := in
			row := inRow
			var out *symplectic.Matrix
			for i := 0; i < 3; i++ {
				res := s.apply(cur, row, target)
				out = res[0].Vec
				cur, row = out, 0
			}
			return []Outcome{{Vec: out, Coeff: 1}}
		},
	}
}

// PauliX returns the logical Pauli-X gate: z_t <- z_t xor 1 (it records
// whether a later Z-basis measurement would anticommute).
func PauliX() Gate {
	return Gate{
		NQubits: 1,
		Operation: func(in *symplectic.Matrix, inRow int, target []int) []Outcome {
			if len(target) != 1 {
				panic(fmt.Errorf("gate: PauliX: expected 1 target, got %d", len(target)))
			}
			t := target[0]
			return permute(in, inRow, func(out *symplectic.Matrix) {
				out.Xor(0, t+out.N(), 1)
			})
		},
	}
}

// PauliZ returns the logical Pauli-Z gate: x_t <- x_t xor 1.
func PauliZ() Gate {
	return Gate{
		NQubits: 1,
		Operation: func(in *symplectic.Matrix, inRow int, target []int) []Outcome {
			if len(target) != 1 {
				panic(fmt.Errorf("gate: PauliZ: expected 1 target, got %d", len(target)))
			}
			t := target[0]
			return permute(in, inRow, func(out *symplectic.Matrix) {
				out.Xor(0, t, 1)
			})
		},
	}
}

// Identity returns the no-op gate on k qubits: the output equals the
// input unconditionally.
func Identity(k int) Gate {
	return Gate{NQubits: k, Operation: identityOperation}
}
