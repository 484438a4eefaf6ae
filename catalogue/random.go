package catalogue

import (
	"golang.org/x/exp/rand"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// RandomStabilizerCode generates a pseudo-random [[n,k]] stabiliser code by
// starting from the canonical product code -- Z on each of the first n-k
// qubits as stabiliser generators, X/Z on the remaining k qubits as
// logicals -- and applying r random Clifford conjugations (H, S or CNOT at
// uniformly chosen qubits). Every one of those conjugations preserves the
// symplectic inner product between any two rows, so the stabiliser and
// logical commutation relations established by the canonical starting
// point survive unconditionally: the result is a valid code for any
// r >= 0, with larger r producing less structured-looking generators.
// seed makes the draw reproducible, matching golang.org/x/exp/rand's
// seeded-source API (spec.md's Open Question on reproducible random code
// generation is resolved this way: an explicit seed argument rather than a
// global RNG).
func RandomStabilizerCode(n, k, r int, seed uint64) Code {
	h := n - k
	code := symplectic.NewMatrix(h, n)
	for i := 0; i < h; i++ {
		code.Set(i, i+n, 1)
	}

	logicals := symplectic.NewMatrix(2*k, n)
	for i := 0; i < k; i++ {
		logicals.Set(i, h+i, 1)     // X_Li
		logicals.Set(k+i, h+i+n, 1) // Z_Li
	}

	rng := rand.New(rand.NewSource(seed))
	rows := []*symplectic.Matrix{code, logicals}

	for step := 0; step < r; step++ {
		switch rng.Intn(3) {
		case 0:
			q := rng.Intn(n)
			conjugateH(rows, q)
		case 1:
			q := rng.Intn(n)
			conjugateS(rows, q)
		case 2:
			c := rng.Intn(n)
			t := rng.Intn(n - 1)
			if t >= c {
				t++
			}
			conjugateCNOT(rows, c, t)
		}
	}

	return Code{Name: "random", Stabilizers: code, Logicals: logicals}
}

func conjugateH(rows []*symplectic.Matrix, q int) {
	for _, m := range rows {
		for r := 0; r < m.Rows(); r++ {
			x, z := m.X(r, q), m.Z(r, q)
			if x != z {
				m.Set(r, q, z)
				m.Set(r, q+m.N(), x)
			}
		}
	}
}

func conjugateS(rows []*symplectic.Matrix, q int) {
	for _, m := range rows {
		for r := 0; r < m.Rows(); r++ {
			if m.X(r, q) == 1 {
				m.Xor(r, q+m.N(), 1)
			}
		}
	}
}

func conjugateCNOT(rows []*symplectic.Matrix, control, target int) {
	for _, m := range rows {
		for r := 0; r < m.Rows(); r++ {
			if m.X(r, control) == 1 {
				m.Xor(r, target, 1)
			}
			if m.Z(r, target) == 1 {
				m.Xor(r, control+m.N(), 1)
			}
		}
	}
}
