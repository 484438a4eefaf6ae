package noise

import (
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// precision is the big.Float mantissa precision (bits) used by the
// high-precision model variants below.
const precision = 200

// HighPrecisionIID and HighPrecisionBiasedIID (below) are evaluated with
// *big.Float/bigfloat.Pow rather than math.Pow: the plain float64 IID
// closed form (p/3)^wt*(1-p)^(n-wt) underflows to an exact zero once wt
// or n grows past a few dozen qubits at small p, well before the true
// value leaves float64's representable range after the later
// multiplication by a large combinatorial count of same-weight strings.
// Evaluating the power terms in extended precision and rounding only once,
// at the end, avoids that premature underflow — the same reasoning that
// motivates lattigo's own use of extended-precision arithmetic in its
// Gaussian-sampling and NTT-adjacent numerics (utils/bignum exists for
// exactly this class of problem).
type highPrecisionIID struct {
	n int
	p float64
}

// NewIIDHighPrecision returns an IID depolarising model whose Call method
// evaluates the closed form with bigfloat.Pow at high internal precision,
// for use at qubit counts where NewIID's plain float64 evaluation
// underflows. It is a thin constructor alias for NewHighPrecisionIID, kept
// under this name to match the vocabulary of NewIID/NewBiasedIID.
func NewIIDHighPrecision(n int, p float64) HighPrecisionIID {
	return NewHighPrecisionIID(n, p)
}

// NewBiasedIIDHighPrecision is the high-precision counterpart of
// NewBiasedIID; see HighPrecisionBiasedIID.
func NewBiasedIIDHighPrecision(n int, p, eta float64, b Basis) HighPrecisionBiasedIID {
	return NewHighPrecisionBiasedIID(n, p, eta, b)
}

// CallFunc is the minimal interface the noise models share: a probability
// lookup for a single Pauli string (gate and decoder take a Model, not a
// CallFunc). Model
// implements it directly; HighPrecisionIID and HighPrecisionBiasedIID
// implement it via bigfloat evaluation.
type CallFunc interface {
	Call(e *symplectic.Matrix, errRow int) float64
	N() int
}

// HighPrecisionIID is the bigfloat-backed IID model (see the note on
// highPrecisionIID above).
type HighPrecisionIID struct {
	n int
	p float64
}

// NewHighPrecisionIID returns a bigfloat-evaluated IID model over n qubits
// at physical error rate p.
func NewHighPrecisionIID(n int, p float64) HighPrecisionIID {
	return HighPrecisionIID{n: n, p: p}
}

func (m HighPrecisionIID) N() int { return m.n }

func (m HighPrecisionIID) Call(e *symplectic.Matrix, errRow int) float64 {
	wt := e.Weight(errRow)
	pOverThree := new(big.Float).SetPrec(precision).Quo(
		new(big.Float).SetPrec(precision).SetFloat64(m.p),
		big.NewFloat(3),
	)
	oneMinusP := new(big.Float).SetPrec(precision).Sub(
		big.NewFloat(1), new(big.Float).SetPrec(precision).SetFloat64(m.p),
	)
	term1 := bigfloat.Pow(pOverThree, big.NewFloat(float64(wt)))
	term2 := bigfloat.Pow(oneMinusP, big.NewFloat(float64(m.n-wt)))
	out := new(big.Float).SetPrec(precision).Mul(term1, term2)
	f, _ := out.Float64()
	return f
}

// HighPrecisionBiasedIID is the bigfloat-backed basis-biased IID model.
type HighPrecisionBiasedIID struct {
	n   int
	p   float64
	eta float64
	b   Basis
}

// NewHighPrecisionBiasedIID returns a bigfloat-evaluated basis-biased IID
// model over n qubits at physical error rate p, bias eta, along basis b.
func NewHighPrecisionBiasedIID(n int, p, eta float64, b Basis) HighPrecisionBiasedIID {
	return HighPrecisionBiasedIID{n: n, p: p, eta: eta, b: b}
}

func (m HighPrecisionBiasedIID) N() int { return m.n }

func (m HighPrecisionBiasedIID) Call(e *symplectic.Matrix, errRow int) float64 {
	wt := e.Weight(errRow)
	var wtB int
	switch m.b {
	case BasisX:
		wtB = e.WeightX(errRow)
	case BasisY:
		wtB = e.WeightY(errRow)
	case BasisZ:
		wtB = e.WeightZ(errRow)
	}

	pb := m.p / (1 + 2/m.eta)
	pnb := m.p / (2 + m.eta)

	pbF := new(big.Float).SetPrec(precision).SetFloat64(pb)
	pnbF := new(big.Float).SetPrec(precision).SetFloat64(pnb)
	oneMinusP := new(big.Float).SetPrec(precision).Sub(
		big.NewFloat(1), new(big.Float).SetPrec(precision).SetFloat64(m.p),
	)

	term1 := bigfloat.Pow(pbF, big.NewFloat(float64(wtB)))
	term2 := bigfloat.Pow(pnbF, big.NewFloat(float64(wt-wtB)))
	term3 := bigfloat.Pow(oneMinusP, big.NewFloat(float64(m.n-wt)))

	out := new(big.Float).SetPrec(precision).Mul(term1, term2)
	out.Mul(out, term3)
	f, _ := out.Float64()
	return f
}
