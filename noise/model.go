package noise

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// Basis names a single-qubit Pauli basis for biased noise models.
type Basis int

const (
	BasisX Basis = iota
	BasisY
	BasisZ
)

func (b Basis) String() string {
	switch b {
	case BasisX:
		return "X"
	case BasisY:
		return "Y"
	case BasisZ:
		return "Z"
	default:
		return "?"
	}
}

// kind is the closed set of model variants, replacing the source's manual
// function-pointer vtable with a tagged union (spec.md §9's "manual
// destructor tables" redesign flag): a Model is a small value type that
// switches on kind rather than carrying an opaque call_fn pointer, so there
// is a single deterministic zero-allocation destructor (none needed: no
// owned OS resources) and no risk of a dangling function pointer.
type kind int

const (
	kindIID kind = iota
	kindBiasedIID
	kindWeightOne
	kindLookup
)

// Model is an n-qubit error model: a function Pauli -> probability (spec.md
// §3, §4.D), implemented as a tagged variant rather than a raw closure so
// that Model values are comparable, copyable, and need no explicit
// destructor. The Lookup variant owns a *Table, cloned on construction so
// the model is independent of the caller's table.
type Model struct {
	kind kind
	n    int

	// IID / BiasedIID parameters.
	p   float64
	eta float64
	b   Basis

	// Lookup parameter.
	table *Table
}

// N returns the qubit count the model is defined over.
func (m Model) N() int { return m.n }

// CacheBytes returns a deterministic byte encoding of m's parameters,
// without exposing Model's unexported fields outside this package.
// decoder.BuildTailored hashes this (via qecutils.CacheKey) to key its
// memoisation cache, so two Models built with the same kind/parameters
// (and, for a Lookup model, the same table contents) collide to the same
// cache entry. A Lookup model contributes its table's blake3 Fingerprint
// rather than the table's raw bytes, avoiding re-hashing the full
// 8*4^n-byte buffer through blake2b on every BuildTailored call.
func (m Model) CacheBytes() []byte {
	b := make([]byte, 0, 26)
	b = append(b, byte(m.kind))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.n))
	b = append(b, buf[:]...)
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(m.p))
	b = append(b, buf[:]...)
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(m.eta))
	b = append(b, buf[:]...)
	b = append(b, byte(m.b))
	if m.table != nil {
		fp := m.table.Fingerprint()
		b = append(b, fp[:]...)
	}
	return b
}

// NewIID returns the independent-identically-distributed depolarising
// model over n qubits at physical error rate p: probability
// (p/3)^wt * (1-p)^(n-wt) for a weight-wt Pauli string.
func NewIID(n int, p float64) Model {
	return Model{kind: kindIID, n: n, p: p}
}

// NewBiasedIID returns the basis-biased IID model over n qubits: physical
// error rate p, bias eta along basis b, per spec.md §3:
//
//	p_b  = p / (1 + 2/eta)
//	p_nb = p / (2 + eta)
//	P(e) = p_b^(wt_b) * p_nb^(wt-wt_b) * (1-p)^(n-wt)
func NewBiasedIID(n int, p, eta float64, b Basis) Model {
	return Model{kind: kindBiasedIID, n: n, p: p, eta: eta, b: b}
}

// NewWeightOne returns the model where only the identity and weight-1
// strings carry probability mass, the weight-1 mass distributed uniformly
// over all 3n weight-1 strings and the remainder on the identity.
func NewWeightOne(n int, p float64) Model {
	return Model{kind: kindWeightOne, n: n, p: p}
}

// NewLookup returns a model whose probabilities are taken directly from t,
// cloned so the model owns an independent copy (spec.md §4.D: "Lookup
// model retains ownership of its probability table").
func NewLookup(t *Table) Model {
	return Model{kind: kindLookup, n: t.N(), table: t.Clone()}
}

// Call evaluates the model's probability at the given Pauli string (row
// errRow of e).
func (m Model) Call(e *symplectic.Matrix, errRow int) float64 {
	switch m.kind {
	case kindIID:
		return m.iid(e, errRow)
	case kindBiasedIID:
		return m.biasedIID(e, errRow)
	case kindWeightOne:
		return m.weightOne(e, errRow)
	case kindLookup:
		idx, err := e.ToInt(errRow)
		if err != nil {
			panic(fmt.Errorf("noise: Model.Call: lookup index: %w", err))
		}
		return m.table.Get(idx)
	default:
		panic(fmt.Errorf("noise: Model.Call: unknown model kind %d", m.kind))
	}
}

func (m Model) iid(e *symplectic.Matrix, errRow int) float64 {
	wt := e.Weight(errRow)
	n := m.n
	return math.Pow(m.p/3, float64(wt)) * math.Pow(1-m.p, float64(n-wt))
}

func (m Model) biasedIID(e *symplectic.Matrix, errRow int) float64 {
	n := m.n
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
	return math.Pow(pb, float64(wtB)) * math.Pow(pnb, float64(wt-wtB)) * math.Pow(1-m.p, float64(n-wt))
}

func (m Model) weightOne(e *symplectic.Matrix, errRow int) float64 {
	wt := e.Weight(errRow)
	switch wt {
	case 0:
		return 1 - m.p
	case 1:
		return m.p / float64(3*m.n)
	default:
		return 0
	}
}

// Sum computes the total probability mass the model assigns across all
// 4^n n-qubit Pauli strings, by enumerating with an Iterator. Used by
// spec.md §8 property 4 ("noise preserves total mass") and by tests.
func (m Model) Sum() float64 {
	it := symplectic.NewIterator(m.n, 0, 2*m.n)
	var total float64
	for {
		v, ok := it.NextInt()
		if !ok {
			break
		}
		vec := symplectic.FromInt(m.n, v)
		total += m.Call(vec, 0)
	}
	return total
}
