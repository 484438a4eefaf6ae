package decoder

import (
	"fmt"
	"sync"

	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// tailoredCache memoises BuildTailored's recovery-table build across
// repeated calls with an identical code, logicals and model (the model's
// CacheBytes, parameters included, are part of the key, so a model that
// differs in any parameter, such as its physical error rate, misses) -- the
// table only depends on that triple, never on the caller, so a
// package-level cache keyed on it is safe to share across callers.
var tailoredCache sync.Map // map[[32]byte]*TailoredDecoder

// TailoredDecoder implements spec.md §4.J's maximum-likelihood decoder: for
// every syndrome, the recovery applied is a representative of the logical
// coset that carries the most probability mass under the given error
// model, computed once at construction time by exhaustively enumerating
// every n-qubit Pauli.
type TailoredDecoder struct {
	n          int
	recoveries map[uint64]*symplectic.Matrix
}

// BuildTailored constructs a TailoredDecoder for an (h x 2n) code, its (2k
// x 2n) logicals and an error model, by walking every Pauli string in the
// symplectic.Iterator's order -- ascending bit-weight of the 2n-bit encoding,
// ascending integer within a weight (spec.md §4.J: "enumerate all errors
// via the iterator") -- accumulating probability mass per (syndrome, logical
// coset) pair, then for each syndrome selecting the coset with the
// greatest accumulated mass -- ties broken towards the smaller logical
// coset index, spec.md §4.J's lexicographic tie-break -- and recording the
// first error the iterator yields in that coset (lowest bit-weight, then
// smallest integer encoding within that weight) as the syndrome's recovery.
// Recoveries are keyed by the same syndrome index Decode computes.
func BuildTailored(code, logicals *symplectic.Matrix, model noise.Model) (*TailoredDecoder, error) {
	n := code.N()
	if logicals.N() != n {
		return nil, fmt.Errorf("decoder: BuildTailored: %w", qecutils.ErrDimensionMismatch)
	}

	codeBytes, err := code.MarshalBinary()
	if err != nil {
		return nil, err
	}
	logicalsBytes, err := logicals.MarshalBinary()
	if err != nil {
		return nil, err
	}
	key := qecutils.CacheKey(codeBytes, logicalsBytes, model.CacheBytes())
	if cached, ok := tailoredCache.Load(key); ok {
		return cached.(*TailoredDecoder), nil
	}

	type cell struct {
		prob float64
		rep  uint64
		seen bool
	}
	table := make(map[uint64]map[uint64]*cell)

	it := symplectic.NewIterator(n, 0, 2*n)
	for {
		v, ok := it.NextInt()
		if !ok {
			break
		}
		e := symplectic.FromInt(n, v)
		p := model.Call(e, 0)
		if p == 0 {
			continue
		}

		s := code.Multiply(e, 0)
		synBits := make([]byte, code.Rows())
		for r := range synBits {
			synBits[r] = s.Get(0, r)
		}
		sIdx := syndromeIndex(synBits)
		l := logicals.Multiply(e, 0)
		lIdx, err := l.ToInt(0)
		if err != nil {
			return nil, err
		}

		byLogical, ok := table[sIdx]
		if !ok {
			byLogical = make(map[uint64]*cell)
			table[sIdx] = byLogical
		}
		c, ok := byLogical[lIdx]
		if !ok {
			c = &cell{}
			byLogical[lIdx] = c
		}
		c.prob += p
		if !c.seen {
			c.rep = v
			c.seen = true
		}
	}

	recoveries := make(map[uint64]*symplectic.Matrix, len(table))
	for sIdx, byLogical := range table {
		var bestL uint64
		var bestCell *cell
		first := true
		for lIdx, c := range byLogical {
			if first || c.prob > bestCell.prob || (c.prob == bestCell.prob && lIdx < bestL) {
				bestL = lIdx
				bestCell = c
				first = false
			}
		}
		recoveries[sIdx] = symplectic.FromInt(n, bestCell.rep)
	}

	d := &TailoredDecoder{n: n, recoveries: recoveries}
	if actual, loaded := tailoredCache.LoadOrStore(key, d); loaded {
		return actual.(*TailoredDecoder), nil
	}
	return d, nil
}

func (d *TailoredDecoder) Decode(syndrome []byte) (*symplectic.Matrix, error) {
	idx := syndromeIndex(syndrome)
	rec, ok := d.recoveries[idx]
	if !ok {
		return nil, fmt.Errorf("decoder: TailoredDecoder.Decode: %w", qecutils.ErrUnknownSyndrome)
	}
	return rec, nil
}
