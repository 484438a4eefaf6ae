package catalogue

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/Alan-Robertson/qecode-sub000/decoder"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// Characterise computes a code's residual logical-coset distribution under
// a given error model and decoder (spec.md §6's characterise_code), by
// exhaustively enumerating every n-qubit Pauli error (weighted by the
// model), decoding it, and accumulating the error's probability mass into
// residualDist[logicalIndex(residual)], where residual = error XOR
// recovery and logicalIndex packs the 2k-bit logical syndrome of residual
// (logicals.Rows() = 2k bits, one pair of X/Z rows per logical qubit) into
// an integer in [0, 4^k). Index 0 is the identity logical coset -- the
// residual commutes with every logical operator, i.e. no logical error --
// so residualDist[0] is the logical success probability and 1-residualDist[0]
// is the total logical failure probability across every nonzero coset.
//
// A decoder miss (qecutils.ErrUnknownSyndrome) defaults to an identity
// correction per spec.md §4.K/§4.N: the branch's mass is attributed to the
// coset of the uncorrected error itself, rather than being dropped.
func Characterise(code, logicals *symplectic.Matrix, model noise.Model, dec decoder.Decoder) ([]float64, error) {
	n := code.N()
	h := code.Rows()
	lRows := logicals.Rows()
	if logicals.N() != n {
		return nil, fmt.Errorf("catalogue: Characterise: %w", qecutils.ErrDimensionMismatch)
	}

	residualDist := make([]float64, 1<<uint(lRows))

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

		bits := make([]byte, h)
		syn := code.Syndrome(e, 0)
		for i := 0; i < h; i++ {
			bits[i] = syn.Get(0, i)
		}

		rec, err := dec.Decode(bits)
		if err != nil {
			rec = symplectic.NewVector(n)
		}

		residual := e.Clone()
		residual.RowXor(0, rec, 0)
		logSyn := logicals.Multiply(residual, 0)
		residualDist[logicalIndex(logSyn, lRows)] += p
	}

	return residualDist, nil
}

// logicalIndex packs the lRows bits of logSyn's row 0 into a big-endian
// integer in [0, 2^lRows), so the all-zero (no logical error) coset is
// always index 0 regardless of lRows.
func logicalIndex(logSyn *symplectic.Matrix, lRows int) int {
	var idx int
	for i := 0; i < lRows; i++ {
		idx = (idx << 1) | int(logSyn.Get(0, i))
	}
	return idx
}

// ScanPoint is one (parameter, logical failure probability, full residual
// distribution) sample from a Scan sweep.
type ScanPoint struct {
	Parameter    float64
	PFail        float64
	ResidualDist []float64
}

// ScanSummary is the descriptive statistics of a Scan sweep's logical
// failure probabilities, computed with montanaflynn/stats.
type ScanSummary struct {
	Points []ScanPoint
	Mean   float64
	StdDev float64
}

// Scan characterises a code across a sweep of physical error rates,
// collecting descriptive statistics over the resulting logical failure
// probabilities. buildModel maps a physical error rate to the noise.Model
// to characterise against (letting callers sweep biased or weight-one
// models just as easily as plain IID).
func Scan(code, logicals *symplectic.Matrix, physicalRates []float64, buildModel func(p float64) noise.Model, dec decoder.Decoder) (ScanSummary, error) {
	points := make([]ScanPoint, 0, len(physicalRates))
	values := make([]float64, 0, len(physicalRates))

	for _, p := range physicalRates {
		model := buildModel(p)
		dist, err := Characterise(code, logicals, model, dec)
		if err != nil {
			return ScanSummary{}, err
		}
		pFail := 1 - dist[0]
		points = append(points, ScanPoint{Parameter: p, PFail: pFail, ResidualDist: dist})
		values = append(values, pFail)
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return ScanSummary{}, fmt.Errorf("catalogue: Scan: %w", err)
	}
	stddev, err := stats.StandardDeviation(values)
	if err != nil {
		return ScanSummary{}, fmt.Errorf("catalogue: Scan: %w", err)
	}

	return ScanSummary{Points: points, Mean: mean, StdDev: stddev}, nil
}
