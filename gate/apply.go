package gate

import (
	"fmt"
	"sync"

	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// Apply evolves input (an n-qubit distribution) through g acting on
// target, per spec.md §4.E: a deterministic Clifford push-forward followed
// by an optional error convolution. cfg controls parallelism
// (cfg.Threads) and Hamming-weight truncation (cfg.MaxDepth), replacing
// the source's GATE_MULTITHREADING/N_THREADS/GATE_MAX_DEPTH compile-time
// dials (spec.md §9).
func Apply(g Gate, target []int, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	n := input.N()

	if len(target) != g.NQubits {
		return nil, fmt.Errorf("gate: Apply: %w (expected %d targets, got %d)",
			qecutils.ErrInvalidTarget, g.NQubits, len(target))
	}
	if seenDuplicate(target) {
		return nil, fmt.Errorf("gate: Apply: %w (duplicate target)", qecutils.ErrInvalidTarget)
	}
	for _, t := range target {
		if t < 0 || t >= n {
			return nil, fmt.Errorf("gate: Apply: %w (target %d out of range for n=%d)",
				qecutils.ErrInvalidTarget, t, n)
		}
	}
	if g.ErrorModel != nil && n < g.ErrorModel.N() {
		return nil, fmt.Errorf("gate: Apply: %w (n=%d < error model qubits=%d)",
			qecutils.ErrInvalidTarget, n, g.ErrorModel.N())
	}

	pushed, err := pushForward(g, target, input, cfg)
	if err != nil {
		return nil, err
	}
	if g.ErrorModel == nil {
		return pushed, nil
	}
	return convolve(*g.ErrorModel, target, pushed, cfg)
}

func seenDuplicate(target []int) bool {
	seen := make(map[int]bool, len(target))
	for _, t := range target {
		if seen[t] {
			return true
		}
		seen[t] = true
	}
	return false
}

// pushForward runs the deterministic Clifford permutation pass: for every
// non-zero entry s of input, accumulate P'[out] += c*P[s] for each (out,c)
// g.apply returns.
func pushForward(g Gate, target []int, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	n := input.N()
	out, err := noise.Zeros(n)
	if err != nil {
		return nil, err
	}

	indices := selectIndices(n, cfg)

	var mu sync.Mutex
	process := func(idxs []uint64) {
		local, _ := noise.Zeros(n)
		for _, idx := range idxs {
			p := input.Get(idx)
			if p == 0 {
				continue
			}
			vec := symplectic.FromInt(n, idx)
			for _, oc := range g.apply(vec, 0, target) {
				oIdx, err := oc.Vec.ToInt(0)
				if err != nil {
					continue
				}
				local.Add(oIdx, oc.Coeff*p)
			}
		}
		mu.Lock()
		for i, v := range local.Values() {
			if v != 0 {
				out.Add(uint64(i), v)
			}
		}
		mu.Unlock()
	}

	qecutils.Parallelize(cfg, len(indices), func(start, end int) {
		process(indices[start:end])
	})

	return out, nil
}

// convolve runs the noise-channel pass: for every intermediate Pauli s'
// with non-zero mass, iterate every m-qubit error string e (m =
// model.N()) and accumulate P''[s' xor_target e] += P'[s']*model(e).
func convolve(model noise.Model, target []int, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	n := input.N()
	m := model.N()

	out, err := noise.Zeros(n)
	if err != nil {
		return nil, err
	}

	// The error model's own support is always enumerated exhaustively
	// (0..2m), independent of the outer truncation, which bounds the
	// *state* distribution's Hamming weight, not the channel's width.
	errIt := symplectic.NewIterator(m, 0, 2*m)
	var errors []*symplectic.Matrix
	for {
		v, ok := errIt.NextInt()
		if !ok {
			break
		}
		errors = append(errors, symplectic.FromInt(m, v))
	}

	indices := selectIndices(n, cfg)

	var mu sync.Mutex
	process := func(idxs []uint64) {
		local, _ := noise.Zeros(n)
		for _, idx := range idxs {
			p := input.Get(idx)
			if p == 0 {
				continue
			}
			s := symplectic.FromInt(n, idx)
			for _, e := range errors {
				prob := model.Call(e, 0)
				if prob == 0 {
					continue
				}
				combined := s.Clone()
				if err := combined.PartialAdd(0, e, 0, target); err != nil {
					continue
				}
				cIdx, err := combined.ToInt(0)
				if err != nil {
					continue
				}
				local.Add(cIdx, prob*p)
			}
		}
		mu.Lock()
		for i, v := range local.Values() {
			if v != 0 {
				out.Add(uint64(i), v)
			}
		}
		mu.Unlock()
	}

	qecutils.Parallelize(cfg, len(indices), func(start, end int) {
		process(indices[start:end])
	})

	return out, nil
}

// selectIndices returns the table indices a gate application should
// iterate, in an order already grouped so qecutils.Parallelize's
// contiguous chunking spreads weight-classes roughly evenly: under
// truncation, only indices of Hamming weight <= *cfg.MaxDepth (per the
// symplectic.Iterator's own weight classes, sized C(2n,w)), built via
// partitionWeightClasses' greedy heaviest-first balancing; otherwise every
// index 0..4^n-1.
func selectIndices(n int, cfg qecutils.RuntimeConfig) []uint64 {
	if !cfg.Truncated() {
		size := uint64(1) << uint(2*n)
		out := make([]uint64, size)
		for i := range out {
			out[i] = uint64(i)
		}
		return out
	}

	depth := *cfg.MaxDepth
	if depth > 2*n {
		depth = 2 * n
	}
	threads := cfg.ThreadCount(1 << uint(2*n))
	buckets := partitionWeightClasses(2*n, 0, depth, threads)

	var out []uint64
	for _, weights := range buckets {
		for _, w := range weights {
			it := symplectic.NewIterator(n, w, w)
			for {
				v, ok := it.NextInt()
				if !ok {
					break
				}
				out = append(out, v)
			}
		}
	}
	return out
}
