// Package noise implements the error-probability table (spec.md §3, §4.C)
// and the error-model variants (§3, §4.D): a closure Pauli -> probability
// plus an owned parameter struct, in the teacher's tagged-variant style
// rather than the source's manual vtable of function pointers (§9's
// "manual destructor tables" redesign flag).
package noise

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Alan-Robertson/qecode-sub000/qecutils"
	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// Table is a dense probability distribution over the 4^n n-qubit Pauli
// strings, indexed by their symplectic integer encoding (spec.md §3).
// Entries are non-negative; a normalised table sums to 1, though Gate
// application under a Hamming-weight truncation (qecutils.RuntimeConfig.MaxDepth)
// can leave a table under-normalised by construction (spec.md §4.E).
type Table struct {
	n      int
	values []float64
}

// maxTableQubits bounds n so 4^n fits in a Go slice index; it is the
// practical ceiling rather than a spec-mandated one. It is not a memory
// bound: Zeros does not check available memory, and tables well below
// this size can already fail to allocate.
const maxTableQubits = 30

// Zeros returns the all-zero n-qubit table.
func Zeros(n int) (*Table, error) {
	size, err := tableSize(n)
	if err != nil {
		return nil, err
	}
	return &Table{n: n, values: make([]float64, size)}, nil
}

// Identity returns the n-qubit table with all mass on the identity string:
// t[0] = 1, all other entries 0.
func Identity(n int) (*Table, error) {
	t, err := Zeros(n)
	if err != nil {
		return nil, err
	}
	t.values[0] = 1
	return t, nil
}

func tableSize(n int) (int, error) {
	if n < 0 || n > maxTableQubits {
		return 0, fmt.Errorf("noise: tableSize: %w (n=%d)", qecutils.ErrOutOfCapacity, n)
	}
	return 1 << uint(2*n), nil
}

// BytesInTable returns the byte footprint of an n-qubit table: 8*4^n, the
// quantity spec.md §4.C names bytes_in_table(n).
func BytesInTable(n int) int {
	size, err := tableSize(n)
	if err != nil {
		return -1
	}
	return 8 * size
}

// N returns the qubit count the table is indexed over.
func (t *Table) N() int { return t.n }

// Len returns 4^n, the number of entries.
func (t *Table) Len() int { return len(t.values) }

// Get returns the probability mass at integer encoding idx.
func (t *Table) Get(idx uint64) float64 { return t.values[idx] }

// Set writes the probability mass at integer encoding idx.
func (t *Table) Set(idx uint64, p float64) { t.values[idx] = p }

// Add accumulates probability mass at integer encoding idx.
func (t *Table) Add(idx uint64, p float64) { t.values[idx] += p }

// Values exposes the backing slice; callers must not resize it.
func (t *Table) Values() []float64 { return t.values }

// Sum returns the total probability mass in the table.
func (t *Table) Sum() float64 {
	var s float64
	for _, v := range t.values {
		s += v
	}
	return s
}

// Normalize scales all entries so they sum to 1, in place. It is a no-op
// on the zero table.
func (t *Table) Normalize() {
	s := t.Sum()
	if s == 0 {
		return
	}
	for i := range t.values {
		t.values[i] /= s
	}
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := &Table{n: t.n, values: make([]float64, len(t.values))}
	copy(out.values, t.values)
	return out
}

// StepUp embeds t (over n qubits) into a fresh (n+k)-qubit table, copying
// every entry into the low-n-qubit subspace (the high k qubits fixed to
// identity). This is the inverse of StepDown (spec.md §3, §8's
// step_down(step_up(P))=P round-trip law).
func (t *Table) StepUp(k int) (*Table, error) {
	out, err := Zeros(t.n + k)
	if err != nil {
		return nil, err
	}
	// An (n+k)-qubit integer encoding is (x_lo x_hi | z_lo z_hi) with x_lo,
	// z_lo the original n qubits and x_hi, z_hi the k new (identity)
	// qubits. Embedding t's index idx (2n bits, x|z) at the low-qubit
	// subspace means placing t's x-half and z-half apart, with the new
	// qubits' bits zero in both halves.
	for idx, p := range t.values {
		if p == 0 {
			continue
		}
		embedded := embedIndex(uint64(idx), t.n, k)
		out.values[embedded] = p
	}
	return out, nil
}

// StepDown marginalises t (over n+k qubits) down to n qubits by summing
// out the k discarded (highest-index) qubits (spec.md §3).
func (t *Table) StepDown(k int) (*Table, error) {
	if k > t.n {
		return nil, fmt.Errorf("noise: StepDown: %w (k=%d > n=%d)", qecutils.ErrDimensionMismatch, k, t.n)
	}
	n := t.n - k
	out, err := Zeros(n)
	if err != nil {
		return nil, err
	}
	for idx, p := range t.values {
		if p == 0 {
			continue
		}
		reduced := projectIndex(uint64(idx), t.n, k)
		out.values[reduced] += p
	}
	return out, nil
}

// embedIndex maps an n-qubit big-endian (x|z) index into the low-qubit
// subspace of an (n+k)-qubit index space, leaving the k new (high-index)
// qubits at identity (0,0). Since the encoding is MSB-first per qubit
// index, "low qubit index" means the high-order bits of each n+k-wide
// half, so both the x- and z-halves are shifted left by k within their own
// half before being reassembled.
func embedIndex(idx uint64, n, k int) uint64 {
	x := idx >> uint(n)
	z := idx & ((1 << uint(n)) - 1)
	xField := x << uint(k)
	zField := z << uint(k)
	return (xField << uint(n+k)) | zField
}

// projectIndex drops the k highest-index qubits from an (n+k)-qubit
// big-endian (x|z) index, returning the remaining n-qubit index.
func projectIndex(idx uint64, nPlusK, k int) uint64 {
	n := nPlusK - k
	x := idx >> uint(nPlusK)
	z := idx & ((1 << uint(nPlusK)) - 1)
	xLo := x >> uint(k)
	zLo := z >> uint(k)
	return (xLo << uint(n)) | zLo
}

// ToVector converts the entry at integer encoding idx into a single-row
// symplectic.Matrix Pauli string, the representation the gate and decoder
// packages operate on.
func (t *Table) ToVector(idx uint64) *symplectic.Matrix {
	return symplectic.FromInt(t.n, idx)
}

// BinarySize returns the number of bytes MarshalBinary produces.
func (t *Table) BinarySize() int {
	return 16 + 8*len(t.values)
}

// MarshalBinary encodes n, the entry count, and the raw float64 values,
// little-endian, matching ring/poly_matrix.go's length-prefixed framing.
func (t *Table) MarshalBinary() ([]byte, error) {
	b := make([]byte, t.BinarySize())
	binary.LittleEndian.PutUint64(b[0:8], uint64(t.n))
	binary.LittleEndian.PutUint64(b[8:16], uint64(len(t.values)))
	for i, v := range t.values {
		binary.LittleEndian.PutUint64(b[16+8*i:24+8*i], math.Float64bits(v))
	}
	return b, nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (t *Table) UnmarshalBinary(b []byte) error {
	if len(b) < 16 {
		return fmt.Errorf("noise: UnmarshalBinary: buffer too short")
	}
	n := int(binary.LittleEndian.Uint64(b[0:8]))
	size := int(binary.LittleEndian.Uint64(b[8:16]))
	if len(b) < 16+8*size {
		return fmt.Errorf("noise: UnmarshalBinary: buffer too short for %d entries", size)
	}
	t.n = n
	t.values = make([]float64, size)
	for i := range t.values {
		t.values[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[16+8*i : 24+8*i]))
	}
	return nil
}

// Fingerprint hashes the table's raw bytes with blake3 (via qecutils), for
// cheap equality/invalidation checks on large tables without re-summing
// floating-point values entry by entry.
func (t *Table) Fingerprint() [32]byte {
	b, _ := t.MarshalBinary()
	return qecutils.FingerprintTable(b)
}

// Equal reports whether t and other hold the same qubit count and entry
// values, in the teacher's cmp.Equal idiom (circuits/ckks/bootstrapping's
// Parameters.Equals) for struct/slice comparison without a hand-rolled
// field-by-field walk.
func (t *Table) Equal(other *Table) bool {
	return t.n == other.n && cmp.Equal(t.values, other.values, cmpopts.EquateApprox(0, 1e-12))
}
