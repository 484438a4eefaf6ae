package symplectic

import "math/bits"

// Iterator enumerates n-qubit symplectic bit-vectors, as integer encodings,
// in ascending Hamming-weight order within [MinWeight, MaxWeight] (spec.md
// §4.B). Within a weight class it advances with Gosper's hack: given the
// current value v of weight w, the next same-weight value is
// (((r^v)>>2)/c)|r where c = v & -v and r = v + c. When the weight-class
// saturates (the current value has reached the class maximum, the w high
// bits of the 2*N-bit word set), the weight increments and the counter
// resets to the all-ones pattern for the new weight, (1<<(w+1))-1.
//
// Iterator is restartable via Reset and is finite iff MaxWeight is finite
// (callers pass MaxWeight = 2*N for full coverage, per spec.md §8 property
// 5: "enumerating weights [0, 2n] visits each of the 4^n Pauli strings
// exactly once").
type Iterator struct {
	n         int
	minWeight int
	maxWeight int

	curWeight int
	counter   uint64
	done      bool
}

// NewIterator returns an Iterator over n-qubit (2*n-bit) symplectic
// vectors with Hamming weight in [minWeight, maxWeight].
func NewIterator(n, minWeight, maxWeight int) *Iterator {
	it := &Iterator{n: n, minWeight: minWeight, maxWeight: maxWeight}
	it.Reset()
	return it
}

// Reset restores the iterator to its initial state, before the first
// element of MinWeight.
func (it *Iterator) Reset() {
	it.curWeight = it.minWeight - 1
	it.counter = saturated(it.curWeight)
	it.done = it.minWeight > it.maxWeight
}

// saturated returns the all-ones counter value for Hamming weight w over
// 2*n bits, i.e. the bit pattern with the w low bits set. For w<0 (the
// pre-initial state) it returns 0, which combined with curWeight=minWeight-1
// makes the first Next() step cleanly into minWeight.
func saturated(w int) uint64 {
	if w <= 0 {
		return 0
	}
	return (uint64(1) << uint(w)) - 1
}

// Next advances the iterator and returns the next symplectic vector (as a
// single-row Matrix) in ascending-weight order, or ok=false once the
// iterator is exhausted (curWeight would exceed MaxWeight).
func (it *Iterator) Next() (vec *Matrix, ok bool) {
	v, ok := it.next()
	if !ok {
		return nil, false
	}
	return FromInt(it.n, v), true
}

// NextInt is Next without the Matrix allocation, for hot inner loops (the
// decoder and gate-application code iterate millions of Pauli strings).
func (it *Iterator) NextInt() (v uint64, ok bool) {
	return it.next()
}

func (it *Iterator) next() (uint64, bool) {
	if it.done {
		return 0, false
	}

	bitWidth := uint(2 * it.n)

	// Pre-initial sentinel: step into the first weight class (minWeight).
	if it.curWeight < it.minWeight {
		return it.enterWeightClass(it.minWeight, bitWidth)
	}

	// Weight 0 has exactly one member (the all-identity vector, 0); any
	// further call exhausts the class immediately.
	if it.curWeight == 0 {
		return it.enterWeightClass(it.curWeight+1, bitWidth)
	}

	// Gosper's hack: advance to the next value with the same population
	// count as it.counter, within the 2*N-bit word.
	v := it.counter
	c := v & (-v)
	r := v + c
	next := (((r ^ v) >> 2) / c) | r

	classMax := classMaximum(bitWidth, uint(it.curWeight))
	if v >= classMax {
		// Weight class exhausted: bump weight and reset to the saturated
		// low-order pattern for the new weight, (1<<(w+1))-1.
		return it.enterWeightClass(it.curWeight+1, bitWidth)
	}

	it.counter = next
	return it.counter, true
}

// enterWeightClass advances the iterator to the first element of weight w
// (the saturated low-order pattern), or marks the iterator done if w
// exceeds MaxWeight or the available bit width.
func (it *Iterator) enterWeightClass(w int, bitWidth uint) (uint64, bool) {
	if w > it.maxWeight || w > int(bitWidth) {
		it.done = true
		return 0, false
	}
	it.curWeight = w
	it.counter = saturated(w)
	return it.counter, true
}

// classMaximum returns the largest bitWidth-bit value with the given
// population count: the weight-many high bits set.
func classMaximum(bitWidth, weight uint) uint64 {
	if weight == 0 {
		return 0
	}
	if weight >= bitWidth {
		return (uint64(1) << bitWidth) - 1
	}
	return ((uint64(1) << weight) - 1) << (bitWidth - weight)
}

// Weight returns the Hamming weight (population count) of the iterator's
// current value, matching bits.OnesCount64 on the last value returned.
func (it *Iterator) Weight() int {
	return bits.OnesCount64(it.counter)
}
