package symplectic

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorVisitsEveryIndexExactlyOnce(t *testing.T) {
	n := 3
	seen := make(map[uint64]bool)
	it := NewIterator(n, 0, 2*n)
	count := 0
	for {
		v, ok := it.NextInt()
		if !ok {
			break
		}
		require.False(t, seen[v], "index %d visited twice", v)
		seen[v] = true
		count++
	}
	require.EqualValues(t, 1<<uint(2*n), count, "sum_w C(2n,w) must equal 4^n")
}

func TestIteratorWeightClassMembership(t *testing.T) {
	n := 2
	for w := 0; w <= 2*n; w++ {
		it := NewIterator(n, w, w)
		for {
			v, ok := it.NextInt()
			if !ok {
				break
			}
			require.Equal(t, w, bits.OnesCount64(v), "every visited index must have raw popcount w")
		}
	}
}

func TestIteratorWeightTwoOfFour(t *testing.T) {
	it := NewIterator(2, 2, 2) // 2 qubits = 4 bits
	var got []uint64
	for {
		v, ok := it.NextInt()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []uint64{3, 5, 6, 9, 10, 12}, got)
}

func TestIteratorReset(t *testing.T) {
	it := NewIterator(2, 0, 2)
	var first []uint64
	for {
		v, ok := it.NextInt()
		if !ok {
			break
		}
		first = append(first, v)
	}
	it.Reset()
	var second []uint64
	for {
		v, ok := it.NextInt()
		if !ok {
			break
		}
		second = append(second, v)
	}
	require.Equal(t, first, second)
}
