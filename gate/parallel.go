package gate

import (
	"math/big"
	"sort"
)

// binomial returns C(n, k) as a big.Int, used only to size/balance the
// weight classes a truncated gate application partitions across worker
// threads (spec.md §4.E: "Block sizing when truncation is on uses the
// binomial weight distribution to balance threads").
func binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// partitionWeightClasses assigns each weight value in [minW, maxW] (sized
// by C(bitWidth, w), the same combinatorial classes symplectic.Iterator
// enumerates) to one of threads buckets via greedy longest-processing-time
// scheduling: classes are considered heaviest-first and each goes to the
// currently lightest-loaded bucket (spec.md §4.E: "a greedy assignment
// walking from heaviest to lightest weights").
func partitionWeightClasses(bitWidth, minW, maxW, threads int) [][]int {
	if threads < 1 {
		threads = 1
	}

	type class struct {
		weight int
		size   *big.Int
	}

	classes := make([]class, 0, maxW-minW+1)
	for w := minW; w <= maxW; w++ {
		classes = append(classes, class{weight: w, size: binomial(bitWidth, w)})
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].size.Cmp(classes[j].size) > 0
	})

	buckets := make([][]int, threads)
	loads := make([]*big.Int, threads)
	for i := range loads {
		loads[i] = big.NewInt(0)
	}

	for _, c := range classes {
		lightest := 0
		for i := 1; i < threads; i++ {
			if loads[i].Cmp(loads[lightest]) < 0 {
				lightest = i
			}
		}
		buckets[lightest] = append(buckets[lightest], c.weight)
		loads[lightest].Add(loads[lightest], c.size)
	}

	return buckets
}
