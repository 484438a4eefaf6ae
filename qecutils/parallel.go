package qecutils

import "sync"

// Parallelize splits the index range [0, n) into cfg.ThreadCount(n)
// contiguous, disjoint chunks and runs work on each chunk concurrently,
// blocking until all chunks complete. This mirrors
// ring/ring_automorphism.go's PermuteNTTIndex: a sync.WaitGroup and a
// manual (tasks, nbGoRoutines) split rather than a worker-queue, since the
// per-chunk work is uniform and the chunk count is known up front.
func Parallelize(cfg RuntimeConfig, n int, work func(start, end int)) {
	if n <= 0 {
		return
	}

	threads := cfg.threadCount(n)
	if threads <= 1 {
		work(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(threads)

	tasks := n
	end := 0
	for i := 0; i < threads; i++ {
		chunk := (tasks + threads - i - 1) / (threads - i)
		start := end
		end = start + chunk
		tasks -= chunk

		go func(start, end int) {
			defer wg.Done()
			work(start, end)
		}(start, end)
	}

	wg.Wait()
}
