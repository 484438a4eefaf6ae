package qecutils

import "github.com/klauspost/cpuid/v2"

// RuntimeConfig replaces the source's compile-time GATE_MULTITHREADING /
// N_THREADS / GATE_MAX_DEPTH #define dials (spec.md §9) with an explicit
// value threaded through the public entry points that can parallelise or
// truncate gate application.
type RuntimeConfig struct {
	// Threads bounds how many goroutines the outer Pauli-string loop of a
	// gate application is split across. Threads <= 1 runs single-threaded.
	Threads int

	// MaxDepth, if non-nil, restricts gate application's outer iteration to
	// Pauli strings of Hamming weight <= *MaxDepth (GATE_MAX_DEPTH). A
	// truncated distribution is not guaranteed normalised; see gate.Apply.
	MaxDepth *int
}

// Default returns the single-threaded, untruncated configuration: exact
// evolution, no parallelism.
func Default() RuntimeConfig {
	return RuntimeConfig{Threads: 1}
}

// DefaultParallel returns a configuration using DefaultThreads() worker
// goroutines and no truncation.
func DefaultParallel() RuntimeConfig {
	return RuntimeConfig{Threads: DefaultThreads()}
}

// WithMaxDepth returns a copy of cfg truncated to the given Hamming weight.
func (cfg RuntimeConfig) WithMaxDepth(depth int) RuntimeConfig {
	cfg.MaxDepth = &depth
	return cfg
}

// Truncated reports whether cfg restricts gate application to a bounded
// Hamming weight band.
func (cfg RuntimeConfig) Truncated() bool {
	return cfg.MaxDepth != nil
}

// threadCount returns the number of worker goroutines to use for a loop of
// the given size, clamped to [1, cfg.Threads] and never exceeding size.
func (cfg RuntimeConfig) threadCount(size int) int {
	n := cfg.Threads
	if n < 1 {
		n = 1
	}
	if n > size {
		n = size
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ThreadCount is the exported form of threadCount, used by packages outside
// qecutils (gate) that partition their own outer loops the same way.
func (cfg RuntimeConfig) ThreadCount(size int) int {
	return cfg.threadCount(size)
}

// DefaultThreads picks a worker-pool size from the host's detected logical
// core count, the way the teacher dispatches ring/NTT implementations on
// detected hardware capability rather than a hardcoded constant. Hyperthreads
// are halved away (logical cores overcount for this CPU-bound, cache-heavy
// workload) and the result is floored at 1.
func DefaultThreads() int {
	n := cpuid.CPU.LogicalCores
	if cpuid.CPU.ThreadsPerCore > 1 {
		n = n / cpuid.CPU.ThreadsPerCore
	}
	if n < 1 {
		n = 1
	}
	return n
}

// HasHardwarePopcount reports whether the host CPU exposes a population
// count instruction. math/bits.OnesCount64 already dispatches to it when
// present; callers that maintain a portable fallback path (for
// reproducibility across architectures in tests) can use this to choose
// between the two explicitly.
func HasHardwarePopcount() bool {
	return cpuid.CPU.Supports(cpuid.POPCNT)
}
