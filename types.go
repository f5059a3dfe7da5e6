// Package sortbench runs instrumented comparison sorts (bubble, quick, merge and heap)
// over integer and case-insensitive text inputs, reporting elapsed time, comparison
// count and swap count for every algorithm together with the sorted output.
package sortbench

// Compare is a function type for comparing two items of type E.
// Returns a negative integer if a should be ordered before b, zero if they are equal,
// and a positive integer if a should be ordered after b.
// This follows the same semantics as cmp.Compare.
type Compare[E any] func(a, b E) int

// Kernel sorts data in place using cmp, recording every comparison and swap on c.
// A kernel must treat empty and single element input as a no-op apart from the
// counting conventions of its algorithm.
type Kernel[E any] func(data []E, cmp Compare[E], c *Counter)

// Observer receives every result produced by a Benchmark as soon as the run finishes.
// sorted reports the outcome of the correctness verification for that run.
// Observers are called from the goroutine that ran the algorithm and must be
// safe for concurrent use when Config.Parallelism is greater than one.
type Observer interface {
	Observe(r Result, sorted bool)
}
