package sortbench

import "fmt"

// Metrics is a snapshot of the operation counts of one sorting run.
type Metrics struct {
	Comparisons uint64
	Swaps       uint64
}

func (m Metrics) String() string {
	return fmt.Sprintf("comparisons: %d\tswaps: %d", m.Comparisons, m.Swaps)
}

// Counter accumulates comparison and swap counts for exactly one sort invocation.
// A Counter is not safe for concurrent use; every run owns its own instance.
type Counter struct {
	comparisons uint64
	swaps       uint64
}

// Reset zeroes both counts.
func (c *Counter) Reset() {
	c.comparisons = 0
	c.swaps = 0
}

// Compare records one evaluation of the ordering predicate.
func (c *Counter) Compare() {
	c.comparisons++
}

// Swap records one data movement event as defined by the running algorithm.
func (c *Counter) Swap() {
	c.swaps++
}

// Comparisons returns the number of comparisons recorded since the last Reset.
func (c *Counter) Comparisons() uint64 {
	return c.comparisons
}

// Swaps returns the number of swaps recorded since the last Reset.
func (c *Counter) Swaps() uint64 {
	return c.swaps
}

// Snapshot returns the current totals.
func (c *Counter) Snapshot() Metrics {
	return Metrics{Comparisons: c.comparisons, Swaps: c.swaps}
}
