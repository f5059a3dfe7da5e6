package diff

import "fmt"

// Delta represents the type of difference found when comparing two sorted slices.
// It indicates whether an item is unique to the first slice (OLD) or second slice (NEW).
type Delta int

const (
	// NEW indicates an item that exists only in the second slice (B).
	NEW = iota // +

	// OLD indicates an item that exists only in the first slice (A).
	OLD // -
)

// CompareFunc orders two items, returning <0, 0 or >0 like cmp.Compare.
type CompareFunc[T any] func(a, b T) int

// ResultFunc is a callback function type for processing diff results.
// It is called once for each item that appears in only one of the two slices.
// If the function returns an error, the diff operation is terminated.
type ResultFunc[T any] func(Delta, T) error

// StringResultFunc is the string specialisation of ResultFunc.
type StringResultFunc = ResultFunc[string]

func (d Delta) String() string {
	switch d {
	case NEW:
		return ">"
	case OLD:
		return "<"
	default:
		return "?"
	}
}

// Result contains statistical information about the differences between two sorted slices.
type Result struct {
	// ExtraA is the count of items that exist only in slice A (OLD items)
	ExtraA uint64

	// ExtraB is the count of items that exist only in slice B (NEW items)
	ExtraB uint64

	// TotalA is the total count of items processed from slice A
	TotalA uint64

	// TotalB is the total count of items processed from slice B
	TotalB uint64

	// Common is the count of items that exist in both slices
	Common uint64
}

func (r *Result) String() string {
	out := fmt.Sprintf("A: %d/%d\tB: %d/%d\tC: %d", r.ExtraA, r.TotalA, r.ExtraB, r.TotalB, r.Common)
	return out
}
