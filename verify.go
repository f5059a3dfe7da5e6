package sortbench

import (
	"slices"

	"github.com/lanrat/sortbench/diff"
)

// IsSorted reports whether data is in non-decreasing order under cmp.
// It only detects violations and never modifies data.
func IsSorted[E any](data []E, cmp Compare[E]) bool {
	for i := 0; i < len(data)-1; i++ {
		if cmp(data[i], data[i+1]) > 0 {
			return false
		}
	}
	return true
}

// IsPermutation reports whether the sorted slice holds exactly the elements of input,
// where elements comparing equal under cmp are interchangeable.
// sorted must already be ordered under cmp; input is left untouched.
func IsPermutation[E any](input, sorted []E, cmp Compare[E]) bool {
	if len(input) != len(sorted) {
		return false
	}
	reference := slices.Clone(input)
	slices.SortFunc(reference, cmp)
	r, err := diff.Generic(reference, sorted, diff.CompareFunc[E](cmp), nil)
	if err != nil {
		return false
	}
	return r.ExtraA == 0 && r.ExtraB == 0
}
