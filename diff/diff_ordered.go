package diff

import (
	"cmp"
)

// Ordered performs a diff operation on two sorted slices of cmp.Ordered types.
// This is a wrapper around Generic that provides the comparison function automatically.
func Ordered[T cmp.Ordered](a, b []T, resultFunc ResultFunc[T]) (r Result, err error) {
	return Generic(a, b, cmp.Compare[T], resultFunc)
}

// Strings performs a diff operation on two lexicographically sorted string slices.
func Strings(a, b []string, resultFunc StringResultFunc) (r Result, err error) {
	return Ordered(a, b, resultFunc)
}
