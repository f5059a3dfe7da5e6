// Package diff compares two sorted slices as multisets and reports the items
// that exist in only one of them.
package diff

import (
	"errors"
)

// Generic walks two slices sorted by compareFunc in lock step.
// Items comparing equal are counted as common and consume one item from each side,
// so duplicates are matched one to one. resultFunc, when not nil, is called for each
// item found in only one slice.
//
// Both slices MUST already be sorted by compareFunc. This is not validated.
func Generic[T any](a, b []T, compareFunc CompareFunc[T], resultFunc ResultFunc[T]) (r Result, err error) {
	if compareFunc == nil {
		return Result{}, errors.New("compare function must not be nil")
	}
	report := func(d Delta, v T) error {
		if resultFunc == nil {
			return nil
		}
		return resultFunc(d, v)
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c := compareFunc(a[i], b[j])
		switch {
		case c > 0:
			r.TotalB++
			r.ExtraB++
			if err = report(NEW, b[j]); err != nil {
				return
			}
			j++
		case c < 0:
			r.TotalA++
			r.ExtraA++
			if err = report(OLD, a[i]); err != nil {
				return
			}
			i++
		default:
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		}
	}
	// if only A has data left
	for ; i < len(a); i++ {
		r.TotalA++
		r.ExtraA++
		if err = report(OLD, a[i]); err != nil {
			return
		}
	}
	// if only B has data left
	for ; j < len(b); j++ {
		r.TotalB++
		r.ExtraB++
		if err = report(NEW, b[j]); err != nil {
			return
		}
	}
	return
}
