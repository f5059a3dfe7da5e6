package sortbench

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the instrumented sorting algorithms.
type Algorithm int

const (
	// BubbleSort is the adjacent exchange sort, O(n²) comparisons on every input.
	BubbleSort Algorithm = iota
	// QuickSort is the recursive Lomuto partition sort with a last element pivot.
	QuickSort
	// MergeSort is the top-down recursive merge sort.
	MergeSort
	// HeapSort is the in-place max-heap sort.
	HeapSort
)

// Algorithms lists every algorithm in the order a default batch runs them.
var Algorithms = []Algorithm{BubbleSort, QuickSort, MergeSort, HeapSort}

func (a Algorithm) String() string {
	switch a {
	case BubbleSort:
		return "Bubble Sort"
	case QuickSort:
		return "Quick Sort"
	case MergeSort:
		return "Merge Sort"
	case HeapSort:
		return "Heap Sort"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= BubbleSort && a <= HeapSort
}

// Complexity returns the worst case time and space description of a.
func (a Algorithm) Complexity() string {
	return Complexity(a.String())
}

// ParseAlgorithm accepts either the display name ("Quick Sort") or a short
// case-insensitive key ("quick", "quicksort").
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, strings.ToLower(textSuffix))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.TrimSuffix(key, "sort")
	switch key {
	case "bubble":
		return BubbleSort, nil
	case "quick":
		return QuickSort, nil
	case "merge":
		return MergeSort, nil
	case "heap":
		return HeapSort, nil
	}
	return 0, &ConfigError{Field: "Algorithms", Value: s, Reason: "unknown algorithm"}
}

// kernel maps an algorithm identifier to its generic implementation
func kernel[E any](a Algorithm) Kernel[E] {
	switch a {
	case BubbleSort:
		return Bubble[E]
	case QuickSort:
		return Quick[E]
	case MergeSort:
		return Merge[E]
	case HeapSort:
		return Heap[E]
	default:
		return nil
	}
}
