package sortbench

import "strings"

// ComplexityUnavailable is returned by Complexity for names it does not know.
const ComplexityUnavailable = "Complexidade não disponível"

var complexities = map[string]string{
	"Bubble Sort": "Tempo (pior caso): O(n²), Espaço: O(1)",
	"Quick Sort":  "Tempo (pior caso): O(n²), Espaço: O(log n)",
	"Merge Sort":  "Tempo (pior caso): O(n log n), Espaço: O(n)",
	"Heap Sort":   "Tempo (pior caso): O(n log n), Espaço: O(1)",
}

// Complexity returns the worst case time and space complexity of the named algorithm.
// Names carrying the text domain suffix resolve to the same description.
func Complexity(name string) string {
	if d, ok := complexities[name]; ok {
		return d
	}
	if base, ok := strings.CutSuffix(name, textSuffix); ok {
		if d, ok := complexities[base]; ok {
			return d
		}
	}
	return ComplexityUnavailable
}
