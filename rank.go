package sortbench

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/lanrat/sortbench/queue"
)

// Metric selects the value results are ranked by.
type Metric int

const (
	// ByTime ranks by elapsed milliseconds.
	ByTime Metric = iota
	// ByComparisons ranks by comparison count.
	ByComparisons
	// BySwaps ranks by swap count.
	BySwaps
)

func (m Metric) String() string {
	switch m {
	case ByTime:
		return "time"
	case ByComparisons:
		return "comparisons"
	case BySwaps:
		return "swaps"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric parses "time", "comparisons" or "swaps".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time", "tempo":
		return ByTime, nil
	case "comparisons", "comparacoes":
		return ByComparisons, nil
	case "swaps", "trocas":
		return BySwaps, nil
	}
	return 0, &ConfigError{Field: "RankBy", Value: s, Reason: "expected time, comparisons or swaps"}
}

// value returns the ranked quantity of r
func (m Metric) value(r Result) float64 {
	switch m {
	case ByComparisons:
		return float64(r.Comparisons)
	case BySwaps:
		return float64(r.Swaps)
	default:
		return r.ElapsedMs
	}
}

// Rank returns a copy of rs ordered from the lowest to the highest value of by.
// Ties keep run order. rs is not modified.
func (rs Results) Rank(by Metric) Results {
	return queue.From(rs, func(a, b Result) int {
		return cmp.Compare(by.value(a), by.value(b))
	}).Drain()
}
