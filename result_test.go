package sortbench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanrat/sortbench"
)

func sampleResults() sortbench.Results {
	return sortbench.Results{
		{Name: "Bubble Sort", ElapsedMs: 0.5, Comparisons: 6, Swaps: 4},
		{Name: "Quick Sort", ElapsedMs: 0.2, Comparisons: 5, Swaps: 3},
		{Name: "Merge Sort", ElapsedMs: 0.2, Comparisons: 5, Swaps: 8},
		{Name: "Heap Sort", ElapsedMs: 0.1, Comparisons: 6, Swaps: 7},
	}
}

func TestNewResult(t *testing.T) {
	r := sortbench.NewResult("Heap Sort", 1500*time.Microsecond, sortbench.Metrics{Comparisons: 3, Swaps: 2})
	assert.InDelta(t, 1.5, r.ElapsedMs, 1e-9)
	assert.Equal(t, sortbench.Metrics{Comparisons: 3, Swaps: 2}, r.Metrics())
	assert.Equal(t, "Heap Sort: 1.500 ms\tcomparisons: 3\tswaps: 2", r.String())

	r = sortbench.NewResult("Heap Sort", -time.Second, sortbench.Metrics{})
	assert.Zero(t, r.ElapsedMs)
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "", sortbench.Results{}.Caption())
	_, ok := sortbench.Results{}.Last()
	assert.False(t, ok)

	rs := sampleResults()
	assert.Equal(t, "Tempo (pior caso): O(n log n), Espaço: O(1)", rs.Caption())
	rs = append(rs, sortbench.Result{Name: "Shell Sort"})
	assert.Equal(t, sortbench.ComplexityUnavailable, rs.Caption())
}

func TestSeries(t *testing.T) {
	series := sampleResults().Series()
	require.Len(t, series, 3)
	assert.Equal(t, sortbench.SeriesTime, series[0].Name)
	assert.Equal(t, sortbench.SeriesComparisons, series[1].Name)
	assert.Equal(t, sortbench.SeriesSwaps, series[2].Name)
	for _, s := range series {
		require.Len(t, s.Points, 4)
		assert.Equal(t, "Bubble Sort", s.Points[0].Label)
		assert.Equal(t, "Heap Sort", s.Points[3].Label)
	}
	assert.Equal(t, 8.0, series[2].Points[2].Value)
	assert.Empty(t, sortbench.Results{}.Series()[0].Points)
}

func TestRank(t *testing.T) {
	rs := sampleResults()

	byTime := rs.Rank(sortbench.ByTime)
	assert.Equal(t, []string{"Heap Sort", "Quick Sort", "Merge Sort", "Bubble Sort"}, byTime.Names())

	bySwaps := rs.Rank(sortbench.BySwaps)
	assert.Equal(t, []string{"Quick Sort", "Bubble Sort", "Heap Sort", "Merge Sort"}, bySwaps.Names())

	byComparisons := rs.Rank(sortbench.ByComparisons)
	assert.Equal(t, []string{"Quick Sort", "Merge Sort", "Bubble Sort", "Heap Sort"}, byComparisons.Names())

	assert.Equal(t, "Bubble Sort", rs[0].Name, "rank must not reorder the receiver")
	assert.Empty(t, sortbench.Results{}.Rank(sortbench.ByTime))
}

func TestParseMetric(t *testing.T) {
	for in, want := range map[string]sortbench.Metric{
		"time":        sortbench.ByTime,
		"Tempo":       sortbench.ByTime,
		"comparisons": sortbench.ByComparisons,
		"swaps":       sortbench.BySwaps,
		" trocas ":    sortbench.BySwaps,
	} {
		got, err := sortbench.ParseMetric(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := sortbench.ParseMetric("memory")
	var cerr *sortbench.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestWarningString(t *testing.T) {
	w := sortbench.Warning{Algorithm: "Quick Sort", Reason: "output is not in ascending order"}
	assert.Equal(t, "Quick Sort did not sort correctly: output is not in ascending order", w.String())
}

func TestErrors(t *testing.T) {
	err := sortbench.NewInputError(assert.AnError, "abc", 3)
	assert.Equal(t, `invalid integer "abc" on line 3: `+assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, assert.AnError)

	err = sortbench.NewInputError(assert.AnError, "x", 0)
	assert.Equal(t, `invalid integer "x": `+assert.AnError.Error(), err.Error())

	assert.Equal(t, "sorting images is not supported", sortbench.NewUnsupportedDomainError("images").Error())

	err = sortbench.NewIOError(assert.AnError, "write", "/tmp/out.csv")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "/tmp/out.csv")
}
