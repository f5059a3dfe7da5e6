package sortbench

import (
	"fmt"
	"time"
)

// Result holds the metrics of one algorithm run over one input. It is not modified after creation.
type Result struct {
	Name        string  // algorithm name, suffixed with the domain for text runs
	ElapsedMs   float64 // wall time of the kernel in fractional milliseconds
	Comparisons uint64
	Swaps       uint64
}

// NewResult builds a Result from a measured duration and the counts of the run.
func NewResult(name string, elapsed time.Duration, m Metrics) Result {
	if elapsed < 0 {
		elapsed = 0
	}
	return Result{
		Name:        name,
		ElapsedMs:   float64(elapsed) / float64(time.Millisecond),
		Comparisons: m.Comparisons,
		Swaps:       m.Swaps,
	}
}

// Metrics returns the operation counts of the run.
func (r Result) Metrics() Metrics {
	return Metrics{Comparisons: r.Comparisons, Swaps: r.Swaps}
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %.3f ms\t%s", r.Name, r.ElapsedMs, r.Metrics())
}

// Results is an ordered collection of results; insertion order is run order.
type Results []Result

// Last returns the most recently run result.
func (rs Results) Last() (Result, bool) {
	if len(rs) == 0 {
		return Result{}, false
	}
	return rs[len(rs)-1], true
}

// Caption returns the complexity description of the last algorithm run, or "" when empty.
func (rs Results) Caption() string {
	last, ok := rs.Last()
	if !ok {
		return ""
	}
	return Complexity(last.Name)
}

// Names returns the algorithm names in run order.
func (rs Results) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// Point is one bar of a chart series.
type Point struct {
	Label string
	Value float64
}

// Series is a named set of values keyed by algorithm name, in run order.
type Series struct {
	Name   string
	Points []Point
}

// Series names used by Results.Series.
const (
	SeriesTime        = "Tempo (ms)"
	SeriesComparisons = "Comparações"
	SeriesSwaps       = "Trocas"
)

// Series returns the time, comparisons and swaps series of a grouped bar chart.
func (rs Results) Series() []Series {
	series := []Series{
		{Name: SeriesTime, Points: make([]Point, 0, len(rs))},
		{Name: SeriesComparisons, Points: make([]Point, 0, len(rs))},
		{Name: SeriesSwaps, Points: make([]Point, 0, len(rs))},
	}
	for _, r := range rs {
		series[0].Points = append(series[0].Points, Point{Label: r.Name, Value: r.ElapsedMs})
		series[1].Points = append(series[1].Points, Point{Label: r.Name, Value: float64(r.Comparisons)})
		series[2].Points = append(series[2].Points, Point{Label: r.Name, Value: float64(r.Swaps)})
	}
	return series
}

// Warning reports a run whose output failed verification. The batch still completes.
type Warning struct {
	Algorithm string
	Reason    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s did not sort correctly: %s", w.Algorithm, w.Reason)
}

// Batch is the outcome of running every configured algorithm over one input.
type Batch[E any] struct {
	ID       string    // unique identifier of the batch, attached to its log lines
	Results  Results   // one result per algorithm, in run order
	Sorted   []E       // sorted copy of the input, from the first run that verified
	Warnings []Warning // runs whose output failed verification
}

// OK reports whether every run in the batch verified.
func (b *Batch[E]) OK() bool {
	return len(b.Warnings) == 0
}
