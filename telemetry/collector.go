// Package telemetry exports benchmark results as Prometheus metrics.
package telemetry

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/lanrat/sortbench"
)

// Collector is a sortbench.Observer that records every result into its own registry.
// It is safe for concurrent use.
type Collector struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	failures    *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	swaps       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ sortbench.Observer = (*Collector)(nil)

// NewCollector creates a Collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"algorithm"}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of algorithm runs.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_failures_total",
			Help:      "Number of runs whose output failed verification.",
		}, labels),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Comparisons performed across all runs.",
		}, labels),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_total",
			Help:      "Swaps counted across all runs.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_milliseconds",
			Help:      "Elapsed time of a single algorithm run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 10, 8),
		}, labels),
	}
	c.registry.MustRegister(c.runs, c.failures, c.comparisons, c.swaps, c.duration)
	return c
}

// Observe records one result.
func (c *Collector) Observe(r sortbench.Result, sorted bool) {
	c.runs.WithLabelValues(r.Name).Inc()
	if !sorted {
		c.failures.WithLabelValues(r.Name).Inc()
	}
	c.comparisons.WithLabelValues(r.Name).Add(float64(r.Comparisons))
	c.swaps.WithLabelValues(r.Name).Add(float64(r.Swaps))
	c.duration.WithLabelValues(r.Name).Observe(r.ElapsedMs)
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
