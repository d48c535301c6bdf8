// SPDX-License-Identifier: MIT

// Package observability exports hull build statistics to Prometheus.
//
// Collector implements hull.MetricsCollector:
//
//	reg := prometheus.NewRegistry()
//	c, err := observability.NewCollector(reg)
//	h, err := hull.Build(points, hull.WithMetrics(c))
package observability

import (
	"time"

	"github.com/katalvlaran/lvhull/hull"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "lvhull"

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Collector records hull builds as Prometheus metrics.
type Collector struct {
	buildLatency *prometheus.HistogramVec
	points       prometheus.Counter
	facets       prometheus.Histogram
	dimension    prometheus.Gauge
	insertions   prometheus.Counter
	replaced     prometheus.Counter
	created      prometheus.Counter
	discarded    prometheus.Counter
}

var _ hull.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		buildLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall time of hull builds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "input_points_total",
			Help:      "Input points over all builds",
		}),
		facets: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "facets",
			Help:      "Facets of successfully built hulls",
			Buckets:   prometheus.ExponentialBuckets(2, 4, 10),
		}),
		dimension: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_dimension",
			Help:      "Dimension of the last successfully built hull",
		}),
		insertions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "insertions_total",
			Help:      "Points inserted into a hull",
		}),
		replaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "facets_replaced_total",
			Help:      "Visible facets removed by insertions",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "facets_created_total",
			Help:      "Facets added by insertions",
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "facets_discarded_total",
			Help:      "Duplicate candidate facets dropped during insertions",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.buildLatency, c.points, c.facets, c.dimension,
		c.insertions, c.replaced, c.created, c.discarded,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNewCollector is NewCollector that panics on registration errors.
func MustNewCollector(reg prometheus.Registerer) *Collector {
	c, err := NewCollector(reg)
	if err != nil {
		panic(err)
	}

	return c
}

// RecordBuild implements hull.MetricsCollector.
func (c *Collector) RecordBuild(points, facets, dim int, d time.Duration, err error) {
	c.points.Add(float64(points))
	if err != nil {
		c.buildLatency.WithLabelValues(statusError).Observe(d.Seconds())

		return
	}
	c.buildLatency.WithLabelValues(statusSuccess).Observe(d.Seconds())
	c.facets.Observe(float64(facets))
	c.dimension.Set(float64(dim))
}

// RecordInsertion implements hull.MetricsCollector.
func (c *Collector) RecordInsertion(visible, created, discarded int) {
	c.insertions.Inc()
	c.replaced.Add(float64(visible))
	c.created.Add(float64(created))
	c.discarded.Add(float64(discarded))
}
