// SPDX-License-Identifier: MIT

package hull

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives build statistics. Implement it to feed a
// monitoring system; see package observability for Prometheus.
type MetricsCollector interface {
	// RecordBuild is called once per Build with the input size, the number
	// of active facets, the hull dimension, the wall time and the result.
	RecordBuild(points, facets, dim int, duration time.Duration, err error)

	// RecordInsertion is called after each inserted point with the number
	// of visible facets replaced, new facets kept and duplicates discarded.
	RecordInsertion(visible, created, discarded int)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordInsertion(int, int, int)                   {}

// BasicMetricsCollector keeps in-memory counters. Safe for concurrent use.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	PointsTotal     atomic.Int64
	FacetsTotal     atomic.Int64
	Insertions      atomic.Int64
	FacetsReplaced  atomic.Int64
	FacetsCreated   atomic.Int64
	FacetsDiscarded atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(points, facets, _ int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	b.PointsTotal.Add(int64(points))
	if err != nil {
		b.BuildErrors.Add(1)

		return
	}
	b.FacetsTotal.Add(int64(facets))
}

// RecordInsertion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsertion(visible, created, discarded int) {
	b.Insertions.Add(1)
	b.FacetsReplaced.Add(int64(visible))
	b.FacetsCreated.Add(int64(created))
	b.FacetsDiscarded.Add(int64(discarded))
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	Builds          int64
	BuildErrors     int64
	AvgBuildNanos   int64
	Insertions      int64
	FacetsCreated   int64
	FacetsDiscarded int64
}

// Stats returns a snapshot of the counters.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	s := BasicMetricsStats{
		Builds:          b.BuildCount.Load(),
		BuildErrors:     b.BuildErrors.Load(),
		Insertions:      b.Insertions.Load(),
		FacetsCreated:   b.FacetsCreated.Load(),
		FacetsDiscarded: b.FacetsDiscarded.Load(),
	}
	if s.Builds > 0 {
		s.AvgBuildNanos = b.BuildTotalNanos.Load() / s.Builds
	}

	return s
}
