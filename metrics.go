package pershout

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordGraphBuild is called after the neighbor graph stage.
	// n is the number of points, duration the time taken, err nil on success.
	RecordGraphBuild(n int, duration time.Duration, err error)

	// RecordForest is called after forest extraction.
	// edges is the number of selected edges, components the tree count.
	RecordForest(edges, components int, duration time.Duration)

	// RecordScore is called after scoring and normalization.
	// disconnected is the number of unscored vertices, err nil on success.
	RecordScore(disconnected int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGraphBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordForest(int, int, time.Duration)       {}
func (NoopMetricsCollector) RecordScore(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GraphBuilds          atomic.Int64
	GraphBuildErrors     atomic.Int64
	GraphBuildTotalNanos atomic.Int64
	ForestEdges          atomic.Int64
	ForestComponents     atomic.Int64
	ForestTotalNanos     atomic.Int64
	ScoreRuns            atomic.Int64
	ScoreErrors          atomic.Int64
	ScoreDisconnected    atomic.Int64
	ScoreTotalNanos      atomic.Int64
}

func (c *BasicMetricsCollector) RecordGraphBuild(n int, duration time.Duration, err error) {
	c.GraphBuilds.Add(1)
	c.GraphBuildTotalNanos.Add(int64(duration))
	if err != nil {
		c.GraphBuildErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordForest(edges, components int, duration time.Duration) {
	c.ForestEdges.Add(int64(edges))
	c.ForestComponents.Add(int64(components))
	c.ForestTotalNanos.Add(int64(duration))
}

func (c *BasicMetricsCollector) RecordScore(disconnected int, duration time.Duration, err error) {
	c.ScoreRuns.Add(1)
	c.ScoreDisconnected.Add(int64(disconnected))
	c.ScoreTotalNanos.Add(int64(duration))
	if err != nil {
		c.ScoreErrors.Add(1)
	}
}
