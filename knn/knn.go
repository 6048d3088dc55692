// Package knn builds the weighted k-nearest-neighbor graph over a point set.
//
// The scan is brute force and exact: every point is compared against every
// other point under the configured metric. Per-point scans only read the
// immutable point set, so they run data-parallel across an errgroup.
package knn

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/doccosmos/pershout/distance"
	"github.com/doccosmos/pershout/graph"
	"github.com/doccosmos/pershout/pointset"
)

// Options contains configuration options for the neighbor graph builder.
type Options struct {
	// K is the number of nearest neighbors per point. Must satisfy
	// 1 <= K <= N-1 for a set of N points.
	K int

	// Metric selects the pairwise distance function.
	Metric distance.Metric

	// MetricParams carries optional metric configuration (Minkowski exponent).
	MetricParams *distance.Params

	// Parallelism bounds the number of concurrent per-point scans.
	// Zero or negative means GOMAXPROCS.
	Parallelism int
}

// DefaultOptions contains the default configuration options for the builder.
var DefaultOptions = Options{
	K:      20,
	Metric: distance.MetricEuclidean,
}

// Build produces the weighted directed k-NN graph of points: each vertex u
// gets out-degree exactly K, its edges pointing at the K closest other
// points with weight equal to the pairwise distance. Distance ties are
// broken toward the lower point index, so the graph is identical across
// re-runs on the same input.
func Build(ctx context.Context, points *pointset.Set, optFns ...func(o *Options)) (*graph.Weighted, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	n := points.Len()
	if opts.K < 1 || opts.K >= n {
		return nil, &ErrInvalidK{K: opts.K, N: n}
	}

	distFn, err := distance.Provider(opts.Metric, opts.MetricParams)
	if err != nil {
		return nil, err
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	g := graph.NewWeighted(n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for u := 0; u < n; u++ {
		u := u
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.SetNeighbors(u, nearest(points, u, opts.K, distFn))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return g, nil
}

// nearest scans all points other than u and returns u's k closest neighbors
// as edges sorted ascending by (weight, neighbor index).
func nearest(points *pointset.Set, u, k int, distFn distance.Func) []graph.Edge {
	q := points.At(u)
	h := newMaxHeap(k)

	for v := 0; v < points.Len(); v++ {
		if v == u {
			continue
		}
		c := candidate{id: v, dist: distFn(q, points.At(v))}
		if h.len() < k {
			h.push(c)
		} else if worse(h.top(), c) {
			h.pop()
			h.push(c)
		}
	}

	edges := make([]graph.Edge, h.len())
	for i := range edges {
		c := h.items[i]
		edges[i] = graph.Edge{To: c.id, Weight: c.dist}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
