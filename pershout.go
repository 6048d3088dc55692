package pershout

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/doccosmos/pershout/graph"
	"github.com/doccosmos/pershout/knn"
	"github.com/doccosmos/pershout/pointset"
	"github.com/doccosmos/pershout/score"
)

// Result is the complete output of one pipeline run.
type Result struct {
	// Persistence holds the raw per-point persistence: the minimum positive
	// spanning-forest weight incident to the point. NaN for disconnected
	// points.
	Persistence []float64

	// Scores holds the min-max normalized persistence in [0, 1].
	// NaN for disconnected points.
	Scores []float64

	// Ranking lists point indices sorted ascending by score; disconnected
	// points sort last in index order.
	Ranking []int

	// Disconnected is the set of points that received no score because no
	// forest edge touches them.
	Disconnected *roaring.Bitmap

	// Lmin and Lmax are the normalization bounds (min/max strictly positive
	// forest edge weight).
	Lmin, Lmax float64

	// OutOfRange counts finite scores outside [0, 1]. Always 0; anything
	// else indicates stale normalization bounds and is a defect.
	OutOfRange int

	// Components is the number of disjoint trees in the spanning forest.
	Components int

	// ForestEdges holds the selected spanning edges, with duplicate-point
	// connections restored to exactly weight 0.
	ForestEdges []graph.ForestEdge
}

// Run executes the full scoring pipeline over points: k-NN graph build,
// zero-weight sanitization, minimum-spanning-forest extraction, epsilon
// restoration, persistence scoring and min-max normalization.
//
// Parameter errors and degenerate inputs abort the run with no partial
// result. Per-point disconnection does not abort; affected points carry the
// NaN sentinel in the result instead.
func Run(ctx context.Context, points *pointset.Set, optFns ...Option) (*Result, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := opts.logger.WithK(opts.k).WithMetric(opts.metric.String())

	start := time.Now()
	g, err := knn.Build(ctx, points,
		func(o *knn.Options) {
			o.K = opts.k
			o.Metric = opts.metric
			o.MetricParams = opts.metricParams
			o.Parallelism = opts.parallelism
		},
	)
	opts.metricsCollector.RecordGraphBuild(points.Len(), time.Since(start), err)
	if err != nil {
		return nil, translateError(err)
	}
	logger.DebugContext(ctx, "neighbor graph built",
		"points", points.Len(),
		"edges", g.EdgeCount(),
	)

	san, err := g.Sanitize()
	if err != nil {
		return nil, translateError(err)
	}
	if san.Count() > 0 {
		logger.DebugContext(ctx, "zero weights sanitized",
			"entries", san.Count(),
			"epsilon", san.Epsilon,
		)
	}

	start = time.Now()
	forest := graph.MinimumSpanningForest(g)
	san.Restore(forest)
	opts.metricsCollector.RecordForest(len(forest.Edges()), forest.Components(), time.Since(start))
	logger.DebugContext(ctx, "spanning forest extracted",
		"edges", len(forest.Edges()),
		"components", forest.Components(),
	)

	start = time.Now()
	vec := score.Persistence(forest)
	report, err := score.Normalize(vec, forest)
	disconnected := int(vec.Disconnected().GetCardinality())
	opts.metricsCollector.RecordScore(disconnected, time.Since(start), err)
	if err != nil {
		return nil, translateError(err)
	}
	if disconnected > 0 {
		logger.WarnContext(ctx, "points disconnected from forest",
			"count", disconnected,
		)
	}

	return &Result{
		Persistence:  vec.Values(),
		Scores:       report.Scores,
		Ranking:      report.Ranking,
		Disconnected: report.Disconnected,
		Lmin:         report.Lmin,
		Lmax:         report.Lmax,
		OutOfRange:   report.OutOfRange,
		Components:   forest.Components(),
		ForestEdges:  forest.Edges(),
	}, nil
}
