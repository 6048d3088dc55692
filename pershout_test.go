package pershout_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doccosmos/pershout"
	"github.com/doccosmos/pershout/distance"
	"github.com/doccosmos/pershout/graph"
	"github.com/doccosmos/pershout/pointset"
	"github.com/doccosmos/pershout/testutil"
)

func mustSet(t *testing.T, rows [][]float64) *pointset.Set {
	t.Helper()
	s, err := pointset.New(rows)
	require.NoError(t, err)
	return s
}

func TestRunColinear(t *testing.T) {
	// Four colinear points at 0, 1, 2, 10 with k=3: the spanning tree is the
	// chain (0,1,w=1), (1,2,w=1), (2,3,w=8).
	points := mustSet(t, testutil.Colinear(0, 1, 2, 10))

	result, err := pershout.Run(context.Background(), points, pershout.WithK(3))
	require.NoError(t, err)

	assert.Equal(t, []graph.ForestEdge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 8},
	}, result.ForestEdges)
	assert.Equal(t, []float64{1, 1, 1, 8}, result.Persistence)
	assert.Equal(t, 1.0, result.Lmin)
	assert.Equal(t, 8.0, result.Lmax)
	assert.Equal(t, []float64{0, 0, 0, 1}, result.Scores)
	assert.Equal(t, []int{0, 1, 2, 3}, result.Ranking)
	assert.Equal(t, 1, result.Components)
	assert.True(t, result.Disconnected.IsEmpty())
	assert.Zero(t, result.OutOfRange)
}

func TestRunDuplicatePair(t *testing.T) {
	// One duplicate pair among otherwise distinct points. The sanitizer must
	// keep the zero edge alive through forest extraction and hand it back at
	// exactly weight 0; DegenerateGraph must not fire because positive
	// distances still exist.
	points := mustSet(t, [][]float64{{0, 0}, {0, 0}, {1, 0}, {3, 0}})

	result, err := pershout.Run(context.Background(), points, pershout.WithK(2))
	require.NoError(t, err)

	var zeroEdges int
	for _, e := range result.ForestEdges {
		if e.Weight == 0 {
			zeroEdges++
			assert.Equal(t, graph.ForestEdge{U: 0, V: 1, Weight: 0}, e)
		}
	}
	assert.Equal(t, 1, zeroEdges)

	// The duplicate leaf normalizes to the floor of the scale.
	assert.Equal(t, 0.0, result.Scores[1])
	assert.Zero(t, result.OutOfRange)
}

func TestRunAllCoincident(t *testing.T) {
	// N identical points: no positive distance anywhere, so there is no
	// scale to derive epsilon from.
	points := mustSet(t, [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}})

	_, err := pershout.Run(context.Background(), points, pershout.WithK(2))
	assert.ErrorIs(t, err, pershout.ErrDegenerateGraph)
}

func TestRunInvalidParameters(t *testing.T) {
	points := mustSet(t, testutil.Colinear(0, 1, 2, 3))

	t.Run("KTooLarge", func(t *testing.T) {
		_, err := pershout.Run(context.Background(), points, pershout.WithK(4))
		assert.ErrorIs(t, err, pershout.ErrInvalidParameter)
	})

	t.Run("KTooSmall", func(t *testing.T) {
		_, err := pershout.Run(context.Background(), points, pershout.WithK(0))
		assert.ErrorIs(t, err, pershout.ErrInvalidParameter)
	})

	t.Run("MinkowskiWithoutExponent", func(t *testing.T) {
		_, err := pershout.Run(context.Background(), points,
			pershout.WithK(2),
			pershout.WithMetric(distance.MetricMinkowski),
		)
		assert.ErrorIs(t, err, pershout.ErrInvalidParameter)
	})
}

func TestRunDeterministic(t *testing.T) {
	rng := testutil.NewRNG(1234)
	points := mustSet(t, testutil.UniformCloud(rng, 200, 3))

	run := func(parallelism int) *pershout.Result {
		result, err := pershout.Run(context.Background(), points,
			pershout.WithK(10),
			pershout.WithParallelism(parallelism),
		)
		require.NoError(t, err)
		return result
	}

	r1 := run(0)
	r2 := run(1)
	r3 := run(4)

	// Bit-identical forests, vectors and rankings regardless of scheduling.
	assert.Equal(t, r1.ForestEdges, r2.ForestEdges)
	assert.Equal(t, r1.ForestEdges, r3.ForestEdges)
	assert.Equal(t, r1.Persistence, r2.Persistence)
	assert.Equal(t, r1.Scores, r2.Scores)
	assert.Equal(t, r1.Ranking, r2.Ranking)
	assert.Equal(t, r1.Ranking, r3.Ranking)
}

func TestRunScoresInRange(t *testing.T) {
	rng := testutil.NewRNG(99)
	points := mustSet(t, testutil.UniformCloud(rng, 300, 2))

	result, err := pershout.Run(context.Background(), points, pershout.WithK(15))
	require.NoError(t, err)

	for i, s := range result.Scores {
		if result.Disconnected.Contains(uint32(i)) {
			assert.True(t, math.IsNaN(s), "point %d", i)
			continue
		}
		assert.GreaterOrEqual(t, s, 0.0, "point %d", i)
		assert.LessOrEqual(t, s, 1.0, "point %d", i)
	}
	assert.Zero(t, result.OutOfRange)
}

func TestRunSeparatedClusters(t *testing.T) {
	// Two far-apart clusters with a k smaller than either cluster: the k-NN
	// graph never bridges them, so the forest has two trees. Every point
	// still has forest edges, so nothing is flagged disconnected.
	rng := testutil.NewRNG(5)
	points := mustSet(t, testutil.SeparatedClusters(rng, 20, 15, 2, 0.1))

	result, err := pershout.Run(context.Background(), points, pershout.WithK(5))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Components)
	assert.Len(t, result.ForestEdges, points.Len()-2)
	assert.True(t, result.Disconnected.IsEmpty())
}

func TestRunEdgeCountBound(t *testing.T) {
	rng := testutil.NewRNG(77)
	points := mustSet(t, testutil.UniformCloud(rng, 120, 2))

	result, err := pershout.Run(context.Background(), points, pershout.WithK(4))
	require.NoError(t, err)
	assert.Len(t, result.ForestEdges, points.Len()-result.Components)
}

func TestRunMetricsCollector(t *testing.T) {
	points := mustSet(t, testutil.Colinear(0, 1, 2, 10))
	collector := &pershout.BasicMetricsCollector{}

	_, err := pershout.Run(context.Background(), points,
		pershout.WithK(3),
		pershout.WithMetricsCollector(collector),
	)
	require.NoError(t, err)

	assert.EqualValues(t, 1, collector.GraphBuilds.Load())
	assert.EqualValues(t, 3, collector.ForestEdges.Load())
	assert.EqualValues(t, 1, collector.ScoreRuns.Load())
	assert.EqualValues(t, 0, collector.ScoreErrors.Load())
}
