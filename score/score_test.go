package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doccosmos/pershout/graph"
)

func TestPersistence(t *testing.T) {
	t.Run("ColinearChain", func(t *testing.T) {
		f := graph.NewForest(4, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 1},
			{U: 1, V: 2, Weight: 1},
			{U: 2, V: 3, Weight: 8},
		})

		v := Persistence(f)
		assert.Equal(t, []float64{1, 1, 1, 8}, v.Values())
		assert.True(t, v.Disconnected().IsEmpty())
	})

	t.Run("DisconnectedVertexGetsSentinel", func(t *testing.T) {
		f := graph.NewForest(3, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 2},
		})

		v := Persistence(f)
		assert.Equal(t, 2.0, v.At(0))
		assert.Equal(t, 2.0, v.At(1))
		// Degree 0 means disconnected, never a default of 0: a zero would
		// read as maximal attachment.
		assert.True(t, math.IsNaN(v.At(2)))
		assert.True(t, v.Disconnected().Contains(2))
		assert.EqualValues(t, 1, v.Disconnected().GetCardinality())
	})

	t.Run("ZeroWeightLeafGetsZero", func(t *testing.T) {
		// Vertex 1 hangs off the tree by a restored duplicate-point edge
		// only; its attachment is maximal.
		f := graph.NewForest(3, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 0},
			{U: 0, V: 2, Weight: 5},
		})

		v := Persistence(f)
		assert.Equal(t, 5.0, v.At(0))
		assert.Equal(t, 0.0, v.At(1))
		assert.Equal(t, 5.0, v.At(2))
	})

	t.Run("IgnoresZeroWeightWhenPositiveExists", func(t *testing.T) {
		f := graph.NewForest(3, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 0},
			{U: 1, V: 2, Weight: 4},
		})

		v := Persistence(f)
		assert.Equal(t, 4.0, v.At(1))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("ColinearChain", func(t *testing.T) {
		f := graph.NewForest(4, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 1},
			{U: 1, V: 2, Weight: 1},
			{U: 2, V: 3, Weight: 8},
		})

		r, err := Normalize(Persistence(f), f)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.Lmin)
		assert.Equal(t, 8.0, r.Lmax)
		assert.Equal(t, []float64{0, 0, 0, 1}, r.Scores)
		assert.Equal(t, []int{0, 1, 2, 3}, r.Ranking)
		assert.Zero(t, r.OutOfRange)
	})

	t.Run("ScoresStayInRange", func(t *testing.T) {
		f := graph.NewForest(5, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 2},
			{U: 1, V: 2, Weight: 3},
			{U: 2, V: 3, Weight: 7},
			{U: 3, V: 4, Weight: 5},
		})

		r, err := Normalize(Persistence(f), f)
		require.NoError(t, err)
		for i, s := range r.Scores {
			assert.GreaterOrEqual(t, s, 0.0, "vertex %d", i)
			assert.LessOrEqual(t, s, 1.0, "vertex %d", i)
		}
		assert.Zero(t, r.OutOfRange)
	})

	t.Run("DisconnectedSortLast", func(t *testing.T) {
		f := graph.NewForest(5, []graph.ForestEdge{
			{U: 3, V: 4, Weight: 2},
			{U: 2, V: 3, Weight: 6},
		})

		r, err := Normalize(Persistence(f), f)
		require.NoError(t, err)
		// Vertices 0 and 1 are disconnected: NaN scores, ranked last in
		// index order.
		assert.True(t, math.IsNaN(r.Scores[0]))
		assert.True(t, math.IsNaN(r.Scores[1]))
		assert.Equal(t, []int{3, 4, 2, 0, 1}, r.Ranking)
		assert.EqualValues(t, 2, r.Disconnected.GetCardinality())
	})

	t.Run("EqualScoresKeepIndexOrder", func(t *testing.T) {
		f := graph.NewForest(3, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 1},
			{U: 1, V: 2, Weight: 3},
		})

		r, err := Normalize(Persistence(f), f)
		require.NoError(t, err)
		// Vertices 0 and 1 share score 0; the stable ranking keeps 0 first.
		assert.Equal(t, []int{0, 1, 2}, r.Ranking)
	})

	t.Run("DuplicateLeafMapsToFloor", func(t *testing.T) {
		f := graph.NewForest(4, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 0},
			{U: 0, V: 2, Weight: 2},
			{U: 2, V: 3, Weight: 6},
		})

		r, err := Normalize(Persistence(f), f)
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.Scores[1])
		assert.Zero(t, r.OutOfRange)
	})

	t.Run("SingleValuedRange", func(t *testing.T) {
		f := graph.NewForest(3, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 4},
			{U: 1, V: 2, Weight: 4},
		})

		_, err := Normalize(Persistence(f), f)
		require.Error(t, err)
		var dr *ErrDegenerateRange
		require.ErrorAs(t, err, &dr)
		assert.Equal(t, 4.0, dr.Lmin)
	})

	t.Run("NoPositiveWeights", func(t *testing.T) {
		f := graph.NewForest(2, []graph.ForestEdge{
			{U: 0, V: 1, Weight: 0},
		})

		_, err := Normalize(Persistence(f), f)
		var dr *ErrDegenerateRange
		require.ErrorAs(t, err, &dr)
	})
}
