// Package score turns a minimum spanning forest into per-point persistence
// values and min-max normalized scores.
//
// Persistence is the minimum positive forest edge weight incident to a
// vertex: a long nearest connection means weak attachment to the rest of the
// cloud and a high score. Vertices with no forest edge at all are flagged
// disconnected and carry a NaN sentinel through both vectors; they are never
// coerced to a numeric score.
package score

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/doccosmos/pershout/graph"
)

// Vector is the raw per-vertex persistence vector. Disconnected vertices
// hold NaN and are members of the disconnected set.
type Vector struct {
	values       []float64
	disconnected *roaring.Bitmap
}

// Len returns the number of vertices.
func (v *Vector) Len() int { return len(v.values) }

// At returns the raw persistence of vertex i. NaN means disconnected.
func (v *Vector) At(i int) float64 { return v.values[i] }

// Values returns the underlying vector. Owned by the Vector; callers must
// not mutate it.
func (v *Vector) Values() []float64 { return v.values }

// Disconnected returns the set of vertices with forest degree 0.
func (v *Vector) Disconnected() *roaring.Bitmap { return v.disconnected }

// Persistence computes the raw persistence vector of a forest: for each
// vertex, the minimum strictly positive weight among its incident forest
// edges. A vertex whose incident edges all have weight exactly 0 sits on a
// duplicate point and gets persistence 0 (maximal attachment). A vertex with
// no incident edge is disconnected, not zero - defaulting it to 0 would make
// it look maximally attached, the opposite of the truth.
func Persistence(f *graph.Forest) *Vector {
	v := &Vector{
		values:       make([]float64, f.Len()),
		disconnected: roaring.New(),
	}

	for i := 0; i < f.Len(); i++ {
		if f.Degree(i) == 0 {
			v.values[i] = math.NaN()
			v.disconnected.Add(uint32(i))
			continue
		}
		minPositive := math.Inf(1)
		f.IncidentWeights(i, func(w float64) {
			if w > 0 && w < minPositive {
				minPositive = w
			}
		})
		if math.IsInf(minPositive, 1) {
			// Only zero-weight edges touch this vertex.
			v.values[i] = 0
			continue
		}
		v.values[i] = minPositive
	}

	return v
}

// Report is the normalized output of the pipeline: scores in [0, 1] (NaN for
// disconnected vertices), a stable ascending ranking, and diagnostics.
type Report struct {
	// Scores holds the min-max normalized persistence per vertex.
	Scores []float64

	// Ranking lists vertex indices sorted ascending by score. Disconnected
	// vertices sort last, among themselves in index order.
	Ranking []int

	// Lmin and Lmax are the normalization bounds: the global minimum and
	// maximum strictly positive forest edge weight.
	Lmin, Lmax float64

	// Disconnected is the set of vertices that received no score.
	Disconnected *roaring.Bitmap

	// OutOfRange counts finite scores outside [0, 1]. Always 0 by
	// construction; a nonzero value means the bounds were computed from a
	// different forest than the vector and is a defect.
	OutOfRange int
}

// Normalize rescales the persistence vector into [0, 1] using the global
// min/max positive edge weight of the forest the vector was scored from.
// Raw persistence 0 (duplicate points) maps to score 0, the floor of the
// scale. Returns ErrDegenerateRange when no positive forest weight exists or
// when the range collapses to a single value.
func Normalize(v *Vector, f *graph.Forest) (*Report, error) {
	positive := make([]float64, 0, len(f.Edges()))
	for _, e := range f.Edges() {
		if e.Weight > 0 {
			positive = append(positive, e.Weight)
		}
	}
	if len(positive) == 0 {
		return nil, &ErrDegenerateRange{}
	}

	lmin := floats.Min(positive)
	lmax := floats.Max(positive)
	if lmin == lmax {
		return nil, &ErrDegenerateRange{Lmin: lmin, Lmax: lmax}
	}

	r := &Report{
		Scores:       make([]float64, v.Len()),
		Lmin:         lmin,
		Lmax:         lmax,
		Disconnected: v.disconnected.Clone(),
	}
	for i, p := range v.values {
		switch {
		case math.IsNaN(p):
			r.Scores[i] = math.NaN()
		case p == 0:
			r.Scores[i] = 0
		default:
			r.Scores[i] = (p - lmin) / (lmax - lmin)
		}
	}

	for _, s := range r.Scores {
		if !math.IsNaN(s) && (s < 0 || s > 1) {
			r.OutOfRange++
		}
	}

	r.Ranking = rank(r.Scores)
	return r, nil
}

// rank returns vertex indices sorted ascending by score. The sort is stable
// over the index order, so equal scores and the NaN tail stay in index order.
func rank(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		sa, sb := scores[idx[a]], scores[idx[b]]
		if math.IsNaN(sa) {
			return false
		}
		if math.IsNaN(sb) {
			return true
		}
		return sa < sb
	})
	return idx
}
