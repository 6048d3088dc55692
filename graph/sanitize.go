package graph

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// zeroFixFactor scales the smallest positive stored weight down to the
// epsilon substituted for exact-zero weights. Small enough that epsilon never
// collides with a real distance, large enough to stay representable.
const zeroFixFactor = 1e-8

// Sanitization records the outcome of a Sanitize call so the substitution
// can be reversed on the extracted forest.
type Sanitization struct {
	// Epsilon is the weight written over exact-zero entries.
	Epsilon float64

	pairs *roaring64.Bitmap // unordered vertex pairs whose entries were rewritten
	count int
}

// Count returns the number of rewritten directed entries.
func (s *Sanitization) Count() int { return s.count }

// Rewrote reports whether the unordered pair (u, v) had at least one of its
// directed entries rewritten from 0 to epsilon.
func (s *Sanitization) Rewrote(u, v int) bool {
	return s.pairs.Contains(packPair(u, v))
}

// Restore reverses the epsilon substitution on a forest extracted from the
// sanitized graph: every surviving edge that was rewritten and still carries
// exactly epsilon is set back to 0, its true duplicate-point weight.
func (s *Sanitization) Restore(f *Forest) {
	for i := range f.edges {
		e := &f.edges[i]
		if e.Weight == s.Epsilon && s.pairs.Contains(packPair(e.U, e.V)) {
			e.Weight = 0
		}
	}
}

// Sanitize rewrites every stored entry with weight exactly 0 to a small
// positive epsilon derived from the graph's own scale (min positive stored
// weight x 1e-8). The rewrite keeps coincident-point edges distinguishable
// from absent edges without perturbing the spanning order, and is recorded
// so it can be undone after forest extraction.
//
// Returns ErrDegenerateGraph when no positive stored weight exists.
func (g *Weighted) Sanitize() (*Sanitization, error) {
	minPositive := math.Inf(1)
	for _, edges := range g.adj {
		for _, e := range edges {
			if e.Weight > 0 && e.Weight < minPositive {
				minPositive = e.Weight
			}
		}
	}
	if math.IsInf(minPositive, 1) {
		return nil, ErrDegenerateGraph
	}

	s := &Sanitization{
		Epsilon: minPositive * zeroFixFactor,
		pairs:   roaring64.New(),
	}
	for u, edges := range g.adj {
		for i := range edges {
			if edges[i].Weight == 0 {
				edges[i].Weight = s.Epsilon
				s.pairs.Add(packPair(u, edges[i].To))
				s.count++
			}
		}
	}

	return s, nil
}

// packPair encodes the unordered pair (u, v) into a single 64-bit key.
func packPair(u, v int) uint64 {
	if u > v {
		u, v = v, u
	}
	return uint64(uint32(u))<<32 | uint64(uint32(v))
}
