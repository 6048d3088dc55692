package graph

import "sort"

// ForestEdge is an undirected edge selected into the spanning forest.
// U < V always holds.
type ForestEdge struct {
	U, V   int
	Weight float64
}

// Forest is the minimum spanning forest of a symmetrized neighbor graph:
// one tree per connected component. Edge weights are copied from the source
// graph, never recomputed.
type Forest struct {
	n          int
	edges      []ForestEdge
	incident   [][]int32 // per-vertex indices into edges
	components int
}

// NewForest creates a forest over n vertices from a pre-selected edge set.
// Intended for tests and for consumers that obtain a forest from elsewhere;
// the pipeline itself uses MinimumSpanningForest. Edges are indexed as given.
func NewForest(n int, edges []ForestEdge) *Forest {
	f := &Forest{
		n:        n,
		edges:    append([]ForestEdge(nil), edges...),
		incident: make([][]int32, n),
	}
	for i, e := range f.edges {
		f.incident[e.U] = append(f.incident[e.U], int32(i))
		f.incident[e.V] = append(f.incident[e.V], int32(i))
	}
	comp := newUnionFind(n)
	f.components = n
	for _, e := range f.edges {
		if comp.union(int32(e.U), int32(e.V)) {
			f.components--
		}
	}
	return f
}

// Len returns the number of vertices.
func (f *Forest) Len() int { return f.n }

// Edges returns the selected edges. The slice is owned by the forest.
func (f *Forest) Edges() []ForestEdge { return f.edges }

// Components returns the number of disjoint trees, counting isolated
// vertices as single-vertex components.
func (f *Forest) Components() int { return f.components }

// Degree returns the number of forest edges incident to vertex i.
func (f *Forest) Degree(i int) int { return len(f.incident[i]) }

// IncidentWeights calls fn with the weight of every forest edge incident to
// vertex i.
func (f *Forest) IncidentWeights(i int, fn func(w float64)) {
	for _, ei := range f.incident[i] {
		fn(f.edges[ei].Weight)
	}
}

// candidate is an undirected edge considered by Kruskal's algorithm.
type candidate struct {
	u, v   int32
	weight float64
}

// MinimumSpanningForest extracts the minimum spanning forest of g, treating
// it as undirected.
//
// Symmetrization policy: an edge present in either direction is a candidate;
// when both directions are stored with different weights, the smaller weight
// wins. Ties among equal-weight candidates are broken by the total order
// (weight, u, v) ascending, so the output is unique for a given input graph.
func MinimumSpanningForest(g *Weighted) *Forest {
	n := g.Len()

	// Symmetrize: one candidate per unordered pair, minimum of the stored
	// directed weights. Self-loops cannot arise from a k-NN builder but are
	// skipped for safety with hand-built graphs.
	best := make(map[uint64]float64, g.EdgeCount())
	for u := 0; u < n; u++ {
		for _, e := range g.Neighbors(u) {
			if e.To == u {
				continue
			}
			key := packPair(u, e.To)
			if w, ok := best[key]; !ok || e.Weight < w {
				best[key] = e.Weight
			}
		}
	}

	candidates := make([]candidate, 0, len(best))
	for key, w := range best {
		candidates = append(candidates, candidate{
			u:      int32(key >> 32),
			v:      int32(key & 0xffffffff),
			weight: w,
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		if a.u != b.u {
			return a.u < b.u
		}
		return a.v < b.v
	})

	f := &Forest{
		n:          n,
		incident:   make([][]int32, n),
		components: n,
	}
	uf := newUnionFind(n)
	for _, c := range candidates {
		if !uf.union(c.u, c.v) {
			continue
		}
		f.edges = append(f.edges, ForestEdge{U: int(c.u), V: int(c.v), Weight: c.weight})
		ei := int32(len(f.edges) - 1)
		f.incident[c.u] = append(f.incident[c.u], ei)
		f.incident[c.v] = append(f.incident[c.v], ei)
		f.components--
		if f.components == 1 {
			break
		}
	}

	return f
}
