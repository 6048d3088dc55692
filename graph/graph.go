// Package graph holds the sparse neighbor graph produced by the knn builder
// and the minimum spanning forest extracted from it.
//
// Edge presence is tracked explicitly through adjacency lists: a stored
// weight of exactly 0 is a legal edge (coincident points), distinct from the
// absence of an edge. This is the property the sanitizer and the forest
// restoration step rely on.
package graph

// Edge is a directed entry (u -> To) at distance Weight, meaning To is among
// u's k nearest neighbors.
type Edge struct {
	To     int
	Weight float64
}

// Weighted is a sparse directed adjacency structure over n vertices.
// It is not guaranteed symmetric and not guaranteed connected.
type Weighted struct {
	n   int
	adj [][]Edge
}

// NewWeighted creates an empty graph over n vertices.
func NewWeighted(n int) *Weighted {
	return &Weighted{
		n:   n,
		adj: make([][]Edge, n),
	}
}

// Len returns the number of vertices.
func (g *Weighted) Len() int { return g.n }

// SetNeighbors installs the full out-edge list of vertex u, replacing any
// previous entries. The builder emits lists sorted ascending by
// (weight, neighbor index), which keeps downstream iteration deterministic.
func (g *Weighted) SetNeighbors(u int, edges []Edge) {
	g.adj[u] = edges
}

// Neighbors returns the out-edge list of vertex u. The returned slice is
// owned by the graph and must not be mutated by callers.
func (g *Weighted) Neighbors(u int) []Edge { return g.adj[u] }

// EdgeCount returns the number of stored directed entries.
func (g *Weighted) EdgeCount() int {
	var count int
	for _, edges := range g.adj {
		count += len(edges)
	}
	return count
}
