package graph

// unionFind implements a disjoint-set data structure with path halving and
// union by rank, used to detect cycles during Kruskal's forest construction.
type unionFind struct {
	parent []int32
	rank   []byte // max rank ~30 for realistic graphs
}

func newUnionFind(n int) *unionFind {
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
	}
	return &unionFind{
		parent: parent,
		rank:   make([]byte, n),
	}
}

// find returns the representative of the set containing x, with path halving.
func (uf *unionFind) find(x int32) int32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing x and y. Returns false if already joined.
func (uf *unionFind) union(x, y int32) bool {
	rx := uf.find(x)
	ry := uf.find(y)
	if rx == ry {
		return false
	}

	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}
