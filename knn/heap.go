package knn

// candidate is a neighbor under consideration during a single point's
// k-nearest scan.
type candidate struct {
	id   int
	dist float64
}

// worse orders candidates by (distance, id) descending, so the heap top is
// always the candidate to evict first. The id component makes the order
// total, which keeps tie-breaking deterministic: at equal distance the lower
// index survives.
func worse(a, b candidate) bool {
	if a.dist != b.dist {
		return a.dist > b.dist
	}
	return a.id > b.id
}

// maxHeap is a bounded value-based max-heap of candidates. Value storage
// avoids pointer indirection on the hot path of the neighbor scan.
type maxHeap struct {
	items []candidate
}

func newMaxHeap(capacity int) *maxHeap {
	return &maxHeap{items: make([]candidate, 0, capacity)}
}

func (h *maxHeap) len() int { return len(h.items) }

func (h *maxHeap) top() candidate { return h.items[0] }

func (h *maxHeap) push(c candidate) {
	h.items = append(h.items, c)
	h.siftUp(len(h.items) - 1)
}

func (h *maxHeap) pop() candidate {
	n := len(h.items)
	root := h.items[0]
	last := h.items[n-1]
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root
}

func (h *maxHeap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !worse(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *maxHeap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		biggest := l
		if r := l + 1; r < n && worse(h.items[r], h.items[l]) {
			biggest = r
		}
		if !worse(h.items[biggest], h.items[i]) {
			return
		}
		h.items[i], h.items[biggest] = h.items[biggest], h.items[i]
		i = biggest
	}
}
