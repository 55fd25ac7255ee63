package grass

import "container/heap"

type pivotEntry struct {
	id     int
	degree int
}

// pivotHeap is a max-heap on degree, ties resolved by the lowest vertex id.
// Entries are never updated in place: a degree change pushes a fresh entry and
// stale ones are skipped on pop.
type pivotHeap []pivotEntry

func (h pivotHeap) Len() int { return len(h) }
func (h pivotHeap) Less(i, j int) bool {
	if h[i].degree != h[j].degree {
		return h[i].degree > h[j].degree
	}
	return h[i].id < h[j].id
}
func (h pivotHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pivotHeap) Push(x any) { *h = append(*h, x.(pivotEntry)) }

func (h *pivotHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func newPivotHeap(g *Graph) *pivotHeap {
	h := make(pivotHeap, 0, len(g.words))
	for id := range g.words {
		if g.alive[id] {
			h = append(h, pivotEntry{id: id, degree: len(g.adjacency[id])})
		}
	}
	heap.Init(&h)
	return &h
}

func (h *pivotHeap) touch(g *Graph, id int) {
	if g.alive[id] {
		heap.Push(h, pivotEntry{id: id, degree: len(g.adjacency[id])})
	}
}

// pivot pops the live vertex of maximum degree, or -1 when none is left.
func (h *pivotHeap) pivot(g *Graph) int {
	for h.Len() > 0 {
		entry := heap.Pop(h).(pivotEntry)
		if g.alive[entry.id] && len(g.adjacency[entry.id]) == entry.degree {
			return entry.id
		}
	}
	return -1
}
