package dijkstra

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/sssp/core"
)

// item is a tentative (distance, vertex) pair waiting in the frontier.
type item[V constraints.Ordered, W core.Weight] struct {
	vertex V
	dist   W
}

// frontier is a min-heap of *item ordered by (dist, vertex) ascending.
//
// Improving a vertex pushes a new item instead of removing the old one
// (lazy decrease-key); the runner skips items of already finalized vertices
// when they are popped.
type frontier[V constraints.Ordered, W core.Weight] []*item[V, W]

func (pq frontier[V, W]) Len() int { return len(pq) }

// Less orders by distance, then by vertex so equal distances pop deterministically.
func (pq frontier[V, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].vertex < pq[j].vertex
}

func (pq frontier[V, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an *item.
func (pq *frontier[V, W]) Push(x any) { *pq = append(*pq, x.(*item[V, W])) }

// Pop is called by heap.Pop and returns the last element.
func (pq *frontier[V, W]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
