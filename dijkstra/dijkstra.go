package dijkstra

import (
	"container/heap"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/sssp/core"
)

// Dijkstra computes the shortest-path tree rooted at start over g.
//
// The returned Result holds:
//
//   - start itself, marked as the start (distance zero, no predecessor);
//   - every other vertex reachable from start, with its predecessor on one
//     shortest path and the total weight of that path;
//   - nothing for unreachable vertices.
//
// start need not exist in g; in that case, or when start has no outgoing
// edges, the Result contains only start. A nil g behaves as an empty graph.
//
// All weights in g must be non-negative and not NaN. This is not checked;
// violating it makes the Result undefined.
//
// When several frontier vertices share the smallest distance, the smaller
// vertex is finalized first, so repeated runs over the same graph always
// produce identical results.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V constraints.Ordered, W core.Weight](g *core.Graph[V, W], start V) *Result[V, W] {
	r := &runner[V, W]{
		g:       g,
		entries: make(map[V]Entry[V, W]),
		done:    make(map[V]bool),
	}
	r.init(start)
	if g != nil {
		r.process()
	}

	return &Result[V, W]{start: start, entries: r.entries}
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V constraints.Ordered, W core.Weight] struct {
	g       *core.Graph[V, W] // read-only for the duration of the run
	entries map[V]Entry[V, W] // best-known predecessor and distance per vertex
	done    map[V]bool        // vertices whose distance is final
	pq      frontier[V, W]    // (distance, vertex) min-heap with stale entries
}

// init records the start marker and seeds the frontier with start at distance 0.
func (r *runner[V, W]) init(start V) {
	r.entries[start] = Entry[V, W]{Start: true}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &item[V, W]{vertex: start})
}

// process is the main loop: pop the closest unfinished vertex, finalize it,
// relax its outgoing edges. It stops once the frontier is empty.
func (r *runner[V, W]) process() {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item[V, W])

		// A vertex improved after being pushed leaves its old entry behind.
		// The improved entry always pops first, so the old one finds the
		// vertex already done.
		if r.done[it.vertex] {
			continue
		}
		r.done[it.vertex] = true

		r.relax(it.vertex, it.dist)
	}
}

// relax tries to improve every out-neighbor of u through u, where d is u's
// final distance.
func (r *runner[V, W]) relax(u V, d W) {
	for _, n := range r.g.Neighbors(u) {
		cand := d + n.Weight

		// A sum that wraps around the range of W cannot be a shortest
		// distance; the edge leads nowhere representable.
		if cand < d {
			continue
		}

		// The start marker is never replaced (self-loops, edges back into
		// start), and an equal distance keeps the first predecessor found.
		if cur, ok := r.entries[n.To]; ok && (cur.Start || cur.Distance <= cand) {
			continue
		}

		r.entries[n.To] = Entry[V, W]{Predecessor: u, Distance: cand}
		heap.Push(&r.pq, &item[V, W]{vertex: n.To, dist: cand})
	}
}
