// File: methods.go
// Role: Graph mutation (AddEdge/AddVertex) and read-only queries.
// Determinism:
//   - Vertices() and Neighbors() return results sorted ascending by vertex.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"maps"
	"slices"
)

// AddEdge inserts the directed edge from→to with the given weight, or
// overwrites the weight if the edge already exists. Both endpoints become
// addressable vertices.
//
// No validation is performed: weight sign and finiteness are the caller's
// responsibility. Self-loops are stored like any other edge.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(from, to V, weight W) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.ensureVertex(from)
	g.ensureVertex(to)
	if _, ok := out[to]; !ok {
		g.edges++
	}
	out[to] = weight
}

// AddVertex makes v addressable with no outgoing edges. It is a no-op if v
// already exists.
// Complexity: O(1)
func (g *Graph[V, W]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// ensureVertex returns v's neighbor map, creating it if needed.
// Caller must hold g.mu for writing.
func (g *Graph[V, W]) ensureVertex(v V) map[V]W {
	out, ok := g.adj[v]
	if !ok {
		out = make(map[V]W)
		g.adj[v] = out
	}

	return out
}

// HasVertex reports whether v was ever named by AddEdge or AddVertex.
func (g *Graph[V, W]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of the directed edge from→to and whether it exists.
func (g *Graph[V, W]) Weight(from, to V) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]

	return w, ok
}

// Neighbors returns the outgoing edges of v sorted by target vertex.
// A vertex that does not exist simply has no neighbors.
//
// Complexity: O(d·log d) where d is the out-degree of v.
func (g *Graph[V, W]) Neighbors(v V) []Neighbor[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.adj[v]
	if len(out) == 0 {
		return nil
	}
	targets := slices.Sorted(maps.Keys(out))
	res := make([]Neighbor[V, W], len(targets))
	for i, to := range targets {
		res[i] = Neighbor[V, W]{To: to, Weight: out[to]}
	}

	return res
}

// Vertices returns every vertex in ascending order.
// Complexity: O(V·log V)
func (g *Graph[V, W]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Sorted(maps.Keys(g.adj))
}

// VertexCount returns the number of vertices.
func (g *Graph[V, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph[V, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Clone returns a deep copy of g. Later mutations of either graph do not
// affect the other.
// Complexity: O(V+E)
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[V, W]{
		adj:   make(map[V]map[V]W, len(g.adj)),
		edges: g.edges,
	}
	for v, out := range g.adj {
		c.adj[v] = maps.Clone(out)
	}

	return c
}
