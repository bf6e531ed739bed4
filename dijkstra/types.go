package dijkstra

import (
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/sssp/core"
)

// Entry is the shortest-path record of one reachable vertex.
//
// For the start vertex Start is true, Distance is zero and Predecessor is
// the zero value of V. For every other vertex Predecessor is the vertex
// immediately before it on one shortest path and Distance is the total
// edge weight of that path.
type Entry[V constraints.Ordered, W core.Weight] struct {
	Predecessor V
	Distance    W
	Start       bool
}

// PredecessorInfo is the serialized form of a non-start Entry.
type PredecessorInfo[V constraints.Ordered, W core.Weight] struct {
	Predecessor V `json:"predecessor" yaml:"predecessor"`
	Distance    W `json:"distance" yaml:"distance"`
}

// Record is the serialized form of one Result entry. Predecessor is nil for
// the start vertex.
type Record[V constraints.Ordered, W core.Weight] struct {
	Vertex      V                      `json:"vertex" yaml:"vertex"`
	Predecessor *PredecessorInfo[V, W] `json:"predecessor" yaml:"predecessor"`
}

// Result is the shortest-path tree computed by Dijkstra. It is a snapshot:
// it keeps no reference to the graph and never changes after it is returned.
type Result[V constraints.Ordered, W core.Weight] struct {
	start   V
	entries map[V]Entry[V, W]
}

// Start returns the source vertex the Result was computed from.
func (r *Result[V, W]) Start() V { return r.start }

// Len returns the number of vertices in the Result, start included.
func (r *Result[V, W]) Len() int { return len(r.entries) }

// Lookup returns the Entry for v. ok is false if v is unreachable from the start.
func (r *Result[V, W]) Lookup(v V) (Entry[V, W], bool) {
	e, ok := r.entries[v]

	return e, ok
}

// Reachable reports whether v has an entry. The start is always reachable.
func (r *Result[V, W]) Reachable(v V) bool {
	_, ok := r.entries[v]

	return ok
}

// Distance returns the shortest distance from the start to v, zero for the
// start itself. ok is false if v is unreachable.
func (r *Result[V, W]) Distance(v V) (W, bool) {
	e, ok := r.entries[v]

	return e.Distance, ok
}

// Predecessor returns the vertex before v on its shortest path. ok is false
// for the start and for unreachable vertices.
func (r *Result[V, W]) Predecessor(v V) (V, bool) {
	e, ok := r.entries[v]
	if !ok || e.Start {
		var zero V
		return zero, false
	}

	return e.Predecessor, true
}

// Vertices returns every vertex in the Result in ascending order.
func (r *Result[V, W]) Vertices() []V {
	return slices.Sorted(maps.Keys(r.entries))
}

// Map returns a copy of the underlying vertex → Entry mapping.
func (r *Result[V, W]) Map() map[V]Entry[V, W] {
	return maps.Clone(r.entries)
}

// Records returns the Result as a sequence of Records in ascending vertex
// order, ready for serialization.
func (r *Result[V, W]) Records() []Record[V, W] {
	vs := r.Vertices()
	out := make([]Record[V, W], len(vs))
	for i, v := range vs {
		e := r.entries[v]
		out[i] = Record[V, W]{Vertex: v}
		if !e.Start {
			out[i].Predecessor = &PredecessorInfo[V, W]{Predecessor: e.Predecessor, Distance: e.Distance}
		}
	}

	return out
}
