// Package core defines the generic Graph store: a directed adjacency map
// from every vertex to its outgoing neighbors and their edge weights.
//
// This file declares the Weight constraint, Neighbor, Graph, and the
// NewGraph constructor.
package core

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Weight is the set of numeric types usable as edge weights and path
// distances. Callers must only insert non-negative, non-NaN weights;
// under that contract both integer and floating-point weights are
// totally ordered by the built-in comparison operators.
//
// Integer distances are bounded by W: the solver ignores a path whose total
// weight would overflow W, so a vertex reachable only through such paths is
// reported as unreachable.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Neighbor is one outgoing edge as seen from its source vertex.
type Neighbor[V constraints.Ordered, W Weight] struct {
	// To is the target vertex of the edge.
	To V

	// Weight is the cost of traversing the edge.
	Weight W
}

// Graph is a weighted directed graph stored as vertex → (neighbor → weight).
//
// Every vertex named by AddEdge or AddVertex is present as a key, even when
// it has no outgoing edges, so queries never distinguish "no such vertex"
// from "vertex with zero out-edges". Between an ordered pair of vertices at
// most one edge exists; inserting it again overwrites the weight.
//
// mu guards adj and edges. Single calls are safe for concurrent use, but nothing
// keeps the graph stable across the many reads an algorithm performs.
type Graph[V constraints.Ordered, W Weight] struct {
	mu    sync.RWMutex
	adj   map[V]map[V]W // from → to → weight
	edges int           // number of distinct (from, to) pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V constraints.Ordered, W Weight]() *Graph[V, W] {
	return &Graph[V, W]{
		adj: make(map[V]map[V]W),
	}
}
