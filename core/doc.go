// Package core provides the in-memory Graph store used by the shortest-path
// solver: a generic, directed, weighted adjacency map.
//
// The Graph G = (V,E) is stored as
//
//	adj[from][to] = weight
//
// and supports:
//
//   - Any ordered vertex type (integers, floats, strings) via constraints.Ordered.
//   - Integer or floating-point weights via the Weight constraint.
//   - At most one edge per ordered pair: AddEdge on an existing pair overwrites.
//   - Self-loops, stored like any other edge.
//   - Deterministic iteration: Vertices() and Neighbors() return sorted results.
//
// Both endpoints of every edge are addressable keys, so a vertex that only
// ever receives edges still shows up in Vertices() with an empty neighbor set.
//
// Core Methods:
//
//	AddEdge(from, to V, weight W)       // O(1), insert or overwrite
//	AddVertex(v V)                      // O(1), idempotent
//	HasVertex(v V) bool                 // O(1)
//	HasEdge(from, to V) bool            // O(1)
//	Weight(from, to V) (W, bool)        // O(1)
//	Neighbors(v V) []Neighbor[V, W]     // O(d·log d), sorted by target
//	Vertices() []V                      // O(V·log V), sorted
//	VertexCount() int                   // O(1)
//	EdgeCount() int                     // O(1)
//	Clone() *Graph[V, W]                // O(V+E), deep copy
//
// There is no removal and no reverse-edge query. The store does not validate
// weights: negative or NaN weights are the caller's problem and make every
// shortest-path result undefined.
//
// Example:
//
//	g := core.NewGraph[string, float64]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2.5)
//	fmt.Println(g.Vertices()) // [A B C]
package core
