// Package sssp computes single-source shortest paths over weighted directed
// graphs with Dijkstra's algorithm.
//
// The module is organized in three packages:
//
//	core/     — generic Graph store: vertex → (neighbor → weight), insert/overwrite edges
//	dijkstra/ — the solver and its Result: per-vertex (predecessor, distance) or start marker
//	bridge/   — host adapter: uint32 vertices, float64 weights, JSON/YAML record output
//
// and one runnable program, examples/roadnetwork.
//
// Quick example:
//
//	g := core.NewGraph[string, int]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 5)
//
//	res := dijkstra.Dijkstra(g, "A")
//	pred, _ := res.Predecessor("C") // "B"
//	dist, _ := res.Distance("C")    // 3
//
// Weights must be non-negative and not NaN; nothing in core or dijkstra
// checks this. Use bridge.Graph.AddEdgeChecked when weights come from an
// untrusted caller.
//
//	go get github.com/katalvlaran/sssp
package sssp
