// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, start) returns a Result: for every vertex reachable from
//     start, its predecessor on one shortest path and its total distance.
//     The start vertex carries a start marker instead. Unreachable vertices
//     are absent.
//   - The frontier is a min-heap of (distance, vertex) pairs. Ties on distance
//     are broken by the smaller vertex, so results are reproducible.
//   - Improving a vertex pushes a fresh heap entry and leaves the old one in
//     place (lazy decrease-key). Entries of already finalized vertices are
//     skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//
// Errors:
//
// There are none. A start vertex missing from the graph, or one with no
// outgoing edges, yields a Result containing only the start. Looking up an
// unreachable vertex is a normal "not found" outcome.
//
// Negative or NaN weights are not detected; the Result is then undefined.
// Validate weights before building the graph (the bridge package offers
// AddEdgeChecked for this).
//
// Thread safety:
//
//   - Dijkstra is synchronous and does not modify the graph.
//   - Mutating the graph while Dijkstra runs gives undefined results.
//   - A Result is immutable and safe to share between goroutines.
//
// Example usage:
//
//	g := core.NewGraph[string, int]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 5)
//
//	res := dijkstra.Dijkstra(g, "A")
//	e, _ := res.Lookup("C")
//	fmt.Println(e.Predecessor, e.Distance) // B 3
package dijkstra
