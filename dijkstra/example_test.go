// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// ExampleDijkstra demonstrates computing shortest paths on a small triangle.
func ExampleDijkstra() {
	g := core.NewGraph[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	res := dijkstra.Dijkstra(g, "A")
	for _, v := range res.Vertices() {
		e, _ := res.Lookup(v)
		if e.Start {
			fmt.Printf("%s (start)\n", v)
			continue
		}
		fmt.Printf("%s <- %s (distance %d)\n", v, e.Predecessor, e.Distance)
	}
	// Output:
	// A (start)
	// B <- A (distance 1)
	// C <- B (distance 3)
}

// ExampleResult_Predecessor walks the predecessor chain back to the start.
func ExampleResult_Predecessor() {
	g := core.NewGraph[string, float64]()
	g.AddEdge("New York", "Boston", 215)
	g.AddEdge("New York", "Philadelphia", 97)
	g.AddEdge("Philadelphia", "Washington DC", 139)
	g.AddEdge("Washington DC", "Richmond", 109)
	g.AddEdge("Philadelphia", "Richmond", 267)

	res := dijkstra.Dijkstra(g, "New York")

	v := "Richmond"
	d, _ := res.Distance(v)
	fmt.Printf("%s: %.0f miles\n", v, d)
	for {
		prev, ok := res.Predecessor(v)
		if !ok {
			break
		}
		fmt.Printf("  %s <- %s\n", v, prev)
		v = prev
	}
	// Output:
	// Richmond: 345 miles
	//   Richmond <- Washington DC
	//   Washington DC <- Philadelphia
	//   Philadelphia <- New York
}

// ExampleResult_Records shows the ordered, serializable form of a Result.
func ExampleResult_Records() {
	g := core.NewGraph[uint32, float64]()
	g.AddEdge(1, 2, 1.5)
	g.AddEdge(2, 3, 2)
	g.AddEdge(4, 1, 1) // 4 is unreachable from 1

	for _, r := range dijkstra.Dijkstra(g, 1).Records() {
		if r.Predecessor == nil {
			fmt.Printf("%d: start\n", r.Vertex)
			continue
		}
		fmt.Printf("%d: via %d, %.1f\n", r.Vertex, r.Predecessor.Predecessor, r.Predecessor.Distance)
	}
	// Output:
	// 1: start
	// 2: via 1, 1.5
	// 3: via 2, 3.5
}
