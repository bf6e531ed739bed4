// Package bridge is a thin adapter for exposing the shortest-path solver to
// a host environment: numeric vertex IDs (uint32), float64 weights, and the
// Result flattened into vertex-ordered records encoded as JSON or YAML.
//
// Unlike core.Graph, the adapter can validate weights on the way in
// (AddEdgeChecked), since a host caller cannot be trusted to respect the
// non-negative, finite weight contract.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// Sentinel errors returned by the adapter.
var (
	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("bridge: negative edge weight")

	// ErrNonFiniteWeight indicates a NaN or infinite edge weight.
	ErrNonFiniteWeight = errors.New("bridge: non-finite edge weight")

	// ErrUnknownFormat indicates an output format name that ParseFormat does not know.
	ErrUnknownFormat = errors.New("bridge: unknown output format")
)

// Record is one row of the serialized shortest-path result.
type Record = dijkstra.Record[uint32, float64]

// Graph wraps a core.Graph with host-friendly vertex and weight types.
type Graph struct {
	g *core.Graph[uint32, float64]
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{g: core.NewGraph[uint32, float64]()}
}

// AddEdge inserts or overwrites the directed edge from→to without checking
// the weight.
func (g *Graph) AddEdge(from, to uint32, weight float64) {
	g.g.AddEdge(from, to, weight)
}

// AddEdgeChecked is AddEdge for untrusted input: it rejects negative, NaN
// and infinite weights and leaves the graph unchanged in that case.
func (g *Graph) AddEdgeChecked(from, to uint32, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return fmt.Errorf("%w: edge %d→%d weight=%v", err, from, to, weight)
	}
	g.g.AddEdge(from, to, weight)

	return nil
}

func checkWeight(w float64) error {
	switch {
	case math.IsNaN(w) || math.IsInf(w, 0):
		return ErrNonFiniteWeight
	case w < 0:
		return ErrNegativeWeight
	}

	return nil
}

// Core exposes the wrapped graph for callers that want the generic API.
func (g *Graph) Core() *core.Graph[uint32, float64] {
	return g.g
}

// Dijkstra runs the solver from start and returns the result as records in
// ascending vertex order.
func (g *Graph) Dijkstra(start uint32) []Record {
	return dijkstra.Dijkstra(g.g, start).Records()
}

// DijkstraJSON runs the solver from start and returns the records as a
// compact JSON array.
func (g *Graph) DijkstraJSON(start uint32) ([]byte, error) {
	b, err := json.Marshal(g.Dijkstra(start))
	if err != nil {
		return nil, fmt.Errorf("bridge: encode result from %d: %w", start, err)
	}

	return b, nil
}
