package core_test

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create an empty undirected graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C):
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))
	fmt.Println("Edges:", g.EdgeCount())

	// 4) Parallel edges are rejected:
	fmt.Println(g.AddEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// Edges: 3
	// core: multi-edges not allowed: "A"-"B"
}

// ExampleGraph_InducedEdges shows the edges kept by an induced subgraph.
func ExampleGraph_InducedEdges() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "1")
	_ = g.AddEdge("1", "2")
	_ = g.AddEdge("2", "3")

	fmt.Println(g.InducedEdges([]string{"0", "1", "3"}))
	// Output:
	// [{0 1}]
}
