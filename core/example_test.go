package core_test

import (
	"fmt"

	"github.com/katalvlaran/ucsearch/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, weighted graph; AddEdge auto-adds vertices.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "A", 2)

	// 2) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 3) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B: [A C] 1
}

// ExampleGraph_Neighbors shows the deterministic adjacency order.
func ExampleGraph_Neighbors() {
	g, _ := core.FromMap(map[string]map[string]float64{
		"Oradea": {"Zerind": 71, "Sibiu": 151},
	})

	nbrs, _ := g.Neighbors("Oradea")
	for _, n := range nbrs {
		fmt.Printf("%s %g\n", n.ID, n.Weight)
	}

	// Output:
	// Sibiu 151
	// Zerind 71
}
