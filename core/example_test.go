package core_test

import (
	"fmt"

	"github.com/veligo/libgraph/core"
)

// ExampleGraph builds a small directed graph and inspects it by value.
func ExampleGraph() {
	g := core.New[string, core.None]()
	g.AddNodes("web", "api", "db")
	g.AddEdge("web", "api", core.None{})
	g.AddEdge("api", "db", core.None{})

	fmt.Println(g.NodeCount(), g.EdgeCount())
	nbrs, _ := g.Neighbors("web")
	fmt.Println(nbrs)
	conn, _ := g.Connected("web", "db")
	fmt.Println(conn)
	// Output:
	// 3 2
	// [api]
	// false
}

// ExampleGraph_Nodes iterates the node set with a cursor.
func ExampleGraph_Nodes() {
	g := core.New[int, core.None]()
	g.AddNodes(3, 1, 2)

	for c := g.Nodes(); c.Next(); {
		fmt.Println(c.Value())
	}
	// Output:
	// 3
	// 1
	// 2
}

// ExampleGraph_DOT renders a graph for an external viewer.
func ExampleGraph_DOT() {
	g := core.New[string, int](core.WithUndirected())
	g.AddNodes("C", "O")
	g.AddEdge("C", "O", 2)

	fmt.Print(g.DOT())
	// Output:
	// graph G {
	//   "C";
	//   "O";
	//   "C" -- "O" [label="2"];
	// }
}
