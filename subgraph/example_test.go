package subgraph_test

import (
	"fmt"

	"github.com/veligo/libgraph/core"
	"github.com/veligo/libgraph/subgraph"
)

// ExampleMatcher locates a labeled fragment inside a larger graph.
func ExampleMatcher() {
	target := core.New[string, core.None]()
	target.AddNodes("lb", "web1", "web2", "db")
	target.AddEdges(
		core.Edge[string, core.None]{From: "lb", To: "web1"},
		core.Edge[string, core.None]{From: "lb", To: "web2"},
		core.Edge[string, core.None]{From: "web1", To: "db"},
		core.Edge[string, core.None]{From: "web2", To: "db"},
	)

	// Any node that fans out to another which in turn reaches a third.
	pattern := core.New[string, core.None]()
	pattern.AddNodes("x", "y", "z")
	pattern.AddEdges(
		core.Edge[string, core.None]{From: "x", To: "y"},
		core.Edge[string, core.None]{From: "y", To: "z"},
	)

	m, _ := subgraph.New(target,
		subgraph.WithNodeEquals[string, core.None](func(_, _ string) bool { return true }),
		subgraph.WithEdgeEquals(func(_, _ core.Edge[string, core.None]) bool { return true }),
	)
	found, _ := m.Run(pattern)
	fmt.Println(found, m.MatchCount())
	// Output:
	// true 2
}
