package treewidth_test

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/core"
)

// ExampleComputeUpperBound demonstrates the default pipeline on a 4-cycle.
// The maximal cliques are the four edges; the filled spanning tree has four
// bags and width 2, the true treewidth of any cycle.
func ExampleComputeUpperBound() {
	// 1. Construct the cycle 1—2—3—4—1.
	g := core.NewGraph()
	_ = g.AddEdge("1", "2")
	_ = g.AddEdge("2", "3")
	_ = g.AddEdge("3", "4")
	_ = g.AddEdge("1", "4")

	// 2. Compute the upper bound with the default options
	//    (two-phase method, negative-intersection heuristic).
	width, td, err := treewidth.ComputeUpperBound(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("width: %d, bags: %d\n", width, td.Len())
	// Output: width: 2, bags: 4
}

// ExampleComputeUpperBoundNotConnected demonstrates the component
// orchestrator on two disjoint triangles: each triangle decomposes into a
// single bag of width 2, and the final bound is the maximum over components.
func ExampleComputeUpperBoundNotConnected() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("a", "c")
	_ = g.AddEdge("x", "y")
	_ = g.AddEdge("y", "z")
	_ = g.AddEdge("x", "z")

	// The connected-only entry point refuses this graph outright.
	if _, _, err := treewidth.ComputeUpperBound(g); err != nil {
		fmt.Println("connected-only:", err)
	}

	width, err := treewidth.ComputeUpperBoundNotConnected(g, treewidth.WithMethod(treewidth.MethodFillWhilstMST))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("width:", width)
	// Output:
	// connected-only: treewidth: graph is not connected
	// width: 2
}

// ExampleMaximalCliques demonstrates clique enumeration on a triangle with
// a pendant edge.
func ExampleMaximalCliques() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("a", "c")
	_ = g.AddEdge("c", "d")

	cliques, err := treewidth.MaximalCliques(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	names := make([]string, 0, len(cliques))
	for _, c := range cliques {
		names = append(names, "{"+strings.Join(c.Sorted(), " ")+"}")
	}
	sort.Strings(names)
	fmt.Println(strings.Join(names, " "))
	// Output: {a b c} {c d}
}
