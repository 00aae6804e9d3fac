package ktree_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/treewidth/ktree"
)

// ExampleGenerateKTree builds a 3-tree on 12 vertices. Whatever the seed,
// the shape is fixed: n vertices and k·(k−1)/2 + k·(n−k) edges.
func ExampleGenerateKTree() {
	g, err := ktree.GenerateKTree(3, 12, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("vertices: %d, edges: %d, lower bound: %d\n",
		g.VertexCount(), g.EdgeCount(), ktree.MaximumMinimumDegreePlus(g))
	// Output: vertices: 12, edges: 30, lower bound: 3
}

// ExampleGeneratePartialKTree removes a fifth of the edges of a 3-tree.
// The removal count is fixed even though the removed edges are random.
func ExampleGeneratePartialKTree() {
	g, err := ktree.GeneratePartialKTree(3, 12, 20, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("vertices: %d, edges: %d\n", g.VertexCount(), g.EdgeCount())
	// Output: vertices: 12, edges: 24
}
