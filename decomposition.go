// Tree decomposition result type: width evaluation and the exhaustive
// invariant validator.

package treewidth

import (
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

// TreeDecomposition is the filled spanning tree over the clique-graph
// nodes. Node i carries bag i; adjacency encodes the tree. A decomposition
// with zero nodes is the trivial decomposition of the empty graph.
//
// The pipeline hands ownership to the caller on return; bags are exposed
// directly and must be treated as read-only.
type TreeDecomposition struct {
	bags []VertexSet
	adj  [][]int
}

// Len returns the number of bags (tree nodes).
func (td *TreeDecomposition) Len() int { return len(td.bags) }

// Bag returns the vertex set of tree node i. Read-only by contract.
func (td *TreeDecomposition) Bag(i int) VertexSet { return td.bags[i] }

// Neighbors returns the tree neighbors of node i. Read-only by contract.
func (td *TreeDecomposition) Neighbors(i int) []int { return td.adj[i] }

// Width returns the width of the decomposition: max bag size − 1.
// An empty decomposition has width −1 by convention.
// Complexity: O(nodes).
func (td *TreeDecomposition) Width() int {
	maxBag := 0
	for _, bag := range td.bags {
		if bag.Len() > maxBag {
			maxBag = bag.Len()
		}
	}

	return maxBag - 1
}

// Validate checks the three tree-decomposition invariants against the input
// graph g and fails loudly on the first violation:
//
//  1. vertex coverage — every vertex of g appears in at least one bag
//     (ErrVertexNotCovered, naming the vertex);
//  2. edge coverage — both endpoints of every edge of g share at least one
//     bag (ErrEdgeNotCovered, naming the edge);
//  3. running intersection — for every pair of bags, every bag on the tree
//     path between them contains their intersection
//     (ErrRunningIntersection, naming the vertex, the pair, and the bag).
//
// This is a debugging and verification aid, not part of the hot path: it is
// quadratic in the number of bags.
func (td *TreeDecomposition) Validate(g Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	return td.validate(g.Vertices(), g.Edges())
}

// validate implements Validate against explicit vertex and edge lists, so
// the pipeline can reuse its snapshot instead of re-querying the capability.
func (td *TreeDecomposition) validate(vertices []string, edges []core.Edge) error {
	// 1. Vertex coverage.
	for _, v := range vertices {
		covered := false
		for _, bag := range td.bags {
			if bag.Has(v) {
				covered = true

				break
			}
		}
		if !covered {
			return fmt.Errorf("%w: %q", ErrVertexNotCovered, v)
		}
	}

	// 2. Edge coverage.
	for _, e := range edges {
		covered := false
		for _, bag := range td.bags {
			if bag.Has(e.U) && bag.Has(e.V) {
				covered = true

				break
			}
		}
		if !covered {
			return fmt.Errorf("%w: {%q, %q}", ErrEdgeNotCovered, e.U, e.V)
		}
	}

	// 3. Running intersection: for every pair of bags with a non-empty
	//    intersection, every bag on the unique tree path between them must
	//    contain that intersection.
	for i := 0; i < len(td.bags); i++ {
		for j := i + 1; j < len(td.bags); j++ {
			intersection := td.bags[i].Intersection(td.bags[j])
			if intersection.Len() == 0 {
				continue
			}
			path := pathInTree(td.adj, i, j)
			// No path at all: the adjacency is a forest, so the bags
			// sharing these vertices cannot form a connected subtree.
			if len(path) == 0 {
				return fmt.Errorf(
					"%w: bags %d and %d share vertices but are not connected in the tree",
					ErrRunningIntersection, i, j,
				)
			}
			for _, node := range path {
				if td.bags[node].ContainsAll(intersection) {
					continue
				}
				for _, v := range intersection.Sorted() {
					if !td.bags[node].Has(v) {
						return fmt.Errorf(
							"%w: vertex %q is in bags %d and %d but missing from bag %d on their path",
							ErrRunningIntersection, v, i, j, node,
						)
					}
				}
			}
		}
	}

	return nil
}
