// Spanning tree selector for the two-phase computation method: Kruskal's
// minimum spanning tree over the clique graph, using the heuristic weights
// as-is.

package treewidth

import "sort"

// kruskalSpanningTree reduces the clique graph to a minimum-weight spanning
// tree and returns the selected edges. It uses a disjoint-set (union-find)
// structure with path compression and union by rank over the arena indices.
//
// Steps:
//  1. Trivial cases: 0 or 1 nodes need no edges.
//  2. Stable-sort a copy of the edges by ascending weight; stability keeps
//     equal-weight edges in clique-graph construction order, which is the
//     documented tie-break.
//  3. Scan sorted edges, uniting components and keeping tree edges until
//     n−1 are selected.
//
// The clique graph of a connected input graph is itself connected, so the
// scan always reaches n−1 edges; the orchestrator splits disconnected
// inputs before this point.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func kruskalSpanningTree(cg *cliqueGraph) []cliqueEdge {
	n := cg.order()
	// 1. A tree over 0 or 1 nodes has no edges.
	if n <= 1 {
		return nil
	}

	// 2. Sort a copy; cg.edges stays in construction order for callers.
	edges := append([]cliqueEdge(nil), cg.edges...)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})

	// 3. Disjoint-set over arena indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression.
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	// Union by rank; reports whether a merge happened.
	union := func(x, y int) bool {
		rx, ry := find(x), find(y)
		if rx == ry {
			return false
		}
		if rank[rx] < rank[ry] {
			rx, ry = ry, rx
		}
		parent[ry] = rx
		if rank[rx] == rank[ry] {
			rank[rx]++
		}

		return true
	}

	tree := make([]cliqueEdge, 0, n-1)
	for _, e := range edges {
		if union(e.u, e.v) {
			tree = append(tree, e)
			if len(tree) == n-1 {
				break
			}
		}
	}

	return tree
}

// treeFromEdges assembles a TreeDecomposition over the clique-graph bags
// from the selected spanning tree edges. The bags are shared with the
// arena: from here on only the bag filler mutates them.
func treeFromEdges(cg *cliqueGraph, edges []cliqueEdge) *TreeDecomposition {
	td := &TreeDecomposition{
		bags: cg.bags,
		adj:  make([][]int, cg.order()),
	}
	for _, e := range edges {
		td.adj[e.u] = append(td.adj[e.u], e.v)
		td.adj[e.v] = append(td.adj[e.v], e.u)
	}

	return td
}
