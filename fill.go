// Bag filling: restoring the running-intersection property on the selected
// spanning tree, either as a separate pass after MST construction
// (two-phase) or interleaved with tree growth.

package treewidth

import "github.com/rs/zerolog"

// pathInTree returns the unique path from start to end in the tree encoded
// by adj, endpoints inclusive. Implemented with breadth-first search and
// parent links; in a tree BFS finds the one path there is.
//
// Complexity: O(nodes) per query.
func pathInTree(adj [][]int, start, end int) []int {
	if start == end {
		return []int{start}
	}

	parent := make([]int, len(adj))
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nb := range adj[v] {
			if parent[nb] != -1 {
				continue
			}
			parent[nb] = v
			if nb == end {
				// Walk the parent links back to start, then reverse.
				path := []int{end}
				for at := end; at != start; {
					at = parent[at]
					path = append(path, at)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}

				return path
			}
			queue = append(queue, nb)
		}
	}

	// end is not reachable from start. The fillers only query within one
	// spanning tree; the validator relies on the nil return to flag
	// forests posing as trees.
	return nil
}

// fillBagsAlongPaths is the two-phase bag filler: given the spanning tree
// with bags still equal to the original cliques, it restores the running
// intersection property.
//
// Steps:
//  1. Check every unordered pair of tree nodes for a non-empty bag
//     intersection and record (pair, intersection). All intersections are
//     computed up front, before any bag grows.
//  2. For each recorded pair, add every intersection vertex to every bag
//     strictly between the two nodes on their unique tree path (the
//     endpoints contain the intersection already).
//
// One pass per pair suffices: path filling for one pair cannot break the
// running-intersection property already established for another vertex, so
// no fixed-point iteration is needed.
//
// Complexity: O(nodes² · path length) worst case.
func fillBagsAlongPaths(td *TreeDecomposition, logger zerolog.Logger) {
	type pendingFill struct {
		u, v         int
		intersection VertexSet
	}

	// 1. Find out which paths between bags have to be filled.
	var pending []pendingFill
	for u := 0; u < len(td.bags); u++ {
		for v := u + 1; v < len(td.bags); v++ {
			intersection := td.bags[u].Intersection(td.bags[v])
			if intersection.Len() > 0 {
				pending = append(pending, pendingFill{u: u, v: v, intersection: intersection})
			}
		}
	}
	logger.Debug().Int("pairs", len(pending)).Msg("filling bags along tree paths")

	// 2. Fill the interior of each path.
	for _, p := range pending {
		path := pathInTree(td.adj, p.u, p.v)
		for _, node := range path[1 : len(path)-1] {
			for v := range p.intersection {
				td.bags[node].Add(v)
			}
		}
	}
}

// fillWhilstMST is the interleaved computation method: it grows a spanning
// tree of the clique graph Prim-style, minimizing the heuristic, and fills
// bags immediately after each attachment. Because the heuristic is
// re-evaluated against current bags, later edge selections observe the
// filling done so far — extra per-step work traded for potentially tighter
// final bags.
//
// Steps:
//  1. Seed the tree with node 0 and a frontier of (tree node, candidate)
//     pairs for its clique-graph neighbors.
//  2. Repeat until every node is attached:
//     a. pick the frontier pair minimizing heuristic(bag(tree node),
//     clique(candidate)); ties fall to the earliest-inserted pair;
//     b. attach the candidate to the tree at that tree node;
//     c. extend the frontier with the candidate's unattached neighbors and
//     drop every pair that targeted the candidate;
//     d. propagate: for each vertex in bag(new) ∖ bag(old), add it to the
//     interior of the path from the new node to every attached node
//     whose clique contains it.
//
// Complexity: O(edges · path length) filling plus O(frontier) heuristic
// evaluations per step.
func fillWhilstMST(cg *cliqueGraph, h Heuristic, logger zerolog.Logger) *TreeDecomposition {
	n := cg.order()
	td := &TreeDecomposition{
		bags: cg.bags,
		adj:  make([][]int, n),
	}
	if n == 0 {
		return td
	}

	// 1. Seed with node 0 (first enumerated clique).
	inTree := make([]bool, n)
	inTree[0] = true
	type frontierPair struct {
		treeNode  int // already attached
		candidate int // clique-graph neighbor not yet attached
	}
	frontier := make([]frontierPair, 0, len(cg.adj[0]))
	for _, nb := range cg.adj[0] {
		frontier = append(frontier, frontierPair{treeNode: 0, candidate: nb})
	}

	// 2. Grow until all nodes are attached. The clique graph of a connected
	//    component is connected, so the frontier never starves early.
	for attached := 1; attached < n; attached++ {
		// 2a. Cheapest frontier pair by heuristic on *current* bags; the
		//     candidate side uses its original clique, since unattached
		//     bags never grow. Strict comparison keeps the earliest pair
		//     on ties (insertion order, which follows enumeration order).
		bestIdx := -1
		var bestWeight int64
		for i, p := range frontier {
			w := h(
				td.bags[p.treeNode],
				cg.cliques[p.candidate],
				td.bags[p.treeNode].Intersection(cg.cliques[p.candidate]),
			)
			if bestIdx == -1 || w < bestWeight {
				bestIdx = i
				bestWeight = w
			}
		}
		chosen := frontier[bestIdx]
		oldNode, newNode := chosen.treeNode, chosen.candidate

		// 2b. Attach.
		td.adj[oldNode] = append(td.adj[oldNode], newNode)
		td.adj[newNode] = append(td.adj[newNode], oldNode)
		inTree[newNode] = true

		// 2c. Update the frontier.
		next := frontier[:0]
		for _, p := range frontier {
			if p.candidate != newNode {
				next = append(next, p)
			}
		}
		frontier = next
		for _, nb := range cg.adj[newNode] {
			if !inTree[nb] {
				frontier = append(frontier, frontierPair{treeNode: newNode, candidate: nb})
			}
		}

		// 2d. Propagate every vertex the new bag brings in towards the
		//     attached nodes that also contain it.
		for _, v := range td.bags[newNode].Difference(td.bags[oldNode]).Sorted() {
			for _, target := range cg.containment[v] {
				if !inTree[target] || target == newNode {
					continue
				}
				path := pathInTree(td.adj, newNode, target)
				for _, node := range path[1 : len(path)-1] {
					td.bags[node].Add(v)
				}
			}
		}

		logger.Debug().
			Int("node", newNode).
			Int("attached_to", oldNode).
			Int("remaining", n-1-attached).
			Msg("attached clique node")
	}

	return td
}
