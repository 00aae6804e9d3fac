// Clique-graph construction: the intersection graph over the enumerated
// cliques, with heuristic edge weights.

package treewidth

// cliqueEdge connects two clique-graph nodes whose cliques intersect.
// u < v always holds; edges live in construction order, which is the
// tie-break order for the spanning tree selector.
type cliqueEdge struct {
	u, v   int   // node indices into the arena
	weight int64 // heuristic score; lower is preferred
}

// cliqueGraph is the intersection graph over the maximal cliques, stored as
// a flat arena: nodes are integer indices, stable for the entire pipeline.
//
// cliques holds the immutable original vertex sets; bags holds the mutable
// decomposition bags, index-aligned with cliques and grown only by the bag
// filler. containment maps every input-graph vertex to the indices of the
// nodes whose clique contains it (ascending), which the interleaved filler
// uses to find propagation targets without rescanning the arena.
type cliqueGraph struct {
	cliques     []VertexSet
	bags        []VertexSet
	adj         [][]int // node index → ascending neighbor node indices
	edges       []cliqueEdge
	containment map[string][]int
}

// buildCliqueGraph constructs the intersection graph: one node per clique,
// one weighted edge per unordered pair of cliques with a non-empty
// intersection.
//
// Nodes are appended in enumeration order; for node j every earlier node
// i < j is checked, so edges come out ordered by (j, i) — that construction
// order is the documented tie-break for minimum spanning tree selection.
//
// Guarantee: if the cliques cover a connected input graph, the resulting
// intersection graph is connected (a structural property of clique graphs);
// disconnected inputs are split by the component orchestrator before this
// point.
//
// Complexity: O(c² · s) for c cliques of size ≤ s.
func buildCliqueGraph(cliques []VertexSet, h Heuristic) *cliqueGraph {
	cg := &cliqueGraph{
		cliques:     make([]VertexSet, 0, len(cliques)),
		bags:        make([]VertexSet, 0, len(cliques)),
		adj:         make([][]int, len(cliques)),
		containment: make(map[string][]int),
	}

	for j, clique := range cliques {
		// 1. Register the node: immutable clique plus its initial bag copy.
		cg.cliques = append(cg.cliques, clique)
		cg.bags = append(cg.bags, clique.Clone())
		for _, v := range clique.Sorted() {
			cg.containment[v] = append(cg.containment[v], j)
		}

		// 2. Connect to every earlier node sharing at least one vertex.
		for i := 0; i < j; i++ {
			intersection := cg.cliques[i].Intersection(clique)
			if intersection.Len() == 0 {
				continue
			}
			cg.edges = append(cg.edges, cliqueEdge{
				u:      i,
				v:      j,
				weight: h(cg.cliques[i], clique, intersection),
			})
			cg.adj[i] = append(cg.adj[i], j)
			cg.adj[j] = append(cg.adj[j], i)
		}
	}

	return cg
}

// order returns the number of clique-graph nodes.
func (cg *cliqueGraph) order() int { return len(cg.cliques) }
