package treewidth

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/treewidth/core"
)

// inputView is the pipeline's private snapshot of the caller's graph:
// sorted vertex slice, sorted adjacency lists, and canonical edge list.
// Taking the snapshot up front means the capability is queried exactly once
// and the caller's graph is provably never mutated.
type inputView struct {
	vertices []string            // ascending vertex IDs
	adj      map[string][]string // vertex ID → ascending neighbor IDs
	edges    []core.Edge         // canonical (U < V), sorted by (U, V)
}

// snapshot copies the capability into an inputView.
//
// Self-loops, should the capability report any, are dropped: they are
// irrelevant to treewidth and would only confuse clique maximality.
//
// Error Conditions:
//   - ErrNeighbors : a neighbor query failed (wrapped with the vertex ID).
//
// Complexity: O(V log V + E log E).
func snapshot(g Graph) (*inputView, error) {
	// 1. Copy and sort the vertex list for deterministic iteration.
	vertices := append([]string(nil), g.Vertices()...)
	sort.Strings(vertices)

	// 2. Copy adjacency lists, dropping self-loops, sorting each list.
	adj := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, v, err)
		}
		list := make([]string, 0, len(neighbors))
		for _, nb := range neighbors {
			if nb != v {
				list = append(list, nb)
			}
		}
		sort.Strings(list)
		adj[v] = list
	}

	// 3. Canonicalize the edge list: U < V, sorted, deduplicated.
	raw := g.Edges()
	edges := make([]core.Edge, 0, len(raw))
	for _, e := range raw {
		if e.U == e.V {
			continue
		}
		edges = append(edges, core.NewEdge(e.U, e.V))
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})
	edges = dedupeEdges(edges)

	return &inputView{vertices: vertices, adj: adj, edges: edges}, nil
}

// dedupeEdges collapses adjacent duplicates in a sorted edge slice.
func dedupeEdges(edges []core.Edge) []core.Edge {
	out := edges[:0]
	for i, e := range edges {
		if i == 0 || e != edges[i-1] {
			out = append(out, e)
		}
	}

	return out
}

// induced returns the snapshot restricted to the vertices in keep.
// Complexity: O(V + E).
func (in *inputView) induced(keep VertexSet) *inputView {
	vertices := make([]string, 0, keep.Len())
	for _, v := range in.vertices {
		if keep.Has(v) {
			vertices = append(vertices, v)
		}
	}

	adj := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		list := make([]string, 0, len(in.adj[v]))
		for _, nb := range in.adj[v] {
			if keep.Has(nb) {
				list = append(list, nb)
			}
		}
		adj[v] = list
	}

	edges := make([]core.Edge, 0, len(in.edges))
	for _, e := range in.edges {
		if keep.Has(e.U) && keep.Has(e.V) {
			edges = append(edges, e)
		}
	}

	return &inputView{vertices: vertices, adj: adj, edges: edges}
}
