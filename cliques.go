// Maximal-clique enumeration: the first stage of the pipeline. The
// enumerated cliques become the nodes of the clique graph.

package treewidth

import (
	"fmt"
	"strings"
)

// MaximalCliques returns every maximal clique of g as a VertexSet.
//
// A maximal clique is a set of pairwise-adjacent vertices that no outside
// vertex extends. The union of all maximal cliques covers every vertex, and
// every edge of g lies inside at least one clique (the clique-cover property
// the decomposition relies on).
//
// Steps:
//  1. Snapshot the capability (sorted vertices, sorted adjacency).
//  2. Run Bron–Kerbosch with pivoting over the snapshot.
//
// Edge cases: an empty graph yields an empty collection; an isolated vertex
// yields a singleton clique.
//
// Error Conditions:
//   - ErrNilGraph  : g is nil.
//   - ErrNeighbors : the capability failed a neighbor query.
//
// Complexity: worst case O(3^(V/3)) — a graph may have exponentially many
// maximal cliques. That is the accepted cost of the clique-graph heuristic,
// not something to engineer around.
func MaximalCliques(g Graph) ([]VertexSet, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	in, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	return in.maximalCliques(), nil
}

// maximalCliques enumerates maximal cliques of the snapshot via
// Bron–Kerbosch with pivoting.
func (in *inputView) maximalCliques() []VertexSet {
	if len(in.vertices) == 0 {
		return nil
	}

	// Adjacency as sets for O(1) membership during the recursion.
	adjSets := make(map[string]VertexSet, len(in.vertices))
	for _, v := range in.vertices {
		adjSets[v] = NewVertexSet(in.adj[v]...)
	}

	var out []VertexSet
	r := make(VertexSet)
	p := NewVertexSet(in.vertices...)
	x := make(VertexSet)
	bronKerbosch(adjSets, r, p, x, &out)

	return out
}

// bronKerbosch extends the clique r with candidates p, excluding x.
// Pivoting on the candidate with the most neighbors in p prunes the branch
// count; candidates are scanned in sorted order so the recursion (and hence
// the output order) is deterministic.
func bronKerbosch(adj map[string]VertexSet, r, p, x VertexSet, out *[]VertexSet) {
	if p.Len() == 0 && x.Len() == 0 {
		// r cannot be extended and no superset was reported before: maximal.
		*out = append(*out, r.Clone())

		return
	}

	// 1. Choose the pivot u from p ∪ x maximizing |N(u) ∩ p|; ties fall to
	//    the smaller ID for determinism.
	pivot := ""
	best := -1
	for _, u := range p.Union(x).Sorted() {
		count := 0
		for nb := range adj[u] {
			if p.Has(nb) {
				count++
			}
		}
		if count > best {
			best = count
			pivot = u
		}
	}

	// 2. Branch only on candidates not adjacent to the pivot: any maximal
	//    clique missing all of them is found through the pivot's branch.
	for _, v := range p.Sorted() {
		if !p.Has(v) || adj[pivot].Has(v) {
			continue
		}

		r.Add(v)
		bronKerbosch(adj, r, p.Intersection(adj[v]), x.Intersection(adj[v]), out)
		delete(r, v)

		delete(p, v)
		x.Add(v)
	}
}

// MaximalCliquesBounded returns, once each, every clique that is maximal
// with size less than k, together with every k-subset of larger maximal
// cliques. The resulting collection still covers all vertices and edges, so
// the pipeline stays valid, while bags in the decomposition start no larger
// than k.
//
// A negative k is resolved as k + ω(g), where ω(g) is the size of a maximum
// clique; k = -1 therefore bounds cliques at ω(g) - 1.
//
// The resolved bound must be at least 2: a bound of 1 shatters every clique
// into singletons, and singleton bags can never cover an edge, so no graph
// with edges could ever decompose validly under it.
//
// Error Conditions:
//   - ErrNilGraph          : g is nil.
//   - ErrNeighbors         : the capability failed a neighbor query.
//   - ErrInvalidCliqueBound: k resolves to a bound below 2.
//
// Complexity: enumeration cost of MaximalCliques plus C(|clique|, k) subset
// expansion per oversized clique.
func MaximalCliquesBounded(g Graph, k int) ([]VertexSet, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	in, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	return in.maximalCliquesBounded(k)
}

func (in *inputView) maximalCliquesBounded(k int) ([]VertexSet, error) {
	cliques := in.maximalCliques()
	if len(cliques) == 0 {
		if k < 0 {
			// Negative bounds are relative to ω(g), undefined on no cliques.
			return nil, fmt.Errorf("%w: %d on empty graph", ErrInvalidCliqueBound, k)
		}

		return nil, nil
	}

	// Resolve a negative bound against the clique number ω(g).
	if k < 0 {
		omega := 0
		for _, c := range cliques {
			if c.Len() > omega {
				omega = c.Len()
			}
		}
		k += omega
	}
	// A bound of 1 yields an edgeless intersection graph over singleton
	// bags; no edge of the input could ever be covered.
	if k < 2 {
		return nil, fmt.Errorf("%w: resolved bound %d < 2", ErrInvalidCliqueBound, k)
	}

	var out []VertexSet
	seen := make(map[string]struct{})
	for _, clique := range cliques {
		if clique.Len() <= k {
			out = append(out, clique)

			continue
		}
		// Expand an oversized clique into its k-subsets, deduplicating
		// subsets shared between overlapping cliques.
		members := clique.Sorted()
		forEachCombination(members, k, func(subset []string) {
			key := strings.Join(subset, "\x00")
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			out = append(out, NewVertexSet(subset...))
		})
	}

	return out, nil
}

// forEachCombination invokes fn for every k-combination of ids, in
// lexicographic order. The slice passed to fn is reused between calls.
func forEachCombination(ids []string, k int, fn func([]string)) {
	if k > len(ids) || k <= 0 {
		return
	}
	combo := make([]string, k)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			fn(combo)

			return
		}
		for i := start; i <= len(ids)-(k-depth); i++ {
			combo[depth] = ids[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}
