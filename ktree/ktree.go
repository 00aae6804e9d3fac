package ktree

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/treewidth/core"
)

// Sentinel errors for the k-tree generators.
var (
	// ErrInvalidK indicates a clique parameter k below 1.
	ErrInvalidK = errors.New("ktree: k must be at least 1")

	// ErrKExceedsN indicates k > n; a k-tree needs at least k vertices.
	ErrKExceedsN = errors.New("ktree: k exceeds vertex count n")
)

// Logger receives generator traces (one debug line per discarded candidate
// in GeneratePartialKTreeGuaranteed). No-op by default; swap in a
// configured zerolog.Logger to observe the retry loop.
var Logger = zerolog.Nop()

// GenerateKTree generates a k-tree on n vertices named "v0" … "v(n-1)".
//
// Steps:
//  1. Build a complete graph on the first k vertices; seed the candidate
//     clique list with that one k-clique.
//  2. For each remaining vertex, pick a random candidate k-clique, connect
//     the new vertex to all its members, and register the k new k-cliques
//     obtained by swapping one member for the new vertex.
//
// The result has exactly k·(k−1)/2 + k·(n−k) edges and treewidth exactly k
// (for n > k).
//
// Error Conditions:
//   - ErrInvalidK  : k < 1.
//   - ErrKExceedsN : k > n.
//
// Complexity: O(n·k²) time, O(n·k²) memory for the candidate clique list.
func GenerateKTree(k, n int, rng *rand.Rand) (*core.Graph, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if k > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrKExceedsN, k, n)
	}

	// 1. Complete graph on the first k vertices.
	g := core.NewGraph()
	base := make([]string, k)
	for i := 0; i < k; i++ {
		base[i] = vertexID(i)
		_ = g.AddVertex(base[i])
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			_ = g.AddEdge(base[i], base[j])
		}
	}
	candidates := [][]string{base}

	// 2. Attach each remaining vertex to a random existing k-clique.
	for i := k; i < n; i++ {
		v := vertexID(i)
		_ = g.AddVertex(v)
		clique := candidates[rng.Intn(len(candidates))]
		for _, member := range clique {
			_ = g.AddEdge(v, member)

			// The chosen clique plus v minus member is a fresh k-clique.
			next := make([]string, 0, k)
			for _, m := range clique {
				if m != member {
					next = append(next, m)
				}
			}
			next = append(next, v)
			candidates = append(candidates, next)
		}
	}

	return g, nil
}

// GeneratePartialKTree generates a k-tree on n vertices and then removes
// p percent of its edges at random (rounded down; p > 100 removes all).
// The result is a partial k-tree, so its treewidth is at most k.
//
// Error Conditions: as GenerateKTree.
func GeneratePartialKTree(k, n, p int, rng *rand.Rand) (*core.Graph, error) {
	g, err := GenerateKTree(k, n, rng)
	if err != nil {
		return nil, err
	}

	edges := g.Edges()
	remove := len(edges) * p / 100
	if remove > len(edges) {
		remove = len(edges)
	}
	for _, idx := range rng.Perm(len(edges))[:remove] {
		_ = g.RemoveEdge(edges[idx].U, edges[idx].V)
	}

	return g, nil
}

// GeneratePartialKTreeGuaranteed generates partial k-trees until the MMD+
// lower bound certifies a treewidth of exactly k, then returns that graph.
// Edge removal can only lower treewidth below k, so MMD+ == k pins the
// treewidth from both sides.
//
// Caution: the retry loop has no iteration bound; unlucky (k, n, p)
// combinations can take a long time.
//
// Error Conditions: as GenerateKTree.
func GeneratePartialKTreeGuaranteed(k, n, p int, rng *rand.Rand) (*core.Graph, error) {
	for {
		g, err := GeneratePartialKTree(k, n, p, rng)
		if err != nil {
			return nil, err
		}
		if MaximumMinimumDegreePlus(g) == k {
			return g, nil
		}
		Logger.Debug().Int("k", k).Int("n", n).Int("p", p).
			Msg("partial k-tree discarded: lower bound below k")
	}
}

// vertexID names generated vertices "v0", "v1", …
func vertexID(i int) string { return fmt.Sprintf("v%d", i) }
