package treewidth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/core"
)

// cliqueKeys renders a clique collection as sorted member strings so tests
// can compare collections without depending on enumeration order.
func cliqueKeys(cliques []treewidth.VertexSet) []string {
	keys := make([]string, 0, len(cliques))
	for _, c := range cliques {
		keys = append(keys, strings.Join(c.Sorted(), ","))
	}

	return keys
}

func TestMaximalCliques_FourCycle(t *testing.T) {
	cliques, err := treewidth.MaximalCliques(buildFourCycle())
	assert.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"1,2", "2,3", "3,4", "1,4"},
		cliqueKeys(cliques),
		"the maximal cliques of a square are its four edges",
	)
}

func TestMaximalCliques_CompleteGraph(t *testing.T) {
	cliques, err := treewidth.MaximalCliques(buildComplete(5))
	assert.NoError(t, err)
	assert.Len(t, cliques, 1)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, cliques[0].Sorted())
}

func TestMaximalCliques_EdgeCases(t *testing.T) {
	// Empty graph: no cliques.
	cliques, err := treewidth.MaximalCliques(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, cliques)

	// Isolated vertex: one singleton clique.
	g := core.NewGraph()
	_ = g.AddVertex("solo")
	cliques, err = treewidth.MaximalCliques(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"solo"}, cliqueKeys(cliques))

	// Nil capability.
	_, err = treewidth.MaximalCliques(nil)
	assert.ErrorIs(t, err, treewidth.ErrNilGraph)
}

func TestMaximalCliques_CoversEveryEdge(t *testing.T) {
	// Triangle with a pendant: cliques {a,b,c} and {c,d}. Every edge must
	// lie inside at least one clique (the cover the decomposition needs).
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("a", "c")
	_ = g.AddEdge("c", "d")

	cliques, err := treewidth.MaximalCliques(g)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a,b,c", "c,d"}, cliqueKeys(cliques))

	for _, e := range g.Edges() {
		covered := false
		for _, c := range cliques {
			if c.Has(e.U) && c.Has(e.V) {
				covered = true

				break
			}
		}
		assert.True(t, covered, "edge %s-%s not inside any clique", e.U, e.V)
	}
}

func TestMaximalCliquesBounded_PositiveBound(t *testing.T) {
	// K5 bounded at 3: the single 5-clique expands into C(5,3) = 10
	// triangles, each exactly once.
	cliques, err := treewidth.MaximalCliquesBounded(buildComplete(5), 3)
	assert.NoError(t, err)
	assert.Len(t, cliques, 10)
	for _, c := range cliques {
		assert.Equal(t, 3, c.Len())
	}

	// Small maximal cliques pass through untouched: the square's edges are
	// all below a bound of 3.
	cliques, err = treewidth.MaximalCliquesBounded(buildFourCycle(), 3)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"1,2", "2,3", "3,4", "1,4"}, cliqueKeys(cliques))
}

func TestMaximalCliquesBounded_NegativeBound(t *testing.T) {
	// ω(K5) = 5, so -1 resolves to a bound of 4: C(5,4) = 5 subsets.
	cliques, err := treewidth.MaximalCliquesBounded(buildComplete(5), -1)
	assert.NoError(t, err)
	assert.Len(t, cliques, 5)
	for _, c := range cliques {
		assert.Equal(t, 4, c.Len())
	}
}

func TestMaximalCliquesBounded_DeduplicatesSharedSubsets(t *testing.T) {
	// Two K4s sharing the triangle {b,c,d}: bounding at 3 expands both, and
	// the shared triangle must appear only once.
	g := core.NewGraph()
	for _, quad := range [][]string{{"a", "b", "c", "d"}, {"b", "c", "d", "e"}} {
		for i := range quad {
			for j := i + 1; j < len(quad); j++ {
				_ = g.AddEdge(quad[i], quad[j])
			}
		}
	}

	cliques, err := treewidth.MaximalCliquesBounded(g, 3)
	assert.NoError(t, err)
	keys := cliqueKeys(cliques)
	assert.Len(t, keys, 7, "2 * C(4,3) expansions minus the shared {b,c,d}")
	seen := make(map[string]int)
	for _, k := range keys {
		seen[k]++
	}
	assert.Equal(t, 1, seen["b,c,d"])
}

func TestMaximalCliquesBounded_InvalidBound(t *testing.T) {
	// ω(K5) = 5; -10 resolves to -5, below the minimum bound of 2.
	_, err := treewidth.MaximalCliquesBounded(buildComplete(5), -10)
	assert.ErrorIs(t, err, treewidth.ErrInvalidCliqueBound)

	// A bound of 1 would shatter cliques into singletons that cover no
	// edge, so it is rejected even though it is positive.
	_, err = treewidth.MaximalCliquesBounded(buildFourCycle(), 1)
	assert.ErrorIs(t, err, treewidth.ErrInvalidCliqueBound)

	// A negative bound on an empty graph has no ω to resolve against.
	_, err = treewidth.MaximalCliquesBounded(core.NewGraph(), -1)
	assert.ErrorIs(t, err, treewidth.ErrInvalidCliqueBound)

	_, err = treewidth.MaximalCliquesBounded(nil, 3)
	assert.ErrorIs(t, err, treewidth.ErrNilGraph)
}
