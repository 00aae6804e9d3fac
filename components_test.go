package treewidth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/core"
)

func TestConnectedComponents_TwoTriangles(t *testing.T) {
	components, err := treewidth.ConnectedComponents(buildTwoTriangles())
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"x", "y", "z"}}, components,
		"components ordered by smallest vertex, members ascending")
}

func TestConnectedComponents_SingleComponent(t *testing.T) {
	components, err := treewidth.ConnectedComponents(buildFourCycle())
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2", "3", "4"}}, components)
}

func TestConnectedComponents_IsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("b")
	_ = g.AddVertex("a")
	_ = g.AddEdge("c", "d")

	components, err := treewidth.ConnectedComponents(g)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c", "d"}}, components)
}

func TestConnectedComponents_EdgeCases(t *testing.T) {
	components, err := treewidth.ConnectedComponents(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, components)

	_, err = treewidth.ConnectedComponents(nil)
	assert.ErrorIs(t, err, treewidth.ErrNilGraph)
}
