package treewidth_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/ktree"
)

// benchGraph builds one partial 6-tree on 120 vertices with a fixed seed so
// every benchmark run measures the same input.
func benchGraph(b *testing.B) treewidth.Graph {
	g, err := ktree.GeneratePartialKTree(6, 120, 20, rand.New(rand.NewSource(42)))
	if err != nil {
		b.Fatalf("generate benchmark graph: %v", err)
	}
	return g
}

// BenchmarkComputeUpperBound_MSTAndFill measures the two-phase method.
func BenchmarkComputeUpperBound_MSTAndFill(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = treewidth.ComputeUpperBoundNotConnected(g, treewidth.WithMethod(treewidth.MethodMSTAndFill))
	}
}

// BenchmarkComputeUpperBound_FillWhilstMST measures the interleaved method.
func BenchmarkComputeUpperBound_FillWhilstMST(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = treewidth.ComputeUpperBoundNotConnected(g, treewidth.WithMethod(treewidth.MethodFillWhilstMST))
	}
}
