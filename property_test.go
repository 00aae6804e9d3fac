package treewidth_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/ktree"
)

// TestDecompositionInvariants uses property-based testing to verify that
// the pipeline's output is a valid tree decomposition for any input.
// These properties must ALWAYS hold, for either method and any heuristic.
func TestDecompositionInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20 // Keeps the clique enumeration cost reasonable

	properties := gopter.NewProperties(parameters)

	heuristics := []treewidth.Heuristic{
		treewidth.NegativeIntersection,
		treewidth.Neutral,
		treewidth.LeastDifference,
		treewidth.NegativeIntersectionThenLeastDifference,
	}

	// Property 1: every decomposition of a random k-tree is valid, and with
	// the negative-intersection heuristic the width is exactly k (k-trees
	// are chordal, so a maximum-intersection spanning tree is already a
	// clique tree and filling adds nothing).
	properties.Property("k-tree decomposes to width k", prop.ForAll(
		func(k, extra int, seed int64) bool {
			n := k + 1 + extra
			g, err := ktree.GenerateKTree(k, n, rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			for _, method := range methods {
				width, td, err := treewidth.ComputeUpperBound(g, treewidth.WithMethod(method))
				if err != nil || width != k || td.Validate(g) != nil {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 5),
		gen.IntRange(1, 15),
		gen.Int64(),
	))

	// Property 2: random partial k-trees (possibly disconnected after edge
	// removal) pass the built-in validator for either method and every
	// heuristic, and the bound never falls below the MMD+ lower bound.
	properties.Property("partial k-tree decompositions are valid", prop.ForAll(
		func(k, extra, p int, seed int64) bool {
			n := k + 1 + extra
			g, err := ktree.GeneratePartialKTree(k, n, p, rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			lower := ktree.MaximumMinimumDegreePlus(g)
			for _, method := range methods {
				for _, h := range heuristics {
					width, err := treewidth.ComputeUpperBoundNotConnected(
						g,
						treewidth.WithMethod(method),
						treewidth.WithHeuristic(h),
						treewidth.WithCheckResult(),
					)
					if err != nil || width < lower {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(2, 4),
		gen.IntRange(1, 12),
		gen.IntRange(0, 40),
		gen.Int64(),
	))

	// Property 3: the parallel orchestrator agrees with the sequential one.
	properties.Property("parallel equals sequential", prop.ForAll(
		func(k, extra, p int, seed int64) bool {
			n := k + 1 + extra
			g, err := ktree.GeneratePartialKTree(k, n, p, rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			sequential, err := treewidth.ComputeUpperBoundNotConnected(g)
			if err != nil {
				return false
			}
			parallel, err := treewidth.ComputeUpperBoundNotConnected(g, treewidth.WithParallel())
			return err == nil && parallel == sequential
		},
		gen.IntRange(2, 4),
		gen.IntRange(1, 12),
		gen.IntRange(0, 60),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
