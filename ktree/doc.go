// Package ktree generates k-trees and partial k-trees — the standard
// benchmark graphs for treewidth heuristics — and provides the MMD+
// (maximum minimum degree plus) lower-bound heuristic used to certify them.
//
// What & Why
//
//   - What is a k-tree?
//     A k-tree is built from a complete graph on k vertices by repeatedly
//     adding a new vertex adjacent to all members of some existing k-clique.
//     Every k-tree on n > k vertices has treewidth exactly k and exactly
//     k·(k−1)/2 + k·(n−k) edges, which makes k-trees ideal ground truth
//     for upper-bound heuristics.
//
//   - What is a partial k-tree?
//     Any subgraph of a k-tree. Removing edges can only lower the
//     treewidth, so a partial k-tree has treewidth at most k. The
//     generator removes a chosen percentage of edges at random.
//
//   - Why MMD+?
//     The maximum minimum degree heuristic with least-common-neighbour
//     contraction computes a lower bound on treewidth. When a generated
//     partial k-tree scores an MMD+ of exactly k, its treewidth is pinned
//     to k from both sides, giving a test instance with known treewidth.
//
// Generators
//
//   - GenerateKTree(k, n, rng)           — a k-tree on n vertices.
//   - GeneratePartialKTree(k, n, p, rng) — k-tree minus p percent of edges.
//   - GeneratePartialKTreeGuaranteed(k, n, p, rng) — retries until MMD+
//     certifies treewidth exactly k. May loop for a long time for
//     adversarial (k, n, p) combinations; the randomness offers no bound.
//
// All generators take an explicit *rand.Rand so callers control seeding:
// a fixed seed reproduces the exact same graph.
//
// Error Conditions
//
//   - ErrInvalidK  — k < 1.
//   - ErrKExceedsN — k > n; no k-tree on fewer than k vertices exists.
//
// For examples of usage, see the example and test files in this package.
package ktree
