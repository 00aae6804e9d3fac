// Package core provides the undirected, unweighted, simple graph that
// callers of the treewidth pipeline build their inputs with.
//
// What & Why
//
//   - The treewidth pipeline (package treewidth) consumes graphs through a
//     read-only capability: vertex enumeration, edge enumeration, and
//     neighbor queries. *core.Graph satisfies that capability directly and
//     is the representation used by the generators in package ktree and by
//     the test suites.
//
//   - The structure is intentionally minimal: no weights, no directedness,
//     no parallel edges, no self-loops. Treewidth is defined on simple
//     undirected graphs, and every feature beyond that would be dead policy.
//
// Guarantees
//
//   - Determinism: Vertices(), Edges(), and Neighbors() return sorted
//     copies, so every traversal over a fixed graph is repeatable.
//
//   - Concurrency: a single RWMutex guards the adjacency map; concurrent
//     readers never block each other, and getters hand out copies so no
//     caller can alias internal state.
//
//   - Idempotence: AddVertex and AddEdge are no-ops on duplicates, which
//     keeps random generators free of duplicate bookkeeping.
//
// Views
//
//   - Clone() deep-copies a graph; InducedSubgraph(keep) restricts it to a
//     vertex set. Both leave the source untouched; the component
//     orchestrator in package treewidth relies on induced subgraphs to
//     process connected components independently.
//
// Error Conditions
//
//	ErrEmptyVertexID  - empty vertex ID passed to AddVertex/AddEdge.
//	ErrSelfLoop       - AddEdge(v, v); simple graphs have no loops.
//	ErrVertexNotFound - query against a missing vertex.
//	ErrEdgeNotFound   - RemoveEdge on a missing edge.
package core
