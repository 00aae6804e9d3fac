// Built-in edge weight heuristics for the clique graph. Each heuristic
// scores a pair of cliques; the spanning tree selector minimizes total
// weight, so lower scores mark preferred edges.

package treewidth

// Heuristic scores a pair of cliques given their (possibly empty)
// intersection. The spanning tree selector picks minimum-weight edges, so a
// heuristic expresses preference by returning smaller values for edges it
// wants selected. Implementations must be pure: same inputs, same score.
//
// In the interleaved computation method the arguments are the current,
// possibly already-grown bags rather than the original cliques, so a
// heuristic may observe filling progress.
type Heuristic func(a, b, intersection VertexSet) int64

// NegativeIntersection returns -|a ∩ b|.
//
// This is the canonical heuristic: minimizing it makes the spanning tree
// prefer edges with the largest intersections, which minimizes the filling
// work afterwards and keeps the resulting bags small.
func NegativeIntersection(_, _, intersection VertexSet) int64 {
	return -int64(intersection.Len())
}

// PositiveIntersection returns |a ∩ b|.
func PositiveIntersection(_, _, intersection VertexSet) int64 {
	return int64(intersection.Len())
}

// Neutral returns 0 for every pair, reducing the spanning tree selection to
// pure enumeration-order tie-breaking. Useful as a baseline in experiments.
func Neutral(_, _, _ VertexSet) int64 { return 0 }

// DisjointUnion returns |a| + |b|, the cardinality of the disjoint union.
func DisjointUnion(a, b, _ VertexSet) int64 {
	return int64(a.Len() + b.Len())
}

// Union returns |a ∪ b| = |a| + |b| - |a ∩ b|.
func Union(a, b, intersection VertexSet) int64 {
	return int64(a.Len() + b.Len() - intersection.Len())
}

// LeastDifference returns |a △ b|, the cardinality of the symmetric
// difference: |a| + |b| - 2·|a ∩ b|.
func LeastDifference(a, b, intersection VertexSet) int64 {
	return int64(a.Len() + b.Len() - 2*intersection.Len())
}

// NegativeIntersectionThenLeastDifference orders pairs lexicographically by
// (NegativeIntersection, LeastDifference).
func NegativeIntersectionThenLeastDifference(a, b, intersection VertexSet) int64 {
	return packLexicographic(
		NegativeIntersection(a, b, intersection),
		LeastDifference(a, b, intersection),
	)
}

// LeastDifferenceThenNegativeIntersection orders pairs lexicographically by
// (LeastDifference, NegativeIntersection).
func LeastDifferenceThenNegativeIntersection(a, b, intersection VertexSet) int64 {
	return packLexicographic(
		LeastDifference(a, b, intersection),
		NegativeIntersection(a, b, intersection),
	)
}

// packLexicographic folds a (major, minor) weight pair into a single int64
// whose natural ordering equals the lexicographic ordering of the pair.
// Both components are bag-cardinality deltas, so |component| < 2^31 always
// holds and a major difference of 1 (scaled by 2^32) dominates any minor
// difference.
func packLexicographic(major, minor int64) int64 {
	return major<<32 + minor
}
