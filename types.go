// Configuration options, sentinel errors, and the read-only graph
// capability consumed by the pipeline.

package treewidth

import (
	"errors"

	"github.com/katalvlaran/treewidth/core"
	"github.com/rs/zerolog"
)

// Sentinel errors for the treewidth pipeline.
var (
	// ErrNilGraph indicates that a nil graph capability was passed in.
	ErrNilGraph = errors.New("treewidth: nil graph")

	// ErrNotConnected indicates that ComputeUpperBound received a graph with
	// more than one connected component. Use ComputeUpperBoundNotConnected.
	ErrNotConnected = errors.New("treewidth: graph is not connected")

	// ErrNeighbors indicates that the graph capability failed a neighbor query.
	ErrNeighbors = errors.New("treewidth: neighbor query failed")

	// ErrUnknownMethod indicates an unrecognized computation method name.
	ErrUnknownMethod = errors.New("treewidth: unknown computation method")

	// ErrNilHeuristic indicates that WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("treewidth: nil heuristic")

	// ErrInvalidCliqueBound indicates a clique bound that resolves below 2.
	ErrInvalidCliqueBound = errors.New("treewidth: invalid clique bound")

	// ErrVertexNotCovered indicates a decomposition whose bags miss a vertex
	// of the input graph (tree decomposition property 1).
	ErrVertexNotCovered = errors.New("treewidth: vertex not covered by any bag")

	// ErrEdgeNotCovered indicates an input edge whose endpoints never share a
	// bag (tree decomposition property 2).
	ErrEdgeNotCovered = errors.New("treewidth: edge not covered by any bag")

	// ErrRunningIntersection indicates a vertex whose bags do not induce a
	// connected subtree (tree decomposition property 3).
	ErrRunningIntersection = errors.New("treewidth: running intersection violated")
)

// Graph is the read-only capability the pipeline consumes. It is satisfied
// by *core.Graph; any graph representation exposing vertex enumeration, edge
// enumeration, and neighbor queries can be adapted to it. The pipeline never
// mutates the underlying graph.
type Graph interface {
	// Vertices returns all vertex IDs. Order need not be sorted; the
	// pipeline sorts its own snapshot for determinism.
	Vertices() []string

	// Edges returns every undirected edge once, in any orientation.
	Edges() []core.Edge

	// Neighbors returns the IDs adjacent to id, or an error if id is absent.
	Neighbors(id string) ([]string, error)

	// HasVertex reports whether id is a vertex of the graph.
	HasVertex(id string) bool

	// VertexCount returns the number of vertices.
	VertexCount() int
}

// MethodMSTAndFill selects the two-phase strategy: a minimum spanning tree of
// the clique graph is constructed first (Kruskal over heuristic weights), and
// bags are filled up afterwards in a separate pass.
const MethodMSTAndFill = "mst+fill"

// MethodFillWhilstMST selects the interleaved strategy: the spanning tree is
// grown incrementally (Prim-style), and bags are filled immediately after
// each attachment, so later heuristic evaluations observe already-grown bags.
const MethodFillWhilstMST = "fill-whilst-mst"

// Options configures a treewidth upper-bound computation.
// Use DefaultOptions() to get the default setup (two-phase method with the
// negative-intersection heuristic).
//
// Fields:
//
//	Method      string    — MethodMSTAndFill or MethodFillWhilstMST.
//	Heuristic   Heuristic — clique-pair scoring function for edge weights.
//	CheckResult bool      — validate the decomposition before returning.
//	CliqueBound int       — 0 disables bounding; see WithCliqueBound.
//	Parallel    bool      — process connected components concurrently.
//	Logger      zerolog.Logger — pipeline trace sink; Nop by default.
type Options struct {
	// Method selects when bag filling runs relative to edge selection.
	Method string

	// Heuristic scores clique pairs; lower weights are preferred by the
	// spanning tree selector.
	Heuristic Heuristic

	// CheckResult enables the decomposition validator; on violation the
	// computation fails with a descriptive error instead of returning a width.
	CheckResult bool

	// CliqueBound, when non-zero, replaces maximal-clique enumeration with
	// the bounded variant (see MaximalCliquesBounded).
	CliqueBound int

	// Parallel lets ComputeUpperBoundNotConnected run one pipeline per
	// connected component concurrently. Components share no state, so the
	// only synchronization is the final max-reduction over widths.
	Parallel bool

	// Logger receives pipeline traces (clique counts, fill progress).
	Logger zerolog.Logger

	// err records the first option violation for reporting at compute time.
	err error
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the computation Method.
// Allowed values: MethodMSTAndFill, MethodFillWhilstMST.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithHeuristic returns an Option that sets the edge weight heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = ErrNilHeuristic

			return
		}
		o.Heuristic = h
	}
}

// WithCheckResult returns an Option that enables exhaustive validation of
// the computed tree decomposition. This is a debugging aid: it at least
// doubles the running time and is not part of the hot path.
func WithCheckResult() Option {
	return func(o *Options) {
		o.CheckResult = true
	}
}

// WithCliqueBound returns an Option that bounds clique sizes during
// enumeration. A positive k keeps maximal cliques of size < k and every
// k-subset of larger maximal cliques; a negative k is resolved as k + ω(G),
// where ω(G) is the size of a maximum clique. A bound resolving below 2 is
// rejected with ErrInvalidCliqueBound, since singleton bags can never cover
// an edge.
func WithCliqueBound(k int) Option {
	return func(o *Options) {
		o.CliqueBound = k
	}
}

// WithParallel returns an Option that enables concurrent per-component
// pipelines in ComputeUpperBoundNotConnected. Ignored by ComputeUpperBound,
// which operates on a single component by contract.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// WithLogger returns an Option that sets the trace logger for the pipeline.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns Options initialized to the canonical setup:
//
//	– Method      = MethodMSTAndFill
//	– Heuristic   = NegativeIntersection
//	– CheckResult = false
//	– CliqueBound = 0 (disabled)
//	– Parallel    = false
//	– Logger      = zerolog.Nop()
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method:    MethodMSTAndFill,
		Heuristic: NegativeIntersection,
		Logger:    zerolog.Nop(),
	}
}

// buildOptions folds caller Options over the defaults and validates them.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Method != MethodMSTAndFill && o.Method != MethodFillWhilstMST {
		return o, ErrUnknownMethod
	}

	return o, nil
}
