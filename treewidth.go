// Public entry points: the connected-only computation and the
// component-orchestrated variant for arbitrary graphs.

package treewidth

import "sync"

// ComputeUpperBound computes an upper bound on the treewidth of the
// connected graph g using the clique-graph operator.
//
// The pipeline enumerates the maximal cliques of g, builds their
// intersection graph with heuristic edge weights, reduces it to a spanning
// tree, fills the bags to restore the running-intersection property (before
// or during tree construction, per the configured method), and evaluates
// the width of the resulting tree decomposition.
//
// Returns the width, and the tree decomposition for inspection. An empty
// graph yields width −1 with an empty decomposition, by convention.
//
// Error Conditions:
//   - ErrNilGraph        : g is nil.
//   - ErrNotConnected    : g has more than one connected component; use
//     ComputeUpperBoundNotConnected instead.
//   - ErrUnknownMethod, ErrNilHeuristic, ErrInvalidCliqueBound: option
//     violations.
//   - ErrNeighbors       : the capability failed a neighbor query.
//   - ErrVertexNotCovered, ErrEdgeNotCovered, ErrRunningIntersection:
//     validator failures when WithCheckResult() is set. These indicate a
//     heuristic or implementation bug, not a property of the input.
//
// Complexity: dominated by clique enumeration (worst case exponential in
// |V|) and the quadratic filling pass; see the individual stages.
func ComputeUpperBound(g Graph, opts ...Option) (int, *TreeDecomposition, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, nil, err
	}

	in, err := snapshot(g)
	if err != nil {
		return 0, nil, err
	}

	// Empty graph: trivial decomposition of width −1, not an error.
	if len(in.vertices) == 0 {
		return -1, &TreeDecomposition{}, nil
	}

	// Connected-only contract.
	if len(in.connectedComponents()) > 1 {
		return 0, nil, ErrNotConnected
	}

	td, err := computeComponent(in, o)
	if err != nil {
		return 0, nil, err
	}

	return td.Width(), td, nil
}

// ComputeUpperBoundNotConnected computes an upper bound on the treewidth of
// an arbitrary (possibly disconnected) graph g.
//
// The graph is partitioned into connected components; each component runs
// through its own pipeline instance, and the final width is the maximum
// over the per-component widths. Components share no structures, so with
// WithParallel() they are processed concurrently and combined only through
// the final max-reduction.
//
// A graph with zero vertices yields width −1 by convention.
//
// Error Conditions: as ComputeUpperBound, minus ErrNotConnected.
func ComputeUpperBoundNotConnected(g Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	in, err := snapshot(g)
	if err != nil {
		return 0, err
	}

	components := in.connectedComponents()
	o.Logger.Debug().Int("components", len(components)).Msg("orchestrating per-component pipelines")
	if len(components) == 0 {
		return -1, nil
	}

	if o.Parallel && len(components) > 1 {
		return maxWidthParallel(in, components, o)
	}

	width := -1
	for _, component := range components {
		td, err := computeComponent(in.induced(NewVertexSet(component...)), o)
		if err != nil {
			return 0, err
		}
		if w := td.Width(); w > width {
			width = w
		}
	}

	return width, nil
}

// maxWidthParallel runs one pipeline per component concurrently. Every
// pipeline owns its snapshot, cliques, and bags exclusively; the widths are
// combined by max after all goroutines finish, so no locking is needed
// beyond the join.
func maxWidthParallel(in *inputView, components [][]string, o Options) (int, error) {
	widths := make([]int, len(components))
	errs := make([]error, len(components))

	var wg sync.WaitGroup
	for i, component := range components {
		wg.Add(1)
		go func(i int, component []string) {
			defer wg.Done()
			td, err := computeComponent(in.induced(NewVertexSet(component...)), o)
			if err != nil {
				errs[i] = err

				return
			}
			widths[i] = td.Width()
		}(i, component)
	}
	wg.Wait()

	width := -1
	for i := range components {
		if errs[i] != nil {
			return 0, errs[i]
		}
		if widths[i] > width {
			width = widths[i]
		}
	}

	return width, nil
}

// computeComponent runs the full pipeline on one connected component:
// cliques → clique graph → spanning tree + filling → optional validation.
func computeComponent(in *inputView, o Options) (*TreeDecomposition, error) {
	// 1. Clique enumeration, bounded if requested.
	var (
		cliques []VertexSet
		err     error
	)
	if o.CliqueBound != 0 {
		cliques, err = in.maximalCliquesBounded(o.CliqueBound)
		if err != nil {
			return nil, err
		}
	} else {
		cliques = in.maximalCliques()
	}
	o.Logger.Debug().
		Int("vertices", len(in.vertices)).
		Int("cliques", len(cliques)).
		Msg("enumerated cliques")

	// 2. Intersection graph with heuristic weights.
	cg := buildCliqueGraph(cliques, o.Heuristic)

	// 3. Spanning tree selection and bag filling, per method.
	var td *TreeDecomposition
	switch o.Method {
	case MethodMSTAndFill:
		td = treeFromEdges(cg, kruskalSpanningTree(cg))
		fillBagsAlongPaths(td, o.Logger)
	case MethodFillWhilstMST:
		td = fillWhilstMST(cg, o.Heuristic, o.Logger)
	default:
		// buildOptions validated the method already.
		return nil, ErrUnknownMethod
	}

	// 4. Optional exhaustive validation.
	if o.CheckResult {
		if err = td.validate(in.vertices, in.edges); err != nil {
			return nil, err
		}
	}

	return td, nil
}
