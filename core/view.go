// File: view.go
// Role: Non-mutating graph views (full clone and induced subgraph).
// Determinism:
//   - Views copy under a read lock; the source graph is never mutated.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// Clone returns a deep copy of the graph.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id, neighbors := range g.adj {
		bucket := make(map[string]struct{}, len(neighbors))
		for nb := range neighbors {
			bucket[nb] = struct{}{}
		}
		out.adj[id] = bucket
	}
	out.edgeCount = g.edgeCount

	return out
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges
// whose endpoints are both kept. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func (g *Graph) InducedSubgraph(keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()

	// Copy only kept vertices.
	for id := range g.adj {
		if keep[id] {
			out.adj[id] = make(map[string]struct{})
		}
	}

	// Copy only edges whose endpoints are both kept.
	for u, neighbors := range g.adj {
		if !keep[u] {
			continue
		}
		for v := range neighbors {
			if !keep[v] {
				continue
			}
			out.adj[u][v] = struct{}{}
			// Count each undirected edge once.
			if u < v {
				out.edgeCount++
			}
		}
	}

	return out
}
