package core

import "sort"

// AddVertex inserts the vertex id into the graph.
// Adding an already-present vertex is a no-op.
//
// Error Conditions:
//   - ErrEmptyVertexID : if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddEdge inserts the undirected edge {u, v}, creating missing endpoints.
// Adding an already-present edge is a no-op, so builders and generators can
// emit pairs without duplicate bookkeeping.
//
// Error Conditions:
//   - ErrEmptyVertexID : if either endpoint ID is empty.
//   - ErrSelfLoop      : if u == v (simple graphs have no loops).
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)

	// Count the edge only on first insertion; the mirror entry follows suit.
	if _, dup := g.adj[u][v]; !dup {
		g.adj[u][v] = struct{}{}
		g.adj[v][u] = struct{}{}
		g.edgeCount++
	}

	return nil
}

// RemoveEdge deletes the undirected edge {u, v}.
//
// Error Conditions:
//   - ErrEdgeNotFound : if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--

	return nil
}

// RemoveVertex deletes the vertex id and every edge incident to it.
//
// Error Conditions:
//   - ErrVertexNotFound : if the vertex does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	neighbors, ok := g.adj[id]
	if !ok {
		return ErrVertexNotFound
	}
	for nb := range neighbors {
		delete(g.adj[nb], id)
		g.edgeCount--
	}
	delete(g.adj, id)

	return nil
}

// HasVertex reports whether the vertex id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in canonical orientation (U < V), sorted by (U, V).
// Each undirected edge appears exactly once.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for u, neighbors := range g.adj {
		for v := range neighbors {
			// Emit each unordered pair once, from its smaller endpoint.
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return edges
}

// Neighbors returns the IDs adjacent to id in ascending order.
//
// Error Conditions:
//   - ErrVertexNotFound : if the vertex does not exist.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(neighbors))
	for nb := range neighbors {
		ids = append(ids, nb)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges incident to id.
//
// Error Conditions:
//   - ErrVertexNotFound : if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(neighbors), nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ensureVertex registers id in the adjacency map. Caller must hold g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]struct{})
	}
}
