// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; Index(id) is the position.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and returns its index. Caller holds g.mu.
func (g *Graph) addVertexLocked(id string) int {
	if i, ok := g.index[id]; ok {
		return i // no-op for existing vertex
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = i
	g.adj = append(g.adj, make(map[int]struct{}))

	return i
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Index returns the insertion index of id.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// NeighborIDs returns the IDs adjacent to id, ordered by insertion index.
// Returns ErrEmptyVertexID or ErrVertexNotFound for invalid input.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := sortedKeys(g.adj[i])
	out := make([]string, len(nbrs))
	for k, j := range nbrs {
		out[k] = g.ids[j]
	}

	return out, nil
}

// Degree returns the number of neighbors of id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adj[i]), nil
}

// Order returns |V|. Together with Neighbors it lets index-based
// traversals (bfs.Graph) walk a core.Graph directly.
func (g *Graph) Order() int { return g.VertexCount() }

// Neighbors returns the indices adjacent to vertex index i in ascending order,
// or nil if i is out of range.
// Complexity: O(d log d).
func (g *Graph) Neighbors(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.adj) {
		return nil
	}

	return sortedKeys(g.adj[i])
}
