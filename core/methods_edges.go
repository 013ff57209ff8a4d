// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/InducedEdges,
//       plus the dense AdjacencyMatrix snapshot consumed by the product builder.
// Determinism:
//   - Edges() and InducedEdges() are ordered by (index(From), index(To)) asc.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects from and to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Lock, ensure both endpoints exist.
//  3. Reject an existing edge (simple graph).
//  4. Record the edge in both adjacency sets.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)
	if _, dup := g.adj[u][v]; dup {
		return fmt.Errorf("%w: %q-%q", ErrMultiEdgeNotAllowed, from, to)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether from and to are adjacent.
// Unknown or empty IDs report false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	_, ok = g.adj[u][v]

	return ok
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, ordered by endpoint index.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u := range g.adj {
		for _, v := range sortedKeys(g.adj[u]) {
			if v > u {
				out = append(out, Edge{From: g.ids[u], To: g.ids[v]})
			}
		}
	}

	return out
}

// InducedEdges returns the edges of the subgraph induced by ids, ordered by
// endpoint index. Unknown and duplicate IDs are ignored.
// Complexity: O(k log k + k²) for k = len(ids).
func (g *Graph) InducedEdges(ids []string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		i, ok := g.index[id]
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		idx = append(idx, i)
	}
	sort.Ints(idx)

	var out []Edge
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			if _, ok := g.adj[idx[a]][idx[b]]; ok {
				out = append(out, Edge{From: g.ids[idx[a]], To: g.ids[idx[b]]})
			}
		}
	}

	return out
}

// AdjacencyMatrix returns a dense V×V snapshot where m[i][j] reports whether
// the vertices with indices i and j are adjacent. The snapshot is detached:
// later mutations of g do not affect it.
// Complexity: O(V²) time and space.
func (g *Graph) AdjacencyMatrix() [][]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := len(g.ids)
	cells := make([]bool, n*n) // one backing array, row views below
	m := make([][]bool, n)
	for i := 0; i < n; i++ {
		m[i] = cells[i*n : (i+1)*n]
		for j := range g.adj[i] {
			m[i][j] = true
		}
	}

	return m
}

// sortedKeys returns the keys of s in ascending order.
func sortedKeys(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
