// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves insertion order, so indices are identical on the copy.
// Concurrency:
//   - Read lock on the source while snapshotting; the source is not mutated.

package core

// Clone returns a deep copy of the Graph: vertices, order and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.ids)))
	clone.ids = append(clone.ids, g.ids...)
	for i, id := range g.ids {
		clone.index[id] = i
		nb := make(map[int]struct{}, len(g.adj[i]))
		for j := range g.adj[i] {
			nb[j] = struct{}{}
		}
		clone.adj = append(clone.adj, nb)
	}
	clone.edgeCount = g.edgeCount

	return clone
}
