// Package core provides the minimal, thread-safe undirected Graph used as
// input to the common-subgraph search.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel edges.
//   - Vertices are non-empty string IDs kept in insertion order; the order
//     defines each vertex's index, which downstream packages (product,
//     matrix, render) use for deterministic enumeration and tie-breaking.
//   - Adjacency is stored per vertex index as a set of neighbor indices,
//     giving O(1) HasEdge and O(d log d) sorted neighbor queries.
//   - One sync.RWMutex guards the catalog; a Graph is safe for concurrent
//     readers and is treated as read-only while a search runs.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1), idempotent
//	HasVertex(id string) bool            // O(1)
//	Index(id string) (int, bool)         // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) error       // O(1), auto-adds endpoints
//	HasEdge(from, to string) bool        // O(1)
//
//	// Query
//	Vertices() []string                  // O(V), insertion order
//	Edges() []Edge                       // O(E log E), sorted by endpoint index
//	NeighborIDs(id string) ([]string, error) // O(d log d), sorted by index
//	InducedEdges(ids []string) []Edge    // O(k²)
//	AdjacencyMatrix() [][]bool           // O(V²) snapshot
//
//	// Counts & cloning
//	VertexCount() int, EdgeCount() int   // O(1)
//	Clone() *Graph                       // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
