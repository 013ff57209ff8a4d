// Package product builds the modular product of two undirected graphs.
//
// What
//
//   - The product H of G1 (n1 vertices) and G2 (n2 vertices) has one vertex per
//     pair (u, v), u ∈ G1, v ∈ G2, numbered row-major: p = index(u)·n2 + index(v).
//   - Two product vertices (x1,y1) and (x2,y2) with x1≠x2 and y1≠y2 are joined by
//     an edge of type A when x1–x2 ∈ E(G1) and y1–y2 ∈ E(G2), of type B when
//     both pairs are non-edges, and are not joined otherwise.
//   - Vertices sharing a coordinate are never joined, so every clique of H is an
//     injective partial mapping G1 → G2.
//
// Why
//
//	A clique of H is exactly a common induced subgraph of G1 and G2; type-A
//	edges carry the adjacency that keeps that subgraph connected.
//
// Determinism
//
//	Vertex numbering follows the input graphs' insertion order; Neighbors and
//	NeighborsA return indices ascending; Edges returns (U,V) pairs with U<V in
//	lexicographic order.
//
// Complexity (N = n1·n2)
//
//   - Build:  O(N²) time, O(N²) space for the dense edge-type table.
//   - EdgeType / HasEdge: O(1).
//
// Errors
//
//   - ErrGraphNil         if either input graph is nil.
//   - ErrProductTooLarge  if N exceeds the WithMaxOrder guard.
package product
