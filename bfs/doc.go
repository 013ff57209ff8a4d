// Package bfs provides breadth-first search over any index-based Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices 0..Order()-1 in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (-1 if unreached)
//   - Parent: per-vertex predecessor in the BFS tree (-1 for start/unreached)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth (d>0) and MaxVisits (k>0) limits; 0 means "no limit".
//
// Why
//
//   - Unweighted shortest paths and reachability in O(V + E).
//   - Bounded, connected vertex clusters: the approximate clique search grows
//     each cluster with WithMaxVisits(k) over type-A product edges, filtered
//     to vertices not yet assigned to another cluster.
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.Neighbors lists them; both
//	core.Graph and product.Graph list them ascending, so the visit sequence
//	is fully reproducible.
//
// Complexity (V = Order(), E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithMaxVisits(4),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return !assigned[nbr] }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth or MaxVisits).
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
