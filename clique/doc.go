// Package clique finds maximum cliques of a modular product graph under the
// connectivity constraint, which makes each clique a maximum common
// connected induced subgraph of the two input graphs.
//
// What
//
//   - Exact: depth-first backtracking over a shrinking candidate list with
//     deterministic, first-found tie-breaking; optional bound pruning that
//     never changes the answer.
//   - ExactWithin: the same search restricted to a candidate subset.
//   - Approx: Partition the product into type-A-connected clusters of at most
//     ⌈log2 N⌉ vertices (bfs with a visit cap), search each exactly, keep the best.
//   - SizeCriterion: Vertices (vertex count) or VerticesAndEdges (vertex count
//     plus induced type-A edges), chosen by ParseCriterion.
//
// Connectivity constraint
//
//	Every vertex added to a non-empty clique must have at least one type-A
//	edge to the clique. A type-A edge is an edge present in both input
//	graphs, so the selected subgraph stays connected on both sides.
//
// Determinism
//
//	Candidates are examined in ascending product index. Exact returns the
//	same clique on every run; Approx returns the same clique for any number
//	of workers.
//
// Cutoffs
//
//	WithTimeLimit, WithNodeLimit and WithContext stop the search early. The
//	best clique found so far is returned with Result.Complete == false;
//	cancellation also returns ctx.Err().
//
// Errors
//
//   - ErrGraphNil          if the product graph is nil.
//   - ErrUnknownCriterion  for an unknown tag or a nil criterion.
//   - ErrInvalidCandidate  for out-of-range or duplicate ExactWithin candidates.
//   - ErrOptionViolation   for negative limits or worker counts.
package clique
