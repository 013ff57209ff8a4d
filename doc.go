// Package mccis finds a Maximum Common Connected Induced Subgraph of two
// undirected graphs.
//
// The problem is reduced to a clique search on the modular product of the
// two inputs:
//
//	core/    : undirected simple graph with string IDs and stable indices
//	product/ : modular product, edges typed A (both adjacent) or B (both not)
//	clique/  : exact backtracking search and the partitioned approximation
//	bfs/     : index-based BFS used to grow approximation clusters
//	matrix/  : CSV adjacency matrices ↔ core graphs (gonum mat)
//	builder/ : deterministic fixture and benchmark graphs
//	render/  : Graphviz DOT output with the solution highlighted
//
// Find and FindMatrices are the entry points; Verify checks a Result
// independently of the search, and Result.WriteCSV persists it as two rows
// of matched vertex IDs.
//
// Quick start:
//
//	res, err := mccis.Find(ctx, g1, g2, mccis.DefaultOptions())
//	if err != nil { ... }
//	for _, p := range res.Pairs {
//		fmt.Println(p.G1, "↔", p.G2)
//	}
package mccis
