package mccis

import "errors"

var (
	// ErrGraphNil indicates a nil input graph.
	ErrGraphNil = errors.New("mccis: graph is nil")

	// ErrResultNil indicates a nil Result passed to Verify.
	ErrResultNil = errors.New("mccis: result is nil")

	// ErrUnknownStrategy indicates a strategy name other than "exact" or "approx".
	ErrUnknownStrategy = errors.New("mccis: unknown strategy")

	// ErrUnknownVertex indicates a pair naming a vertex absent from its graph.
	ErrUnknownVertex = errors.New("mccis: unknown vertex")

	// ErrNotInjective indicates a vertex matched more than once.
	ErrNotInjective = errors.New("mccis: mapping is not injective")

	// ErrNotIsomorphic indicates a pair of pairs whose adjacency differs
	// between the two graphs.
	ErrNotIsomorphic = errors.New("mccis: induced subgraphs are not isomorphic")

	// ErrDisconnected indicates the matched subgraph is not connected.
	ErrDisconnected = errors.New("mccis: common subgraph is disconnected")

	// ErrScoreMismatch indicates Result.Score disagrees with its pairs.
	ErrScoreMismatch = errors.New("mccis: score does not match pairs")

	// ErrBadPairsCSV indicates a result CSV that is not two rows of equal width.
	ErrBadPairsCSV = errors.New("mccis: malformed result csv")
)
