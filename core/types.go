// Package core defines the Graph and Edge types, sentinel errors,
// GraphOption and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered vertex pair. From always holds the endpoint with the
// lower insertion index, so two Edge values describing the same pair compare equal.
type Edge struct {
	// From is the endpoint that was inserted first.
	From string

	// To is the endpoint that was inserted second.
	To string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.ids = make([]string, 0, n)
			g.index = make(map[string]int, n)
			g.adj = make([]map[int]struct{}, 0, n)
		}
	}
}

// Graph is an undirected simple graph with string vertex IDs.
//
// ids holds vertex IDs in insertion order; index is its inverse.
// adj[i] is the neighbor set of the vertex with index i.
type Graph struct {
	mu sync.RWMutex // guards every field below

	ids       []string
	index     map[string]int
	adj       []map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
