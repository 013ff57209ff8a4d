package product

import (
	"errors"
	"fmt"
)

// Sentinel errors for product construction.
var (
	// ErrGraphNil is returned if either input graph is nil.
	ErrGraphNil = errors.New("product: graph is nil")

	// ErrProductTooLarge is returned when n1·n2 exceeds the configured MaxOrder.
	ErrProductTooLarge = errors.New("product: product graph too large")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("product: invalid option supplied")
)

// EdgeType classifies a pair of product vertices.
type EdgeType uint8

const (
	// EdgeNone marks a non-adjacent pair (shared coordinate or mixed adjacency).
	EdgeNone EdgeType = iota
	// EdgeA marks a pair whose coordinates are adjacent in both input graphs.
	EdgeA
	// EdgeB marks a pair whose coordinates are non-adjacent in both input graphs.
	EdgeB
)

// String renders the edge type tag.
func (t EdgeType) String() string {
	switch t {
	case EdgeA:
		return "A"
	case EdgeB:
		return "B"
	default:
		return "-"
	}
}

// Vertex is a product vertex: a pair of vertex indices, one per input graph.
type Vertex struct {
	G1 int
	G2 int
}

// Edge is a product edge with U < V.
type Edge struct {
	U, V int
	Type EdgeType
}

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// MaxOrder, if > 0, rejects products with more vertices.
	MaxOrder int

	err error
}

// DefaultOptions returns Options with no size guard.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxOrder rejects products with more than n vertices.
//
//	n > 0: guard enabled
//	n == 0: no guard
//	n < 0: invalid option → ErrOptionViolation
func WithMaxOrder(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxOrder cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxOrder = n
	}
}
