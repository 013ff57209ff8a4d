package render

import "errors"

var (
	// ErrGraphNil indicates a nil graph argument.
	ErrGraphNil = errors.New("render: graph is nil")

	// ErrUnknownVertex indicates a highlighted ID absent from the graph.
	ErrUnknownVertex = errors.New("render: unknown vertex")

	// ErrVertexOutOfRange indicates a product index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("render: vertex out of range")
)
