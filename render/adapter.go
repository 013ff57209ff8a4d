package render

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"
)

// attrs is a static attribute list.
type attrs []encoding.Attribute

func (a attrs) Attributes() []encoding.Attribute { return a }

// node is a gonum node with a DOT identifier and per-node attributes.
type node struct {
	id    int64
	label string
	attrs
}

func (n node) ID() int64     { return n.id }
func (n node) DOTID() string { return n.label }

// edge is an undirected gonum edge carrying DOT attributes.
type edge struct {
	f, t node
	attrs
}

func (e edge) From() graph.Node         { return e.f }
func (e edge) To() graph.Node           { return e.t }
func (e edge) ReversedEdge() graph.Edge { return edge{f: e.t, t: e.f, attrs: e.attrs} }

// dotGraph adds graph-wide attributes to a simple.UndirectedGraph.
type dotGraph struct {
	*simple.UndirectedGraph
	graphAttrs attrs
	nodeAttrs  attrs
	edgeAttrs  attrs
}

func (g dotGraph) DOTAttributers() (graphA, nodeA, edgeA encoding.Attributer) {
	return g.graphAttrs, g.nodeAttrs, g.edgeAttrs
}

func newDOTGraph(title string) dotGraph {
	g := dotGraph{UndirectedGraph: simple.NewUndirectedGraph()}
	if title != "" {
		g.graphAttrs = attrs{{Key: "label", Value: title}}
	}
	return g
}

var (
	highlightNode = attrs{
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: "mistyrose"},
		{Key: "color", Value: "red"},
	}
	highlightEdge = attrs{
		{Key: "color", Value: "red"},
		{Key: "penwidth", Value: "2"},
	}
)
