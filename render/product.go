package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mccis/product"
)

// WriteProductDOT writes the modular product h. Nodes are labeled "(u,v)"
// with the original vertex IDs; A edges are solid, B edges dashed. Vertices
// of clique, and the product edges among them, are highlighted.
//
// Errors: ErrGraphNil, ErrVertexOutOfRange, and write or encode failures.
func WriteProductDOT(w io.Writer, h *product.Graph, clique []int) error {
	if h == nil {
		return fmt.Errorf("WriteProductDOT: %w", ErrGraphNil)
	}
	n := h.Order()
	marked := make([]bool, n)
	for _, p := range clique {
		if p < 0 || p >= n {
			return fmt.Errorf("WriteProductDOT: %w: %d not in [0,%d)", ErrVertexOutOfRange, p, n)
		}
		marked[p] = true
	}

	nodes := make([]node, n)
	out := newDOTGraph("")
	for p := 0; p < n; p++ {
		nodes[p] = node{id: int64(p), label: h.Label(p)}
		if marked[p] {
			nodes[p].attrs = highlightNode
		}
		out.AddNode(nodes[p])
	}
	for _, e := range h.Edges() {
		a := attrs{{Key: "style", Value: edgeStyle(e.Type)}}
		if marked[e.U] && marked[e.V] {
			a = append(a, highlightEdge...)
		}
		out.SetEdge(edge{f: nodes[e.U], t: nodes[e.V], attrs: a})
	}

	return encode(w, "WriteProductDOT", out, "H")
}

func edgeStyle(t product.EdgeType) string {
	if t == product.EdgeB {
		return "dashed"
	}
	return "solid"
}
