package render

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/mccis/core"
)

// WriteGraphDOT writes g as an undirected DOT graph. Vertices listed in
// highlight, and the edges they induce, are drawn in red. title becomes the
// graph label when non-empty.
//
// Errors: ErrGraphNil, ErrUnknownVertex, and write or encode failures.
func WriteGraphDOT(w io.Writer, g *core.Graph, highlight []string, title string) error {
	if g == nil {
		return fmt.Errorf("WriteGraphDOT: %w", ErrGraphNil)
	}
	marked := make(map[int]bool, len(highlight))
	for _, id := range highlight {
		i, ok := g.Index(id)
		if !ok {
			return fmt.Errorf("WriteGraphDOT: %w: %q", ErrUnknownVertex, id)
		}
		marked[i] = true
	}

	ids := g.Vertices()
	nodes := make([]node, len(ids))
	out := newDOTGraph(title)
	for i, id := range ids {
		nodes[i] = node{id: int64(i), label: id}
		if marked[i] {
			nodes[i].attrs = highlightNode
		}
		out.AddNode(nodes[i])
	}
	for i := range ids {
		for _, j := range g.Neighbors(i) {
			if j < i {
				continue
			}
			e := edge{f: nodes[i], t: nodes[j]}
			if marked[i] && marked[j] {
				e.attrs = highlightEdge
			}
			out.SetEdge(e)
		}
	}

	return encode(w, "WriteGraphDOT", out, "G")
}

// encode marshals g and writes the bytes followed by a newline.
func encode(w io.Writer, method string, g dotGraph, name string) error {
	b, err := dot.Marshal(g, name, "", "\t")
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
