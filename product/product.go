package product

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

// Graph is the materialized modular product of two graphs. It is immutable
// after Build and safe for concurrent readers.
type Graph struct {
	n1, n2     int
	ids1, ids2 []string

	// types[p*order+q] classifies the pair (p,q); symmetric, zero diagonal.
	types []EdgeType
	order int

	nbrs  [][]int // all neighbors, ascending
	nbrsA [][]int // type-A neighbors, ascending

	counts [3]int // edge counts by EdgeType (EdgeNone unused)
}

// Build constructs the modular product of g1 and g2.
//
// Steps:
//  1. Validate inputs and options.
//  2. Snapshot both adjacency matrices (later mutations of g1/g2 are not observed).
//  3. Classify every unordered pair {p,q} of product vertices once and mirror it.
//
// Complexity: O((n1·n2)²) time and space.
func Build(g1, g2 *core.Graph, opts ...Option) (*Graph, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	a1, a2 := g1.AdjacencyMatrix(), g2.AdjacencyMatrix()
	n1, n2 := len(a1), len(a2)
	order := n1 * n2
	if o.MaxOrder > 0 && order > o.MaxOrder {
		return nil, fmt.Errorf("%w: %d×%d=%d vertices exceeds %d", ErrProductTooLarge, n1, n2, order, o.MaxOrder)
	}

	h := &Graph{
		n1:    n1,
		n2:    n2,
		ids1:  g1.Vertices(),
		ids2:  g2.Vertices(),
		order: order,
		types: make([]EdgeType, order*order),
		nbrs:  make([][]int, order),
		nbrsA: make([][]int, order),
	}

	var (
		p, q           int
		x1, y1, x2, y2 int
		t              EdgeType
	)
	for p = 0; p < order; p++ {
		x1, y1 = p/n2, p%n2
		for q = p + 1; q < order; q++ {
			x2, y2 = q/n2, q%n2
			// Shared coordinate: the mapping would not be injective.
			if x1 == x2 || y1 == y2 {
				continue
			}
			switch e1, e2 := a1[x1][x2], a2[y1][y2]; {
			case e1 && e2:
				t = EdgeA
			case !e1 && !e2:
				t = EdgeB
			default:
				continue // mixed adjacency breaks the isomorphism
			}
			h.types[p*order+q] = t
			h.types[q*order+p] = t
			h.nbrs[p] = append(h.nbrs[p], q)
			h.nbrs[q] = append(h.nbrs[q], p)
			if t == EdgeA {
				h.nbrsA[p] = append(h.nbrsA[p], q)
				h.nbrsA[q] = append(h.nbrsA[q], p)
			}
			h.counts[t]++
		}
	}

	return h, nil
}

// Order returns the number of product vertices n1·n2.
func (h *Graph) Order() int { return h.order }

// Dims returns the vertex counts of the two input graphs.
func (h *Graph) Dims() (n1, n2 int) { return h.n1, h.n2 }

// MaxCliqueOrder returns min(n1,n2): no injective mapping can be larger.
func (h *Graph) MaxCliqueOrder() int {
	if h.n1 < h.n2 {
		return h.n1
	}

	return h.n2
}

// Vertex decodes product index p into its pair of input-graph indices.
func (h *Graph) Vertex(p int) Vertex {
	return Vertex{G1: p / h.n2, G2: p % h.n2}
}

// Index encodes the pair (i,j) as a product index. It returns false when
// either coordinate is out of range.
func (h *Graph) Index(i, j int) (int, bool) {
	if i < 0 || i >= h.n1 || j < 0 || j >= h.n2 {
		return 0, false
	}

	return i*h.n2 + j, true
}

// EdgeType classifies the pair (p,q). Out-of-range indices and p==q yield EdgeNone.
// Complexity: O(1).
func (h *Graph) EdgeType(p, q int) EdgeType {
	if p < 0 || q < 0 || p >= h.order || q >= h.order {
		return EdgeNone
	}

	return h.types[p*h.order+q]
}

// HasEdge reports whether p and q are joined by an edge of either type.
func (h *Graph) HasEdge(p, q int) bool {
	return h.EdgeType(p, q) != EdgeNone
}

// Neighbors returns all neighbors of p in ascending order.
// The slice is shared with the graph and must not be modified.
func (h *Graph) Neighbors(p int) []int {
	if p < 0 || p >= h.order {
		return nil
	}

	return h.nbrs[p]
}

// NeighborsA returns the type-A neighbors of p in ascending order.
// The slice is shared with the graph and must not be modified.
func (h *Graph) NeighborsA(p int) []int {
	if p < 0 || p >= h.order {
		return nil
	}

	return h.nbrsA[p]
}

// CountEdges returns the number of edges of type t.
func (h *Graph) CountEdges(t EdgeType) int {
	if t != EdgeA && t != EdgeB {
		return 0
	}

	return h.counts[t]
}

// Edges returns every product edge once, ordered by (U,V).
// Complexity: O(E).
func (h *Graph) Edges() []Edge {
	out := make([]Edge, 0, h.counts[EdgeA]+h.counts[EdgeB])
	for p := 0; p < h.order; p++ {
		for _, q := range h.nbrs[p] {
			if q > p {
				out = append(out, Edge{U: p, V: q, Type: h.types[p*h.order+q]})
			}
		}
	}

	return out
}

// IDs returns the input-graph vertex IDs of product vertex p.
func (h *Graph) IDs(p int) (string, string) {
	v := h.Vertex(p)

	return h.ids1[v.G1], h.ids2[v.G2]
}

// Label renders product vertex p as "(u,v)" using input-graph IDs.
func (h *Graph) Label(p int) string {
	u, v := h.IDs(p)

	return "(" + u + "," + v + ")"
}
