package clique_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mccis/clique"
	"github.com/katalvlaran/mccis/core"
	"github.com/katalvlaran/mccis/product"
)

// graphOf builds a graph on vertices "0".."n-1" (inserted in order) with the given edges.
func graphOf(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(strconv.Itoa(e[0]), strconv.Itoa(e[1])))
	}

	return g
}

func path3(t testing.TB) *core.Graph    { return graphOf(t, 3, [2]int{0, 1}, [2]int{1, 2}) }
func triangle(t testing.TB) *core.Graph { return graphOf(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}) }

// complete builds K_n.
func complete(t testing.TB, n int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return graphOf(t, n, edges...)
}

// randomGraph draws G(n, p) with vertices inserted in order.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return graphOf(t, n, edges...)
}

func mustProduct(t testing.TB, g1, g2 *core.Graph) *product.Graph {
	t.Helper()
	h, err := product.Build(g1, g2)
	require.NoError(t, err)

	return h
}

// aConnected reports whether vs is connected through type-A edges.
func aConnected(h *product.Graph, vs []int) bool {
	if len(vs) <= 1 {
		return true
	}
	seen := map[int]bool{vs[0]: true}
	stack := []int{vs[0]}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range vs {
			if !seen[w] && h.EdgeType(u, w) == product.EdgeA {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return len(seen) == len(vs)
}

// bruteForce scores every vertex subset of h and returns the best valid score.
// Only usable for small products.
func bruteForce(h *product.Graph, crit clique.SizeCriterion) int {
	n := h.Order()
	best := 0
	vs := make([]int, 0, n)
	for mask := 1; mask < 1<<n; mask++ {
		vs = vs[:0]
		for p := 0; p < n; p++ {
			if mask&(1<<p) != 0 {
				vs = append(vs, p)
			}
		}
		if len(vs) > h.MaxCliqueOrder() {
			continue
		}
		ok, aEdges := true, 0
		for i := 0; i < len(vs) && ok; i++ {
			for j := i + 1; j < len(vs); j++ {
				switch h.EdgeType(vs[i], vs[j]) {
				case product.EdgeNone:
					ok = false
				case product.EdgeA:
					aEdges++
				}
			}
		}
		if !ok || !aConnected(h, vs) {
			continue
		}
		score := len(vs)
		if crit == clique.VerticesAndEdges {
			score += aEdges
		}
		if score > best {
			best = score
		}
	}

	return best
}

// requireValidMapping checks that c maps an induced subgraph of g1 onto an
// isomorphic, connected induced subgraph of g2.
func requireValidMapping(t *testing.T, h *product.Graph, g1, g2 *core.Graph, c clique.Clique) {
	t.Helper()
	a1, a2 := g1.AdjacencyMatrix(), g2.AdjacencyMatrix()
	used1, used2 := map[int]bool{}, map[int]bool{}
	for _, p := range c.Vertices {
		v := h.Vertex(p)
		require.False(t, used1[v.G1], "G1 vertex %d mapped twice", v.G1)
		require.False(t, used2[v.G2], "G2 vertex %d mapped twice", v.G2)
		used1[v.G1], used2[v.G2] = true, true
	}
	for i, p := range c.Vertices {
		for _, q := range c.Vertices[i+1:] {
			vp, vq := h.Vertex(p), h.Vertex(q)
			require.Equal(t, a1[vp.G1][vq.G1], a2[vp.G2][vq.G2], "edge mismatch %d-%d", p, q)
		}
	}
	require.True(t, aConnected(h, c.Vertices), "disconnected clique %v", c.Vertices)
}
