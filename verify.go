package mccis

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/mccis/clique"
	"github.com/katalvlaran/mccis/core"
)

// Verify checks res against g1 and g2 without trusting the search:
//   - every pair names existing vertices (ErrUnknownVertex);
//   - no vertex is matched twice (ErrNotInjective);
//   - for every two pairs, adjacency in g1 equals adjacency in g2
//     (ErrNotIsomorphic);
//   - the matched subgraph of g1 is connected (ErrDisconnected);
//   - Score equals the criterion value of the pairs, when Criterion is set
//     (ErrScoreMismatch).
//
// An empty result is valid. Complexity: O(k²) for k pairs.
func Verify(g1, g2 *core.Graph, res *Result) error {
	if g1 == nil || g2 == nil {
		return fmt.Errorf("Verify: %w", ErrGraphNil)
	}
	if res == nil {
		return fmt.Errorf("Verify: %w", ErrResultNil)
	}

	seen1 := make(map[string]bool, len(res.Pairs))
	seen2 := make(map[string]bool, len(res.Pairs))
	for _, p := range res.Pairs {
		if !g1.HasVertex(p.G1) {
			return fmt.Errorf("Verify: %w: %q in G1", ErrUnknownVertex, p.G1)
		}
		if !g2.HasVertex(p.G2) {
			return fmt.Errorf("Verify: %w: %q in G2", ErrUnknownVertex, p.G2)
		}
		if seen1[p.G1] || seen2[p.G2] {
			return fmt.Errorf("Verify: %w: (%s,%s)", ErrNotInjective, p.G1, p.G2)
		}
		seen1[p.G1], seen2[p.G2] = true, true
	}

	induced := simple.NewUndirectedGraph()
	for i := range res.Pairs {
		induced.AddNode(simple.Node(i))
	}
	edges := 0
	for i, a := range res.Pairs {
		for j := i + 1; j < len(res.Pairs); j++ {
			b := res.Pairs[j]
			adj1, adj2 := g1.HasEdge(a.G1, b.G1), g2.HasEdge(a.G2, b.G2)
			if adj1 != adj2 {
				return fmt.Errorf("Verify: %w: %s-%s vs %s-%s", ErrNotIsomorphic, a.G1, b.G1, a.G2, b.G2)
			}
			if adj1 {
				induced.SetEdge(induced.NewEdge(simple.Node(i), simple.Node(j)))
				edges++
			}
		}
	}
	if len(res.Pairs) > 1 {
		if cc := topo.ConnectedComponents(induced); len(cc) > 1 {
			return fmt.Errorf("Verify: %w: %d components", ErrDisconnected, len(cc))
		}
	}

	if res.Criterion != "" {
		want := len(res.Pairs)
		if res.Criterion == clique.TagVerticesAndEdges {
			want += edges
		}
		if res.Score != want {
			return fmt.Errorf("Verify: %w: score %d, pairs give %d", ErrScoreMismatch, res.Score, want)
		}
	}

	return nil
}
