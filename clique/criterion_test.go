package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mccis/clique"
)

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		tag  string
		want clique.SizeCriterion
		err  bool
	}{
		{"Vertices", clique.Vertices, false},
		{"VerticesAndEdges", clique.VerticesAndEdges, false},
		{"vertices", nil, true},
		{"VERTICES", nil, true},
		{" Vertices", nil, true},
		{"", nil, true},
		{"Edges", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			got, err := clique.ParseCriterion(tc.tag)
			if tc.err {
				require.ErrorIs(t, err, clique.ErrUnknownCriterion)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.tag, got.Name())
		})
	}
}

func TestCriterion_Expand(t *testing.T) {
	assert.Equal(t, 4, clique.Vertices.Expand(3, 2))
	assert.Equal(t, 6, clique.VerticesAndEdges.Expand(3, 2))
	assert.Equal(t, 1, clique.VerticesAndEdges.Expand(0, 0))
}

// TestCriterion_Bound checks the bound against the best possible growth:
// a clique of c vertices taking r more, each A-adjacent to all before it.
func TestCriterion_Bound(t *testing.T) {
	for c := 0; c < 5; c++ {
		for r := 0; r < 5; r++ {
			sizeV, sizeVE := c, c+c*(c-1)/2
			bestV, bestVE := sizeV, sizeVE
			for k := 0; k < r; k++ {
				bestV = clique.Vertices.Expand(bestV, c+k)
				bestVE = clique.VerticesAndEdges.Expand(bestVE, c+k)
			}
			assert.Equal(t, bestV, clique.Vertices.Bound(sizeV, c, r), "c=%d r=%d", c, r)
			assert.Equal(t, bestVE, clique.VerticesAndEdges.Bound(sizeVE, c, r), "c=%d r=%d", c, r)
		}
	}
}

func TestCriteria(t *testing.T) {
	names := []string{}
	for _, c := range clique.Criteria() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Vertices", "VerticesAndEdges"}, names)
}

func TestClique_ExpandDoesNotAlias(t *testing.T) {
	base := clique.Clique{}.Expand(3, 0, clique.Vertices)
	a := base.Expand(5, 1, clique.VerticesAndEdges)
	b := base.Expand(7, 0, clique.VerticesAndEdges)

	assert.Equal(t, []int{3}, base.Vertices)
	assert.Equal(t, []int{3, 5}, a.Vertices)
	assert.Equal(t, []int{3, 7}, b.Vertices)
	assert.Equal(t, 3, a.Size)
	assert.Equal(t, 2, b.Size)

	cl := a.Clone()
	cl.Vertices[0] = 99
	assert.Equal(t, 3, a.Vertices[0])
	assert.Equal(t, 2, a.Len())
}
