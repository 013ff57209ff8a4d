package clique_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mccis/clique"
	"github.com/katalvlaran/mccis/core"
)

func TestExact_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		g1, g2 *core.Graph
		crit   clique.SizeCriterion
		score  int
		length int
	}{
		{"path3/path3 vertices", path3(t), path3(t), clique.Vertices, 3, 3},
		{"path3/path3 vertices+edges", path3(t), path3(t), clique.VerticesAndEdges, 5, 3},
		{"triangle/path3 vertices", triangle(t), path3(t), clique.Vertices, 2, 2},
		{"triangle/path3 vertices+edges", triangle(t), path3(t), clique.VerticesAndEdges, 3, 2},
		{"single/single", graphOf(t, 1), graphOf(t, 1), clique.Vertices, 1, 1},
		{"empty/path3", core.NewGraph(), path3(t), clique.Vertices, 0, 0},
		{"empty/empty", core.NewGraph(), core.NewGraph(), clique.VerticesAndEdges, 0, 0},
		{"K4/K3", complete(t, 4), complete(t, 3), clique.VerticesAndEdges, 6, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := mustProduct(t, tc.g1, tc.g2)
			res, err := clique.Exact(h, tc.crit)
			require.NoError(t, err)
			assert.True(t, res.Complete)
			assert.Equal(t, tc.score, res.Clique.Size)
			assert.Equal(t, tc.length, res.Clique.Len())
			requireValidMapping(t, h, tc.g1, tc.g2, res.Clique)
		})
	}
}

// TestExact_FirstFoundWins pins the tie-break: P3 onto itself maps identically.
func TestExact_FirstFoundWins(t *testing.T) {
	h := mustProduct(t, path3(t), path3(t))
	res, err := clique.Exact(h, clique.Vertices)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 8}, res.Clique.Vertices) // (0,0) (1,1) (2,2)

	h = mustProduct(t, triangle(t), path3(t))
	res, err = clique.Exact(h, clique.Vertices)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, res.Clique.Vertices) // (0,0) (1,1)
}

// TestExact_SkippedCandidateStaysEligible covers a candidate that has only a
// type-B edge to the current clique: it must remain available to siblings.
//
// Both graphs are the path 0–2–1. From (0,0) the candidates are (1,1), joined
// by B, and (2,2), joined by A. (1,1) is examined first and skipped; it joins
// only after (2,2) is added. Removing it on skip would cap the answer at 2.
func TestExact_SkippedCandidateStaysEligible(t *testing.T) {
	g := graphOf(t, 3, [2]int{0, 2}, [2]int{1, 2})
	h := mustProduct(t, g, g)

	res, err := clique.Exact(h, clique.Vertices)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Clique.Size)
	assert.Equal(t, []int{0, 8, 4}, res.Clique.Vertices)
	requireValidMapping(t, h, g, g, res.Clique)
}

// TestExact_MatchesBruteForce compares against exhaustive enumeration on
// small random pairs, with and without bound pruning.
func TestExact_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 40; trial++ {
		n1, n2 := 1+rng.Intn(4), 1+rng.Intn(3)
		g1 := randomGraph(t, rng, n1, 0.5)
		g2 := randomGraph(t, rng, n2, 0.5)
		h := mustProduct(t, g1, g2)

		for _, crit := range clique.Criteria() {
			want := bruteForce(h, crit)

			bounded, err := clique.Exact(h, crit)
			require.NoError(t, err)
			plain, err := clique.Exact(h, crit, clique.WithoutBound())
			require.NoError(t, err)

			assert.Equal(t, want, bounded.Clique.Size, "trial %d %s", trial, crit.Name())
			assert.Equal(t, plain.Clique, bounded.Clique, "trial %d %s", trial, crit.Name())
			assert.LessOrEqual(t, bounded.Nodes, plain.Nodes)
			requireValidMapping(t, h, g1, g2, bounded.Clique)
		}
	}
}

func TestExact_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g1 := randomGraph(t, rng, 5, 0.6)
	g2 := randomGraph(t, rng, 5, 0.6)
	h := mustProduct(t, g1, g2)

	first, err := clique.Exact(h, clique.VerticesAndEdges)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := clique.Exact(h, clique.VerticesAndEdges)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExact_Errors(t *testing.T) {
	h := mustProduct(t, path3(t), path3(t))

	_, err := clique.Exact(nil, clique.Vertices)
	require.ErrorIs(t, err, clique.ErrGraphNil)
	_, err = clique.Exact(h, nil)
	require.ErrorIs(t, err, clique.ErrUnknownCriterion)

	for _, opt := range []clique.Option{
		clique.WithNodeLimit(-1),
		clique.WithTimeLimit(-time.Second),
		clique.WithWorkers(-1),
	} {
		_, err = clique.Exact(h, clique.Vertices, opt)
		require.ErrorIs(t, err, clique.ErrOptionViolation)
		require.ErrorIs(t, clique.CheckOptions(clique.WithWorkers(2), opt), clique.ErrOptionViolation)
	}
	require.NoError(t, clique.CheckOptions(clique.WithNodeLimit(5), clique.WithTimeLimit(time.Second)))

	_, err = clique.ExactWithin(h, clique.Vertices, []int{0, 9})
	require.ErrorIs(t, err, clique.ErrInvalidCandidate)
	_, err = clique.ExactWithin(h, clique.Vertices, []int{4, 4})
	require.ErrorIs(t, err, clique.ErrInvalidCandidate)
	_, err = clique.ExactWithin(h, clique.Vertices, []int{-1})
	require.ErrorIs(t, err, clique.ErrInvalidCandidate)
}

func TestExactWithin_Subset(t *testing.T) {
	h := mustProduct(t, path3(t), path3(t))

	// (0,0) and (2,2) are joined only by a type-B edge: no connected pair.
	res, err := clique.ExactWithin(h, clique.Vertices, []int{0, 8})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Clique.Size)

	res, err = clique.ExactWithin(h, clique.Vertices, []int{8, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4}, res.Clique.Vertices)

	res, err = clique.ExactWithin(h, clique.Vertices, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Clique.Len())
	assert.True(t, res.Complete)
}

func TestExact_NodeLimit(t *testing.T) {
	h := mustProduct(t, complete(t, 4), complete(t, 4))

	res, err := clique.Exact(h, clique.Vertices, clique.WithNodeLimit(1))
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Equal(t, int64(1), res.Nodes)
	assert.Equal(t, 0, res.Clique.Len())

	res, err = clique.Exact(h, clique.Vertices, clique.WithNodeLimit(3))
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Equal(t, int64(3), res.Nodes)
	assert.Equal(t, 2, res.Clique.Size) // root → (0,0) → (0,0)(1,1)

	full, err := clique.Exact(h, clique.Vertices, clique.WithNodeLimit(1<<40))
	require.NoError(t, err)
	assert.True(t, full.Complete)
	assert.Equal(t, 4, full.Clique.Size)
}

func TestExact_TimeLimit(t *testing.T) {
	// K6×K6 without the bound has 13327 expansions, far past the first clock check.
	h := mustProduct(t, complete(t, 6), complete(t, 6))
	res, err := clique.Exact(h, clique.Vertices, clique.WithoutBound(), clique.WithTimeLimit(time.Nanosecond))
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Greater(t, res.Clique.Size, 0)
}

func TestExact_ContextCanceled(t *testing.T) {
	h := mustProduct(t, path3(t), path3(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := clique.Exact(h, clique.Vertices, clique.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Complete)
}

func TestExact_OnIncumbent(t *testing.T) {
	h := mustProduct(t, path3(t), path3(t))
	var scores []int
	res, err := clique.Exact(h, clique.VerticesAndEdges, clique.WithOnIncumbent(func(c clique.Clique) {
		scores = append(scores, c.Size)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, scores)
	assert.IsIncreasing(t, scores)
	assert.Equal(t, res.Clique.Size, scores[len(scores)-1])
}
