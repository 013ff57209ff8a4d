// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Convert between validated adjacency matrices and core.Graph.
//
// Contract:
//   - Row/column i becomes the i-th inserted vertex, so matrix indices and
//     graph indices coincide in both directions.

package matrix

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mccis/core"
)

// DefaultID names vertex i by its decimal index, as the CSV inputs do.
func DefaultID(i int) string { return strconv.Itoa(i) }

// ToGraph validates m with ValidateAdjacency and builds the graph it
// describes. idFn names vertex i; nil selects DefaultID.
//
// Errors: any ValidateAdjacency sentinel, ErrDuplicateID, core errors.
// Complexity: O(n²).
func ToGraph(m mat.Matrix, idFn func(int) string) (*core.Graph, error) {
	if err := ValidateAdjacency(m); err != nil {
		return nil, fmt.Errorf("ToGraph: %w", err)
	}
	if idFn == nil {
		idFn = DefaultID
	}
	n, _ := m.Dims()

	g := core.NewGraph(core.WithCapacity(n))
	ids := make([]string, n)
	var i, j int
	for i = 0; i < n; i++ {
		ids[i] = idFn(i)
		if g.HasVertex(ids[i]) {
			return nil, fmt.Errorf("ToGraph: %w: %q", ErrDuplicateID, ids[i])
		}
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("ToGraph: vertex %d: %w", i, err)
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.At(i, j) == 0 {
				continue
			}
			if err := g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("ToGraph: edge (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// FromGraph returns the 0/1 adjacency matrix of g in insertion order.
// An empty graph yields an empty (0×0) matrix.
//
// Complexity: O(n²).
func FromGraph(g *core.Graph) (*mat.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrGraphNil)
	}
	adj := g.AdjacencyMatrix()
	n := len(adj)
	if n == 0 {
		return &mat.Dense{}, nil
	}
	m := mat.NewDense(n, n, nil)
	for i, row := range adj {
		for j, ok := range row {
			if ok {
				m.Set(i, j, 1)
			}
		}
	}

	return m, nil
}
