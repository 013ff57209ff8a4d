// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_tree.go - RandomTree(n): a uniformly random labeled tree,
// decoded from a random Prüfer sequence.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - n ≥ 3 requires an RNG (else ErrNeedRandSource); n ≤ 2 has a single tree.
//
// Complexity: O(n) decode after O(n) draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

const (
	methodRandomTree   = "RandomTree"
	minRandomTreeNodes = 1
)

// RandomTree returns a Constructor that builds a random tree on n vertices.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandomTreeNodes, ErrTooFewVertices)
		}
		if n > 2 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		ids, err := addVertices(g, methodRandomTree, n, cfg.idFn)
		if err != nil {
			return err
		}
		switch n {
		case 1:
			return nil
		case 2:
			return connect(g, methodRandomTree, ids[0], ids[1])
		}

		seq := make([]int, 0, n)
		for i := 0; i < n-2; i++ {
			seq = append(seq, cfg.rng.Intn(n))
		}
		for _, e := range decodePrufer(seq, n) {
			if err = connect(g, methodRandomTree, ids[e[0]], ids[e[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}

// decodePrufer turns a Prüfer sequence of length n-2 into the n-1 tree edges.
// Linear-time variant: ptr scans for the smallest leaf, and a freshly
// created leaf below ptr is consumed immediately.
func decodePrufer(seq []int, n int) [][2]int {
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, x := range seq {
		degree[x]++
	}

	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	edges := make([][2]int, 0, n-1)
	for _, x := range seq {
		edges = append(edges, [2]int{leaf, x})
		degree[x]--
		if degree[x] == 1 && x < ptr {
			leaf = x
			continue
		}
		ptr++
		for degree[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}

	return append(edges, [2]int{leaf, n - 1})
}
