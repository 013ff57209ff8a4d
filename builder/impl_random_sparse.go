// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor, the G(n,p) model.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs none.
//   - Pairs {i,j}, i<j, are tried in lexicographic order, one draw each, so a
//     fixed seed yields a fixed edge set.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/mccis/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkGnp(methodRandomSparse, n, p, cfg.rng); err != nil {
			return err
		}
		ids, err := addVertices(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}
		for _, e := range sampleGnp(n, p, cfg.rng) {
			if err = connect(g, methodRandomSparse, ids[e[0]], ids[e[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}

// checkGnp validates G(n,p) parameters in sentinel priority order.
func checkGnp(method string, n int, p float64, rng *rand.Rand) error {
	if n < minRandomSparseVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// sampleGnp draws the edge list of one G(n,p) sample as index pairs.
// rng may be nil only when p is 0 or 1.
func sampleGnp(n int, p float64, rng *rand.Rand) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == probMax:
				edges = append(edges, [2]int{i, j})
			case p == probMin:
			case rng.Float64() < p:
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges
}
