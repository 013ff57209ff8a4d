// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is idFn(0); leaves idFn(1..n-1) are attached in ascending order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodStar, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
