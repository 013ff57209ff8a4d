// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); P_1 is a single vertex.
//   - Vertices idFn(0..n-1) in ascending order, edges (i-1)-i for i=1..n-1.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
