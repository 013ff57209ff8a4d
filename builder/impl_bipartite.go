// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bipartite.go - CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs "<leftPrefix><i>", then right IDs "<rightPrefix><j>"; the
//     ID scheme option does not apply here.
//   - Cross edges emitted with i ascending, then j ascending.
//
// Complexity: O(n1·n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left, err := addVertices(g, methodCompleteBipartite, n1, SymbolNumberIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addVertices(g, methodCompleteBipartite, n2, SymbolNumberIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = connect(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
