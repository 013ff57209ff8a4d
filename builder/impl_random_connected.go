// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_connected.go - RandomConnected(n, p): G(n,p) resampled until
// the sample is connected.
//
// Contract:
//   - Parameter checks as RandomSparse.
//   - At most MaxConnectedAttempts samples are drawn; after that the
//     constructor fails with ErrConstructFailed and g is left untouched.
//   - p == 0 with n > 1 fails at once, since no sample can be connected.
//   - Connectivity is checked with a BFS from index 0 over a scratch graph.
//
// Complexity: O(attempts·n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mccis/bfs"
	"github.com/katalvlaran/mccis/core"
)

const methodRandomConnected = "RandomConnected"

// MaxConnectedAttempts bounds the number of G(n,p) samples RandomConnected draws.
const MaxConnectedAttempts = 1000

// RandomConnected returns a Constructor that samples a connected G(n,p).
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkGnp(methodRandomConnected, n, p, cfg.rng); err != nil {
			return err
		}
		if n > 1 && p == probMin {
			return fmt.Errorf("%s: n=%d, p=0: %w", methodRandomConnected, n, ErrConstructFailed)
		}

		for attempt := 0; attempt < MaxConnectedAttempts; attempt++ {
			edges := sampleGnp(n, p, cfg.rng)
			ok, err := connectedSample(n, edges)
			if err != nil {
				return fmt.Errorf("%s: %w", methodRandomConnected, err)
			}
			if !ok {
				continue
			}
			ids, err := addVertices(g, methodRandomConnected, n, cfg.idFn)
			if err != nil {
				return err
			}
			for _, e := range edges {
				if err = connect(g, methodRandomConnected, ids[e[0]], ids[e[1]]); err != nil {
					return err
				}
			}
			return nil
		}

		return fmt.Errorf("%s: no connected sample in %d attempts (n=%d, p=%g): %w",
			methodRandomConnected, MaxConnectedAttempts, n, p, ErrConstructFailed)
	}
}

// connectedSample reports whether the index edge list spans all n vertices.
func connectedSample(n int, edges [][2]int) (bool, error) {
	scratch := core.NewGraph(core.WithCapacity(n))
	ids, err := addVertices(scratch, methodRandomConnected, n, DefaultIDFn)
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		if err = scratch.AddEdge(ids[e[0]], ids[e[1]]); err != nil {
			return false, err
		}
	}
	res, err := bfs.BFS(scratch, 0)
	if err != nil {
		return false, err
	}

	return len(res.Order) == n, nil
}
