// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point of the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - Functional options resolve into a builderConfig passed by value.
//   - Determinism: same options, seed and constructor order give the same
//     vertex insertion order and edge set.
//   - Constructors never panic; they return sentinel errors wrapped with
//     their method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

// Constructor mutates g using the resolved builderConfig.
// Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned at once;
// no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1) in ascending index order and returns the IDs.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds the edge u-v, tagging failures with the method name.
func connect(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
