// SPDX-License-Identifier: MIT
// Package: builder
//
// generate.go - named graph kinds used by the benchmark harness and CLI.
//
// Every kind accepts any n ≥ 1 so a size sweep can start at 1:
//   - cycle with n < 3 falls back to the path P_n;
//   - star and bipartite with n == 1 are a single vertex;
//   - bipartite(n) is K_{⌈n/2⌉,⌊n/2⌋};
//   - random(n, p) is a connected G(n,p) (RandomConnected).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mccis/core"
)

// Kind names a graph family accepted by Generate.
type Kind string

// Supported kinds.
const (
	KindPath      Kind = "path"
	KindComplete  Kind = "complete"
	KindCycle     Kind = "cycle"
	KindTree      Kind = "tree"
	KindRandom    Kind = "random"
	KindBipartite Kind = "bipartite"
	KindStar      Kind = "star"
)

// DefaultEdgeProbability is the G(n,p) density used when a caller has no preference.
const DefaultEdgeProbability = 0.8

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPath, KindComplete, KindCycle, KindTree, KindRandom, KindBipartite, KindStar}
}

// ParseKind resolves an exact, case-sensitive kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Constructor returns the Constructor building kind k on n vertices.
// p is only consulted by KindRandom.
func (k Kind) Constructor(n int, p float64) (Constructor, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", k, n, ErrTooFewVertices)
	}
	switch k {
	case KindPath:
		return Path(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindCycle:
		if n < minCycleNodes {
			return Path(n), nil
		}
		return Cycle(n), nil
	case KindTree:
		return RandomTree(n), nil
	case KindRandom:
		return RandomConnected(n, p), nil
	case KindBipartite:
		if n == 1 {
			return Path(1), nil
		}
		return CompleteBipartite((n+1)/2, n/2), nil
	case KindStar:
		if n == 1 {
			return Path(1), nil
		}
		return Star(n), nil
	}

	return nil, fmt.Errorf("%q: %w", string(k), ErrUnknownKind)
}

// Generate builds a graph of the named kind on n vertices.
//
// Errors: ErrUnknownKind, plus the sentinels of the underlying constructor.
func Generate(kind string, n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	cons, err := k.Constructor(n, p)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return BuildGraph(opts, cons)
}
