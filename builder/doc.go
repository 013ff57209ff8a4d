// Package builder generates deterministic fixture graphs for tests,
// benchmarks and the command line.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        applies Constructors in order to a fresh core.Graph.
//     – BuilderOption:     mutates the internal builderConfig before use.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Complete, Star, CompleteBipartite.
//     – RandomSparse:      G(n,p).
//     – RandomConnected:   G(n,p) resampled until connected.
//     – RandomTree:        uniform labeled tree via a random Prüfer sequence.
//   - Named kinds:
//     – Generate / ParseKind / Kinds for "path", "complete", "cycle", "tree",
//     "random", "bipartite" and "star".
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   spreadsheet columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//
// Guarantees:
//
//   - Vertices are inserted in ascending index order, so the insertion index of
//     idFn(i) is i for a single-constructor build.
//   - Stochastic constructors draw only from the configured RNG; WithSeed
//     makes every build reproducible.
//   - Invalid option arguments panic in the option constructor; invalid build
//     parameters are returned as wrapped sentinel errors.
package builder
