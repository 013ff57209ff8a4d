// SPDX-License-Identifier: MIT
// Package matrix ingests, validates and exports graph adjacency matrices.
//
// Matrices are gonum mat values (*mat.Dense on the way in, mat.Matrix on
// the way out), which keeps CSV I/O and validation independent of the
// graph type.
//
//   - ReadCSV / ReadCSVFile parse comma-separated numeric rows.
//   - ValidateAdjacency enforces square, {0,1}, zero diagonal, symmetric.
//   - ToGraph / FromGraph convert to and from core.Graph, index for index.
//   - WriteCSV writes a matrix back in the same format.
//
// Errors are package sentinels (ErrNonSquare, ErrNonBinary,
// ErrNonZeroDiagonal, ErrAsymmetry, ...) wrapped with the operation name;
// match them with errors.Is.
package matrix
