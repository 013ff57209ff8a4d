// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every validator and reader returns one of these, wrapped with the
// operation tag; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned for empty input or ragged CSV rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that an adjacency matrix was not square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an adjacency entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: entry is not 0 or 1")

	// ErrNonZeroDiagonal signals a self-loop entry on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals A[i][j] != A[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf cell.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrParse signals a CSV cell that is not a number.
	ErrParse = errors.New("matrix: cannot parse cell")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrDuplicateID signals that an ID function produced the same ID twice.
	ErrDuplicateID = errors.New("matrix: duplicate vertex id")
)
