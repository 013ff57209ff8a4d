// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One canonical place for adjacency checks; readers and converters
//     delegate here.
//
// Determinism & Performance:
//   - Checks are pure and allocate nothing beyond the error value.
//   - Cells are scanned row-major, so the first violation reported is the
//     one with the smallest (i, j).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil, non-empty and square.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return validatorErrorf("ValidateSquare", ErrBadShape)
	}
	if r != c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w: %d×%d", ErrNonSquare, r, c))
	}

	return nil
}

// ValidateAdjacency checks that m is a simple undirected adjacency matrix:
// square, every entry 0 or 1, zero diagonal, symmetric.
//
// Order of checks per cell (row-major): NaN/Inf → binary → diagonal → symmetry.
// Complexity: O(n²).
func ValidateAdjacency(m mat.Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateAdjacency", err)
	}
	n, _ := m.Dims()

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = m.At(i, j)
			switch {
			case math.IsNaN(x) || math.IsInf(x, 0):
				return validatorErrorf("ValidateAdjacency", fmt.Errorf("%w at (%d,%d)", ErrNaNInf, i, j))
			case x != 0 && x != 1:
				return validatorErrorf("ValidateAdjacency", fmt.Errorf("%w: %g at (%d,%d)", ErrNonBinary, x, i, j))
			case i == j && x != 0:
				return validatorErrorf("ValidateAdjacency", fmt.Errorf("%w at %d", ErrNonZeroDiagonal, i))
			case j > i && x != m.At(j, i):
				return validatorErrorf("ValidateAdjacency", fmt.Errorf("%w at (%d,%d)", ErrAsymmetry, i, j))
			}
		}
	}

	return nil
}
