// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach the method name and
// parameters via %w.
//
// Priority when several checks fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates the builder exhausted its attempts, or was
	// handed a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownKind indicates Generate received an unsupported graph kind.
	ErrUnknownKind = errors.New("builder: unknown graph kind")
)
