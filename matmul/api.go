// SPDX-License-Identifier: MIT
// Package matmul — public facades.
//
// Each facade builds a default Engine over the borrowed pool and delegates;
// no multiplication logic lives here.

package matmul

import (
	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/workerpool"
)

// Multiply validates ms and returns their product, computed on pool.
// It fails fast with ErrShapeMismatch before any task is submitted.
func Multiply(pool workerpool.Submitter, ms ...matrix.Matrix) (matrix.Matrix, error) {
	e, err := New(pool)
	if err != nil {
		return nil, matmulErrorf("Multiply", err)
	}

	return e.MultiplySequence(ms...)
}

// MultiplyPair returns a·b computed on pool. Unlike Multiply it does not
// validate shapes first.
func MultiplyPair(pool workerpool.Submitter, a, b matrix.Matrix) (matrix.Matrix, error) {
	e, err := New(pool)
	if err != nil {
		return nil, matmulErrorf("MultiplyPair", err)
	}

	return e.MultiplyPair(a, b)
}
