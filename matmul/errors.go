// SPDX-License-Identifier: MIT
// Package matmul: sentinel error set.
// Every message is prefixed with "matmul: ". Call sites add context with
// matmulErrorf; callers match with errors.Is.

package matmul

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a sequence fails Validate.
	// No multiplication work has been done when it is returned.
	ErrShapeMismatch = errors.New("matmul: matrices could not be multiplied")

	// ErrEmptySequence is returned when a sequence holds no matrices.
	ErrEmptySequence = errors.New("matmul: empty matrix sequence")

	// ErrMalformedTask signals a cell task whose row and column lengths differ.
	// It indicates a generator/validator disagreement, not bad user input.
	ErrMalformedTask = errors.New("matmul: row and column lengths are not equal")

	// ErrWorkerFailure wraps any failure surfaced while awaiting a cell task.
	// The task's own error stays reachable through errors.Is/As.
	ErrWorkerFailure = errors.New("matmul: worker failure")

	// ErrResultLength signals that an assembler received a result count
	// different from rows*cols.
	ErrResultLength = errors.New("matmul: result count does not match shape")

	// ErrNilPool is returned when no pool (or processor) was supplied.
	ErrNilPool = errors.New("matmul: nil pool")
)

// matmulErrorf wraps err with an operation tag. Use only when err != nil.
func matmulErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
