// SPDX-License-Identifier: MIT

// Package matmul multiplies a sequence of matrices by spreading the
// per-cell dot products over a caller-supplied worker pool.
//
// Pipeline for one pair (A, B):
//
//  1. RowMajor generates one CellTask per output cell, r outer, c inner.
//  2. PoolProcessor submits every task to the pool, then awaits the
//     handles in submission order.
//  3. An assembler places results[r*n + c] at (r, c).
//
// A sequence is a left fold of that pipeline: ((A·B)·C)·D ... Each fold step
// depends on the previous result, so parallelism lives inside a pair only.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	product, err := matmul.Multiply(pool, a, b, c)
//	if errors.Is(err, matmul.ErrShapeMismatch) {
//	    // fix the input and retry
//	}
//
// The pool is borrowed: nothing in this package creates, resizes or closes it.
//
// Errors:
//   - ErrShapeMismatch  – adjacent matrices are not multiplication-compatible.
//   - ErrEmptySequence  – no matrices given.
//   - ErrWorkerFailure  – a cell task failed inside the pool.
//   - ErrMalformedTask  – row and column of a task differ in length.
//   - ErrNilPool        – no pool to run on.
//
// Multiplication is all-or-nothing per call: no retries, no partial results.
package matmul
