// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/workerpool"
)

const (
	opMultiplyPair     = "MultiplyPair"
	opMultiplySequence = "MultiplySequence"
)

// Engine wires a generator, a processor and an assembler into pair and
// sequence multiplication. An Engine holds no per-call state and is safe
// for concurrent use when its strategies are.
type Engine struct {
	generator TaskGenerator
	processor TaskProcessor
	assembler ResultAssembler
	logger    *slog.Logger
}

// New returns an Engine running its cell tasks on pool.
// The pool is borrowed for the Engine's lifetime; the caller still owns it.
//
// Errors:
//   - ErrNilPool when pool is nil and no WithProcessor option was given.
func New(pool workerpool.Submitter, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)
	if o.processor == nil {
		p, err := NewPoolProcessor(pool)
		if err != nil {
			return nil, err
		}
		o.processor = p
	}

	return &Engine{
		generator: o.generator,
		processor: o.processor,
		assembler: o.assembler,
		logger:    o.logger,
	}, nil
}

// MultiplyPair returns a·b as a new matrix of shape (a.ColumnLen(), b.RowLen()).
//
// Implementation:
//   - Stage 1: generate cell tasks (row-major).
//   - Stage 2: process them as one batch on the pool.
//   - Stage 3: assemble results[r*n + c] into (r, c).
//
// Shape compatibility is not re-checked here; it is the caller's (or
// MultiplySequence's) job. A mismatch surfaces as ErrMalformedTask wrapped
// in ErrWorkerFailure. Inputs are never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix for nil operands.
//   - Generator, processor (ErrWorkerFailure) and assembler errors, tagged
//     with the batch id.
func (e *Engine) MultiplyPair(a, b matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, matmulErrorf(opMultiplyPair, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, matmulErrorf(opMultiplyPair, err)
	}

	batch := uuid.New()
	rows, cols := a.ColumnLen(), b.RowLen()
	start := time.Now()

	tasks, err := e.generator.Generate(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: batch %s: %w", opMultiplyPair, batch, err)
	}
	e.logger.Debug("batch submitted",
		slog.String("batch", batch.String()),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("inner", a.RowLen()),
		slog.Int("tasks", len(tasks)))

	results, err := e.processor.Process(tasks)
	if err != nil {
		e.logger.Debug("batch failed", slog.String("batch", batch.String()), slog.Any("err", err))
		return nil, fmt.Errorf("%s: batch %s: %w", opMultiplyPair, batch, err)
	}

	out, err := e.assembler.Assemble(rows, cols, results)
	if err != nil {
		return nil, fmt.Errorf("%s: batch %s: %w", opMultiplyPair, batch, err)
	}
	e.logger.Debug("batch assembled",
		slog.String("batch", batch.String()),
		slog.Duration("elapsed", time.Since(start)))

	return out, nil
}

// MultiplySequence returns ms[0]·ms[1]·…·ms[len-1] as a left fold of
// MultiplyPair.
//
// Behavior highlights:
//   - Validation runs first; on ErrShapeMismatch no task has been submitted.
//   - A single matrix is returned as an independent *matrix.Dense copy, never
//     the caller's object.
//   - The first failing step aborts the fold; no partial product is returned.
//
// Errors:
//   - ErrEmptySequence, ErrShapeMismatch, or any MultiplyPair error tagged
//     with the fold step.
func (e *Engine) MultiplySequence(ms ...matrix.Matrix) (matrix.Matrix, error) {
	if len(ms) == 0 {
		return nil, matmulErrorf(opMultiplySequence, ErrEmptySequence)
	}
	if !Validate(ms...) {
		return nil, matmulErrorf(opMultiplySequence, ErrShapeMismatch)
	}
	if len(ms) == 1 {
		cp, err := matrix.Copy(ms[0])
		if err != nil {
			return nil, matmulErrorf(opMultiplySequence, err)
		}
		return cp, nil
	}

	e.logger.Debug("sequence started", slog.Int("matrices", len(ms)))
	acc := ms[0]
	for i := 1; i < len(ms); i++ {
		next, err := e.MultiplyPair(acc, ms[i])
		if err != nil {
			return nil, fmt.Errorf("%s: step %d/%d: %w", opMultiplySequence, i, len(ms)-1, err)
		}
		acc = next
	}

	return acc, nil
}
