// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/parmul/workerpool"
)

// PoolProcessor is the default TaskProcessor. It borrows a pool and never
// creates, sizes or closes it.
type PoolProcessor struct {
	pool workerpool.Submitter
}

var _ TaskProcessor = (*PoolProcessor)(nil)

// NewPoolProcessor returns a processor submitting to pool.
// Returns ErrNilPool when pool is nil.
func NewPoolProcessor(pool workerpool.Submitter) (*PoolProcessor, error) {
	if pool == nil {
		return nil, ErrNilPool
	}

	return &PoolProcessor{pool: pool}, nil
}

// Process evaluates tasks on the pool and returns their values in task order.
//
// Implementation:
//   - Stage 1: submit every task without waiting; the whole slice is one batch.
//   - Stage 2: await the handles in submission order, writing results[i]
//     from handle i. Workers may finish in any order; the output layout
//     does not depend on it.
//
// Errors:
//   - The first failing handle (in submission order) is returned wrapped
//     with ErrWorkerFailure and its task index/coordinate; no partial result
//     slice is returned. Tasks already submitted keep running to completion.
//
// Complexity:
//   - O(len(tasks)) submissions and awaits; the dot products run on the pool.
func (p *PoolProcessor) Process(tasks []CellTask) ([]float64, error) {
	if p == nil || p.pool == nil {
		return nil, ErrNilPool
	}

	handles := make([]workerpool.Handle, len(tasks))
	for i := range tasks {
		handles[i] = p.pool.Submit(tasks[i].Evaluate)
	}

	results := make([]float64, len(tasks))
	for i, h := range handles {
		v, err := h.Await()
		if err != nil {
			return nil, fmt.Errorf("%w: task %d cell (%d,%d): %w", ErrWorkerFailure, i, tasks[i].R, tasks[i].C, err)
		}
		results[i] = v
	}

	return results, nil
}
