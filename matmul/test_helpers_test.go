// SPDX-License-Identifier: MIT
// Package matmul_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures (row literals, seeded random matrices).
//   • Fake pools/processors to observe ordering and call counts.
//   • A gonum-backed reference product.

package matmul_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/parmul/matmul"
	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/workerpool"
)

// tolerance used against the gonum reference (relative, absolute).
const (
	rtol = 1e-9
	atol = 1e-12
)

// mustRows builds a Dense from row literals or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)
	return m
}

// mustDense allocates an r×c zero Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	return m
}

// mustRandom allocates an r×c seeded random Dense or fails the test.
func mustRandom(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandom(r, c, seed)
	require.NoError(tb, err)
	return m
}

// mustRowsOf exports m as [][]float64 or fails the test.
func mustRowsOf(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(tb, err)
	return rows
}

// reference multiplies ms with gonum's mat.Dense.Mul (non-empty shapes only).
func reference(tb testing.TB, ms ...matrix.Matrix) matrix.Matrix {
	tb.Helper()
	acc, err := matrix.ToGonum(ms[0])
	require.NoError(tb, err)
	for _, m := range ms[1:] {
		g, err := matrix.ToGonum(m)
		require.NoError(tb, err)
		var next mat.Dense
		next.Mul(acc, g)
		acc = &next
	}
	out, err := matrix.NewGonum(acc)
	require.NoError(tb, err)
	return out
}

// requireClose asserts got ≈ want within (rtol, atol).
func requireClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, want.ColumnLen(), got.ColumnLen(), "row count")
	require.Equal(tb, want.RowLen(), got.RowLen(), "column count")
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(tb, err)
	require.True(tb, ok, "want\n%v\ngot\n%v", mustRowsOf(tb, want), mustRowsOf(tb, got))
}

// reversePool defers every job until the first Await, then runs all pending
// jobs in reverse submission order. It records the completion order.
type reversePool struct {
	mu        sync.Mutex
	pending   []*reverseHandle
	completed []int
	submitted int
}

type reverseHandle struct {
	pool  *reversePool
	idx   int
	job   workerpool.Job
	done  bool
	value float64
	err   error
}

func (p *reversePool) Submit(job workerpool.Job) workerpool.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	h := &reverseHandle{pool: p, idx: p.submitted, job: job}
	p.submitted++
	p.pending = append(p.pending, h)
	return h
}

func (p *reversePool) flush() {
	for i := len(p.pending) - 1; i >= 0; i-- {
		h := p.pending[i]
		h.value, h.err = h.job()
		h.done = true
		p.completed = append(p.completed, h.idx)
	}
	p.pending = nil
}

func (h *reverseHandle) Await() (float64, error) {
	h.pool.mu.Lock()
	defer h.pool.mu.Unlock()
	if !h.done {
		h.pool.flush()
	}
	return h.value, h.err
}

// countingProcessor records how many times Process ran before delegating.
type countingProcessor struct {
	inner matmul.TaskProcessor
	calls int
	tasks int
}

func (c *countingProcessor) Process(tasks []matmul.CellTask) ([]float64, error) {
	c.calls++
	c.tasks += len(tasks)
	return c.inner.Process(tasks)
}

// failingPool fails the job with index failAt (0-based) and runs the rest inline.
type failingPool struct {
	failAt    int
	err       error
	submitted int
}

type doneHandle struct {
	value float64
	err   error
}

func (h doneHandle) Await() (float64, error) { return h.value, h.err }

func (p *failingPool) Submit(job workerpool.Job) workerpool.Handle {
	idx := p.submitted
	p.submitted++
	if idx == p.failAt {
		return doneHandle{err: p.err}
	}
	v, err := job()
	return doneHandle{value: v, err: err}
}

// newPool starts a real pool and registers its Close with the test.
func newPool(tb testing.TB, workers int) *workerpool.Pool {
	tb.Helper()
	p := workerpool.New(workers)
	tb.Cleanup(p.Close)
	return p
}
