// SPDX-License-Identifier: MIT
package matmul_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmul/matmul"
)

// indexTasks returns n tasks whose value is their own index (i·1).
func indexTasks(n int) []matmul.CellTask {
	tasks := make([]matmul.CellTask, n)
	for i := range tasks {
		tasks[i] = matmul.NewCellTask(i, 0, []float64{float64(i)}, []float64{1})
	}
	return tasks
}

// TestPoolProcessorOrderUnderReversedCompletion submits to a pool that
// completes jobs last-in-first-out; results must still follow submission.
func TestPoolProcessorOrderUnderReversedCompletion(t *testing.T) {
	t.Parallel()

	pool := &reversePool{}
	proc, err := matmul.NewPoolProcessor(pool)
	require.NoError(t, err)

	const n = 10
	results, err := proc.Process(indexTasks(n))
	require.NoError(t, err)

	want := make([]float64, n)
	for i := range want {
		want[i] = float64(i)
	}
	require.Equal(t, want, results)

	// The fake really did complete in reverse.
	require.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, pool.completed)
}

// TestPoolProcessorRealPool checks ordering on the production pool.
func TestPoolProcessorRealPool(t *testing.T) {
	t.Parallel()

	proc, err := matmul.NewPoolProcessor(newPool(t, 4))
	require.NoError(t, err)

	const n = 500
	results, err := proc.Process(indexTasks(n))
	require.NoError(t, err)
	require.Len(t, results, n)
	for i, v := range results {
		require.Equal(t, float64(i), v)
	}
}

// TestPoolProcessorEmpty returns an empty, non-nil result for no tasks.
func TestPoolProcessorEmpty(t *testing.T) {
	t.Parallel()

	proc, err := matmul.NewPoolProcessor(&reversePool{})
	require.NoError(t, err)
	results, err := proc.Process(nil)
	require.NoError(t, err)
	require.NotNil(t, results)
	require.Empty(t, results)
}

// TestPoolProcessorFailure propagates the failing task, never a partial slice.
func TestPoolProcessorFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("worker lost")
	pool := &failingPool{failAt: 3, err: boom}
	proc, err := matmul.NewPoolProcessor(pool)
	require.NoError(t, err)

	results, err := proc.Process(indexTasks(6))
	require.Nil(t, results)
	require.ErrorIs(t, err, matmul.ErrWorkerFailure)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "task 3")
	require.Equal(t, 6, pool.submitted, "every task is submitted before awaiting")
}

// TestPoolProcessorMalformedTask surfaces both sentinels.
func TestPoolProcessorMalformedTask(t *testing.T) {
	t.Parallel()

	proc, err := matmul.NewPoolProcessor(newPool(t, 2))
	require.NoError(t, err)

	tasks := []matmul.CellTask{matmul.NewCellTask(0, 0, []float64{1, 2}, []float64{1})}
	_, err = proc.Process(tasks)
	require.ErrorIs(t, err, matmul.ErrWorkerFailure)
	require.ErrorIs(t, err, matmul.ErrMalformedTask)
}

// TestNewPoolProcessorNil rejects a nil pool.
func TestNewPoolProcessorNil(t *testing.T) {
	t.Parallel()

	_, err := matmul.NewPoolProcessor(nil)
	require.ErrorIs(t, err, matmul.ErrNilPool)
}
