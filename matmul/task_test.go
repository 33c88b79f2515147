// SPDX-License-Identifier: MIT
package matmul_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmul/matmul"
)

// TestDot covers regular, empty and malformed inputs.
func TestDot(t *testing.T) {
	t.Parallel()

	v, err := matmul.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, v)

	v, err = matmul.Dot(nil, []float64{})
	require.NoError(t, err)
	require.Equal(t, 0.0, v, "empty dot product is the additive identity")

	_, err = matmul.Dot([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, matmul.ErrMalformedTask)
}

// TestDotLeftToRight pins the accumulation order: (1e16 + 1) + -1e16 rounds
// the 1 away, while any reordering that adds -1e16 first would keep it.
func TestDotLeftToRight(t *testing.T) {
	t.Parallel()

	v, err := matmul.Dot([]float64{1e16, 1, -1e16}, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestCellTaskEvaluate checks coordinates survive into the malformed error.
func TestCellTaskEvaluate(t *testing.T) {
	t.Parallel()

	ok := matmul.NewCellTask(0, 1, []float64{1, 2}, []float64{3, 4})
	v, err := ok.Evaluate()
	require.NoError(t, err)
	require.Equal(t, 11.0, v)
	require.Equal(t, 2, ok.Len())

	bad := matmul.NewCellTask(2, 3, []float64{1, 2, 3}, []float64{1})
	_, err = bad.Evaluate()
	require.True(t, errors.Is(err, matmul.ErrMalformedTask))
	require.Contains(t, err.Error(), "cell (2,3)")
}
