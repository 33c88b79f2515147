// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmul/matrix"
)

// TestFlatAppendReshape walks the append → reshape lifecycle.
func TestFlatAppendReshape(t *testing.T) {
	f := matrix.NewFlat(6)
	require.Equal(t, 0, f.ColumnLen())
	require.Equal(t, 0, f.RowLen())

	require.NoError(t, f.Append(1, 2, 3))
	require.NoError(t, f.Append(4, 5, 6))
	require.Equal(t, 1, f.ColumnLen(), "appended buffer is a single row")
	require.Equal(t, 6, f.RowLen())

	require.NoError(t, f.Reshape(2, 3))
	rows, err := matrix.ToRows(f)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows)

	col, err := f.Column(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, col)

	require.NoError(t, f.Reshape(3, 2))
	row, err := f.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, row)
}

// TestFlatReshapeErrors rejects shapes that do not cover the buffer exactly.
func TestFlatReshapeErrors(t *testing.T) {
	f := matrix.NewFlat(-3) // negative capacity is clamped
	require.NoError(t, f.Append(1, 2, 3, 4))

	require.ErrorIs(t, f.Reshape(3, 2), matrix.ErrBadShape)
	require.ErrorIs(t, f.Reshape(-2, -2), matrix.ErrInvalidDimensions)
	require.Equal(t, 4, f.Len())

	var nilFlat *matrix.Flat
	require.ErrorIs(t, nilFlat.Append(1), matrix.ErrNilMatrix)
	require.ErrorIs(t, nilFlat.Reshape(0, 0), matrix.ErrNilMatrix)
}

// TestFromFlat places values[r*cols + c] at (r, c).
func TestFromFlat(t *testing.T) {
	f, err := matrix.FromFlat([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	v, err := f.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	empty, err := matrix.FromFlat(nil, 4, 0)
	require.NoError(t, err)
	require.Equal(t, 4, empty.ColumnLen())
	require.Equal(t, 0, empty.RowLen())

	_, err = matrix.FromFlat([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
