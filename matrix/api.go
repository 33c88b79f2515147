// SPDX-License-Identifier: MIT
// Package matrix — backend-independent helpers.
//
// Purpose:
//   - Copy any capability-set matrix into an independent *Dense.
//   - Export rows as [][]float64 for inspection and tests.
//   - Compare two matrices element-wise with relative/absolute tolerance.
//
// Determinism & Policy:
//   - Fixed i→j traversal; row reads go through the capability set only.

package matrix

import (
	"fmt"
	"math"
)

const (
	opCopy     = "Copy"
	opToRows   = "ToRows"
	opAllClose = "AllClose"
)

// Copy returns an independent *Dense holding the same values as m.
// Reads m row by row; the result never aliases m's storage.
//
// Errors:
//   - ErrNilMatrix for nil input; ErrRaggedRows if a row has the wrong length;
//     any error returned by m.Row.
//
// Complexity: O(r*c).
func Copy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone(), nil // single flat copy
	}
	r, c := m.ColumnLen(), m.RowLen()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	for i := 0; i < r; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, matrixErrorf(opCopy, err)
		}
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opCopy, i, len(row), c, ErrRaggedRows)
		}
		copy(out.data[i*c:(i+1)*c], row)
	}

	return out, nil
}

// ToRows exports m as a freshly allocated slice of rows.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	d, err := Copy(m)
	if err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	out := make([][]float64, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = d.data[i*d.c : (i+1)*d.c : (i+1)*d.c]
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are ErrNaNInf.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var i, j int
	var ra, rb []float64
	var err error
	for i = 0; i < a.ColumnLen(); i++ {
		if ra, err = a.Row(i); err != nil {
			return false, matrixErrorf(opAllClose, err)
		}
		if rb, err = b.Row(i); err != nil {
			return false, matrixErrorf(opAllClose, err)
		}
		for j = 0; j < len(ra) && j < len(rb); j++ {
			// NaN fails this comparison, so NaN never counts as close.
			if !(math.Abs(ra[j]-rb[j]) <= atol+rtol*math.Abs(rb[j])) {
				return false, nil
			}
		}
	}

	return true, nil
}
