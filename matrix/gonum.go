// SPDX-License-Identifier: MIT

// Package matrix - adapter over gonum.org/v1/gonum/mat.
//
// Gonum exposes any mat.Matrix through Dims/At; this file lifts it into the
// Row/Column capability set and converts capability-set matrices back into
// a *mat.Dense for reference computations.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxGonum   = "Gonum"
	ctxToGonum = "ToGonum"
)

// Gonum adapts a mat.Matrix to the Matrix capability set.
// The wrapped value is read through mat.Row / mat.Col, which copy, so
// returned slices never alias gonum storage.
type Gonum struct {
	m mat.Matrix
}

var _ Matrix = (*Gonum)(nil)

// NewGonum wraps m. Returns ErrNilMatrix when m is nil.
func NewGonum(m mat.Matrix) (*Gonum, error) {
	if m == nil {
		return nil, matrixErrorf(ctxGonum, ErrNilMatrix)
	}

	return &Gonum{m: m}, nil
}

// RowLen returns the column count of the wrapped matrix.
func (g *Gonum) RowLen() int {
	_, c := g.m.Dims()
	return c
}

// ColumnLen returns the row count of the wrapped matrix.
func (g *Gonum) ColumnLen() int {
	r, _ := g.m.Dims()
	return r
}

// Row copies the i-th row out of the wrapped matrix.
func (g *Gonum) Row(i int) ([]float64, error) {
	r, _ := g.m.Dims()
	if i < 0 || i >= r {
		return nil, fmt.Errorf("%s.%s(%d): %w", ctxGonum, ctxRow, i, ErrOutOfRange)
	}

	return mat.Row(nil, i, g.m), nil
}

// Column copies the j-th column out of the wrapped matrix.
func (g *Gonum) Column(j int) ([]float64, error) {
	_, c := g.m.Dims()
	if j < 0 || j >= c {
		return nil, fmt.Errorf("%s.%s(%d): %w", ctxGonum, ctxColumn, j, ErrOutOfRange)
	}

	return mat.Col(nil, j, g.m), nil
}

// Unwrap returns the underlying gonum matrix.
func (g *Gonum) Unwrap() mat.Matrix { return g.m }

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrBadShape for zero-sized matrices (gonum rejects them).
//   - Any error returned by m.Row.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxToGonum, ErrNilMatrix)
	}
	r, c := m.ColumnLen(), m.RowLen()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxToGonum, r, c, ErrBadShape)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, matrixErrorf(ctxToGonum, err)
		}
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxToGonum, i, len(row), c, ErrRaggedRows)
		}
		out.SetRow(i, row)
	}

	return out, nil
}
