// SPDX-License-Identifier: MIT

// Package matrix - Flat: append-only buffer that becomes a matrix by Reshape.
//
// Purpose:
//   - Build a result from a flat, ordered stream of values (e.g. per-cell
//     results collected in row-major order) and only then fix its shape.
//
// Shape policy:
//   - A fresh Flat is 0×0.
//   - Append flattens: after any Append the buffer is viewed as a single
//     row (1×len) until the next Reshape.
//   - Reshape(rows, cols) requires rows*cols == Len().

package matrix

import "fmt"

const (
	ctxAppend  = "Append"
	ctxReshape = "Reshape"
)

// Flat is a Mutable matrix over a flat row-major buffer.
// Accessors are inherited from the embedded Dense.
type Flat struct {
	Dense
}

var _ Mutable = (*Flat)(nil)

// NewFlat returns an empty 0×0 Flat with room for capacity values.
// Negative capacity is treated as zero.
func NewFlat(capacity int) *Flat {
	if capacity < 0 {
		capacity = 0
	}

	return &Flat{Dense: Dense{data: make([]float64, 0, capacity)}}
}

// FromFlat copies values into a new Flat shaped rows×cols.
// values[r*cols + c] lands at (r, c).
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//   - ErrBadShape when len(values) != rows*cols.
func FromFlat(values []float64, rows, cols int) (*Flat, error) {
	f := NewFlat(len(values))
	if err := f.Append(values...); err != nil {
		return nil, err
	}
	if err := f.Reshape(rows, cols); err != nil {
		return nil, err
	}

	return f, nil
}

// Len returns the number of stored values.
func (f *Flat) Len() int { return len(f.data) }

// Append adds values to the end of the buffer and flattens the view to 1×Len().
// Appending nothing is a no-op and keeps the current shape.
func (f *Flat) Append(values ...float64) error {
	if f == nil {
		return matrixErrorf(ctxAppend, ErrNilMatrix)
	}
	if len(values) == 0 {
		return nil
	}
	f.data = append(f.data, values...)
	f.r, f.c = 1, len(f.data)

	return nil
}

// Reshape reinterprets the buffer as rows×cols without moving data.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//   - ErrBadShape when rows*cols != Len().
func (f *Flat) Reshape(rows, cols int) error {
	if f == nil {
		return matrixErrorf(ctxReshape, ErrNilMatrix)
	}
	if rows < 0 || cols < 0 {
		return matrixErrorf(ctxReshape, ErrInvalidDimensions)
	}
	if rows*cols != len(f.data) {
		return fmt.Errorf("%s(%d,%d): have %d values: %w", ctxReshape, rows, cols, len(f.data), ErrBadShape)
	}
	f.r, f.c = rows, cols

	return nil
}
