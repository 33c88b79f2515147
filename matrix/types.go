// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces.
// The engine never depends on a concrete backend; it only needs the left
// operand to expose rows and the right operand to expose columns.
package matrix

// LeftOperand is the left-hand side of a product: it is read row by row.
type LeftOperand interface {
	// Row returns the i-th row (length RowLen of the full matrix).
	// Returns ErrOutOfRange if i<0 or i>=ColumnLen().
	Row(i int) ([]float64, error)

	// ColumnLen returns the length of each column, i.e. the number of rows.
	ColumnLen() int
}

// RightOperand is the right-hand side of a product: it is read column by column.
type RightOperand interface {
	// Column returns the j-th column (length ColumnLen of the full matrix).
	// Returns ErrOutOfRange if j<0 or j>=RowLen().
	Column(j int) ([]float64, error)

	// RowLen returns the length of each row, i.e. the number of columns.
	RowLen() int
}

// Matrix is a rectangular float64 grid exposing both operand views.
//
// Invariants:
//   - every Row(i) has length RowLen();
//   - every Column(j) has length ColumnLen().
//
// Slices returned by Row/Column are read-only for callers; backends may
// return views into their own storage.
type Matrix interface {
	LeftOperand
	RightOperand
}

// Mutable is a Matrix that can be grown and reshaped.
// It exists for result construction only; the engine never mutates inputs.
type Mutable interface {
	Matrix

	// Append adds values to the end of the flat buffer.
	Append(values ...float64) error

	// Reshape reinterprets the flat buffer as rows×cols (row-major).
	// Returns ErrBadShape if rows*cols does not match the buffer length.
	Reshape(rows, cols int) error
}
