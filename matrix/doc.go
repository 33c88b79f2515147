// SPDX-License-Identifier: MIT

// Package matrix defines the read-only matrix capability set consumed by the
// parallel multiplication engine, together with its storage backends.
//
// The capability set:
//
//   - RowLen()    – length of each row (the column count).
//   - ColumnLen() – length of each column (the row count).
//   - Row(i)      – the i-th row as an ordered slice of float64.
//   - Column(j)   – the j-th column as an ordered slice of float64.
//
// The naming is deliberately "length of a row / length of a column" rather
// than Rows/Cols; an m×n matrix has RowLen()==n and ColumnLen()==m.
//
// Backends:
//
//   - Dense – row-major flat buffer (i*cols + j), zero-sized shapes allowed.
//   - Flat  – append-only flat buffer that becomes a matrix after Reshape.
//   - Gonum – adapter over any gonum.org/v1/gonum/mat.Matrix.
//
// All accessors return sentinel errors instead of panicking on bad input;
// match them with errors.Is.
package matrix
