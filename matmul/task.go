// SPDX-License-Identifier: MIT

package matmul

import "fmt"

// Dot returns Σ row[i]*column[i].
//
// Accumulation runs strictly left to right from 0, and every product is
// rounded to float64 before it is added (the explicit conversion forbids the
// compiler from fusing multiply and add). Two runs over the same inputs
// therefore round identically on every architecture.
//
// Errors:
//   - ErrMalformedTask when the lengths differ. Nothing is truncated or padded.
//
// Empty inputs yield 0.
func Dot(row, column []float64) (float64, error) {
	if len(row) != len(column) {
		return 0, fmt.Errorf("%w: row %d, column %d", ErrMalformedTask, len(row), len(column))
	}
	sum := 0.0
	for i := range row {
		sum += float64(row[i] * column[i])
	}

	return sum, nil
}

// Evaluate computes the cell value. Its signature matches workerpool.Job,
// so a method value can be submitted directly.
func (t CellTask) Evaluate() (float64, error) {
	v, err := Dot(t.row, t.column)
	if err != nil {
		return 0, fmt.Errorf("cell (%d,%d): %w", t.R, t.C, err)
	}

	return v, nil
}

// Len returns the length of the task's row (and, when well-formed, column).
func (t CellTask) Len() int { return len(t.row) }
