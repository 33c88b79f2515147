// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/parmul/matrix"
)

const opAssemble = "Assemble"

// checkResultLength guards the rows*cols ↔ len(results) contract shared by
// both assemblers.
func checkResultLength(rows, cols int, results []float64) error {
	if rows < 0 || cols < 0 {
		return matmulErrorf(opAssemble, matrix.ErrInvalidDimensions)
	}
	if len(results) != rows*cols {
		return fmt.Errorf("%s: %dx%d needs %d values, got %d: %w", opAssemble, rows, cols, rows*cols, len(results), ErrResultLength)
	}

	return nil
}

// DenseAssembler is the default ResultAssembler. It allocates a fresh
// *matrix.Dense and places each value by explicit index arithmetic.
type DenseAssembler struct{}

var _ ResultAssembler = DenseAssembler{}

// Assemble places results[r*cols + c] at (r, c), mirroring RowMajor's order.
func (DenseAssembler) Assemble(rows, cols int, results []float64) (matrix.Matrix, error) {
	if err := checkResultLength(rows, cols, results); err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, matmulErrorf(opAssemble, err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err = out.Set(r, c, results[r*cols+c]); err != nil {
				return nil, matmulErrorf(opAssemble, err)
			}
		}
	}

	return out, nil
}

// FlatAssembler builds the result through a matrix.Flat: append the whole
// result stream, then reshape it to rows×cols. Row-major reshape gives the
// same r*cols + c placement as DenseAssembler.
type FlatAssembler struct{}

var _ ResultAssembler = FlatAssembler{}

// Assemble appends results to a new Flat and reshapes it.
func (FlatAssembler) Assemble(rows, cols int, results []float64) (matrix.Matrix, error) {
	if err := checkResultLength(rows, cols, results); err != nil {
		return nil, err
	}
	out := matrix.NewFlat(len(results))
	if err := out.Append(results...); err != nil {
		return nil, matmulErrorf(opAssemble, err)
	}
	if err := out.Reshape(rows, cols); err != nil {
		return nil, matmulErrorf(opAssemble, err)
	}

	return out, nil
}
