// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/parmul/matrix"
)

const opGenerate = "Generate"

// RowMajor is the default TaskGenerator.
//
// Enumeration order is a hard contract shared with the assemblers: the
// outer loop walks output rows r ∈ [0, a.ColumnLen()), the inner loop walks
// output columns c ∈ [0, b.RowLen()). Task i is therefore the cell
// (i / n, i % n) with n = b.RowLen(), and its value belongs at results[r*n + c].
type RowMajor struct{}

var _ TaskGenerator = RowMajor{}

// Generate returns a.ColumnLen()*b.RowLen() tasks in row-major order.
//
// Implementation:
//   - Stage 1: zero rows or zero columns ⇒ no tasks, no Row/Column calls.
//   - Stage 2: fetch every column of b once; tasks of the same output
//     column share that read-only slice.
//   - Stage 3: for each row of a, emit one task per column.
//
// Errors:
//   - matrix.ErrNilMatrix for nil operands.
//   - Any error returned by Row/Column, wrapped with the index.
//
// Complexity:
//   - Time O(m*n) tasks plus the cost of m Row and n Column reads.
func (RowMajor) Generate(a matrix.LeftOperand, b matrix.RightOperand) ([]CellTask, error) {
	if a == nil || b == nil {
		return nil, matmulErrorf(opGenerate, matrix.ErrNilMatrix)
	}
	rows, cols := a.ColumnLen(), b.RowLen()
	if rows == 0 || cols == 0 {
		return []CellTask{}, nil
	}

	columns := make([][]float64, cols)
	for c := 0; c < cols; c++ {
		col, err := b.Column(c)
		if err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", opGenerate, c, err)
		}
		columns[c] = col
	}

	tasks := make([]CellTask, 0, rows*cols)
	for r := 0; r < rows; r++ {
		row, err := a.Row(r)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opGenerate, r, err)
		}
		for c := 0; c < cols; c++ {
			tasks = append(tasks, NewCellTask(r, c, row, columns[c]))
		}
	}

	return tasks, nil
}
