// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/parmul/matrix"

// CellTask computes one output cell as the dot product of a row of the left
// operand and a column of the right operand.
//
// The slices are borrowed read-only views; a task never writes to them, so
// any number of tasks can run concurrently over the same source matrices.
type CellTask struct {
	R, C   int       // output coordinate
	row    []float64 // left operand row R
	column []float64 // right operand column C
}

// NewCellTask builds a task for output cell (r, c).
// Length agreement is checked by Evaluate, not here.
func NewCellTask(r, c int, row, column []float64) CellTask {
	return CellTask{R: r, C: c, row: row, column: column}
}

// TaskGenerator decomposes a pair product into cell tasks.
//
// Contract: exactly a.ColumnLen()*b.RowLen() tasks in row-major order, so
// task i is the cell (i / b.RowLen(), i % b.RowLen()).
type TaskGenerator interface {
	Generate(a matrix.LeftOperand, b matrix.RightOperand) ([]CellTask, error)
}

// TaskProcessor evaluates tasks and returns their values in task order.
type TaskProcessor interface {
	Process(tasks []CellTask) ([]float64, error)
}

// ResultAssembler turns a flat row-major result list into a rows×cols matrix.
// It must place results[r*cols + c] at (r, c).
type ResultAssembler interface {
	Assemble(rows, cols int, results []float64) (matrix.Matrix, error)
}
