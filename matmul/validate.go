// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/parmul/matrix"

// ValidatePair reports whether a·b is defined: the length of a's rows (its
// column count) must equal the length of b's columns (its row count).
// Nil operands are never compatible.
func ValidatePair(a, b matrix.Matrix) bool {
	if matrix.ValidateNotNil(a) != nil || matrix.ValidateNotNil(b) != nil {
		return false
	}

	return a.RowLen() == b.ColumnLen()
}

// Validate reports whether every adjacent pair of ms is compatible.
// Empty and single-element sequences are valid, unless the single element is nil.
// Pure; never panics.
func Validate(ms ...matrix.Matrix) bool {
	if len(ms) == 1 {
		return matrix.ValidateNotNil(ms[0]) == nil
	}
	for i := 0; i+1 < len(ms); i++ {
		if !ValidatePair(ms[i], ms[i+1]) {
			return false
		}
	}

	return true
}
