// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the backend tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmul/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the capability-set path instead of a *Dense fast path.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// shortRow reports a row that is one value shorter than RowLen.
type shortRow struct{ matrix.Matrix }

func (s shortRow) Row(i int) ([]float64, error) {
	row, err := s.Matrix.Row(i)
	if err != nil || len(row) == 0 {
		return row, err
	}

	return row[:len(row)-1], nil
}
