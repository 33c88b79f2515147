// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parmul/matrix"
)

var (
	errNoInput  = errors.New("either --input or at least one --shape is required")
	errBothKind = errors.New("--input and --shape are mutually exclusive")
	errShape    = errors.New("shape must look like RxC")
)

// chainFile is the on-disk layout of --input. JSON is accepted too since
// it is a subset of YAML:
//
//	matrices:
//	  - [[1, 2], [3, 4]]
//	  - [[5, 6], [7, 8]]
type chainFile struct {
	Matrices [][][]float64 `yaml:"matrices"`
}

// inputFlags selects where the chain comes from.
type inputFlags struct {
	path   string
	shapes []string
	seed   int64
}

// load returns the chain described by the flags.
func (in inputFlags) load() ([]matrix.Matrix, error) {
	switch {
	case in.path != "" && len(in.shapes) > 0:
		return nil, errBothKind
	case in.path != "":
		raw, err := os.ReadFile(in.path)
		if err != nil {
			return nil, err
		}
		return decodeChain(raw)
	case len(in.shapes) > 0:
		return randomChain(in.shapes, in.seed)
	default:
		return nil, errNoInput
	}
}

// decodeChain parses a YAML or JSON chain document.
func decodeChain(raw []byte) ([]matrix.Matrix, error) {
	var doc chainFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode chain: %w", err)
	}
	out := make([]matrix.Matrix, 0, len(doc.Matrices))
	for i, rows := range doc.Matrices {
		m, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// randomChain builds one random matrix per shape; matrix i uses seed+i.
func randomChain(shapes []string, seed int64) ([]matrix.Matrix, error) {
	out := make([]matrix.Matrix, 0, len(shapes))
	for i, s := range shapes {
		r, c, err := parseShape(s)
		if err != nil {
			return nil, err
		}
		m, err := matrix.NewRandom(r, c, seed+int64(i))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// parseShape reads "RxC" (case-insensitive x) into rows and columns.
func parseShape(s string) (rows, cols int, err error) {
	rs, cs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, errShape)
	}
	if rows, err = strconv.Atoi(rs); err != nil || rows < 0 {
		return 0, 0, fmt.Errorf("%q: rows: %w", s, errShape)
	}
	if cols, err = strconv.Atoi(cs); err != nil || cols < 0 {
		return 0, 0, fmt.Errorf("%q: cols: %w", s, errShape)
	}

	return rows, cols, nil
}

// shapeOf renders m as "RxC".
func shapeOf(m matrix.Matrix) string {
	return fmt.Sprintf("%dx%d", m.ColumnLen(), m.RowLen())
}
