// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/parmul/matrix"
)

var (
	sinkSlice []float64
	sinkDense *matrix.Dense
)

// BenchmarkColumn measures the strided column gather.
func BenchmarkColumn(b *testing.B) {
	m, err := matrix.NewRandom(256, 256, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkSlice, _ = m.Column(i % 256)
	}
}

// BenchmarkCopyGeneric measures Copy through the capability set only.
func BenchmarkCopyGeneric(b *testing.B) {
	m, err := matrix.NewRandom(128, 128, 1)
	if err != nil {
		b.Fatal(err)
	}
	in := hide{m}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkDense, _ = matrix.Copy(in)
	}
}
