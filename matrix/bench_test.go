// SPDX-License-Identifier: MIT

// Benchmarks for the multiplication paths and the bulk operations, using
// deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmat/concurrency"
	"github.com/katalvlaran/lvmat/matrix"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkS matrix.MatrixStore[float64]
	sinkF float64
)

// benchDivider uses the production thresholds rather than the tiny ones the
// tests install.
var benchDivider = concurrency.NewDivider(concurrency.NewConfig())

func benchDense(b *testing.B, n int, seed int64) *matrix.Primitive64Store {
	b.Helper()
	s := random(b, n, n, seed)
	c, err := matrix.Primitive64Factory(matrix.WithDivider(benchDivider)).Copy(s)
	if err != nil {
		b.Fatal(err)
	}

	return c
}

func BenchmarkMultiply(b *testing.B) {
	for _, n := range benchSizes {
		left := benchDense(b, n, 1337)
		right := benchDense(b, n, 4242)
		cases := []struct {
			name        string
			left, right matrix.MatrixStore[float64]
		}{
			{"dense", left, right},
			{"generic", hide[float64]{left}, hide[float64]{right}},
			{"transposed", matrix.Transpose[float64](left), right},
		}
		for _, tc := range cases {
			b.Run(fmt.Sprintf("%s/n=%d", tc.name, n), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					p, err := matrix.Multiply(tc.left, tc.right, matrix.WithDivider(benchDivider))
					if err != nil {
						b.Fatal(err)
					}
					sinkS = p
				}
			})
		}
	}
}

func BenchmarkMultiplySparse(b *testing.B) {
	for _, n := range benchSizes {
		left := randomSparse(b, n, n, 7)
		right := randomSparse(b, n, n, 8)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := matrix.Multiply[float64](left, right, matrix.WithDivider(benchDivider))
				if err != nil {
					b.Fatal(err)
				}
				sinkS = p
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	for _, n := range benchSizes {
		s := benchDense(b, n, 11)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = matrix.Sum[float64](s)
			}
		})
	}
}

func BenchmarkCopyView(b *testing.B) {
	for _, n := range benchSizes {
		s := benchDense(b, n, 22)
		upper := matrix.UpperTriangular[float64](s, false)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := matrix.Copy(upper, matrix.WithDivider(benchDivider))
				if err != nil {
					b.Fatal(err)
				}
				sinkS = c
			}
		})
	}
}
