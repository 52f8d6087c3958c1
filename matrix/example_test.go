// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/scalar"
)

// ExampleMultiply multiplies two dense float64 stores.
func ExampleMultiply() {
	f := matrix.Primitive64Factory()
	a, _ := f.Rows([]float64{1, 2}, []float64{3, 4})
	b, _ := f.Rows([]float64{5, 6}, []float64{7, 8})

	p, err := matrix.Multiply[float64](a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < p.CountRows(); i++ {
		fmt.Println(p.Get(i, 0), p.Get(i, 1))
	}
	// Output:
	// 19 22
	// 43 50
}

// ExampleMultiply_rationals keeps the arithmetic exact.
func ExampleMultiply_rationals() {
	f := matrix.GenericFactory(scalar.Rationals)
	row, _ := f.Rows([]scalar.Rational{scalar.NewRational(1, 2), scalar.NewRational(1, 3)})
	col, _ := f.Columns([]scalar.Rational{scalar.NewRational(6, 1), scalar.NewRational(3, 1)})

	p, _ := matrix.Multiply[scalar.Rational](row, col)
	fmt.Print(matrix.String(p))
	// Output:
	// 4
}

// ExampleAbove stacks two stores without copying them.
func ExampleAbove() {
	f := matrix.Primitive64Factory()
	upper, _ := f.Rows([]float64{1, 2}, []float64{3, 4})
	lower, _ := f.Rows([]float64{5, 6})

	s, _ := matrix.Above[float64](upper, lower)
	fmt.Println(s.CountRows(), s.CountColumns(), s.Get(2, 1))
	// Output:
	// 3 2 6
}

// ExampleRowsRegion writes a product into selected rows of a larger store.
func ExampleRowsRegion() {
	f := matrix.Primitive64Factory()
	base, _ := f.Make(3, 2)
	a, _ := f.Rows([]float64{1, 2}, []float64{3, 4})
	id, _ := matrix.Identity(scalar.Float64, 2)

	r, _ := matrix.RowsRegion[float64](base, 2, 0)
	if err := r.FillByMultiplying(a, id); err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < base.CountRows(); i++ {
		fmt.Println(base.Get(i, 0), base.Get(i, 1))
	}
	// Output:
	// 3 4
	// 0 0
	// 1 2
}

// ExampleSparseStore shows the row bounds following writes and removals.
func ExampleSparseStore() {
	s, _ := matrix.NewSparse(scalar.Float64, 3, 4)
	s.Set(1, 2, 5)
	s.Set(1, 0, 1)
	fmt.Println(s.FirstInRow(1), s.LimitOfRow(1), s.CountNonzeros())

	s.Add(1, 2, -5)
	fmt.Println(s.FirstInRow(1), s.LimitOfRow(1), s.CountNonzeros())
	fmt.Println(s.FirstInRow(0), s.LimitOfRow(0))
	// Output:
	// 0 3 2
	// 0 1 1
	// 4 0
}
