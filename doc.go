// Package lvmat is an in-memory linear algebra toolkit built around one
// contract: a matrix is anything that can report its shape, read an element
// and say where its non-zeros start and stop.
//
// What is inside
//
//	scalar/      the number fields (float64, complex128, quaternions,
//	               exact rationals) every store is generic over
//	function/    unary, binary and aggregating function objects passed to
//	               the kernels
//	array/       strided kernels over flat column-major slices and the
//	               sparse array (fill, axpy, amax, rotate, LU, substitution)
//	concurrency/ the Divider that splits bulk work across goroutines,
//	               configured from options, YAML or the environment
//	matrix/      physical stores, lazy views (transpose, concatenation,
//	               selection, masks, windows), write regions and Multiply
//
// # Layout
//
// Every dense store keeps its elements column-major: element (i, j) of an
// r x c store lives at index i + j*r. The sparse store keys its entries the
// same way.
//
// Quick example:
//
//	f := matrix.Primitive64Factory()
//	a, _ := f.Rows([]float64{1, 2}, []float64{3, 4})
//	p, _ := matrix.Multiply[float64](a, matrix.Transpose[float64](a))
//	fmt.Print(matrix.String(p))
//
// See examples/ for a runnable power-iteration program.
//
//	go get github.com/katalvlaran/lvmat
package lvmat
