// SPDX-License-Identifier: MIT

// Package function defines the function objects applied element-wise by the
// array kernels and the stores: unary maps, binary maps, parameterised maps,
// visitors (void) and generators (nullary).
//
// What & Why:
//
//	Kernels accept these as interfaces so any callable works, but a small set
//	of concrete types (Arithmetic, Elementary, FixedFirst, FixedSecond, Pow)
//	is recognisable by type switch. When the kernels see one of those on a
//	float32/float64 backing slice they run a typed loop instead of calling
//	Invoke per element.
package function

// Unary maps one value to another.
type Unary[N any] interface {
	Invoke(arg N) N
}

// Binary combines two values.
type Binary[N any] interface {
	Invoke(left, right N) N
}

// Parameter maps a value using an integer parameter (e.g. a power).
type Parameter[N any] interface {
	Invoke(arg N, param int) N
}

// Void visits a value without producing one.
type Void[N any] interface {
	Invoke(arg N)
}

// Nullary generates values (fill from a generator).
type Nullary[N any] interface {
	Invoke() N
}

// UnaryFunc adapts a plain func to Unary.
type UnaryFunc[N any] func(arg N) N

// Invoke calls f(arg).
func (f UnaryFunc[N]) Invoke(arg N) N { return f(arg) }

// BinaryFunc adapts a plain func to Binary.
type BinaryFunc[N any] func(left, right N) N

// Invoke calls f(left, right).
func (f BinaryFunc[N]) Invoke(left, right N) N { return f(left, right) }

// ParameterFunc adapts a plain func to Parameter.
type ParameterFunc[N any] func(arg N, param int) N

// Invoke calls f(arg, param).
func (f ParameterFunc[N]) Invoke(arg N, param int) N { return f(arg, param) }

// VoidFunc adapts a plain func to Void.
type VoidFunc[N any] func(arg N)

// Invoke calls f(arg).
func (f VoidFunc[N]) Invoke(arg N) { f(arg) }

// NullaryFunc adapts a plain func to Nullary.
type NullaryFunc[N any] func() N

// Invoke calls f().
func (f NullaryFunc[N]) Invoke() N { return f() }
