// SPDX-License-Identifier: MIT

package array

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/function"
)

// OperationUnary maps fn over the range: data[i] = fn(values[i]).
//
// Dispatch:
//   - function.Elementary (negate/conjugate)           → PrimitiveUnary
//   - function.FixedFirst / FixedSecond over Arithmetic → PrimitiveFirst / PrimitiveSecond
//   - anything else                                     → fn.Invoke per element
//
// data and values may be the same slice (in-place modify).
func OperationUnary[T constraints.Float](data []T, first, limit, step int, values []T, fn function.Unary[float64]) {
	switch f := fn.(type) {
	case function.Elementary[float64]:
		PrimitiveUnary(f.Op(), data, first, limit, step, values)
		return
	case function.FixedFirst[float64]:
		if op, ok := function.ArithmeticOf(f.Fn); ok {
			PrimitiveFirst(op, data, first, limit, step, T(f.Arg), values)
			return
		}
	case function.FixedSecond[float64]:
		if op, ok := function.ArithmeticOf(f.Fn); ok {
			PrimitiveSecond(op, data, first, limit, step, values, T(f.Arg))
			return
		}
	}
	for i := first; i < limit; i += step {
		data[i] = T(fn.Invoke(float64(values[i])))
	}
}

// OperationBinary combines two arrays: data[i] = fn(left[i], right[i]).
// A recognised function.Arithmetic runs PrimitiveArrays.
func OperationBinary[T constraints.Float](data []T, first, limit, step int, left []T, fn function.Binary[float64], right []T) {
	if op, ok := function.ArithmeticOf(fn); ok {
		PrimitiveArrays(op, data, first, limit, step, left, right)
		return
	}
	for i := first; i < limit; i += step {
		data[i] = T(fn.Invoke(float64(left[i]), float64(right[i])))
	}
}

// OperationBinaryFirst uses a scalar left operand: data[i] = fn(left, right[i]).
func OperationBinaryFirst[T constraints.Float](data []T, first, limit, step int, left float64, fn function.Binary[float64], right []T) {
	if op, ok := function.ArithmeticOf(fn); ok {
		PrimitiveFirst(op, data, first, limit, step, T(left), right)
		return
	}
	for i := first; i < limit; i += step {
		data[i] = T(fn.Invoke(left, float64(right[i])))
	}
}

// OperationBinarySecond uses a scalar right operand: data[i] = fn(left[i], right).
func OperationBinarySecond[T constraints.Float](data []T, first, limit, step int, left []T, fn function.Binary[float64], right float64) {
	if op, ok := function.ArithmeticOf(fn); ok {
		PrimitiveSecond(op, data, first, limit, step, left, T(right))
		return
	}
	for i := first; i < limit; i += step {
		data[i] = T(fn.Invoke(float64(left[i]), right))
	}
}

// OperationParameter maps a parameterised function: data[i] = fn(values[i], param).
// function.Pow runs a typed repeated-squaring loop.
func OperationParameter[T constraints.Float](data []T, first, limit, step int, values []T, fn function.Parameter[float64], param int) {
	if _, ok := fn.(function.Pow[float64]); ok {
		primitivePower(data, first, limit, step, values, param)
		return
	}
	for i := first; i < limit; i += step {
		data[i] = T(fn.Invoke(float64(values[i]), param))
	}
}

// OperationVoid visits every element of the range in index order.
func OperationVoid[T constraints.Float](data []T, first, limit, step int, visitor function.Void[float64]) {
	for i := first; i < limit; i += step {
		visitor.Invoke(float64(data[i]))
	}
}

// OperationUnaryScalar is OperationUnary over a generic backing.
func OperationUnaryScalar[N any](data []N, first, limit, step int, values []N, fn function.Unary[N]) {
	for i := first; i < limit; i += step {
		data[i] = fn.Invoke(values[i])
	}
}

// OperationBinaryScalar is OperationBinary over a generic backing.
func OperationBinaryScalar[N any](data []N, first, limit, step int, left []N, fn function.Binary[N], right []N) {
	for i := first; i < limit; i += step {
		data[i] = fn.Invoke(left[i], right[i])
	}
}

// OperationBinaryFirstScalar is OperationBinaryFirst over a generic backing.
func OperationBinaryFirstScalar[N any](data []N, first, limit, step int, left N, fn function.Binary[N], right []N) {
	for i := first; i < limit; i += step {
		data[i] = fn.Invoke(left, right[i])
	}
}

// OperationBinarySecondScalar is OperationBinarySecond over a generic backing.
func OperationBinarySecondScalar[N any](data []N, first, limit, step int, left []N, fn function.Binary[N], right N) {
	for i := first; i < limit; i += step {
		data[i] = fn.Invoke(left[i], right)
	}
}

// OperationParameterScalar is OperationParameter over a generic backing.
func OperationParameterScalar[N any](data []N, first, limit, step int, values []N, fn function.Parameter[N], param int) {
	for i := first; i < limit; i += step {
		data[i] = fn.Invoke(values[i], param)
	}
}

// OperationVoidScalar is OperationVoid over a generic backing.
func OperationVoidScalar[N any](data []N, first, limit, step int, visitor function.Void[N]) {
	for i := first; i < limit; i += step {
		visitor.Invoke(data[i])
	}
}
