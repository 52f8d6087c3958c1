// SPDX-License-Identifier: MIT

package function

import (
	"fmt"

	"github.com/katalvlaran/lvmat/scalar"
)

// Op tags an arithmetic primitive that kernels may execute directly.
type Op uint8

const (
	// OpNone marks a function the kernels must call through Invoke.
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNegate
	OpConjugate
)

// String returns the lower-case operation name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpNegate:
		return "negate"
	case OpConjugate:
		return "conjugate"
	default:
		return "none"
	}
}

// Arithmetic is a recognisable binary arithmetic operation over a field.
type Arithmetic[N any] struct {
	op    Op
	field scalar.Field[N]
}

// Add returns left + right over f.
func Add[N any](f scalar.Field[N]) Arithmetic[N] { return Arithmetic[N]{op: OpAdd, field: f} }

// Subtract returns left - right over f.
func Subtract[N any](f scalar.Field[N]) Arithmetic[N] {
	return Arithmetic[N]{op: OpSubtract, field: f}
}

// Multiply returns left * right over f.
func Multiply[N any](f scalar.Field[N]) Arithmetic[N] {
	return Arithmetic[N]{op: OpMultiply, field: f}
}

// Divide returns left / right over f.
func Divide[N any](f scalar.Field[N]) Arithmetic[N] {
	return Arithmetic[N]{op: OpDivide, field: f}
}

// Op reports which primitive this is.
func (a Arithmetic[N]) Op() Op { return a.op }

// Invoke applies the operation.
func (a Arithmetic[N]) Invoke(left, right N) N {
	switch a.op {
	case OpAdd:
		return a.field.Add(left, right)
	case OpSubtract:
		return a.field.Subtract(left, right)
	case OpMultiply:
		return a.field.Multiply(left, right)
	case OpDivide:
		return a.field.Divide(left, right)
	default:
		panic(fmt.Sprintf("function: %s is not a binary arithmetic op", a.op))
	}
}

// First fixes the left operand: the result maps x to Invoke(arg, x).
func (a Arithmetic[N]) First(arg N) FixedFirst[N] {
	return FixedFirst[N]{Fn: a, Arg: arg}
}

// Second fixes the right operand: the result maps x to Invoke(x, arg).
func (a Arithmetic[N]) Second(arg N) FixedSecond[N] {
	return FixedSecond[N]{Fn: a, Arg: arg}
}

// Elementary is a recognisable unary primitive (negate, conjugate).
type Elementary[N any] struct {
	op    Op
	field scalar.Field[N]
}

// Negate returns -x.
func Negate[N any](f scalar.Field[N]) Elementary[N] {
	return Elementary[N]{op: OpNegate, field: f}
}

// Conjugate returns the conjugate of x.
func Conjugate[N any](f scalar.Field[N]) Elementary[N] {
	return Elementary[N]{op: OpConjugate, field: f}
}

// Op reports which primitive this is.
func (e Elementary[N]) Op() Op { return e.op }

// Invoke applies the operation.
func (e Elementary[N]) Invoke(arg N) N {
	switch e.op {
	case OpNegate:
		return e.field.Negate(arg)
	case OpConjugate:
		return e.field.Conjugate(arg)
	default:
		panic(fmt.Sprintf("function: %s is not a unary elementary op", e.op))
	}
}

// FixedFirst turns a binary function into a unary one by binding the left operand.
type FixedFirst[N any] struct {
	Fn  Binary[N]
	Arg N
}

// Invoke returns Fn(Arg, x).
func (f FixedFirst[N]) Invoke(x N) N { return f.Fn.Invoke(f.Arg, x) }

// FixedSecond turns a binary function into a unary one by binding the right operand.
type FixedSecond[N any] struct {
	Fn  Binary[N]
	Arg N
}

// Invoke returns Fn(x, Arg).
func (f FixedSecond[N]) Invoke(x N) N { return f.Fn.Invoke(x, f.Arg) }

// Pow raises values to an integer power; recognisable by the kernels.
type Pow[N any] struct {
	field scalar.Field[N]
}

// Power returns the integer power function over f.
func Power[N any](f scalar.Field[N]) Pow[N] { return Pow[N]{field: f} }

// Invoke returns arg^param.
func (p Pow[N]) Invoke(arg N, param int) N { return scalar.Power(p.field, arg, param) }

// ArithmeticOf unwraps fn into (op, true) when it is a recognised Arithmetic.
func ArithmeticOf[N any](fn Binary[N]) (Op, bool) {
	if a, ok := fn.(Arithmetic[N]); ok {
		return a.op, true
	}

	return OpNone, false
}
