// SPDX-License-Identifier: MIT

package array

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvmat/function"
)

// panicUnsupportedOp is raised when a Primitive* loop receives an op it has no
// typed loop for. Operation* never forwards such ops, so this is a programmer error.
func panicUnsupportedOp(kernel string, op function.Op) {
	panic(fmt.Sprintf("array.%s: unsupported op %s", kernel, op))
}

// PrimitiveArrays computes data[i] = left[i] op right[i] with a typed loop.
// Supported ops: OpAdd, OpSubtract, OpMultiply, OpDivide.
func PrimitiveArrays[T constraints.Float](op function.Op, data []T, first, limit, step int, left, right []T) {
	switch op {
	case function.OpAdd:
		for i := first; i < limit; i += step {
			data[i] = left[i] + right[i]
		}
	case function.OpSubtract:
		for i := first; i < limit; i += step {
			data[i] = left[i] - right[i]
		}
	case function.OpMultiply:
		for i := first; i < limit; i += step {
			data[i] = left[i] * right[i]
		}
	case function.OpDivide:
		for i := first; i < limit; i += step {
			data[i] = left[i] / right[i]
		}
	default:
		panicUnsupportedOp("PrimitiveArrays", op)
	}
}

// PrimitiveFirst computes data[i] = left op right[i] (scalar left operand).
func PrimitiveFirst[T constraints.Float](op function.Op, data []T, first, limit, step int, left T, right []T) {
	switch op {
	case function.OpAdd:
		for i := first; i < limit; i += step {
			data[i] = left + right[i]
		}
	case function.OpSubtract:
		for i := first; i < limit; i += step {
			data[i] = left - right[i]
		}
	case function.OpMultiply:
		for i := first; i < limit; i += step {
			data[i] = left * right[i]
		}
	case function.OpDivide:
		for i := first; i < limit; i += step {
			data[i] = left / right[i]
		}
	default:
		panicUnsupportedOp("PrimitiveFirst", op)
	}
}

// PrimitiveSecond computes data[i] = left[i] op right (scalar right operand).
func PrimitiveSecond[T constraints.Float](op function.Op, data []T, first, limit, step int, left []T, right T) {
	switch op {
	case function.OpAdd:
		for i := first; i < limit; i += step {
			data[i] = left[i] + right
		}
	case function.OpSubtract:
		for i := first; i < limit; i += step {
			data[i] = left[i] - right
		}
	case function.OpMultiply:
		for i := first; i < limit; i += step {
			data[i] = left[i] * right
		}
	case function.OpDivide:
		for i := first; i < limit; i += step {
			data[i] = left[i] / right
		}
	default:
		panicUnsupportedOp("PrimitiveSecond", op)
	}
}

// PrimitiveUnary computes data[i] = op(values[i]) for OpNegate and OpConjugate
// (the latter is a plain copy for real values).
func PrimitiveUnary[T constraints.Float](op function.Op, data []T, first, limit, step int, values []T) {
	switch op {
	case function.OpNegate:
		for i := first; i < limit; i += step {
			data[i] = -values[i]
		}
	case function.OpConjugate:
		for i := first; i < limit; i += step {
			data[i] = values[i]
		}
	default:
		panicUnsupportedOp("PrimitiveUnary", op)
	}
}

// primitivePower computes data[i] = values[i]^exponent by repeated squaring,
// mirroring scalar.Power so fast and generic paths agree bit for bit.
func primitivePower[T constraints.Float](data []T, first, limit, step int, values []T, exponent int) {
	negative := exponent < 0
	if negative {
		exponent = -exponent
	}
	for i := first; i < limit; i += step {
		result, base, e := T(1), values[i], exponent
		for e > 0 {
			if e&1 == 1 {
				result *= base
			}
			base *= base
			e >>= 1
		}
		if negative {
			result = 1 / result
		}
		data[i] = result
	}
}
