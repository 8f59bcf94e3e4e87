package executor

import (
	"math"
	"strconv"

	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

func isArithmetic(op tree.Operation) bool {
	switch op {
	case tree.OpAddition, tree.OpSubtraction, tree.OpMultiplication, tree.OpDivision,
		tree.OpIntegerDivision, tree.OpModulo, tree.OpExponential, tree.OpNegation,
		tree.OpExclusiveRange, tree.OpInclusiveRange:
		return true
	default:
		return false
	}
}

// evalArithmetic implements spec.md §4.F's numeric family: Integer stays
// Integer when both operands are Integer, otherwise both sides promote to
// Decimal. Two exceptions: Division always yields a Decimal and
// IntegerDivision always yields an Integer. Addition also carries a
// string-concatenation overload when either side is a String.
func evalArithmetic(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	if n.Operation == tree.OpNegation {
		operand := evalChild(t, ctx, n.Right)
		if i, ok := operand.AsI64(); ok {
			return value.FromInteger(-i)
		}
		if f, ok := operand.AsF64(); ok {
			return value.FromDecimal(-f)
		}
		return value.UnknownValue
	}

	left := evalChild(t, ctx, n.Left)
	right := evalChild(t, ctx, n.Right)

	if n.Operation == tree.OpExclusiveRange || n.Operation == tree.OpInclusiveRange {
		lo, lok := left.AsI64()
		hi, hok := right.AsI64()
		if !lok || !hok {
			return value.UnknownValue
		}
		if n.Operation == tree.OpExclusiveRange {
			hi--
		}
		return value.FromRange(int32(lo), int32(hi))
	}

	if left.Tag == value.Unit || right.Tag == value.Unit {
		return value.UnitValue
	}

	if n.Operation == tree.OpAddition {
		if ls, lok := left.AsString(); lok {
			return value.FromString(ls + stringOf(right))
		}
		if rs, rok := right.AsString(); rok {
			return value.FromString(stringOf(left) + rs)
		}
	}

	li, liok := left.AsI64()
	ri, riok := right.AsI64()
	if liok && riok {
		switch n.Operation {
		case tree.OpAddition:
			return value.FromInteger(li + ri)
		case tree.OpSubtraction:
			return value.FromInteger(li - ri)
		case tree.OpMultiplication:
			return value.FromInteger(li * ri)
		case tree.OpDivision:
			if ri == 0 {
				return value.UnknownValue
			}
			return value.FromDecimal(float64(li) / float64(ri))
		case tree.OpIntegerDivision:
			if ri == 0 {
				return value.UnknownValue
			}
			return value.FromInteger(li / ri)
		case tree.OpModulo:
			if ri == 0 {
				return value.UnknownValue
			}
			return value.FromInteger(li % ri)
		case tree.OpExponential:
			return value.FromInteger(intPow(li, ri))
		}
	}

	lf, lok := left.AsNumeric()
	rf, rok := right.AsNumeric()
	if !lok || !rok {
		return value.UnknownValue
	}
	switch n.Operation {
	case tree.OpAddition:
		return value.FromDecimal(lf + rf)
	case tree.OpSubtraction:
		return value.FromDecimal(lf - rf)
	case tree.OpMultiplication:
		return value.FromDecimal(lf * rf)
	case tree.OpDivision:
		if rf == 0 {
			return value.UnknownValue
		}
		return value.FromDecimal(lf / rf)
	case tree.OpIntegerDivision:
		if rf == 0 {
			return value.UnknownValue
		}
		return value.FromInteger(int64(lf / rf))
	case tree.OpModulo:
		if rf == 0 {
			return value.UnknownValue
		}
		return value.FromDecimal(math.Mod(lf, rf))
	case tree.OpExponential:
		return value.FromDecimal(math.Pow(lf, rf))
	default:
		return value.UnknownValue
	}
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func stringOf(v value.Value) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	if i, ok := v.AsI64(); ok {
		return strconv.FormatInt(i, 10)
	}
	if f, ok := v.AsF64(); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if b, ok := v.AsBool(); ok {
		return strconv.FormatBool(b)
	}
	return ""
}
