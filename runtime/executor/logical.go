package executor

import (
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

func isLogical(op tree.Operation) bool {
	switch op {
	case tree.OpLogicalAnd, tree.OpLogicalOr, tree.OpLogicalXOR, tree.OpNot:
		return true
	default:
		return false
	}
}

// evalLogical implements spec.md §4.F's logical family: And/Or/Xor always
// evaluate both operands (no short-circuiting), and Not dispatches on its
// operand's runtime type rather than anything decided at parse time.
func evalLogical(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	if n.Operation == tree.OpNot {
		operand := evalChild(t, ctx, n.Right)
		if b, ok := operand.AsBool(); ok {
			return value.FromBool(!b)
		}
		if i, ok := operand.AsI64(); ok {
			return value.FromInteger(^i)
		}
		return value.FromBool(!operand.Truthy())
	}

	left := evalChild(t, ctx, n.Left)
	right := evalChild(t, ctx, n.Right)
	lt, rt := left.Truthy(), right.Truthy()

	switch n.Operation {
	case tree.OpLogicalAnd:
		return value.FromBool(lt && rt)
	case tree.OpLogicalOr:
		return value.FromBool(lt || rt)
	case tree.OpLogicalXOR:
		return value.FromBool(lt != rt)
	default:
		return value.UnknownValue
	}
}

func isBitwise(op tree.Operation) bool {
	switch op {
	case tree.OpBitwiseAnd, tree.OpBitwiseOr, tree.OpBitwiseXOR, tree.OpBitwiseLeftShift, tree.OpBitwiseRightShift:
		return true
	default:
		return false
	}
}

// evalBitwise implements spec.md §4.F's integer-only bitwise family.
func evalBitwise(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	left := evalChild(t, ctx, n.Left)
	right := evalChild(t, ctx, n.Right)
	li, lok := left.AsI64()
	ri, rok := right.AsI64()
	if !lok || !rok {
		return value.UnknownValue
	}
	switch n.Operation {
	case tree.OpBitwiseAnd:
		return value.FromInteger(li & ri)
	case tree.OpBitwiseOr:
		return value.FromInteger(li | ri)
	case tree.OpBitwiseXOR:
		return value.FromInteger(li ^ ri)
	case tree.OpBitwiseLeftShift:
		return value.FromInteger(li << uint(ri))
	case tree.OpBitwiseRightShift:
		return value.FromInteger(li >> uint(ri))
	default:
		return value.UnknownValue
	}
}
