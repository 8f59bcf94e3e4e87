package executor

import (
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

func isComparison(op tree.Operation) bool {
	switch op {
	case tree.OpGreaterThan, tree.OpGreaterThanOrEqual, tree.OpLessThan, tree.OpLessThanOrEqual,
		tree.OpEquality, tree.OpInequality:
		return true
	default:
		return false
	}
}

// evalComparison implements spec.md §4.F's relational and equality family.
// Equality/Inequality use Value's tag+byte-equality rule directly; the
// relational operators promote both sides to float64.
func evalComparison(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	left := evalChild(t, ctx, n.Left)
	right := evalChild(t, ctx, n.Right)

	switch n.Operation {
	case tree.OpEquality:
		return value.FromBool(left.Equal(right))
	case tree.OpInequality:
		return value.FromBool(!left.Equal(right))
	}

	lf, lok := left.AsNumeric()
	rf, rok := right.AsNumeric()
	if !lok || !rok {
		return value.UnknownValue
	}
	switch n.Operation {
	case tree.OpGreaterThan:
		return value.FromBool(lf > rf)
	case tree.OpGreaterThanOrEqual:
		return value.FromBool(lf >= rf)
	case tree.OpLessThan:
		return value.FromBool(lf < rf)
	case tree.OpLessThanOrEqual:
		return value.FromBool(lf <= rf)
	default:
		return value.UnknownValue
	}
}
