package executor

import (
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// evalDotAccess implements spec.md §4.F's DotAccess: dispatch depends on the
// left operand's runtime type. The right side names a field rather than
// evaluating to one, so it is read directly off the node instead of
// recursing through evalNode, except when it must resolve to a List index.
func evalDotAccess(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	left := evalChild(t, ctx, n.Left)

	switch left.Tag {
	case value.AssociativeList:
		name, ok := fieldName(t, n.Right)
		if !ok {
			return value.UnknownValue
		}
		ad, _ := left.AsAssociativeList()
		if symIdx, ok := t.Symbols.Index(name); ok {
			for _, e := range ad.Items {
				if e.HasKey && e.Key == uint64(symIdx) {
					return e.Val
				}
			}
		}
		return value.UnitValue

	case value.Pair:
		name, ok := fieldName(t, n.Right)
		if !ok {
			return value.UnknownValue
		}
		pd, _ := left.AsPair()
		switch name {
		case "left":
			return pd.Left
		case "right":
			return pd.Right
		default:
			return value.UnknownValue
		}

	case value.List:
		idxVal := evalChild(t, ctx, n.Right)
		i, ok := idxVal.AsI64()
		if !ok {
			return value.UnknownValue
		}
		ld, _ := left.AsList()
		if i < 0 || int(i) >= len(ld.Items) {
			return value.UnitValue
		}
		return ld.Items[i]

	default:
		return value.UnitValue
	}
}

// fieldName reads the bare field/identifier name off a DotAccess right
// operand without evaluating it as a context lookup.
func fieldName(t *tree.Tree, rightIdx *int) (string, bool) {
	if rightIdx == nil {
		return "", false
	}
	n, ok := t.Node(*rightIdx)
	if !ok {
		return "", false
	}
	if n.Operation == tree.OpSymbol {
		v, ok := t.ValueOf(n)
		if !ok {
			return "", false
		}
		name, _, ok := v.AsSymbol()
		return name, ok
	}
	if n.DataType == value.Identifier {
		symIdx, ok := t.UsizeValueOf(n)
		if !ok {
			return "", false
		}
		return t.Symbols.Symbol(int(symIdx))
	}
	return "", false
}

// evalGroup implements spec.md §4.F's Group dispatch: a calleeless Group
// (no Left) is a parenthesized sub-expression; one with a Left identifier
// is a function call resolved through the context's registry.
func evalGroup(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	if n.Left == nil {
		return evalChild(t, ctx, n.Right)
	}

	calleeNode, ok := t.Node(*n.Left)
	if !ok {
		return value.UnknownValue
	}
	name, ok := identifierName(t, calleeNode)
	if !ok {
		return value.UnknownValue
	}

	fn, ok := ctx.LookupFunction(name)
	if !ok {
		ctx.Documents.SuggestMissingBinding("function", name, ctx.FunctionNames())
		return value.UnitValue
	}
	arg := evalChild(t, ctx, n.Right)
	return fn(arg)
}

// identifierName reads the symbol-table name an Identifier-typed node
// stores, if n is one.
func identifierName(t *tree.Tree, n *tree.Node) (string, bool) {
	if n.DataType != value.Identifier {
		return "", false
	}
	symIdx, ok := t.UsizeValueOf(n)
	if !ok {
		return "", false
	}
	return t.Symbols.Symbol(int(symIdx))
}
