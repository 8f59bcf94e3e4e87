package executor

import (
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// evalExpression implements spec.md §4.F's Expression: a `{ ... }` block
// evaluates to an opaque, not-yet-evaluated value referencing its nested
// sub-tree, rather than running that sub-tree's statements.
func evalExpression(t *tree.Tree, n *tree.Node) value.Value {
	v, ok := t.ValueOf(n)
	if !ok {
		return value.UnitValue
	}
	return v
}

// ForceExpression evaluates the sub-tree an Expression value refers to
// against ctx, appending its statements' results to ctx's results list and
// returning just the values those statements produced. A host function that
// receives an Expression argument calls this to force it; evalExpression
// itself never does, per spec.md §4.F.
func ForceExpression(t *tree.Tree, ctx *context.Context, expr value.ExpressionData) []value.Value {
	sub, ok := nestedSubTree(t, expr)
	if !ok {
		return nil
	}
	before := len(ctx.Results())
	evalStatement(t, ctx, sub.Root)
	for _, root := range sub.SubRoots {
		evalStatement(t, ctx, root)
	}
	return ctx.Results()[before:]
}

func nestedSubTree(t *tree.Tree, expr value.ExpressionData) (tree.ExpressionSubTree, bool) {
	idx := int(expr.Root)
	if idx < 0 || idx >= len(t.Nested) {
		return tree.ExpressionSubTree{}, false
	}
	return t.Nested[idx], true
}
