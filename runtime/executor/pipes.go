package executor

import (
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// evalPipe implements spec.md §4.F's pipe family as function-application
// sugar: "->"/"<-" thread the piped value in as a callee's first argument,
// "|>"/"<|" as its last. Each resolves which side is the value and which
// the callee from the operator's own direction, then applies it.
func evalPipe(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	var valueIdx, calleeIdx *int
	var prependFirst bool

	switch n.Operation {
	case tree.OpPipeFirstRight: // x -> f
		valueIdx, calleeIdx, prependFirst = n.Left, n.Right, true
	case tree.OpPipeFirstLeft: // f <- x
		calleeIdx, valueIdx, prependFirst = n.Left, n.Right, true
	case tree.OpPipeLastRight: // x |> f
		valueIdx, calleeIdx, prependFirst = n.Left, n.Right, false
	case tree.OpPipeLastLeft: // f <| x
		calleeIdx, valueIdx, prependFirst = n.Left, n.Right, false
	default:
		return value.UnknownValue
	}

	piped := evalChild(t, ctx, valueIdx)
	return applyPipedCall(t, ctx, calleeIdx, piped, prependFirst)
}

// applyPipedCall resolves calleeIdx to a host function (a bare identifier,
// or an existing Group call whose own arguments the piped value joins) and
// invokes it with piped merged in at the requested end.
func applyPipedCall(t *tree.Tree, ctx *context.Context, calleeIdx *int, piped value.Value, prependFirst bool) value.Value {
	if calleeIdx == nil {
		return value.UnknownValue
	}
	calleeNode, ok := t.Node(*calleeIdx)
	if !ok {
		return value.UnknownValue
	}

	if calleeNode.Operation == tree.OpGroup && calleeNode.Left != nil {
		identNode, ok := t.Node(*calleeNode.Left)
		if !ok {
			return value.UnknownValue
		}
		name, ok := identifierName(t, identNode)
		if !ok {
			return value.UnknownValue
		}
		fn, ok := ctx.LookupFunction(name)
		if !ok {
			ctx.Documents.SuggestMissingBinding("function", name, ctx.FunctionNames())
			return value.UnitValue
		}
		var existing []value.Value
		if calleeNode.Right != nil {
			existing = flattenList(evalChild(t, ctx, calleeNode.Right))
		}
		var combined []value.Value
		if prependFirst {
			combined = append([]value.Value{piped}, existing...)
		} else {
			combined = append(append([]value.Value{}, existing...), piped)
		}
		if len(combined) == 1 {
			return fn(combined[0])
		}
		return fn(value.FromList(combined))
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
	return fn(piped)
}
