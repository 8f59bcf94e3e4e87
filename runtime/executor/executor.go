// Package executor implements SEL's tree evaluator (spec.md §4.F): a
// recursive, side-effect-free walk of a compiled Tree against a mutable
// Context, dispatching per Operation. Every failure mode resolves to Unit
// or Unknown; the evaluator never panics on malformed-but-well-typed input.
package executor

import (
	"log/slog"

	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// Execute evaluates every root statement of t against ctx, in order, and
// returns the accumulated results (spec.md §4 execute()). A top-level
// Stream statement pushes its produced elements into ctx as it iterates
// and resolves to StreamClose itself, which is not appended again.
func Execute(t *tree.Tree, ctx *context.Context) []value.Value {
	evalStatement(t, ctx, t.Root)
	for _, root := range t.SubRoots {
		evalStatement(t, ctx, root)
	}
	return ctx.Results()
}

func evalStatement(t *tree.Tree, ctx *context.Context, idx int) {
	result := evalNode(t, ctx, idx)
	if result.Tag == value.StreamInstruction {
		return
	}
	ctx.PushResult(result)
}

// evalNode dispatches one node by its Operation. It is the single recursive
// entry point every opexec family calls back into for its children.
func evalNode(t *tree.Tree, ctx *context.Context, idx int) value.Value {
	n, ok := t.Node(idx)
	if !ok {
		return value.UnknownValue
	}
	slog.Default().Debug("executor: eval", "index", idx, "op", n.Operation)

	switch {
	case n.Operation == tree.OpTouch || n.Operation == tree.OpSymbol:
		return evalTouch(t, ctx, n)
	case n.Operation == tree.OpInput:
		v, ok := ctx.GetInput()
		if !ok {
			return value.UnitValue
		}
		return v
	case n.Operation == tree.OpCurrentResult:
		v, ok := ctx.LastResult()
		if !ok {
			return value.UnitValue
		}
		return v
	case isArithmetic(n.Operation):
		return evalArithmetic(t, ctx, n)
	case isComparison(n.Operation):
		return evalComparison(t, ctx, n)
	case isLogical(n.Operation):
		return evalLogical(t, ctx, n)
	case isBitwise(n.Operation):
		return evalBitwise(t, ctx, n)
	case n.Operation == tree.OpPair || n.Operation == tree.OpList || n.Operation == tree.OpAssociativeList:
		return evalContainer(t, ctx, n)
	case n.Operation == tree.OpDotAccess:
		return evalDotAccess(t, ctx, n)
	case n.Operation == tree.OpGroup:
		return evalGroup(t, ctx, n)
	case n.Operation == tree.OpExpression:
		return evalExpression(t, n)
	case n.Operation == tree.OpStream:
		return evalStream(t, ctx, n)
	case n.Operation.IsMatchFamily():
		return evalMatch(t, ctx, n)
	case isPipe(n.Operation):
		return evalPipe(t, ctx, n)
	default:
		return value.UnknownValue
	}
}

// evalChild evaluates the node idx points at, or returns Unit if idx is nil
// (an absent operand: every opexec family goes through this so a missing
// child never panics).
func evalChild(t *tree.Tree, ctx *context.Context, idx *int) value.Value {
	if idx == nil {
		return value.UnitValue
	}
	return evalNode(t, ctx, *idx)
}

// evalTouch resolves a literal leaf or an Identifier lookup (spec.md §4.F
// Touch/Identifier).
func evalTouch(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	if n.Operation == tree.OpSymbol {
		v, ok := t.ValueOf(n)
		if !ok {
			return value.UnknownValue
		}
		return v
	}
	if n.DataType == value.Identifier {
		symIdx, ok := t.UsizeValueOf(n)
		if !ok {
			return value.UnknownValue
		}
		v, bound := ctx.GetSymbolValue(int(symIdx))
		if !bound {
			if name, ok := t.Symbols.Symbol(int(symIdx)); ok {
				ctx.Documents.SuggestMissingBinding("identifier", name, t.Symbols.Names())
			}
			return value.UnitValue
		}
		return v
	}
	v, ok := t.ValueOf(n)
	if !ok {
		return value.UnitValue
	}
	return v
}

func fallbackResult(ctx *context.Context) value.Value {
	if v, ok := ctx.LastResult(); ok {
		return v
	}
	return value.UnitValue
}
