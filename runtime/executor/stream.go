package executor

import (
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// evalStream implements spec.md §4.F's Stream ("|>>>"): its left side
// evaluates once to an enumerable value; each element is evaluated against
// the right-hand expression in its own cloned context (its own input slot
// and a copy of the results so far, shared function registry and
// identifier bindings), and each
// element's result is pushed into the outer context, not the clone's. The
// Stream node's own value always resolves to StreamClose.
func evalStream(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	source := evalChild(t, ctx, n.Left)
	for _, elem := range toIterable(source) {
		clone := ctx.Clone()
		clone.SetInput(elem)
		result := evalChild(t, clone, n.Right)
		ctx.PushResult(result)
	}
	return value.StreamClose
}

// toIterable widens a value into the elements a Stream walks over: a List's
// items, an Associative List's bound values, a Range's bounds expanded to
// Integers, or, for anything else, the value itself as a single element.
func toIterable(v value.Value) []value.Value {
	switch v.Tag {
	case value.List:
		ld, _ := v.AsList()
		return ld.Items
	case value.AssociativeList:
		ad, _ := v.AsAssociativeList()
		out := make([]value.Value, len(ad.Items))
		for i, e := range ad.Items {
			out[i] = e.Val
		}
		return out
	case value.Range:
		lo, hi, err := value.DecodeRange(v.Payload)
		if err != nil || hi < lo {
			return nil
		}
		out := make([]value.Value, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			out = append(out, value.FromInteger(int64(i)))
		}
		return out
	default:
		return []value.Value{v}
	}
}

func isPipe(op tree.Operation) bool {
	switch op {
	case tree.OpPipeFirstRight, tree.OpPipeFirstLeft, tree.OpPipeLastRight, tree.OpPipeLastLeft:
		return true
	default:
		return false
	}
}
