package executor

import (
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// evalContainer implements spec.md §4.F's Pair, List (left-fold flatten),
// and AssociativeList (symbol-keyed + positional) construction.
func evalContainer(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	left := evalChild(t, ctx, n.Left)
	right := evalChild(t, ctx, n.Right)

	switch n.Operation {
	case tree.OpPair:
		return value.FromPair(left, right)

	case tree.OpList:
		items := flattenList(left)
		items = append(items, flattenList(right)...)
		return value.FromList(items)

	case tree.OpAssociativeList:
		entries := flattenAssoc(left)
		entries = append(entries, flattenAssoc(right)...)
		return value.FromAssociativeList(entries)

	default:
		return value.UnknownValue
	}
}

func flattenList(v value.Value) []value.Value {
	if ld, ok := v.AsList(); ok {
		return ld.Items
	}
	return []value.Value{v}
}

// flattenAssoc turns one operand of an AssociativeList chain into its
// entries: an existing AssociativeList's entries pass through, a Pair
// becomes a symbol-keyed entry when its left side is a Symbol and a
// positional entry otherwise, and any other value becomes one positional
// entry.
func flattenAssoc(v value.Value) []value.AssocEntry {
	if ad, ok := v.AsAssociativeList(); ok {
		return ad.Items
	}
	if pd, ok := v.AsPair(); ok {
		if _, symIdx, ok := pd.Left.AsSymbol(); ok {
			return []value.AssocEntry{{HasKey: true, Key: symIdx, Val: pd.Right}}
		}
		return []value.AssocEntry{{Val: pd.Right}}
	}
	return []value.AssocEntry{{Val: v}}
}
