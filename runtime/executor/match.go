package executor

import (
	"strings"

	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// evalMatch implements spec.md §4.F's match family: a guard-clause chain
// that tests its left side against the context's current result and, when
// the test holds, evaluates and returns its right side; otherwise it passes
// the current/previous result through unchanged so a chain of match
// operators behaves like a cascading switch.
func evalMatch(t *tree.Tree, ctx *context.Context, n *tree.Node) value.Value {
	fallback := fallbackResult(ctx)
	left := evalChild(t, ctx, n.Left)
	current := fallback

	if matchCondition(t, n.Operation, left, current) {
		return evalChild(t, ctx, n.Right)
	}
	return fallback
}

func matchCondition(t *tree.Tree, op tree.Operation, left, current value.Value) bool {
	switch op {
	case tree.OpMatchTrue:
		return left.Truthy()
	case tree.OpMatchFalse:
		return !left.Truthy()
	case tree.OpMatchEqual:
		return left.Equal(current)
	case tree.OpMatchNotEqual:
		return !left.Equal(current)
	case tree.OpMatchLessThan, tree.OpMatchLessThanEqual, tree.OpMatchGreaterThan, tree.OpMatchGreaterThanEqual:
		lf, lok := left.AsNumeric()
		cf, cok := current.AsNumeric()
		if !lok || !cok {
			return false
		}
		switch op {
		case tree.OpMatchLessThan:
			return cf < lf
		case tree.OpMatchLessThanEqual:
			return cf <= lf
		case tree.OpMatchGreaterThan:
			return cf > lf
		case tree.OpMatchGreaterThanEqual:
			return cf >= lf
		}
		return false
	case tree.OpMatchKeysEqual, tree.OpMatchKeysNotEqual:
		name, _, ok := current.AsSymbol()
		if !ok {
			return op == tree.OpMatchKeysNotEqual
		}
		found := hasKey(t, left, name)
		if op == tree.OpMatchKeysEqual {
			return found
		}
		return !found
	case tree.OpMatchValuesEqual, tree.OpMatchValuesNotEqual:
		found := hasValue(left, current)
		if op == tree.OpMatchValuesEqual {
			return found
		}
		return !found
	case tree.OpMatchContains, tree.OpMatchNotContains:
		found := containsValue(t, left, current)
		if op == tree.OpMatchContains {
			return found
		}
		return !found
	default:
		return false
	}
}

func hasKey(t *tree.Tree, container value.Value, name string) bool {
	ad, ok := container.AsAssociativeList()
	if !ok {
		return false
	}
	symIdx, ok := t.Symbols.Index(name)
	if !ok {
		return false
	}
	for _, e := range ad.Items {
		if e.HasKey && e.Key == uint64(symIdx) {
			return true
		}
	}
	return false
}

func hasValue(container, needle value.Value) bool {
	if ad, ok := container.AsAssociativeList(); ok {
		for _, e := range ad.Items {
			if e.Val.Equal(needle) {
				return true
			}
		}
		return false
	}
	if ld, ok := container.AsList(); ok {
		for _, item := range ld.Items {
			if item.Equal(needle) {
				return true
			}
		}
		return false
	}
	return false
}

func containsValue(t *tree.Tree, container, needle value.Value) bool {
	if s, ok := container.AsString(); ok {
		if n, ok := needle.AsString(); ok {
			return strings.Contains(s, n)
		}
	}
	if hasValue(container, needle) {
		return true
	}
	if name, _, ok := needle.AsSymbol(); ok {
		return hasKey(t, container, name)
	}
	return false
}
