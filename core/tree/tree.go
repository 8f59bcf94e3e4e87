package tree

import (
	"fmt"

	"github.com/sel-lang/sel/core/diagnostics"
	"github.com/sel-lang/sel/core/heap"
	"github.com/sel-lang/sel/core/symbols"
	"github.com/sel-lang/sel/core/value"
)

// ExpressionSubTree records where a nested `{ ... }` expression block was
// compiled in place: its own root index plus any sub-roots from
// multi-statement bodies inside the block (spec.md §4.E Phase 4).
type ExpressionSubTree struct {
	Root     int
	SubRoots []int
}

// Tree is the immutable artifact compile() produces: the node arena, the
// data heap, the symbol table, the root and sub-root indices, and the
// documents gathered from annotation tokens (spec.md §3).
type Tree struct {
	Nodes     []Node
	Heap      *heap.Heap
	Symbols   *symbols.Table
	Root      int
	SubRoots  []int
	Nested    []ExpressionSubTree
	Documents *diagnostics.Document
}

// Node returns the node at index, and whether index was in range.
func (t *Tree) Node(index int) (*Node, bool) {
	if index < 0 || index >= len(t.Nodes) {
		return nil, false
	}
	return &t.Nodes[index], true
}

// RootNode returns the tree's root node.
func (t *Tree) RootNode() *Node {
	n, _ := t.Node(t.Root)
	return n
}

// SubRootNode returns the sub-root node at position i among SubRoots.
func (t *Tree) SubRootNode(i int) (*Node, bool) {
	if i < 0 || i >= len(t.SubRoots) {
		return nil, false
	}
	return t.Node(t.SubRoots[i])
}

// ValueBytesOf returns the raw encoded bytes for node's value slot, if set.
func (t *Tree) ValueBytesOf(n *Node) ([]byte, bool) {
	if n.Value == nil {
		return nil, false
	}
	return t.Heap.GetBytes(*n.Value)
}

// ValueOf returns the decoded Value for node's value slot, if set.
func (t *Tree) ValueOf(n *Node) (value.Value, bool) {
	if n.Value == nil {
		return value.Value{}, false
	}
	return t.Heap.Get(*n.Value)
}

// UsizeValueOf decodes node's value slot as an index (e.g. a symbol-table
// index stored on an Identifier node, or a list-element index literal).
func (t *Tree) UsizeValueOf(n *Node) (uint64, bool) {
	if n.Value == nil {
		return 0, false
	}
	return t.Heap.GetUsize(*n.Value)
}

// CheckInvariants validates the testable properties of spec.md §8 against a
// compiled Tree: every non-root node's parent points back, root/sub-roots
// have no parent, every value index resolves, and every symbol index (on an
// Identifier-typed node) is within range. It returns the first violation
// found, or nil.
func (t *Tree) CheckInvariants() error {
	for i := range t.Nodes {
		n := &t.Nodes[i]
		if i == t.Root {
			if n.Parent != nil {
				return invariantErrorf("root node %d has non-nil parent", i)
			}
		} else if isSubRoot(t.SubRoots, i) {
			if n.Parent != nil {
				return invariantErrorf("sub-root node %d has non-nil parent", i)
			}
		} else if n.Parent != nil {
			parent, ok := t.Node(*n.Parent)
			if !ok {
				return invariantErrorf("node %d parent %d out of range", i, *n.Parent)
			}
			if !(parent.Left != nil && *parent.Left == i) && !(parent.Right != nil && *parent.Right == i) {
				return invariantErrorf("node %d parent %d does not point back", i, *n.Parent)
			}
		}
		if n.Value != nil {
			if _, ok := t.Heap.Get(*n.Value); !ok {
				return invariantErrorf("node %d value index %d out of range", i, *n.Value)
			}
		}
		if n.DataType == value.Identifier && n.Value != nil {
			idx, ok := t.Heap.GetUsize(*n.Value)
			if ok {
				if _, ok := t.Symbols.Symbol(int(idx)); !ok {
					return invariantErrorf("node %d symbol index %d out of range", i, idx)
				}
			}
		}
	}
	return nil
}

func isSubRoot(subRoots []int, i int) bool {
	for _, s := range subRoots {
		if s == i {
			return true
		}
	}
	return false
}

func invariantErrorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
