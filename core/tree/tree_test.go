package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sel-lang/sel/core/heap"
	"github.com/sel-lang/sel/core/symbols"
	"github.com/sel-lang/sel/core/value"
)

// buildAdditionTree builds the tree for "5 + 10": two leaves under one
// Addition node.
func buildAdditionTree() *Tree {
	h := heap.New()
	leftVal := h.InsertInteger(5)
	rightVal := h.InsertInteger(10)

	nodes := []Node{
		NewNode(0, OpAddition, value.Unknown, nil),
		NewNode(1, OpTouch, value.Integer, IntPtr(leftVal)),
		NewNode(2, OpTouch, value.Integer, IntPtr(rightVal)),
	}
	ApplyChanges(nodes, []Change{
		{Index: 0, NewVal: IntPtr(1), Side: Left},
		{Index: 0, NewVal: IntPtr(2), Side: Right},
		{Index: 1, NewVal: IntPtr(0), Side: Parent},
		{Index: 2, NewVal: IntPtr(0), Side: Parent},
	})

	return &Tree{Nodes: nodes, Heap: h, Symbols: symbols.New(), Root: 0}
}

func TestCheckInvariantsPassesOnWellFormedTree(t *testing.T) {
	t.Parallel()
	tr := buildAdditionTree()
	assert.NoError(t, tr.CheckInvariants())
}

func TestCheckInvariantsCatchesDanglingParent(t *testing.T) {
	t.Parallel()
	tr := buildAdditionTree()
	ApplyChanges(tr.Nodes, []Change{{Index: 1, NewVal: IntPtr(99), Side: Parent}})
	assert.Error(t, tr.CheckInvariants())
}

func TestCheckInvariantsCatchesRootWithParent(t *testing.T) {
	t.Parallel()
	tr := buildAdditionTree()
	ApplyChanges(tr.Nodes, []Change{{Index: 0, NewVal: IntPtr(1), Side: Parent}})
	assert.Error(t, tr.CheckInvariants())
}

func TestValueOfAndRootNode(t *testing.T) {
	t.Parallel()
	tr := buildAdditionTree()

	root := tr.RootNode()
	require.NotNil(t, root)
	assert.Equal(t, OpAddition, root.Operation)

	leftNode, ok := tr.Node(*root.Left)
	require.True(t, ok)
	v, ok := tr.ValueOf(leftNode)
	require.True(t, ok)
	i, ok := v.AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(5), i)
}
