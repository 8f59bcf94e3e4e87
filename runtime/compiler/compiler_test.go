package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
)

func TestCompileSimpleAddition(t *testing.T) {
	t.Parallel()
	tr, err := Compile("5 + 10")
	require.NoError(t, err)
	require.NoError(t, tr.CheckInvariants())

	root := tr.RootNode()
	assert.Equal(t, tree.OpAddition, root.Operation)

	left, ok := tr.Node(*root.Left)
	require.True(t, ok)
	v, ok := tr.ValueOf(left)
	require.True(t, ok)
	i, _ := v.AsI64()
	assert.Equal(t, int64(5), i)
}

func TestCompileRespectsMultiplicativeOverAdditivePrecedence(t *testing.T) {
	t.Parallel()
	tr, err := Compile("5 + 10 * 2")
	require.NoError(t, err)

	root := tr.RootNode()
	assert.Equal(t, tree.OpAddition, root.Operation, "multiplication must bind tighter, leaving + at the root")

	right, ok := tr.Node(*root.Right)
	require.True(t, ok)
	assert.Equal(t, tree.OpMultiplication, right.Operation)
}

func TestCompileParenthesesOverridePrecedence(t *testing.T) {
	t.Parallel()
	tr, err := Compile("5 * (10 + 15)")
	require.NoError(t, err)

	root := tr.RootNode()
	assert.Equal(t, tree.OpMultiplication, root.Operation)

	right, ok := tr.Node(*root.Right)
	require.True(t, ok)
	assert.Equal(t, tree.OpAddition, right.Operation, "the parenthesized group collapses, leaving its inner root in place")
}

func TestCompileExponentialIsRightAssociative(t *testing.T) {
	t.Parallel()
	tr, err := Compile("2 ** 3 ** 2")
	require.NoError(t, err)

	root := tr.RootNode()
	require.Equal(t, tree.OpExponential, root.Operation)

	right, ok := tr.Node(*root.Right)
	require.True(t, ok)
	assert.Equal(t, tree.OpExponential, right.Operation, "2 ** 3 ** 2 must nest as 2 ** (3 ** 2)")
}

func TestCompileMultipleStatementsProduceSubRoots(t *testing.T) {
	t.Parallel()
	tr, err := Compile("5 + 10\n? + 20")
	require.NoError(t, err)
	require.Len(t, tr.SubRoots, 1)

	root := tr.RootNode()
	assert.Equal(t, tree.OpAddition, root.Operation)

	sub, ok := tr.SubRootNode(0)
	require.True(t, ok)
	assert.Equal(t, tree.OpAddition, sub.Operation)

	subLeft, ok := tr.Node(*sub.Left)
	require.True(t, ok)
	assert.Equal(t, tree.OpCurrentResult, subLeft.Operation)
}

func TestCompileFunctionCallBuildsGroupNode(t *testing.T) {
	t.Parallel()
	tr, err := Compile("double(21)")
	require.NoError(t, err)

	root := tr.RootNode()
	assert.Equal(t, tree.OpGroup, root.Operation)
	require.NotNil(t, root.Left)

	callee, ok := tr.Node(*root.Left)
	require.True(t, ok)
	assert.Equal(t, value.Identifier, callee.DataType)
}

func TestCompileAssociativeListBuildsSymbolKeyedEntries(t *testing.T) {
	t.Parallel()
	tr, err := Compile(`[:status = 200, :body = "ok"]`)
	require.NoError(t, err)
	require.NoError(t, tr.CheckInvariants())

	root := tr.RootNode()
	assert.Equal(t, tree.OpAssociativeList, root.Operation)
}

func TestCompileEmptyProgramErrors(t *testing.T) {
	t.Parallel()
	_, err := Compile("")
	assert.Error(t, err)
}
