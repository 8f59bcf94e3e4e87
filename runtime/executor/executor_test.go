package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/compiler"
	"github.com/sel-lang/sel/runtime/context"
)

func run(t *testing.T, source string) []value.Value {
	t.Helper()
	tr, err := compiler.Compile(source)
	require.NoError(t, err)
	ctx := context.New(tr.Symbols)
	return Execute(tr, ctx)
}

func runWithContext(t *testing.T, source string, setup func(*context.Context)) []value.Value {
	t.Helper()
	tr, err := compiler.Compile(source)
	require.NoError(t, err)
	ctx := context.New(tr.Symbols)
	if setup != nil {
		setup(ctx)
	}
	return Execute(tr, ctx)
}

func TestExecuteArithmeticPromotion(t *testing.T) {
	t.Parallel()
	results := run(t, "5 + 10 / 2")
	require.Len(t, results, 1)
	f, ok := results[0].AsF64()
	require.True(t, ok, "division always promotes to Decimal")
	assert.Equal(t, 10.0, f)
}

func TestExecuteIntegerDivisionStaysInteger(t *testing.T) {
	t.Parallel()
	results := run(t, "7 // 2")
	require.Len(t, results, 1)
	i, ok := results[0].AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(3), i)
}

func TestExecuteDivisionByZeroIsUnknown(t *testing.T) {
	t.Parallel()
	results := run(t, "5 / 0")
	require.Len(t, results, 1)
	assert.Equal(t, value.Unknown, results[0].Tag)
}

func TestExecuteStringConcatenation(t *testing.T) {
	t.Parallel()
	results := run(t, `"a" + "b"`)
	require.Len(t, results, 1)
	s, ok := results[0].AsString()
	require.True(t, ok)
	assert.Equal(t, "ab", s)
}

func TestExecuteStringPlusIntegerCoercesToString(t *testing.T) {
	t.Parallel()
	results := run(t, `"n=" + 5`)
	require.Len(t, results, 1)
	s, ok := results[0].AsString()
	require.True(t, ok)
	assert.Equal(t, "n=5", s)
}

func TestExecuteComparisonAndEquality(t *testing.T) {
	t.Parallel()
	results := run(t, "5 == 5\n10 > 5\n10 < 5")
	require.Len(t, results, 3)
	assert.True(t, results[0].Truthy())
	assert.True(t, results[1].Truthy())
	assert.False(t, results[2].Truthy())
}

func TestExecuteLogicalOperatorsAreNotShortCircuiting(t *testing.T) {
	t.Parallel()
	results := run(t, "true || false\ntrue && false")
	require.Len(t, results, 2)
	assert.True(t, results[0].Truthy())
	assert.False(t, results[1].Truthy())

	calls := 0
	results = runWithContext(t, "false && hit()\ntrue || hit()", func(ctx *context.Context) {
		ctx.RegisterFunction("hit", func(v value.Value) value.Value {
			calls++
			return value.FromBool(true)
		})
	})
	require.Len(t, results, 2)
	assert.Equal(t, 2, calls, "the right operand is evaluated even when the left one decides the result")
}

func TestExecuteBitwiseOperators(t *testing.T) {
	t.Parallel()
	results := run(t, "6 & 3\n6 | 1\n1 << 4")
	require.Len(t, results, 3)
	i0, _ := results[0].AsI64()
	i1, _ := results[1].AsI64()
	i2, _ := results[2].AsI64()
	assert.Equal(t, int64(2), i0)
	assert.Equal(t, int64(7), i1)
	assert.Equal(t, int64(16), i2)
}

func TestExecutePairAndListConstruction(t *testing.T) {
	t.Parallel()
	results := run(t, "1, 2, 3")
	require.Len(t, results, 1)
	list, ok := results[0].AsList()
	require.True(t, ok)
	require.Len(t, list.Items, 3)

	pairResults := run(t, "1 = 2")
	require.Len(t, pairResults, 1)
	pair, ok := pairResults[0].AsPair()
	require.True(t, ok)
	left, _ := pair.Left.AsI64()
	right, _ := pair.Right.AsI64()
	assert.Equal(t, int64(1), left)
	assert.Equal(t, int64(2), right)
}

func TestExecuteAssociativeListDotAccess(t *testing.T) {
	t.Parallel()
	results := run(t, `[:status = 200].status`)
	require.Len(t, results, 1)
	i, ok := results[0].AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(200), i)
}

func TestExecutePairDotAccess(t *testing.T) {
	t.Parallel()
	results := run(t, `(1 = 2).left`)
	require.Len(t, results, 1)
	i, ok := results[0].AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(1), i)
}

func TestExecuteGroupCallWithRegisteredFunction(t *testing.T) {
	t.Parallel()
	results := runWithContext(t, "double(21)", func(ctx *context.Context) {
		ctx.RegisterFunction("double", func(v value.Value) value.Value {
			i, _ := v.AsI64()
			return value.FromInteger(i * 2)
		})
	})
	require.Len(t, results, 1)
	i, ok := results[0].AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)
}

func TestExecuteGroupCallWithMissingFunctionIsUnit(t *testing.T) {
	t.Parallel()
	results := run(t, "missing(1)")
	require.Len(t, results, 1)
	assert.Equal(t, value.Unit, results[0].Tag)
}

func TestExecuteStreamPushesPerElementResultsWithoutStreamCloseItself(t *testing.T) {
	t.Parallel()
	results := run(t, "1, 2, 3 |>>> $ * 10")
	require.Len(t, results, 3)
	for i, want := range []int64{10, 20, 30} {
		got, ok := results[i].AsI64()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestExecuteMatchEqualReturnsRightOnMatch(t *testing.T) {
	t.Parallel()
	results := run(t, "5\n? ==> 99")
	require.Len(t, results, 2)
	i, ok := results[1].AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(99), i, "current result (5) equals left (5), so right (99) wins")
}

func TestExecuteMatchEqualFallsThroughOnMiss(t *testing.T) {
	t.Parallel()
	results := run(t, "5\n6 ==> 99")
	require.Len(t, results, 2)
	i, ok := results[1].AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(5), i, "current result (5) does not equal left (6), falls back to 5")
}

func TestExecutePipeThreadsValueAsFirstArgument(t *testing.T) {
	t.Parallel()
	results := runWithContext(t, "5 -> double()", func(ctx *context.Context) {
		ctx.RegisterFunction("double", func(v value.Value) value.Value {
			i, _ := v.AsI64()
			return value.FromInteger(i * 2)
		})
	})
	require.Len(t, results, 1)
	i, ok := results[0].AsI64()
	require.True(t, ok)
	assert.Equal(t, int64(10), i)
}

func TestExecuteExpressionReturnsOpaqueValueUnevaluated(t *testing.T) {
	t.Parallel()
	results := run(t, "{ 1 + 2 }")
	require.Len(t, results, 1)
	_, ok := results[0].AsExpression()
	require.True(t, ok, "an Expression block resolves to an opaque un-evaluated reference")
}

func TestExecuteInputAndCurrentResultFallBackToUnit(t *testing.T) {
	t.Parallel()
	results := run(t, "$\n?")
	require.Len(t, results, 2)
	assert.Equal(t, value.Unit, results[0].Tag)
	assert.Equal(t, value.Unit, results[1].Tag)
}

func TestExecuteUnboundIdentifierIsUnit(t *testing.T) {
	t.Parallel()
	results := run(t, "x")
	require.Len(t, results, 1)
	assert.Equal(t, value.Unit, results[0].Tag)
}

func TestExecuteArithmeticWithUnboundIdentifierYieldsUnit(t *testing.T) {
	t.Parallel()
	results := run(t, "x + 5")
	require.Len(t, results, 1)
	assert.Equal(t, value.Unit, results[0].Tag, "any side of Unit yields Unit")
}

func TestExecuteListDotAccessOutOfBoundsIsUnit(t *testing.T) {
	t.Parallel()
	results := run(t, "(1, 2, 3).5")
	require.Len(t, results, 1)
	assert.Equal(t, value.Unit, results[0].Tag)
}

func TestExecuteAssociativeListDotAccessMissingKeyIsUnit(t *testing.T) {
	t.Parallel()
	results := run(t, `[:status = 200].missing`)
	require.Len(t, results, 1)
	assert.Equal(t, value.Unit, results[0].Tag)
}
