package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/runtime/compiler"
)

func TestCacheMissThenHit(t *testing.T) {
	t.Parallel()
	c := New()

	_, ok := c.Get("5 + 10")
	assert.False(t, ok)

	tr, err := compiler.Compile("5 + 10")
	require.NoError(t, err)
	c.Put("5 + 10", tr)

	got, ok := c.Get("5 + 10")
	require.True(t, ok)
	assert.Same(t, tr, got)
	assert.Equal(t, 1, c.Len())
}

func TestGetOrCompileCompilesOnceAndReusesResult(t *testing.T) {
	t.Parallel()
	c := New()
	calls := 0
	compile := func(source string) (*tree.Tree, error) {
		calls++
		return compiler.Compile(source)
	}

	first, err := c.GetOrCompile("5 * 2", compile)
	require.NoError(t, err)
	second, err := c.GetOrCompile("5 * 2", compile)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls, "a cache hit must not call compile again")
}

func TestGetOrCompilePropagatesCompileError(t *testing.T) {
	t.Parallel()
	c := New()
	_, err := c.GetOrCompile("", compiler.Compile)
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len(), "a failed compile must not be cached")
}
