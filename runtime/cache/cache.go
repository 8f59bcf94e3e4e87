// Package cache implements SEL's optional compile cache (SPEC_FULL.md
// §4.H): a process-local, blake2b-keyed store mapping source text to an
// already-compiled Tree, so a host re-compiling identical source repeatedly
// (e.g. a hot rule re-evaluated per request) skips the lex/parse work. It
// never affects compile()'s result, only whether that work is repeated.
package cache

import (
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/sel-lang/sel/core/tree"
)

// Key is a compile cache digest: blake2b-256 of the source text.
type Key [32]byte

// KeyOf digests source into a cache Key.
func KeyOf(source string) Key {
	return blake2b.Sum256([]byte(source))
}

// Cache is a concurrency-safe, unbounded compile cache. Callers that need a
// bound should wrap it with their own eviction policy; SEL doesn't impose
// one, matching spec.md's "doesn't affect compile()'s purity" framing.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*tree.Tree
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[Key]*tree.Tree)}
}

// Get returns the cached Tree for source, if present.
func (c *Cache) Get(source string) (*tree.Tree, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.entries[KeyOf(source)]
	return t, ok
}

// Put records t as the compiled result for source.
func (c *Cache) Put(source string, t *tree.Tree) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[KeyOf(source)] = t
}

// Len reports how many entries the cache currently holds.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CompileFunc compiles source into a Tree; GetOrCompile uses it on a miss.
type CompileFunc func(source string) (*tree.Tree, error)

// GetOrCompile returns the cached Tree for source, compiling and storing it
// via compile on a miss.
func (c *Cache) GetOrCompile(source string, compile CompileFunc) (*tree.Tree, error) {
	if t, ok := c.Get(source); ok {
		return t, nil
	}
	t, err := compile(source)
	if err != nil {
		return nil, err
	}
	c.Put(source, t)
	return t, nil
}
