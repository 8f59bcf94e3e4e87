// Package symbols implements SEL's bidirectional symbol table (spec.md §3).
package symbols

// Table is an append-only, bidirectional string<->index interning table.
type Table struct {
	names   []string
	indexOf map[string]int
}

// New returns an empty Table.
func New() *Table {
	return &Table{indexOf: make(map[string]int)}
}

// Add interns symbol, returning its (possibly pre-existing) index. Unlike
// the reference implementation's append-always insert, re-interning an
// identifier that already occurs returns its original index: this keeps
// identifier nodes that name the same variable pointing at one stable slot
// in the execution context's identifier map, which the reference tokenizer
// relies on callers doing via a lookup-before-insert at the call site.
func (t *Table) Add(name string) int {
	if idx, ok := t.indexOf[name]; ok {
		return idx
	}
	idx := len(t.names)
	t.names = append(t.names, name)
	t.indexOf[name] = idx
	return idx
}

// Symbol returns the interned string at index.
func (t *Table) Symbol(index int) (string, bool) {
	if index < 0 || index >= len(t.names) {
		return "", false
	}
	return t.names[index], true
}

// Index returns the index symbol was interned at, if any.
func (t *Table) Index(name string) (int, bool) {
	idx, ok := t.indexOf[name]
	return idx, ok
}

// Len reports how many distinct symbols have been interned.
func (t *Table) Len() int { return len(t.names) }

// Names returns every interned symbol in insertion order, for diagnostics
// (fuzzy "did you mean" suggestions, see core/diagnostics).
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Generation is a fingerprint of table contents: the number of interned
// symbols, which only grows. runtime/cache does not use it; its keys are
// the source text alone.
func (t *Table) Generation() int { return len(t.names) }
