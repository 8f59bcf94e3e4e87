// Package context implements SEL's execution context (spec.md §3, §4.B):
// the mutable, per-evaluation companion to an immutable compiled Tree.
package context

import (
	"github.com/sel-lang/sel/core/diagnostics"
	"github.com/sel-lang/sel/core/symbols"
	"github.com/sel-lang/sel/core/value"
)

// HostFunc is a host-registered function: a synchronous Value -> Value call
// (spec.md §4.B, §6 call surface).
type HostFunc func(value.Value) value.Value

// Context holds the input value, host-seeded identifier bindings, the
// host-registered function registry, and the append-only results list an
// evaluation accumulates (spec.md §3 "Execution context").
type Context struct {
	symbols *symbols.Table

	input      *value.Value
	identifier map[int]value.Value
	functions  map[string]HostFunc
	results    []value.Value

	Documents *diagnostics.Document
}

// New returns an empty Context bound to symbols, the symbol table the
// compiled Tree it will evaluate was built against (needed so
// set-by-name helpers can resolve identifier indices consistently).
func New(symbolTable *symbols.Table) *Context {
	return &Context{
		symbols:    symbolTable,
		identifier: make(map[int]value.Value),
		functions:  make(map[string]HostFunc),
		Documents:  diagnostics.NewDocument(),
	}
}

// SetInput sets the context's current input value (spec.md §4.B set-input).
func (c *Context) SetInput(v value.Value) { c.input = &v }

// GetInput returns the context's input value, if set (spec.md §4.B get-input).
func (c *Context) GetInput() (value.Value, bool) {
	if c.input == nil {
		return value.Value{}, false
	}
	return *c.input, true
}

// PushResult appends v to the results list (spec.md §4.B push-result).
func (c *Context) PushResult(v value.Value) { c.results = append(c.results, v) }

// Results returns every result pushed so far, in order (spec.md §4.B get-results).
func (c *Context) Results() []value.Value {
	out := make([]value.Value, len(c.results))
	copy(out, c.results)
	return out
}

// LastResult returns the most recently pushed result, if any.
func (c *Context) LastResult() (value.Value, bool) {
	if len(c.results) == 0 {
		return value.Value{}, false
	}
	return c.results[len(c.results)-1], true
}

// SetSymbolValue seeds the value bound to a symbol-table index (spec.md §4.B,
// the host-seeded identifier map).
func (c *Context) SetSymbolValue(symbolIndex int, v value.Value) {
	c.identifier[symbolIndex] = v
}

// SetIntegerSymbol interns name in the context's symbol table (creating it
// if new) and seeds it to an Integer value (spec.md §6 set_integer_symbol).
func (c *Context) SetIntegerSymbol(name string, i int64) int {
	idx := c.symbols.Add(name)
	c.SetSymbolValue(idx, value.FromInteger(i))
	return idx
}

// GetSymbolValue returns the value bound to a symbol-table index, if any
// (spec.md §4.B get-symbol-value).
func (c *Context) GetSymbolValue(symbolIndex int) (value.Value, bool) {
	v, ok := c.identifier[symbolIndex]
	return v, ok
}

// RegisterFunction registers fn under name (spec.md §4.B register-function,
// §6 Context::register_function).
func (c *Context) RegisterFunction(name string, fn HostFunc) {
	c.functions[name] = fn
}

// LookupFunction returns the function registered under name, if any
// (spec.md §4.B lookup-function).
func (c *Context) LookupFunction(name string) (HostFunc, bool) {
	fn, ok := c.functions[name]
	return fn, ok
}

// FunctionNames returns every registered function name, for "did you mean"
// diagnostics on a missed lookup.
func (c *Context) FunctionNames() []string {
	out := make([]string, 0, len(c.functions))
	for name := range c.functions {
		out = append(out, name)
	}
	return out
}

// Symbols returns the context's symbol table.
func (c *Context) Symbols() *symbols.Table { return c.symbols }

// Clone performs the deep-copy-of-results, shared-function-registry clone
// spec.md §4.B mandates for stream evaluation: each stream element gets its
// own results list and input slot but shares the one function registry.
func (c *Context) Clone() *Context {
	clone := &Context{
		symbols:    c.symbols,
		identifier: c.identifier, // shared: spec.md doesn't ask for a deep copy here
		functions:  c.functions,  // shared reference, per spec.md §4.B
		Documents:  c.Documents,
	}
	clone.results = make([]value.Value, len(c.results))
	copy(clone.results, c.results)
	if c.input != nil {
		in := *c.input
		clone.input = &in
	}
	return clone
}
