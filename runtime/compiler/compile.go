package compiler

import (
	"log/slog"

	"github.com/sel-lang/sel/core/symbols"
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/runtime/lexer"
)

// Compile tokenizes and compiles source into a Tree, using a fresh symbol
// table. It is the entry point matching spec.md §4 compile().
func Compile(source string) (*tree.Tree, error) {
	return CompileWith(source, symbols.New())
}

// CompileWith compiles source against a pre-existing symbol table, so
// identifiers a host has already bound keep the indices it seeded them at
// (spec.md §4.B).
func CompileWith(source string, symbolTable *symbols.Table) (*tree.Tree, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(tokens, symbolTable, slog.Default())
	return b.Compile()
}
