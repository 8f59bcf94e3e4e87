// Package compiler implements SEL's compile step (spec.md §4.D, §4.E):
// turning a token stream into an operator tree over a shared node arena,
// value heap, and symbol table.
package compiler

import (
	"fmt"
	"log/slog"

	"github.com/sel-lang/sel/core/diagnostics"
	"github.com/sel-lang/sel/core/heap"
	"github.com/sel-lang/sel/core/symbols"
	"github.com/sel-lang/sel/core/token"
	"github.com/sel-lang/sel/core/tree"
	"github.com/sel-lang/sel/core/value"
)

// Builder turns one token stream into a tree.Tree, via a precedence-climbing
// recursive descent that allocates arena nodes bottom-up: a node's children
// always exist before the node linking them does, so this builder wires
// Left/Right/Parent directly at construction time rather than deferring
// through tree.Change batches (tree.ApplyChanges remains the batch-rewrite
// primitive a later in-place edit, e.g. of a cached tree, would use).
type Builder struct {
	tokens []token.Token
	pos    int

	nodes   []tree.Node
	heap    *heap.Heap
	symbols *symbols.Table
	docs    *diagnostics.Document
	nested  []tree.ExpressionSubTree

	log *slog.Logger
}

// NewBuilder returns a Builder over tokens. symbolTable lets a caller
// pre-seed identifiers the host has already bound (spec.md §4.B), so their
// indices stay stable across repeated compiles of related source.
func NewBuilder(tokens []token.Token, symbolTable *symbols.Table, log *slog.Logger) *Builder {
	if symbolTable == nil {
		symbolTable = symbols.New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		tokens:  tokens,
		symbols: symbolTable,
		heap:    heap.New(),
		docs:    diagnostics.NewDocument(),
		log:     log,
	}
}

// Compile runs the four-phase build (spec.md §4.E): statement splitting,
// per-statement precedence-climbing resolution, root/sub-root assembly, and
// (via parsePrimary's START_EXPRESSION_BLOCK case) nested Expression blocks
// compiled in place sharing this builder's arena, heap, and symbol table.
func (b *Builder) Compile() (*tree.Tree, error) {
	b.log.Debug("compiler: starting compile", "tokens", len(b.tokens))
	roots, err := b.parseProgram()
	if err != nil {
		return nil, err
	}
	b.log.Debug("compiler: parsed roots", "count", len(roots), "nodes", len(b.nodes))
	if len(roots) == 0 {
		return nil, fmt.Errorf("compiler: empty program")
	}

	t := &tree.Tree{
		Nodes:     b.nodes,
		Heap:      b.heap,
		Symbols:   b.symbols,
		Root:      roots[0],
		SubRoots:  roots[1:],
		Nested:    b.nested,
		Documents: b.docs,
	}
	if err := t.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("compiler: %w", err)
	}
	return t, nil
}

// parseProgram splits the token stream on top-level LINE_END tokens and
// compiles each non-empty statement into its own root (spec.md §4.E Phase 3
// root identification; the first statement becomes Tree.Root, the rest
// Tree.SubRoots).
func (b *Builder) parseProgram() ([]int, error) {
	var roots []int
	for !b.atEnd() {
		for b.peekIs(token.LINE_END) || b.peekIs(token.COMMENT_ANNOTATION) || b.peekIs(token.DOCUMENT_ANNOTATION) {
			b.consumeAnnotationOrLineEnd()
		}
		if b.atEnd() {
			break
		}
		idx, err := b.parseExpr(precStream)
		if err != nil {
			return nil, err
		}
		roots = append(roots, idx)
		for b.peekIs(token.LINE_END) || b.peekIs(token.COMMENT_ANNOTATION) || b.peekIs(token.DOCUMENT_ANNOTATION) {
			b.consumeAnnotationOrLineEnd()
		}
	}
	return roots, nil
}

func (b *Builder) consumeAnnotationOrLineEnd() {
	tok := b.advance()
	if tok.Type == token.COMMENT_ANNOTATION || tok.Type == token.DOCUMENT_ANNOTATION {
		b.docs.AddLine(tok.Lexeme)
	}
}

// parseBlockStatements parses statements until a terminator token is next
// (without consuming it), for the bodies of nested Expression blocks
// (spec.md §4.E Phase 4).
func (b *Builder) parseBlockStatements(terminator token.Type) ([]int, error) {
	var roots []int
	for !b.atEnd() && !b.peekIs(terminator) {
		for !b.atEnd() && (b.peekIs(token.LINE_END) || b.peekIs(token.COMMENT_ANNOTATION) || b.peekIs(token.DOCUMENT_ANNOTATION)) {
			b.consumeAnnotationOrLineEnd()
		}
		if b.atEnd() || b.peekIs(terminator) {
			break
		}
		idx, err := b.parseExpr(precStream)
		if err != nil {
			return nil, err
		}
		roots = append(roots, idx)
		for !b.atEnd() && (b.peekIs(token.LINE_END) || b.peekIs(token.COMMENT_ANNOTATION) || b.peekIs(token.DOCUMENT_ANNOTATION)) {
			b.consumeAnnotationOrLineEnd()
		}
	}
	return roots, nil
}

func (b *Builder) atEnd() bool { return b.pos >= len(b.tokens) }

func (b *Builder) peek() token.Token {
	if b.atEnd() {
		return token.Token{Type: token.EOF}
	}
	return b.tokens[b.pos]
}

func (b *Builder) peekIs(t token.Type) bool { return b.peek().Type == t }

func (b *Builder) advance() token.Token {
	tok := b.peek()
	if !b.atEnd() {
		b.pos++
	}
	return tok
}

func (b *Builder) expect(t token.Type) (token.Token, error) {
	if !b.peekIs(t) {
		got := b.peek()
		return token.Token{}, fmt.Errorf("compiler: expected %s, got %s at line %d column %d", t, got.Type, got.Pos.Line, got.Pos.Column)
	}
	return b.advance(), nil
}

func (b *Builder) allocNode(op tree.Operation, dt value.DataType, val *int) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, tree.NewNode(idx, op, dt, val))
	return idx
}

func (b *Builder) setLeft(parent, child int) {
	b.nodes[parent].Left = tree.IntPtr(child)
	b.nodes[child].Parent = tree.IntPtr(parent)
}

func (b *Builder) setRight(parent, child int) {
	b.nodes[parent].Right = tree.IntPtr(child)
	b.nodes[child].Parent = tree.IntPtr(parent)
}

// parseExpr implements the precedence-climbing core of spec.md §4.D /
// §4.E's resolve_tree / resolve_node: parse a unary operand, then fold in
// binary operators whose precedence is at least minPrec, descending with
// prec+1 for left-associative operators and prec for right-associative
// ones so chains like a ** b ** c nest as a ** (b ** c).
func (b *Builder) parseExpr(minPrec int) (int, error) {
	left, err := b.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		info, ok := binaryOps[b.peek().Type]
		if !ok || info.prec < minPrec {
			break
		}
		b.advance()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right, err := b.parseExpr(nextMin)
		if err != nil {
			return 0, err
		}
		idx := b.allocNode(info.op, value.Unknown, nil)
		b.setLeft(idx, left)
		b.setRight(idx, right)
		left = idx
	}
	return left, nil
}

// parseUnary handles the prefix operators of spec.md §4.D's unary tier:
// Negation ("-"), built only when the preceding token context makes "-" a
// prefix rather than Subtraction (the Pratt structure here means "-" only
// reaches parseUnary when it cannot first be consumed as an infix operator,
// which already disambiguates it), and logical Not ("!").
func (b *Builder) parseUnary() (int, error) {
	switch b.peek().Type {
	case token.MINUS:
		b.advance()
		operand, err := b.parseUnary()
		if err != nil {
			return 0, err
		}
		idx := b.allocNode(tree.OpNegation, value.Unknown, nil)
		b.setRight(idx, operand)
		return idx, nil
	case token.BANG:
		b.advance()
		operand, err := b.parseUnary()
		if err != nil {
			return 0, err
		}
		idx := b.allocNode(tree.OpNot, value.Unknown, nil)
		b.setRight(idx, operand)
		return idx, nil
	default:
		return b.parsePostfix()
	}
}

// parsePostfix parses one primary expression, then wires any zero-arg or
// parenthesized call directly adjacent to an identifier into an OpGroup
// call node (spec.md §4.F Group: "has-left=function call via context
// lookup"). Dot-access chains are handled by the generic binary table since
// DOT appears there at precDotAccess.
func (b *Builder) parsePostfix() (int, error) {
	primary, isIdentifier, err := b.parsePrimary()
	if err != nil {
		return 0, err
	}
	if !isIdentifier {
		return primary, nil
	}
	for b.peekIs(token.UNIT) || b.peekIs(token.START_GROUP) {
		callIdx := b.allocNode(tree.OpGroup, value.Unknown, nil)
		b.setLeft(callIdx, primary)
		if b.peekIs(token.UNIT) {
			b.advance()
		} else {
			args, err := b.parseCallArgs()
			if err != nil {
				return 0, err
			}
			if args != nil {
				b.setRight(callIdx, *args)
			}
		}
		primary = callIdx
	}
	return primary, nil
}

// parseCallArgs parses "(" ... ")" call arguments. Commas inside bind at
// precList, so a multi-argument call naturally folds into the same OpList
// left-fold chain a bare top-level comma expression would build.
func (b *Builder) parseCallArgs() (*int, error) {
	if _, err := b.expect(token.START_GROUP); err != nil {
		return nil, err
	}
	if b.peekIs(token.END_GROUP) {
		b.advance()
		return nil, nil
	}
	idx, err := b.parseExpr(precList)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.END_GROUP); err != nil {
		return nil, err
	}
	return &idx, nil
}

// parsePrimary parses one atom: a literal, Input/CurrentResult, a symbol
// literal, an identifier (returned with isIdentifier=true so parsePostfix
// can attach a call), a parenthesized sub-expression, an associative list,
// or a nested expression block.
func (b *Builder) parsePrimary() (idx int, isIdentifier bool, err error) {
	tok := b.peek()
	switch tok.Type {
	case token.INTEGER:
		b.advance()
		vi, ok := b.heap.InsertFromString(value.Integer, tok.Lexeme)
		if !ok {
			return 0, false, fmt.Errorf("compiler: invalid integer literal %q at line %d", tok.Lexeme, tok.Pos.Line)
		}
		return b.allocNode(tree.OpTouch, value.Integer, tree.IntPtr(vi)), false, nil

	case token.DECIMAL:
		b.advance()
		vi, ok := b.heap.InsertFromString(value.Decimal, tok.Lexeme)
		if !ok {
			return 0, false, fmt.Errorf("compiler: invalid decimal literal %q at line %d", tok.Lexeme, tok.Pos.Line)
		}
		return b.allocNode(tree.OpTouch, value.Decimal, tree.IntPtr(vi)), false, nil

	case token.SINGLE_QUOTED_STRING, token.DOUBLE_QUOTED_STRING, token.FORMATTED_STRING:
		b.advance()
		vi := b.heap.Insert(value.FromString(tok.Lexeme))
		return b.allocNode(tree.OpTouch, value.String, tree.IntPtr(vi)), false, nil

	case token.BOOLEAN:
		b.advance()
		vi, _ := b.heap.InsertFromString(value.Boolean, tok.Lexeme)
		return b.allocNode(tree.OpTouch, value.Boolean, tree.IntPtr(vi)), false, nil

	case token.UNIT:
		b.advance()
		vi := b.heap.Insert(value.UnitValue)
		return b.allocNode(tree.OpTouch, value.Unit, tree.IntPtr(vi)), false, nil

	case token.INPUT:
		b.advance()
		return b.allocNode(tree.OpInput, value.Input, nil), false, nil

	case token.CURRENT_RESULT:
		b.advance()
		return b.allocNode(tree.OpCurrentResult, value.CurrentResult, nil), false, nil

	case token.SYMBOL_PREFIX:
		b.advance()
		name, err := b.expect(token.IDENTIFIER)
		if err != nil {
			return 0, false, err
		}
		symIdx := b.symbols.Add(name.Lexeme)
		vi := b.heap.Insert(value.FromSymbol(name.Lexeme, uint64(symIdx)))
		return b.allocNode(tree.OpSymbol, value.Symbol, tree.IntPtr(vi)), false, nil

	case token.IDENTIFIER:
		b.advance()
		symIdx := b.symbols.Add(tok.Lexeme)
		vi := b.heap.InsertInteger(int64(symIdx))
		return b.allocNode(tree.OpTouch, value.Identifier, tree.IntPtr(vi)), true, nil

	case token.START_GROUP:
		b.advance()
		inner, err := b.parseExpr(precStream)
		if err != nil {
			return 0, false, err
		}
		if _, err := b.expect(token.END_GROUP); err != nil {
			return 0, false, err
		}
		// The parens only override precedence during parsing; per spec.md
		// §4.E's group collapse, the opener is unwrapped and the inner
		// expression's own root takes its place in the tree.
		return inner, false, nil

	case token.START_ASSOCIATIVE_LIST:
		return b.parseAssociativeList()

	case token.START_EXPRESSION_BLOCK:
		return b.parseExpressionBlock()

	default:
		return 0, false, fmt.Errorf("compiler: unexpected token %s at line %d column %d", tok.Type, tok.Pos.Line, tok.Pos.Column)
	}
}

// parseAssociativeList parses "[" key = value, ... "]" into a left-folded
// chain of OpAssociativeList nodes over OpPair entries (spec.md §4.F
// AssociativeList: "symbol-keyed + positional").
func (b *Builder) parseAssociativeList() (int, bool, error) {
	b.advance() // [
	var entries []int
	for !b.peekIs(token.END_ASSOCIATIVE_LIST) {
		key, err := b.parseExpr(precList + 1)
		if err != nil {
			return 0, false, err
		}
		val := key
		if b.peekIs(token.EQUAL) {
			b.advance()
			val, err = b.parseExpr(precList + 1)
			if err != nil {
				return 0, false, err
			}
		}
		pairIdx := b.allocNode(tree.OpPair, value.Unknown, nil)
		b.setLeft(pairIdx, key)
		b.setRight(pairIdx, val)
		entries = append(entries, pairIdx)
		if b.peekIs(token.COMMA) {
			b.advance()
			continue
		}
		break
	}
	if _, err := b.expect(token.END_ASSOCIATIVE_LIST); err != nil {
		return 0, false, err
	}
	if len(entries) == 0 {
		return b.allocNode(tree.OpAssociativeList, value.AssociativeList, nil), false, nil
	}
	node := entries[0]
	for _, e := range entries[1:] {
		idx := b.allocNode(tree.OpAssociativeList, value.AssociativeList, nil)
		b.setLeft(idx, node)
		b.setRight(idx, e)
		node = idx
	}
	return node, false, nil
}

// parseExpressionBlock parses "{" ... "}" as a nested Expression sub-tree
// (spec.md §4.E Phase 4): its statements compile in place, sharing this
// builder's arena, heap, and symbol table, and the block itself becomes an
// opaque Expression-typed leaf recording where to find its sub-tree.
func (b *Builder) parseExpressionBlock() (int, bool, error) {
	b.advance() // {
	roots, err := b.parseBlockStatements(token.END_EXPRESSION_BLOCK)
	if err != nil {
		return 0, false, err
	}
	if _, err := b.expect(token.END_EXPRESSION_BLOCK); err != nil {
		return 0, false, err
	}
	if len(roots) == 0 {
		vi := b.heap.Insert(value.UnitValue)
		return b.allocNode(tree.OpExpression, value.Expression, tree.IntPtr(vi)), false, nil
	}

	nestedIdx := len(b.nested)
	b.nested = append(b.nested, tree.ExpressionSubTree{Root: roots[0], SubRoots: roots[1:]})

	vi := b.heap.Insert(value.FromExpression(uint64(nestedIdx)))
	return b.allocNode(tree.OpExpression, value.Expression, tree.IntPtr(vi)), false, nil
}
