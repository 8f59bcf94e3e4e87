// Package lexer implements SEL's longest-match tokenizer (spec.md §4.C,
// §6). Tokenization is a straightforward state machine; spec.md treats its
// internal symbol-tree recognizer as an implementation detail, so this
// lexer recognizes the same longest-match table (core/token.Operators)
// with a simple greedy-prefix scan instead of building a trie.
package lexer

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/sel-lang/sel/core/token"
)

// Lexer scans SEL source text into a Token stream.
type Lexer struct {
	src    []rune
	pos    int
	line   int
	column int
	log    *slog.Logger
}

// New returns a Lexer over source, logging trace-level scan events to log
// (pass slog.Default() if nil), matching this codebase's lexer tracing
// convention.
func New(source string, log *slog.Logger) *Lexer {
	if log == nil {
		log = slog.Default()
	}
	return &Lexer{src: []rune(source), line: 1, column: 1, log: log}
}

// Tokenize scans all of source and returns its token stream. A malformed
// source (unterminated string, invalid character) stops the scan early and
// returns the tokens gathered up to that point alongside the error, per
// spec.md §7 "the tokenizer halts early".
func Tokenize(source string) ([]token.Token, error) {
	lx := New(source, slog.Default())
	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return out, err
		}
		if tok.Type == token.EOF {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (l *Lexer) at(off int) (rune, bool) {
	i := l.pos + off
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) pos0() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

// Next scans and returns the next token, or a token.EOF token when the
// source is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	l.skipInsignificantWhitespace()

	if l.pos >= len(l.src) {
		return token.Token{Type: token.EOF, Pos: l.pos0()}, nil
	}

	start := l.pos0()
	r, _ := l.at(0)
	l.log.Debug("lexer: scan", "line", start.Line, "column", start.Column, "char", string(r))

	switch {
	case r == '\n':
		l.advance()
		return token.Token{Type: token.LINE_END, Lexeme: "\n", Pos: start}, nil
	case r == '@':
		return l.scanAnnotation(start)
	case r == '\'':
		return l.scanQuoted(start, '\'', token.SINGLE_QUOTED_STRING)
	case r == '"':
		return l.scanQuoted(start, '"', token.DOUBLE_QUOTED_STRING)
	case r == '`':
		return l.scanQuoted(start, '`', token.FORMATTED_STRING)
	case r == '$':
		if tok, ok := l.scanOperator(start); ok {
			return tok, nil
		}
		l.advance()
		return token.Token{Type: token.INPUT, Lexeme: "$", Pos: start}, nil
	case r == '?':
		l.advance()
		return token.Token{Type: token.CURRENT_RESULT, Lexeme: "?", Pos: start}, nil
	case unicode.IsDigit(r):
		return l.scanNumber(start), nil
	case isIdentStart(r):
		return l.scanIdentifier(start), nil
	default:
		if tok, ok := l.scanOperator(start); ok {
			return tok, nil
		}
		l.advance()
		return token.Token{}, fmt.Errorf("lexer: unexpected character %q at line %d column %d", r, start.Line, start.Column)
	}
}

// skipInsignificantWhitespace skips spaces, tabs, and carriage returns.
// Newlines are not whitespace here: they are the semantically significant
// LineEnd token (spec.md §4.C).
func (l *Lexer) skipInsignificantWhitespace() {
	for {
		r, ok := l.at(0)
		if !ok {
			return
		}
		if r == ' ' || r == '\t' || r == '\r' {
			l.advance()
			continue
		}
		return
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (l *Lexer) scanIdentifier(start token.Position) token.Token {
	var b strings.Builder
	for {
		r, ok := l.at(0)
		if !ok || !isIdentPart(r) {
			break
		}
		b.WriteRune(l.advance())
	}
	lexeme := b.String()
	if lexeme == "true" || lexeme == "false" {
		return token.Token{Type: token.BOOLEAN, Lexeme: lexeme, Pos: start}
	}
	return token.Token{Type: token.IDENTIFIER, Lexeme: lexeme, Pos: start}
}

// scanNumber reads an Integer, or a Decimal if a '.' is immediately
// followed by another digit. A bare trailing '.' (as in a range operator
// like "5..10") is left untouched for operator scanning.
func (l *Lexer) scanNumber(start token.Position) token.Token {
	var b strings.Builder
	for {
		r, ok := l.at(0)
		if !ok || !unicode.IsDigit(r) {
			break
		}
		b.WriteRune(l.advance())
	}

	isDecimal := false
	if r, ok := l.at(0); ok && r == '.' {
		if next, ok := l.at(1); ok && unicode.IsDigit(next) {
			isDecimal = true
			b.WriteRune(l.advance()) // consume '.'
			for {
				r, ok := l.at(0)
				if !ok || !unicode.IsDigit(r) {
					break
				}
				b.WriteRune(l.advance())
			}
		}
	}

	typ := token.INTEGER
	if isDecimal {
		typ = token.DECIMAL
	}
	return token.Token{Type: typ, Lexeme: b.String(), Pos: start}
}

func (l *Lexer) scanQuoted(start token.Position, quote rune, typ token.Type) (token.Token, error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		r, ok := l.at(0)
		if !ok {
			return token.Token{}, fmt.Errorf("lexer: unterminated string starting at line %d column %d", start.Line, start.Column)
		}
		if r == '\\' {
			l.advance()
			esc, ok := l.at(0)
			if !ok {
				return token.Token{}, fmt.Errorf("lexer: unterminated escape at line %d column %d", l.line, l.column)
			}
			l.advance()
			b.WriteRune(unescape(esc))
			continue
		}
		if r == quote {
			l.advance()
			break
		}
		b.WriteRune(l.advance())
	}
	return token.Token{Type: typ, Lexeme: b.String(), Pos: start}, nil
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return r
	}
}

// scanAnnotation reads "@@ ... \n" as a DocumentAnnotation or "@ ... \n" as
// a CommentAnnotation, per spec.md §6. The terminating newline is left
// unconsumed so it is still scanned as its own LineEnd token.
func (l *Lexer) scanAnnotation(start token.Position) (token.Token, error) {
	l.advance() // first '@'
	typ := token.COMMENT_ANNOTATION
	if r, ok := l.at(0); ok && r == '@' {
		l.advance()
		typ = token.DOCUMENT_ANNOTATION
	}
	var b strings.Builder
	for {
		r, ok := l.at(0)
		if !ok || r == '\n' {
			break
		}
		b.WriteRune(l.advance())
	}
	return token.Token{Type: typ, Lexeme: strings.TrimSpace(b.String()), Pos: start}, nil
}

func (l *Lexer) scanOperator(start token.Position) (token.Token, bool) {
	remaining := string(l.src[l.pos:])
	for _, op := range token.Operators() {
		if strings.HasPrefix(remaining, op.Lexeme) {
			for range op.Lexeme {
				l.advance()
			}
			return token.Token{Type: op.Type, Lexeme: op.Lexeme, Pos: start}, true
		}
	}
	return token.Token{}, false
}
