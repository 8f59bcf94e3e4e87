// Package token defines SEL's lexical token set.
package token

import "fmt"

// Type identifies the lexical category of a Token.
type Type int

const (
	ILLEGAL Type = iota
	EOF

	// Literals
	INTEGER
	DECIMAL
	SINGLE_QUOTED_STRING
	DOUBLE_QUOTED_STRING
	FORMATTED_STRING
	BOOLEAN
	UNIT // ()
	INPUT
	CURRENT_RESULT
	IDENTIFIER
	SYMBOL_PREFIX // :

	LINE_END

	// Grouping
	START_GROUP
	END_GROUP
	START_ASSOCIATIVE_LIST
	END_ASSOCIATIVE_LIST
	START_EXPRESSION_BLOCK
	END_EXPRESSION_BLOCK

	// Annotations
	COMMENT_ANNOTATION
	DOCUMENT_ANNOTATION

	// Arithmetic
	PLUS
	MINUS
	ASTERISK
	SLASH
	SLASH_SLASH
	PERCENT
	STAR_STAR

	// Ranges
	EXCLUSIVE_RANGE
	INCLUSIVE_RANGE

	// Relational / equality
	GREATER_THAN
	GREATER_THAN_OR_EQUAL
	LESS_THAN
	LESS_THAN_OR_EQUAL
	EQUAL_EQUAL
	NOT_EQUAL

	// Logical
	AND_AND
	OR_OR
	BANG
	CARET_CARET

	// Bitwise
	AMP
	PIPE
	CARET
	SHIFT_LEFT
	SHIFT_RIGHT

	DOT
	COMMA
	EQUAL

	// Pipes
	ARROW_RIGHT // ->
	ARROW_LEFT  // <-
	PIPE_RIGHT  // |>
	PIPE_LEFT   // <|
	STREAM      // |>>>

	// Match family
	MATCH_TRUE              // =>
	MATCH_FALSE             // =!>
	MATCH_EQUAL             // ==>
	MATCH_NOT_EQUAL         // =!=>
	MATCH_LESS_THAN         // <=>
	MATCH_LESS_THAN_EQUAL   // <==>
	MATCH_GREATER_THAN      // >=>
	MATCH_GREATER_THAN_EQUAL // >==>
	MATCH_KEYS_EQUAL        // :=
	MATCH_KEYS_NOT_EQUAL    // :!=
	MATCH_VALUES_EQUAL      // $=
	MATCH_VALUES_NOT_EQUAL  // $!=
	MATCH_CONTAINS          // ~=
	MATCH_NOT_CONTAINS      // ~!=
)

var names = map[Type]string{
	ILLEGAL:                  "ILLEGAL",
	EOF:                      "EOF",
	INTEGER:                  "INTEGER",
	DECIMAL:                  "DECIMAL",
	SINGLE_QUOTED_STRING:     "SINGLE_QUOTED_STRING",
	DOUBLE_QUOTED_STRING:     "DOUBLE_QUOTED_STRING",
	FORMATTED_STRING:         "FORMATTED_STRING",
	BOOLEAN:                  "BOOLEAN",
	UNIT:                     "UNIT",
	INPUT:                    "INPUT",
	CURRENT_RESULT:           "CURRENT_RESULT",
	IDENTIFIER:               "IDENTIFIER",
	SYMBOL_PREFIX:            "SYMBOL_PREFIX",
	LINE_END:                 "LINE_END",
	START_GROUP:              "START_GROUP",
	END_GROUP:                "END_GROUP",
	START_ASSOCIATIVE_LIST:   "START_ASSOCIATIVE_LIST",
	END_ASSOCIATIVE_LIST:     "END_ASSOCIATIVE_LIST",
	START_EXPRESSION_BLOCK:   "START_EXPRESSION_BLOCK",
	END_EXPRESSION_BLOCK:     "END_EXPRESSION_BLOCK",
	COMMENT_ANNOTATION:       "COMMENT_ANNOTATION",
	DOCUMENT_ANNOTATION:      "DOCUMENT_ANNOTATION",
	PLUS:                     "PLUS",
	MINUS:                    "MINUS",
	ASTERISK:                 "ASTERISK",
	SLASH:                    "SLASH",
	SLASH_SLASH:              "SLASH_SLASH",
	PERCENT:                  "PERCENT",
	STAR_STAR:                "STAR_STAR",
	EXCLUSIVE_RANGE:          "EXCLUSIVE_RANGE",
	INCLUSIVE_RANGE:          "INCLUSIVE_RANGE",
	GREATER_THAN:             "GREATER_THAN",
	GREATER_THAN_OR_EQUAL:    "GREATER_THAN_OR_EQUAL",
	LESS_THAN:                "LESS_THAN",
	LESS_THAN_OR_EQUAL:       "LESS_THAN_OR_EQUAL",
	EQUAL_EQUAL:              "EQUAL_EQUAL",
	NOT_EQUAL:                "NOT_EQUAL",
	AND_AND:                  "AND_AND",
	OR_OR:                    "OR_OR",
	BANG:                     "BANG",
	CARET_CARET:              "CARET_CARET",
	AMP:                      "AMP",
	PIPE:                     "PIPE",
	CARET:                    "CARET",
	SHIFT_LEFT:               "SHIFT_LEFT",
	SHIFT_RIGHT:              "SHIFT_RIGHT",
	DOT:                      "DOT",
	COMMA:                    "COMMA",
	EQUAL:                    "EQUAL",
	ARROW_RIGHT:              "ARROW_RIGHT",
	ARROW_LEFT:               "ARROW_LEFT",
	PIPE_RIGHT:               "PIPE_RIGHT",
	PIPE_LEFT:                "PIPE_LEFT",
	STREAM:                   "STREAM",
	MATCH_TRUE:               "MATCH_TRUE",
	MATCH_FALSE:              "MATCH_FALSE",
	MATCH_EQUAL:              "MATCH_EQUAL",
	MATCH_NOT_EQUAL:          "MATCH_NOT_EQUAL",
	MATCH_LESS_THAN:          "MATCH_LESS_THAN",
	MATCH_LESS_THAN_EQUAL:    "MATCH_LESS_THAN_EQUAL",
	MATCH_GREATER_THAN:       "MATCH_GREATER_THAN",
	MATCH_GREATER_THAN_EQUAL: "MATCH_GREATER_THAN_EQUAL",
	MATCH_KEYS_EQUAL:         "MATCH_KEYS_EQUAL",
	MATCH_KEYS_NOT_EQUAL:     "MATCH_KEYS_NOT_EQUAL",
	MATCH_VALUES_EQUAL:       "MATCH_VALUES_EQUAL",
	MATCH_VALUES_NOT_EQUAL:   "MATCH_VALUES_NOT_EQUAL",
	MATCH_CONTAINS:           "MATCH_CONTAINS",
	MATCH_NOT_CONTAINS:       "MATCH_NOT_CONTAINS",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// operators is the longest-match table: every multi-character punctuator and
// operator lexeme SEL recognizes, ordered so the lexer can try longest
// lexemes first. Single-character punctuators are the last entries below.
var operators = []struct {
	lexeme string
	typ    Type
}{
	// 4-char
	{"|>>>", STREAM},
	{"=!=>", MATCH_NOT_EQUAL},
	{"<==>", MATCH_LESS_THAN_EQUAL},
	{">==>", MATCH_GREATER_THAN_EQUAL},
	// 3-char
	{"...", INCLUSIVE_RANGE},
	{"=!>", MATCH_FALSE},
	{"==>", MATCH_EQUAL},
	{"<=>", MATCH_LESS_THAN},
	{">=>", MATCH_GREATER_THAN},
	{"$!=", MATCH_VALUES_NOT_EQUAL},
	{"~!=", MATCH_NOT_CONTAINS},
	{":!=", MATCH_KEYS_NOT_EQUAL},
	// 2-char
	{"//", SLASH_SLASH},
	{"**", STAR_STAR},
	{"..", EXCLUSIVE_RANGE},
	{">=", GREATER_THAN_OR_EQUAL},
	{"<=", LESS_THAN_OR_EQUAL},
	{"==", EQUAL_EQUAL},
	{"!=", NOT_EQUAL},
	{"&&", AND_AND},
	{"||", OR_OR},
	{"^^", CARET_CARET},
	{"<<", SHIFT_LEFT},
	{">>", SHIFT_RIGHT},
	{"->", ARROW_RIGHT},
	{"<-", ARROW_LEFT},
	{"|>", PIPE_RIGHT},
	{"<|", PIPE_LEFT},
	{"=>", MATCH_TRUE},
	{":=", MATCH_KEYS_EQUAL},
	{"$=", MATCH_VALUES_EQUAL},
	{"~=", MATCH_CONTAINS},
	{"()", UNIT},
	// 1-char
	{"+", PLUS},
	{"-", MINUS},
	{"*", ASTERISK},
	{"/", SLASH},
	{"%", PERCENT},
	{">", GREATER_THAN},
	{"<", LESS_THAN},
	{"&", AMP},
	{"|", PIPE},
	{"^", CARET},
	{".", DOT},
	{",", COMMA},
	{"=", EQUAL},
	{"!", BANG},
	{":", SYMBOL_PREFIX},
	{"(", START_GROUP},
	{")", END_GROUP},
	{"[", START_ASSOCIATIVE_LIST},
	{"]", END_ASSOCIATIVE_LIST},
	{"{", START_EXPRESSION_BLOCK},
	{"}", END_EXPRESSION_BLOCK},
}

// OperatorEntry pairs an operator lexeme with its token type.
type OperatorEntry struct {
	Lexeme string
	Type   Type
}

var sortedOperators []OperatorEntry

func init() {
	sortedOperators = make([]OperatorEntry, len(operators))
	for i, o := range operators {
		sortedOperators[i] = OperatorEntry{o.lexeme, o.typ}
	}
	// Longest-match requires trying longer lexemes before their prefixes,
	// regardless of the authoring order above.
	for i := 1; i < len(sortedOperators); i++ {
		for j := i; j > 0 && len(sortedOperators[j].Lexeme) > len(sortedOperators[j-1].Lexeme); j-- {
			sortedOperators[j], sortedOperators[j-1] = sortedOperators[j-1], sortedOperators[j]
		}
	}
}

// Operators returns the longest-match operator table, longest lexeme first.
func Operators() []OperatorEntry {
	return sortedOperators
}

// Position is a location in source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is one lexed unit of SEL source.
type Token struct {
	Type   Type
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
}
