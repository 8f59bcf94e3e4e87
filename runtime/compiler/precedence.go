package compiler

import (
	"github.com/sel-lang/sel/core/token"
	"github.com/sel-lang/sel/core/tree"
)

// Precedence tiers, loosest-binding first (a higher value binds tighter),
// implementing the full operator
// ladder of spec.md §4.D: unary and dot-access bind tighter than range,
// which binds tighter than exponential, down through the sequencing
// operators (list, pair, stream) at the loose end.
const (
	precStream = iota + 1
	precPair
	precList
	precMatch
	precPipe
	precLogicalOr
	precLogicalAnd
	precEquality
	precRelational
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precBitshift
	precAdditive
	precMultiplicative
	precExponential
	precRange
	precDotAccess
	precUnary
)

// opInfo pairs a binary operator's tree.Operation with its precedence and
// associativity.
type opInfo struct {
	op         tree.Operation
	prec       int
	rightAssoc bool
}

// binaryOps is the Pratt-parser lookup table driving (*Builder).parseExpr.
// Exponential and every match-family operator are right-associative per
// spec.md §4.D; everything else is left-associative.
var binaryOps = map[token.Type]opInfo{
	token.STAR_STAR: {tree.OpExponential, precExponential, true},

	token.ASTERISK:    {tree.OpMultiplication, precMultiplicative, false},
	token.SLASH:       {tree.OpDivision, precMultiplicative, false},
	token.SLASH_SLASH: {tree.OpIntegerDivision, precMultiplicative, false},
	token.PERCENT:     {tree.OpModulo, precMultiplicative, false},

	token.PLUS:  {tree.OpAddition, precAdditive, false},
	token.MINUS: {tree.OpSubtraction, precAdditive, false},

	token.EXCLUSIVE_RANGE: {tree.OpExclusiveRange, precRange, false},
	token.INCLUSIVE_RANGE: {tree.OpInclusiveRange, precRange, false},

	token.DOT: {tree.OpDotAccess, precDotAccess, false},

	token.SHIFT_LEFT:  {tree.OpBitwiseLeftShift, precBitshift, false},
	token.SHIFT_RIGHT: {tree.OpBitwiseRightShift, precBitshift, false},

	token.AMP:   {tree.OpBitwiseAnd, precBitwiseAnd, false},
	token.CARET: {tree.OpBitwiseXOR, precBitwiseXor, false},
	token.PIPE:  {tree.OpBitwiseOr, precBitwiseOr, false},

	token.GREATER_THAN:          {tree.OpGreaterThan, precRelational, false},
	token.GREATER_THAN_OR_EQUAL: {tree.OpGreaterThanOrEqual, precRelational, false},
	token.LESS_THAN:             {tree.OpLessThan, precRelational, false},
	token.LESS_THAN_OR_EQUAL:    {tree.OpLessThanOrEqual, precRelational, false},

	token.EQUAL_EQUAL: {tree.OpEquality, precEquality, false},
	token.NOT_EQUAL:    {tree.OpInequality, precEquality, false},

	token.AND_AND: {tree.OpLogicalAnd, precLogicalAnd, false},
	token.OR_OR:       {tree.OpLogicalOr, precLogicalOr, false},
	token.CARET_CARET: {tree.OpLogicalXOR, precLogicalOr, false},

	token.ARROW_RIGHT: {tree.OpPipeFirstRight, precPipe, false},
	token.ARROW_LEFT:  {tree.OpPipeFirstLeft, precPipe, false},
	token.PIPE_RIGHT:  {tree.OpPipeLastRight, precPipe, false},
	token.PIPE_LEFT:   {tree.OpPipeLastLeft, precPipe, false},

	token.MATCH_TRUE:               {tree.OpMatchTrue, precMatch, true},
	token.MATCH_FALSE:              {tree.OpMatchFalse, precMatch, true},
	token.MATCH_EQUAL:              {tree.OpMatchEqual, precMatch, true},
	token.MATCH_NOT_EQUAL:          {tree.OpMatchNotEqual, precMatch, true},
	token.MATCH_LESS_THAN:          {tree.OpMatchLessThan, precMatch, true},
	token.MATCH_LESS_THAN_EQUAL:    {tree.OpMatchLessThanEqual, precMatch, true},
	token.MATCH_GREATER_THAN:       {tree.OpMatchGreaterThan, precMatch, true},
	token.MATCH_GREATER_THAN_EQUAL: {tree.OpMatchGreaterThanEqual, precMatch, true},
	token.MATCH_KEYS_EQUAL:         {tree.OpMatchKeysEqual, precMatch, true},
	token.MATCH_KEYS_NOT_EQUAL:     {tree.OpMatchKeysNotEqual, precMatch, true},
	token.MATCH_VALUES_EQUAL:       {tree.OpMatchValuesEqual, precMatch, true},
	token.MATCH_VALUES_NOT_EQUAL:   {tree.OpMatchValuesNotEqual, precMatch, true},
	token.MATCH_CONTAINS:           {tree.OpMatchContains, precMatch, true},
	token.MATCH_NOT_CONTAINS:       {tree.OpMatchNotContains, precMatch, true},

	token.COMMA:  {tree.OpList, precList, false},
	token.EQUAL:  {tree.OpPair, precPair, false},
	token.STREAM: {tree.OpStream, precStream, false},
}
