// Package tree implements SEL's node arena, operator tree, and the
// index-based Change/NodeSide machinery for batched link rewrites
// (spec.md §3, §9 "Change batching"). The compiler in runtime/compiler
// wires links directly and does not go through Change.
package tree

import "fmt"

// Operation is the tagged variant of a node's kind (spec.md §3, full set
// per §6's operator table).
type Operation int

const (
	OpNone Operation = iota
	OpTouch
	OpInput
	OpCurrentResult

	OpAddition
	OpSubtraction
	OpMultiplication
	OpModulo
	OpDivision
	OpIntegerDivision
	OpExponential
	OpNegation

	OpExclusiveRange
	OpInclusiveRange

	OpSymbol
	OpPair
	OpList

	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpEquality
	OpInequality

	OpLogicalAnd
	OpLogicalOr
	OpNot
	OpLogicalXOR

	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXOR
	OpBitwiseLeftShift
	OpBitwiseRightShift

	OpDotAccess
	OpGroup
	OpAssociativeList
	OpExpression

	OpPipeFirstRight
	OpPipeFirstLeft
	OpPipeLastRight
	OpPipeLastLeft
	OpStream

	OpMatchTrue
	OpMatchFalse
	OpMatchEqual
	OpMatchNotEqual
	OpMatchLessThan
	OpMatchLessThanEqual
	OpMatchGreaterThan
	OpMatchGreaterThanEqual
	OpMatchKeysEqual
	OpMatchKeysNotEqual
	OpMatchValuesEqual
	OpMatchValuesNotEqual
	OpMatchContains
	OpMatchNotContains
)

var opNames = map[Operation]string{
	OpNone: "None", OpTouch: "Touch", OpInput: "Input", OpCurrentResult: "CurrentResult",
	OpAddition: "Addition", OpSubtraction: "Subtraction", OpMultiplication: "Multiplication",
	OpModulo: "Modulo", OpDivision: "Division", OpIntegerDivision: "IntegerDivision",
	OpExponential: "Exponential", OpNegation: "Negation",
	OpExclusiveRange: "ExclusiveRange", OpInclusiveRange: "InclusiveRange",
	OpSymbol: "Symbol", OpPair: "Pair", OpList: "List",
	OpGreaterThan: "GreaterThan", OpGreaterThanOrEqual: "GreaterThanOrEqual",
	OpLessThan: "LessThan", OpLessThanOrEqual: "LessThanOrEqual",
	OpEquality: "Equality", OpInequality: "Inequality",
	OpLogicalAnd: "LogicalAnd", OpLogicalOr: "LogicalOr", OpNot: "Not", OpLogicalXOR: "LogicalXOR",
	OpBitwiseAnd: "BitwiseAnd", OpBitwiseOr: "BitwiseOr", OpBitwiseXOR: "BitwiseXOR",
	OpBitwiseLeftShift: "BitwiseLeftShift", OpBitwiseRightShift: "BitwiseRightShift",
	OpDotAccess: "DotAccess", OpGroup: "Group", OpAssociativeList: "AssociativeList", OpExpression: "Expression",
	OpPipeFirstRight: "PipeFirstRight", OpPipeFirstLeft: "PipeFirstLeft",
	OpPipeLastRight: "PipeLastRight", OpPipeLastLeft: "PipeLastLeft", OpStream: "Stream",
	OpMatchTrue: "MatchTrue", OpMatchFalse: "MatchFalse", OpMatchEqual: "MatchEqual",
	OpMatchNotEqual: "MatchNotEqual", OpMatchLessThan: "MatchLessThan", OpMatchLessThanEqual: "MatchLessThanEqual",
	OpMatchGreaterThan: "MatchGreaterThan", OpMatchGreaterThanEqual: "MatchGreaterThanEqual",
	OpMatchKeysEqual: "MatchKeysEqual", OpMatchKeysNotEqual: "MatchKeysNotEqual",
	OpMatchValuesEqual: "MatchValuesEqual", OpMatchValuesNotEqual: "MatchValuesNotEqual",
	OpMatchContains: "MatchContains", OpMatchNotContains: "MatchNotContains",
}

func (o Operation) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// IsMatchFamily reports whether op is one of the chain-able match operators.
func (o Operation) IsMatchFamily() bool {
	switch o {
	case OpMatchTrue, OpMatchFalse, OpMatchEqual, OpMatchNotEqual,
		OpMatchLessThan, OpMatchLessThanEqual, OpMatchGreaterThan, OpMatchGreaterThanEqual,
		OpMatchKeysEqual, OpMatchKeysNotEqual, OpMatchValuesEqual, OpMatchValuesNotEqual,
		OpMatchContains, OpMatchNotContains:
		return true
	default:
		return false
	}
}
