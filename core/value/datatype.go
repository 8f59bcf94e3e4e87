// Package value implements SEL's tagged-variant runtime value model and its
// canonical byte encoding (spec.md §3, §6).
package value

import "fmt"

// DataType is the tagged variant of a runtime value's kind.
type DataType int

const (
	Unknown DataType = iota
	Unit
	Symbol
	Identifier
	Integer
	Decimal
	String
	Boolean
	Range
	Pair
	List
	AssociativeList
	Expression
	StreamInstruction
	Input
	CurrentResult
)

var dataTypeNames = [...]string{
	"Unknown", "Unit", "Symbol", "Identifier", "Integer", "Decimal", "String",
	"Boolean", "Range", "Pair", "List", "AssociativeList", "Expression",
	"StreamInstruction", "Input", "CurrentResult",
}

func (d DataType) String() string {
	if int(d) >= 0 && int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

// IsComposite reports whether the data type's canonical encoding is the CBOR
// composite form rather than the fixed primitive layout (see encoding.go).
func (d DataType) IsComposite() bool {
	switch d {
	case Pair, List, AssociativeList, Expression:
		return true
	default:
		return false
	}
}
