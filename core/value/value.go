package value

import "bytes"

// Value is the runtime wrapper threaded between evaluator steps and in/out
// of host functions (spec.md §4.A). Equality of two Values is byte-equality
// of (Tag, Payload).
type Value struct {
	Tag     DataType
	Payload []byte
}

// UnitValue is the canonical unit value.
var UnitValue = Value{Tag: Unit}

// UnknownValue is the canonical "operation failed" sentinel.
var UnknownValue = Value{Tag: Unknown}

// Equal implements spec.md's byte-equality rule for Value.
func (v Value) Equal(other Value) bool {
	return v.Tag == other.Tag && bytes.Equal(v.Payload, other.Payload)
}

func FromInteger(i int64) Value   { return Value{Tag: Integer, Payload: EncodeInteger(i)} }
func FromDecimal(f float64) Value { return Value{Tag: Decimal, Payload: EncodeDecimal(f)} }
func FromBool(b bool) Value       { return Value{Tag: Boolean, Payload: EncodeBool(b)} }
func FromString(s string) Value   { return Value{Tag: String, Payload: EncodeString(s)} }

func FromRange(lower, upper int32) Value {
	return Value{Tag: Range, Payload: EncodeRange(lower, upper)}
}

func FromSymbol(name string, index uint64) Value {
	return Value{Tag: Symbol, Payload: EncodeSymbol(name, index)}
}

func FromPair(left, right Value) Value {
	return Value{Tag: Pair, Payload: EncodePair(PairData{Left: left, Right: right})}
}

func FromList(items []Value) Value {
	return Value{Tag: List, Payload: EncodeList(ListData{Items: items})}
}

func FromAssociativeList(items []AssocEntry) Value {
	return Value{Tag: AssociativeList, Payload: EncodeAssociativeList(AssocData{Items: items})}
}

func FromExpression(root uint64) Value {
	return Value{Tag: Expression, Payload: EncodeExpression(ExpressionData{Root: root})}
}

// StreamClose is the sentinel a Stream operation's own node result resolves
// to (spec.md §4.F).
var StreamClose = Value{Tag: StreamInstruction, Payload: []byte("close")}

func (v Value) AsI64() (int64, bool) {
	if v.Tag != Integer {
		return 0, false
	}
	i, err := DecodeInteger(v.Payload)
	return i, err == nil
}

func (v Value) AsF64() (float64, bool) {
	if v.Tag != Decimal {
		return 0, false
	}
	f, err := DecodeDecimal(v.Payload)
	return f, err == nil
}

func (v Value) AsBool() (bool, bool) {
	if v.Tag != Boolean {
		return false, false
	}
	b, err := DecodeBool(v.Payload)
	return b, err == nil
}

func (v Value) AsString() (string, bool) {
	if v.Tag != String {
		return "", false
	}
	s, err := DecodeString(v.Payload)
	return s, err == nil
}

// AsNumeric widens an Integer or Decimal value to float64, for use in the
// promotion rules of spec.md §4.F.
func (v Value) AsNumeric() (float64, bool) {
	switch v.Tag {
	case Integer:
		i, ok := v.AsI64()
		return float64(i), ok
	case Decimal:
		return v.AsF64()
	default:
		return 0, false
	}
}

func (v Value) AsPair() (PairData, bool) {
	if v.Tag != Pair {
		return PairData{}, false
	}
	p, err := DecodePair(v.Payload)
	return p, err == nil
}

func (v Value) AsList() (ListData, bool) {
	if v.Tag != List {
		return ListData{}, false
	}
	l, err := DecodeList(v.Payload)
	return l, err == nil
}

func (v Value) AsAssociativeList() (AssocData, bool) {
	if v.Tag != AssociativeList {
		return AssocData{}, false
	}
	a, err := DecodeAssociativeList(v.Payload)
	return a, err == nil
}

func (v Value) AsExpression() (ExpressionData, bool) {
	if v.Tag != Expression {
		return ExpressionData{}, false
	}
	e, err := DecodeExpression(v.Payload)
	return e, err == nil
}

func (v Value) AsSymbol() (name string, index uint64, ok bool) {
	if v.Tag != Symbol {
		return "", 0, false
	}
	name, index, err := DecodeSymbol(v.Payload)
	return name, index, err == nil
}

// Truthy implements the "truthy" test spec.md §4.F uses for match-family
// operators and Not's Unit branch: boolean true, non-unit, non-zero integer.
func (v Value) Truthy() bool {
	switch v.Tag {
	case Boolean:
		b, _ := v.AsBool()
		return b
	case Unit:
		return false
	case Integer:
		i, _ := v.AsI64()
		return i != 0
	case Decimal:
		f, _ := v.AsF64()
		return f != 0
	case Unknown:
		return false
	default:
		return true
	}
}
