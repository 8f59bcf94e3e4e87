package value

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/mod/semver"
)

// EncodingVersion tags the composite (CBOR) wire format. Bumping it is a
// breaking change to round-trip compatibility, so it's checked against
// semver at package init the same way this codebase's other canonical
// encoders version-guard their wire format.
const EncodingVersion = "v1.0.0"

func init() {
	if !semver.IsValid(EncodingVersion) {
		panic(fmt.Sprintf("value: invalid EncodingVersion %q", EncodingVersion))
	}
}

// compositeFormatByte prefixes every CBOR-encoded composite payload so a
// decoder can reject an encoding from an incompatible future format before
// attempting to unmarshal it.
const compositeFormatByte byte = 1

// --- Primitive canonical encoding (spec.md §6, fixed exact layout) ---

// EncodeInteger returns the 8-byte little-endian two's-complement encoding.
func EncodeInteger(i int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(i))
	return b
}

// DecodeInteger inverts EncodeInteger.
func DecodeInteger(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("value: integer payload must be 8 bytes, got %d", len(b))
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// EncodeDecimal returns the 8-byte little-endian IEEE-754 encoding.
func EncodeDecimal(f float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(f))
	return b
}

// DecodeDecimal inverts EncodeDecimal.
func DecodeDecimal(b []byte) (float64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("value: decimal payload must be 8 bytes, got %d", len(b))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// EncodeBool returns the 1-byte 0x00/0x01 encoding.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{0x01}
	}
	return []byte{0x00}
}

// DecodeBool inverts EncodeBool.
func DecodeBool(b []byte) (bool, error) {
	if len(b) != 1 {
		return false, fmt.Errorf("value: boolean payload must be 1 byte, got %d", len(b))
	}
	return b[0] != 0x00, nil
}

// EncodeString returns the length-prefixed (4-byte LE uint32) UTF-8 encoding.
func EncodeString(s string) []byte {
	b := make([]byte, 4+len(s))
	binary.LittleEndian.PutUint32(b, uint32(len(s)))
	copy(b[4:], s)
	return b
}

// DecodeString inverts EncodeString.
func DecodeString(b []byte) (string, error) {
	if len(b) < 4 {
		return "", fmt.Errorf("value: string payload too short")
	}
	n := binary.LittleEndian.Uint32(b)
	if uint32(len(b)-4) != n {
		return "", fmt.Errorf("value: string payload length mismatch")
	}
	return string(b[4:]), nil
}

// EncodeRange returns two 4-byte little-endian integers (lower, upper).
func EncodeRange(lower, upper int32) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:4], uint32(lower))
	binary.LittleEndian.PutUint32(b[4:8], uint32(upper))
	return b
}

// DecodeRange inverts EncodeRange.
func DecodeRange(b []byte) (lower, upper int32, err error) {
	if len(b) != 8 {
		return 0, 0, fmt.Errorf("value: range payload must be 8 bytes, got %d", len(b))
	}
	return int32(binary.LittleEndian.Uint32(b[0:4])), int32(binary.LittleEndian.Uint32(b[4:8])), nil
}

// EncodeSymbol returns the length-prefixed identifier string followed by an
// 8-byte little-endian symbol-table index.
func EncodeSymbol(name string, index uint64) []byte {
	strBytes := EncodeString(name)
	b := make([]byte, len(strBytes)+8)
	copy(b, strBytes)
	binary.LittleEndian.PutUint64(b[len(strBytes):], index)
	return b
}

// DecodeSymbol inverts EncodeSymbol.
func DecodeSymbol(b []byte) (name string, index uint64, err error) {
	if len(b) < 4 {
		return "", 0, fmt.Errorf("value: symbol payload too short")
	}
	n := binary.LittleEndian.Uint32(b)
	strLen := 4 + int(n)
	if len(b) != strLen+8 {
		return "", 0, fmt.Errorf("value: symbol payload length mismatch")
	}
	name, err = DecodeString(b[:strLen])
	if err != nil {
		return "", 0, err
	}
	index = binary.LittleEndian.Uint64(b[strLen:])
	return name, index, nil
}

// --- Composite canonical encoding (spec.md §6 license: "implementations may
// choose any format provided encode and decode are exact inverses") ---

// PairData is the decoded form of a Pair value.
type PairData struct {
	Left  Value `cbor:"1,keyasint"`
	Right Value `cbor:"2,keyasint"`
}

// ListData is the decoded form of a List value.
type ListData struct {
	Items []Value `cbor:"1,keyasint"`
}

// AssocEntry is one entry of an AssociativeList: either a symbol-keyed
// binding or a positional value.
type AssocEntry struct {
	HasKey bool   `cbor:"1,keyasint"`
	Key    uint64 `cbor:"2,keyasint"` // symbol table index, valid if HasKey
	Val    Value  `cbor:"3,keyasint"`
}

// AssocData is the decoded form of an AssociativeList value.
type AssocData struct {
	Items []AssocEntry `cbor:"1,keyasint"`
}

// ExpressionData is the decoded form of an Expression value: the position in
// Tree.Nested of a nested, not-yet-evaluated sub-tree.
type ExpressionData struct {
	Root uint64 `cbor:"1,keyasint"`
}

func encodeComposite(v interface{}) []byte {
	body, err := cbor.Marshal(v)
	if err != nil {
		// The payload types above are all CBOR-representable closed
		// structs; a marshal failure means a programming error, not a
		// data error, so panicking here (same as a failed invariant)
		// is preferable to threading an impossible error everywhere.
		panic(fmt.Sprintf("value: composite encode failed: %v", err))
	}
	out := make([]byte, 1+len(body))
	out[0] = compositeFormatByte
	copy(out[1:], body)
	return out
}

func decodeComposite(b []byte, out interface{}) error {
	if len(b) < 1 {
		return fmt.Errorf("value: composite payload empty")
	}
	if b[0] != compositeFormatByte {
		return fmt.Errorf("value: unsupported composite format byte %d", b[0])
	}
	return cbor.Unmarshal(b[1:], out)
}

// EncodePair encodes a Pair payload.
func EncodePair(p PairData) []byte { return encodeComposite(p) }

// DecodePair inverts EncodePair.
func DecodePair(b []byte) (PairData, error) {
	var p PairData
	err := decodeComposite(b, &p)
	return p, err
}

// EncodeList encodes a List payload.
func EncodeList(l ListData) []byte { return encodeComposite(l) }

// DecodeList inverts EncodeList.
func DecodeList(b []byte) (ListData, error) {
	var l ListData
	err := decodeComposite(b, &l)
	return l, err
}

// EncodeAssociativeList encodes an AssociativeList payload.
func EncodeAssociativeList(a AssocData) []byte { return encodeComposite(a) }

// DecodeAssociativeList inverts EncodeAssociativeList.
func DecodeAssociativeList(b []byte) (AssocData, error) {
	var a AssocData
	err := decodeComposite(b, &a)
	return a, err
}

// EncodeExpression encodes an Expression payload.
func EncodeExpression(e ExpressionData) []byte { return encodeComposite(e) }

// DecodeExpression inverts EncodeExpression.
func DecodeExpression(b []byte) (ExpressionData, error) {
	var e ExpressionData
	err := decodeComposite(b, &e)
	return e, err
}
