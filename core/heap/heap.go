// Package heap implements SEL's append-only data heap (spec.md §3, §4.A): an
// ordered store of byte-encoded values addressed by stable integer index.
package heap

import (
	"fmt"
	"strconv"

	"github.com/sel-lang/sel/core/value"
)

// Heap is an append-only, index-addressed store of encoded value bytes.
type Heap struct {
	entries []entry
}

type entry struct {
	tag   value.DataType
	bytes []byte
}

// New returns an empty Heap.
func New() *Heap {
	return &Heap{}
}

// Len reports the number of entries in the heap.
func (h *Heap) Len() int { return len(h.entries) }

// Insert appends an already-encoded Value and returns its index.
func (h *Heap) Insert(v value.Value) int {
	h.entries = append(h.entries, entry{tag: v.Tag, bytes: v.Payload})
	return len(h.entries) - 1
}

// InsertInteger appends an Integer value and returns its index.
func (h *Heap) InsertInteger(i int64) int {
	return h.Insert(value.FromInteger(i))
}

// InsertFromString parses raw per dataType and appends the encoded
// result (spec.md §4.A insert-typed). Unsupported data types insert nothing
// and return -1, false.
func (h *Heap) InsertFromString(dataType value.DataType, raw string) (int, bool) {
	switch dataType {
	case value.Integer:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return -1, false
		}
		return h.Insert(value.FromInteger(i)), true
	case value.Decimal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return -1, false
		}
		return h.Insert(value.FromDecimal(f)), true
	case value.String:
		return h.Insert(value.FromString(raw)), true
	case value.Boolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			b = false
		}
		return h.Insert(value.FromBool(b)), true
	default:
		return -1, false
	}
}

// Get returns the Value stored at index.
func (h *Heap) Get(index int) (value.Value, bool) {
	if index < 0 || index >= len(h.entries) {
		return value.Value{}, false
	}
	e := h.entries[index]
	return value.Value{Tag: e.tag, Payload: e.bytes}, true
}

// GetBytes returns the raw encoded bytes stored at index.
func (h *Heap) GetBytes(index int) ([]byte, bool) {
	v, ok := h.Get(index)
	return v.Payload, ok
}

func (h *Heap) GetI64(index int) (int64, bool) {
	v, ok := h.Get(index)
	if !ok {
		return 0, false
	}
	return v.AsI64()
}

func (h *Heap) GetF64(index int) (float64, bool) {
	v, ok := h.Get(index)
	if !ok {
		return 0, false
	}
	return v.AsF64()
}

func (h *Heap) GetString(index int) (string, bool) {
	v, ok := h.Get(index)
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (h *Heap) GetBool(index int) (bool, bool) {
	v, ok := h.Get(index)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// GetUsize decodes the entry at index as an unsigned integer (used for
// symbol-table indices embedded in a node's value slot, spec.md §3).
func (h *Heap) GetUsize(index int) (uint64, bool) {
	i, ok := h.GetI64(index)
	if !ok || i < 0 {
		return 0, false
	}
	return uint64(i), true
}

func (e entry) String() string {
	return fmt.Sprintf("%s:%x", e.tag, e.bytes)
}
