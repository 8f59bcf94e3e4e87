package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTrips(t *testing.T) {
	t.Parallel()

	i, err := DecodeInteger(EncodeInteger(-42))
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i)

	f, err := DecodeDecimal(EncodeDecimal(3.5))
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	b, err := DecodeBool(EncodeBool(true))
	require.NoError(t, err)
	assert.True(t, b)

	s, err := DecodeString(EncodeString("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	lo, hi, err := DecodeRange(EncodeRange(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int32(1), lo)
	assert.Equal(t, int32(10), hi)

	name, idx, err := DecodeSymbol(EncodeSymbol("x", 7))
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.Equal(t, uint64(7), idx)
}

func TestCompositeRoundTrips(t *testing.T) {
	t.Parallel()

	pair := PairData{Left: FromInteger(1), Right: FromString("a")}
	gotPair, err := DecodePair(EncodePair(pair))
	require.NoError(t, err)
	if diff := cmp.Diff(pair, gotPair); diff != "" {
		t.Errorf("pair round trip mismatch (-want +got):\n%s", diff)
	}

	list := ListData{Items: []Value{FromInteger(1), FromInteger(2), FromInteger(3)}}
	gotList, err := DecodeList(EncodeList(list))
	require.NoError(t, err)
	if diff := cmp.Diff(list, gotList); diff != "" {
		t.Errorf("list round trip mismatch (-want +got):\n%s", diff)
	}

	assoc := AssocData{Items: []AssocEntry{
		{HasKey: true, Key: 3, Val: FromBool(true)},
		{Val: FromInteger(9)},
	}}
	gotAssoc, err := DecodeAssociativeList(EncodeAssociativeList(assoc))
	require.NoError(t, err)
	if diff := cmp.Diff(assoc, gotAssoc); diff != "" {
		t.Errorf("associative list round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValueEqualIsTagAndByteEquality(t *testing.T) {
	t.Parallel()

	a := FromInteger(5)
	b := FromInteger(5)
	c := FromInteger(6)
	d := FromDecimal(5)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d), "same numeric magnitude but different tag must not be equal")
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	assert.True(t, FromBool(true).Truthy())
	assert.False(t, FromBool(false).Truthy())
	assert.False(t, UnitValue.Truthy())
	assert.False(t, FromInteger(0).Truthy())
	assert.True(t, FromInteger(1).Truthy())
	assert.False(t, UnknownValue.Truthy())
	assert.True(t, FromString("").Truthy(), "strings are truthy regardless of content")
}
