package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sel-lang/sel/core/symbols"
	"github.com/sel-lang/sel/runtime/context"
)

func TestParseValidDocumentAndApplyTo(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"schemaVersion": "v1.0.0",
		"identifiers": {
			"limit": {"type": "integer", "value": 10},
			"label": {"type": "string", "value": "ok"}
		},
		"functions": ["notify"]
	}`)

	doc, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"notify"}, doc.FunctionNames())

	ctx := context.New(symbols.New())
	require.NoError(t, doc.ApplyTo(ctx))

	idx, ok := ctx.Symbols().Index("limit")
	require.True(t, ok)
	v, ok := ctx.GetSymbolValue(idx)
	require.True(t, ok)
	i, _ := v.AsI64()
	assert.Equal(t, int64(10), i)
}

func TestParseRejectsSchemaViolation(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`{"identifiers": {}}`))
	assert.Error(t, err, "missing required schemaVersion must fail validation")
}

func TestParseRejectsUnknownIdentifierType(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`{
		"schemaVersion": "v1.0.0",
		"identifiers": {"x": {"type": "tuple", "value": 1}}
	}`))
	assert.Error(t, err)
}

func TestParseRejectsIncompatibleMajorVersion(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`{"schemaVersion": "v2.0.0"}`))
	assert.Error(t, err)
}

func TestParseAcceptsBareVersionWithoutVPrefix(t *testing.T) {
	t.Parallel()
	doc, err := Parse([]byte(`{"schemaVersion": "1.0.0"}`))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", doc.SchemaVersion)
}
