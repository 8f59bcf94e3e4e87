// Package config implements SEL's host binding configuration
// (SPEC_FULL.md §4.I): a JSON document describing the identifiers and
// function names a host intends to bind into a Context before evaluation,
// validated against an embedded, semver-tagged JSON Schema.
package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"

	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/context"
)

// SchemaVersion tags the bindings document schema this package validates
// against. Bumping it is a breaking change to what documents parse.
const SchemaVersion = "v1.0.0"

func init() {
	if !semver.IsValid(SchemaVersion) {
		panic(fmt.Sprintf("config: invalid SchemaVersion %q", SchemaVersion))
	}
}

// bindingsSchema is the JSON Schema every bindings document must satisfy.
const bindingsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schemaVersion"],
  "properties": {
    "schemaVersion": {"type": "string"},
    "identifiers": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"enum": ["integer", "decimal", "string", "boolean"]},
          "value": {}
        }
      }
    },
    "functions": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// IdentifierBinding is one host-seeded identifier's declared type and value.
type IdentifierBinding struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Document is a parsed, schema-validated bindings document.
type Document struct {
	SchemaVersion string                       `json:"schemaVersion"`
	Identifiers   map[string]IdentifierBinding `json:"identifiers"`
	Functions     []string                     `json:"functions"`
}

var compiledSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	url := "schema://bindings.json"
	if err := compiler.AddResource(url, strings.NewReader(bindingsSchema)); err != nil {
		panic(fmt.Sprintf("config: invalid embedded bindings schema: %v", err))
	}
	s, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("config: failed to compile embedded bindings schema: %v", err))
	}
	compiledSchema = s
}

// Parse validates raw against the bindings schema and decodes it into a
// Document. A schemaVersion older than this package's SchemaVersion is
// accepted (documents are forward-compatible back to v1); one from a newer
// major is rejected.
func Parse(raw []byte) (*Document, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("config: invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("config: schema validation failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("config: decode failed: %w", err)
	}

	docVersion := doc.SchemaVersion
	if !strings.HasPrefix(docVersion, "v") {
		docVersion = "v" + docVersion
	}
	if !semver.IsValid(docVersion) {
		return nil, fmt.Errorf("config: invalid schemaVersion %q", doc.SchemaVersion)
	}
	if semver.Major(docVersion) != semver.Major(SchemaVersion) {
		return nil, fmt.Errorf("config: bindings document schema version %q is incompatible with %q", doc.SchemaVersion, SchemaVersion)
	}
	return &doc, nil
}

// ApplyTo seeds ctx's identifier bindings from the document (spec.md §4.B
// host-seeded identifiers). Function names are not registered here since
// their implementations are host-side Go closures the document can't
// carry; FunctionNames exposes the declared names for "did you mean"
// diagnostics ahead of actual registration.
func (d *Document) ApplyTo(ctx *context.Context) error {
	for name, binding := range d.Identifiers {
		v, err := decodeBindingValue(binding)
		if err != nil {
			return fmt.Errorf("config: identifier %q: %w", name, err)
		}
		idx := ctx.Symbols().Add(name)
		ctx.SetSymbolValue(idx, v)
	}
	return nil
}

// FunctionNames returns the function names this document declares a host
// intends to register.
func (d *Document) FunctionNames() []string {
	out := make([]string, len(d.Functions))
	copy(out, d.Functions)
	return out
}

func decodeBindingValue(b IdentifierBinding) (value.Value, error) {
	switch b.Type {
	case "integer":
		var i int64
		if err := json.Unmarshal(b.Value, &i); err != nil {
			return value.Value{}, err
		}
		return value.FromInteger(i), nil
	case "decimal":
		var f float64
		if err := json.Unmarshal(b.Value, &f); err != nil {
			return value.Value{}, err
		}
		return value.FromDecimal(f), nil
	case "string":
		var s string
		if err := json.Unmarshal(b.Value, &s); err != nil {
			return value.Value{}, err
		}
		return value.FromString(s), nil
	case "boolean":
		var bv bool
		if err := json.Unmarshal(b.Value, &bv); err != nil {
			return value.Value{}, err
		}
		return value.FromBool(bv), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported identifier type %q", b.Type)
	}
}
