package yamlschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yamlschema "github.com/aisrael/yaml-schema"
)

func mustLoad(t *testing.T, schemaYAML string) *yamlschema.RootSchema {
	t.Helper()
	root, err := yamlschema.Load(schemaYAML)
	require.NoError(t, err)
	return root
}

func evaluate(t *testing.T, schemaYAML, inputYAML string) *yamlschema.Context {
	t.Helper()
	root := mustLoad(t, schemaYAML)
	ctx, err := yamlschema.Evaluate(root, inputYAML, false)
	require.NoError(t, err)
	return ctx
}

func TestStringSchema(t *testing.T) {
	ctx := evaluate(t, "type: string", `"hello"`)
	assert.False(t, ctx.HasErrors())

	ctx = evaluate(t, "type: string", "42")
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "", ctx.Errors()[0].Path)
	assert.Equal(t, "Expected a string, but got: Integer(42)", ctx.Errors()[0].Message)
}

func TestObjectPropertiesReportInDocumentOrder(t *testing.T) {
	schema := `
type: object
properties:
  foo: { type: string }
  bar: { type: number }
`
	ctx := evaluate(t, schema, "{ foo: 42, bar: \"x\" }")
	require.Len(t, ctx.Errors(), 2)
	assert.Equal(t, "foo", ctx.Errors()[0].Path)
	assert.Equal(t, "bar", ctx.Errors()[1].Path)
}

func TestStringMinLength(t *testing.T) {
	schema := "type: string\nminLength: 5"
	ctx := evaluate(t, schema, `"hell"`)
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "String is too short! (min length: 5)", ctx.Errors()[0].Message)

	ctx = evaluate(t, schema, `"hello"`)
	assert.False(t, ctx.HasErrors())
}

func TestOneOfMultipleOf(t *testing.T) {
	schema := `
oneOf:
  - { type: number, multipleOf: 5 }
  - { type: number, multipleOf: 3 }
`
	ctx := evaluate(t, schema, "10")
	assert.False(t, ctx.HasErrors())

	ctx = evaluate(t, schema, "15")
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "Value matched multiple schemas in oneOf", ctx.Errors()[0].Message)

	ctx = evaluate(t, schema, "7")
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "None of the schemas in oneOf matched", ctx.Errors()[0].Message)
}

func TestArrayPrefixItemsAndItems(t *testing.T) {
	schema := `
type: array
prefixItems:
  - { type: number }
  - { type: string }
items: { type: string }
`
	ctx := evaluate(t, schema, `[1600, "Pennsylvania", "Avenue", "NW"]`)
	assert.False(t, ctx.HasErrors())

	ctx = evaluate(t, schema, `[true, "Pennsylvania"]`)
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "0", ctx.Errors()[0].Path)
}

func TestEnum(t *testing.T) {
	schema := "enum: [red, amber, green, null, 42]"
	ctx := evaluate(t, schema, "amber")
	assert.False(t, ctx.HasErrors())

	ctx = evaluate(t, schema, "blue")
	require.Len(t, ctx.Errors(), 1)
	assert.Contains(t, ctx.Errors()[0].Message, "red")
	assert.Contains(t, ctx.Errors()[0].Message, "42")
}

func TestEmptyDocumentAgainstBoolLiteralFalse(t *testing.T) {
	root := mustLoad(t, "false")
	ctx, err := yamlschema.Evaluate(root, "", false)
	require.NoError(t, err)
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "Empty YAML document is not allowed", ctx.Errors()[0].Message)
}

func TestEmptyDocumentAgainstEmptySchema(t *testing.T) {
	root := mustLoad(t, "{}")
	ctx, err := yamlschema.Evaluate(root, "", false)
	require.NoError(t, err)
	assert.False(t, ctx.HasErrors())
}

func TestFailFastStopsAtFirstError(t *testing.T) {
	schema := `
type: object
properties:
  foo: { type: string }
  bar: { type: number }
`
	root := mustLoad(t, schema)
	ctx, err := yamlschema.Evaluate(root, `{ foo: 42, bar: "x" }`, true)
	require.NoError(t, err)
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "foo", ctx.Errors()[0].Path)
}
