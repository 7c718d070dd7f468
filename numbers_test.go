package yamlschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yamlschema "github.com/aisrael/yaml-schema"
)

func TestIntegerAcceptsWholeReal(t *testing.T) {
	root, err := yamlschema.Load("type: integer")
	require.NoError(t, err)

	ctx, err := yamlschema.Evaluate(root, "4.0", false)
	require.NoError(t, err)
	assert.False(t, ctx.HasErrors())

	ctx, err = yamlschema.Evaluate(root, "4.5", false)
	require.NoError(t, err)
	require.Len(t, ctx.Errors(), 1)
}

func TestIntegerBounds(t *testing.T) {
	root, err := yamlschema.Load("type: integer\nminimum: 1\nmaximum: 10\nmultipleOf: 2\n")
	require.NoError(t, err)

	ctx, err := yamlschema.Evaluate(root, "4", false)
	require.NoError(t, err)
	assert.False(t, ctx.HasErrors())

	ctx, err = yamlschema.Evaluate(root, "11", false)
	require.NoError(t, err)
	assert.True(t, ctx.HasErrors())

	ctx, err = yamlschema.Evaluate(root, "3", false)
	require.NoError(t, err)
	assert.True(t, ctx.HasErrors())
}

func TestObjectRequiredAndAdditionalProperties(t *testing.T) {
	schema := `
type: object
properties:
  name: { type: string }
required: [name]
additionalProperties: false
`
	root, err := yamlschema.Load(schema)
	require.NoError(t, err)

	ctx, err := yamlschema.Evaluate(root, `{ name: "a" }`, false)
	require.NoError(t, err)
	assert.False(t, ctx.HasErrors())

	ctx, err = yamlschema.Evaluate(root, `{ extra: 1 }`, false)
	require.NoError(t, err)
	require.Len(t, ctx.Errors(), 2)
}

func TestNotSchema(t *testing.T) {
	root, err := yamlschema.Load("not: { type: string }")
	require.NoError(t, err)

	ctx, err := yamlschema.Evaluate(root, "42", false)
	require.NoError(t, err)
	assert.False(t, ctx.HasErrors())

	ctx, err = yamlschema.Evaluate(root, `"hi"`, false)
	require.NoError(t, err)
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, "Value matches schema in not", ctx.Errors()[0].Message)
}

func TestConstSchema(t *testing.T) {
	root, err := yamlschema.Load("const: 42")
	require.NoError(t, err)

	ctx, err := yamlschema.Evaluate(root, "42", false)
	require.NoError(t, err)
	assert.False(t, ctx.HasErrors())

	ctx, err = yamlschema.Evaluate(root, "42.0", false)
	require.NoError(t, err)
	assert.True(t, ctx.HasErrors(), "an integer const must not match a float of the same magnitude")
}
