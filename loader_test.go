package yamlschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yamlschema "github.com/aisrael/yaml-schema"
)

func TestLoadRejectsInvalidPattern(t *testing.T) {
	_, err := yamlschema.Load("type: string\npattern: \"[\"")
	require.Error(t, err)
	var loaderErr *yamlschema.LoaderError
	require.ErrorAs(t, err, &loaderErr)
	assert.Equal(t, yamlschema.ErrRegexParsingError, loaderErr.Kind)
}

func TestLoadRejectsUnsupportedType(t *testing.T) {
	_, err := yamlschema.Load("type: frobnicate")
	require.Error(t, err)
	var loaderErr *yamlschema.LoaderError
	require.ErrorAs(t, err, &loaderErr)
	assert.Equal(t, yamlschema.ErrUnsupportedType, loaderErr.Kind)
}

func TestLoadRejectsNonScalarEnumValue(t *testing.T) {
	schema := "enum:\n  - foo\n  - [1, 2]\n"
	_, err := yamlschema.Load(schema)
	require.Error(t, err)
}

func TestLoadMetadataPassthrough(t *testing.T) {
	root, err := yamlschema.Load("title: example\ndescription: a test schema\ntype: string\n")
	require.NoError(t, err)
	assert.Equal(t, "example", root.Title)
	assert.Equal(t, "a test schema", root.Description)
	assert.Equal(t, yamlschema.KindStringSchema, root.Schema.Kind)
}

func TestLoadMissingTypeIsEmpty(t *testing.T) {
	root, err := yamlschema.Load("minLength: 3\n")
	require.NoError(t, err)
	assert.Equal(t, yamlschema.KindEmpty, root.Schema.Kind)
}

func TestLoadDefsAreInert(t *testing.T) {
	schema := `
$defs:
  positive:
    type: number
    minimum: 0
type: string
`
	root, err := yamlschema.Load(schema)
	require.NoError(t, err)
	require.Contains(t, root.Defs, "positive")
	assert.Equal(t, yamlschema.KindStringSchema, root.Schema.Kind)
}

func TestLoadEmptySchemaAcceptsAnything(t *testing.T) {
	root, err := yamlschema.Load("")
	require.NoError(t, err)
	assert.Equal(t, yamlschema.KindEmpty, root.Schema.Kind)
}
