// Package yamlschema validates YAML documents against a schema that is itself
// written in YAML, modeled on JSON Schema conventions.
//
// The package exposes three layers: Load builds a Schema from a parsed YAML
// schema document, Evaluate runs a Schema against an input document and
// returns a Context carrying any ValidationErrors, and Validate is the
// recursive walk the two higher-level entry points drive.
package yamlschema
