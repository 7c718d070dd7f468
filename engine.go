package yamlschema

// Evaluate parses inputText as YAML and validates it against root, returning
// the accumulated Context. An empty input document is tolerated only when
// root accepts anything unconditionally (Empty or BoolLiteral(true)); every
// other schema records a single document-level error.
func Evaluate(root *RootSchema, inputText string, failFast bool) (*Context, error) {
	node, present, err := parseDocument(inputText)
	if err != nil {
		return nil, err
	}

	ctx := NewContext(failFast)

	if !present {
		if acceptsEmptyDocument(root.Schema) {
			return ctx, nil
		}
		ctx.AddDocError("Empty YAML document is not allowed")
		return ctx, nil
	}

	err = Validate(root.Schema, node, ctx)
	if err != nil && !isFailFast(err) {
		return nil, err
	}
	return ctx, nil
}

func acceptsEmptyDocument(s *Schema) bool {
	if s.Kind == KindEmpty {
		return true
	}
	return s.Kind == KindBoolLiteral && s.Bool
}
